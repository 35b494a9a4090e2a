package search

import (
	"math"
	"time"

	"github.com/matzehuels/pathpane/pkg/errors"
	"github.com/matzehuels/pathpane/pkg/graph"
	"github.com/matzehuels/pathpane/pkg/observability"
)

// infinity is the score of a node that has not been reached yet. It leaves
// headroom so that adding an edge weight cannot overflow.
const infinity = math.MaxInt / 2

// Heuristic estimates the remaining cost from a node to the goal.
// It must never overestimate for [AStar] to return a cheapest path.
type Heuristic func(index int) int

// Zero is the heuristic that always estimates 0.
func Zero(int) int { return 0 }

// AStar finds the cheapest route from start to goal guided by h.
// A nil h behaves like [Zero].
//
// Returns NOT_FOUND if either index is missing and UNREACHABLE when the open
// set is exhausted before the goal is selected.
func AStar[T any](g *graph.Graph[T], start, goal int, h Heuristic) (pred Predecessors, err error) {
	if err := checkEndpoints(g, start, goal); err != nil {
		return nil, err
	}
	if h == nil {
		h = Zero
	}

	hooks := observability.Search()
	hooks.OnSearchStart("astar", start, goal, g.Len())
	began := time.Now()
	expanded := 0
	defer func() {
		hooks.OnSearchComplete("astar", expanded, time.Since(began), err)
	}()

	gScore := map[int]int{start: 0}
	fScore := map[int]int{start: h(start)}
	score := func(m map[int]int, i int) int {
		if v, ok := m[i]; ok {
			return v
		}
		return infinity
	}

	pred = Predecessors{}
	open := map[int]struct{}{start: {}}

	for len(open) > 0 {
		// Lowest f wins; among equal f the highest index does.
		cur, best := 0, 0
		first := true
		for i := range open {
			f := score(fScore, i)
			if first || f < best || (f == best && i > cur) {
				cur, best, first = i, f, false
			}
		}
		if cur == goal {
			return pred, nil
		}
		delete(open, cur)
		expanded++

		n, _ := g.Node(cur)
		if n.IsSealed() {
			continue
		}
		for _, e := range n.Edges {
			tentative := gScore[cur] + e.Weight
			if tentative < score(gScore, e.To) {
				pred[e.To] = cur
				gScore[e.To] = tentative
				fScore[e.To] = tentative + h(e.To)
				open[e.To] = struct{}{}
			}
		}
	}

	return pred, errors.Unreachable("no path from %d to %d", start, goal)
}
