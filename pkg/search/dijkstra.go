package search

import (
	"time"

	"github.com/matzehuels/pathpane/pkg/errors"
	"github.com/matzehuels/pathpane/pkg/graph"
	"github.com/matzehuels/pathpane/pkg/observability"
)

// Predecessors maps a node to the node it was reached from.
// The search source never has an entry.
type Predecessors map[int]int

// Trace records the indices touched by each iteration of a search.
// Every group starts with the expanded node, followed by the neighbours
// that were pushed to the frontier while expanding it.
type Trace [][]int

// Dijkstra runs [DijkstraTrace] and discards the trace.
func Dijkstra[T any](g *graph.Graph[T], source, target int) (Predecessors, error) {
	_, pred, err := DijkstraTrace(g, source, target)
	return pred, err
}

// DijkstraTrace finds the cheapest route from source to target.
//
// The returned predecessor map covers every node seen before the target was
// taken off the frontier. Returns NOT_FOUND if either index is missing and
// UNREACHABLE if the frontier runs dry first; the trace gathered so far is
// returned alongside the UNREACHABLE error.
func DijkstraTrace[T any](g *graph.Graph[T], source, target int) (trace Trace, pred Predecessors, err error) {
	if err := checkEndpoints(g, source, target); err != nil {
		return nil, nil, err
	}

	hooks := observability.Search()
	hooks.OnSearchStart("dijkstra", source, target, g.Len())
	start := time.Now()
	expanded := 0
	defer func() {
		hooks.OnSearchComplete("dijkstra", expanded, time.Since(start), err)
	}()

	if n, _ := g.Node(source); n.IsSealed() {
		return Trace{}, nil, errors.Unreachable("source %d is sealed", source)
	}

	dist := map[int]int{source: 0}
	pred = Predecessors{}
	checked := make(map[int]bool)
	frontier := map[int]struct{}{source: {}}
	trace = Trace{}

	for len(frontier) > 0 {
		u, ok := nearest(frontier, dist, checked)
		if !ok {
			break
		}
		delete(frontier, u)
		if u == target {
			return trace, pred, nil
		}
		expanded++

		group := []int{u}
		n, _ := g.Node(u)
		for _, e := range n.Edges {
			candidate := dist[u] + e.Weight
			if d, seen := dist[e.To]; !seen || candidate < d {
				dist[e.To] = candidate
				pred[e.To] = u
			}
			frontier[e.To] = struct{}{}
			group = append(group, e.To)
		}
		trace = append(trace, group)
		checked[u] = true
	}

	return trace, pred, errors.Unreachable("no path from %d to %d", source, target)
}

// Distance returns the total weight of the cheapest route from source to
// target.
func Distance[T any](g *graph.Graph[T], source, target int) (int, error) {
	pred, err := Dijkstra(g, source, target)
	if err != nil {
		return 0, err
	}
	path, err := PathTo(pred, target, source)
	if err != nil {
		return 0, err
	}
	return Cost(g, Reverse(path))
}

// nearest picks the unchecked frontier member with the smallest known
// distance. Checked members are dropped from the frontier as they are met.
func nearest(frontier map[int]struct{}, dist map[int]int, checked map[int]bool) (int, bool) {
	best, bestDist, found := 0, 0, false
	for i := range frontier {
		if checked[i] {
			delete(frontier, i)
			continue
		}
		d := dist[i]
		if !found || d < bestDist || (d == bestDist && i < best) {
			best, bestDist, found = i, d, true
		}
	}
	return best, found
}

func checkEndpoints[T any](g *graph.Graph[T], source, target int) error {
	if _, ok := g.Node(source); !ok {
		return errors.NotFound("source %d does not exist", source)
	}
	if _, ok := g.Node(target); !ok {
		return errors.NotFound("target %d does not exist", target)
	}
	return nil
}
