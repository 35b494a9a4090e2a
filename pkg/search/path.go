package search

import (
	"slices"

	"github.com/matzehuels/pathpane/pkg/errors"
	"github.com/matzehuels/pathpane/pkg/graph"
)

// Path walks pred from target until it reaches a node without a
// predecessor. The result is in target → source order.
//
// Returns UNREACHABLE if target has no entry at all.
func Path(pred Predecessors, target int) ([]int, error) {
	if _, ok := pred[target]; !ok {
		return nil, errors.Unreachable("node %d was never reached", target)
	}
	path := []int{target}
	cur := target
	for {
		next, ok := pred[cur]
		if !ok {
			return path, nil
		}
		if len(path) > len(pred) {
			return nil, errors.New(errors.ErrCodeInternal, "predecessor chain from %d does not terminate", target)
		}
		path = append(path, next)
		cur = next
	}
}

// PathTo is like [Path] but stops as soon as source is appended.
// A target equal to source yields the one-element path [source].
//
// Returns UNREACHABLE if the chain ends before reaching source.
func PathTo(pred Predecessors, target, source int) ([]int, error) {
	if target == source {
		return []int{source}, nil
	}
	path := []int{target}
	cur := target
	for cur != source {
		next, ok := pred[cur]
		if !ok {
			return nil, errors.Unreachable("no path from %d to %d", source, target)
		}
		if len(path) > len(pred) {
			return nil, errors.New(errors.ErrCodeInternal, "predecessor chain from %d does not terminate", target)
		}
		path = append(path, next)
		cur = next
	}
	return path, nil
}

// Reverse returns a reversed copy of path, turning target → source order
// into travel order.
func Reverse(path []int) []int {
	out := slices.Clone(path)
	slices.Reverse(out)
	return out
}

// Cost sums the edge weights along path, which must be in travel order.
// Between parallel edges the cheapest one counts.
//
// Returns NOT_FOUND when a hop has no edge.
func Cost[T any](g *graph.Graph[T], path []int) (int, error) {
	total := 0
	for i := 1; i < len(path); i++ {
		from, to := path[i-1], path[i]
		n, ok := g.Node(from)
		if !ok {
			return 0, errors.NotFound("node %d does not exist", from)
		}
		best := -1
		for _, e := range n.Edges {
			if e.To == to && (best < 0 || e.Weight < best) {
				best = e.Weight
			}
		}
		if best < 0 {
			return 0, errors.NotFound("no edge %d->%d", from, to)
		}
		total += best
	}
	return total, nil
}
