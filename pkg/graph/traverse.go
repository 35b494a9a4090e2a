package graph

import (
	"github.com/matzehuels/pathpane/pkg/errors"
)

const (
	white = iota // not visited
	gray         // on the current path
	black        // finished
)

// frame is one entry of the explicit DFS stack: the node being expanded and
// the position of the next edge to follow.
type frame struct {
	node int
	next int
}

// walk runs an iterative post-order DFS from the root. Before a node is
// finished, all of its white children are finished. finish is called once per
// reachable node. onBack is called when an edge points at a gray node; if it
// returns an error the walk stops.
func (g *Graph[T]) walk(finish func(n *Node[T], state []int8), onBack func(from, to int) error) error {
	root, ok := g.Root()
	if !ok {
		return nil
	}

	state := make([]int8, len(g.nodes))
	state[root] = gray
	stack := []frame{{node: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		n := g.nodes[top.node]

		if top.next < len(n.Edges) {
			child := n.Edges[top.next].To
			top.next++
			switch state[child] {
			case white:
				state[child] = gray
				stack = append(stack, frame{node: child})
			case gray:
				if err := onBack(n.Index, child); err != nil {
					return err
				}
			}
			continue
		}

		finish(n, state)
		state[n.Index] = black
		stack = stack[:len(stack)-1]
	}
	return nil
}

// measure computes the tree-style node count and depth below every node.
// A node reached along two paths contributes to both, as if the graph were
// unfolded into a tree.
func (g *Graph[T]) measure() (count, depth int, err error) {
	root, ok := g.Root()
	if !ok {
		return 0, 0, nil
	}

	counts := make([]int, len(g.nodes))
	depths := make([]int, len(g.nodes))

	err = g.walk(func(n *Node[T], _ []int8) {
		c, d := 1, 0
		for _, e := range n.Edges {
			c += counts[e.To]
			d = max(d, depths[e.To])
		}
		counts[n.Index] = c
		depths[n.Index] = d + 1
	}, func(from, to int) error {
		return errors.New(errors.ErrCodeCyclicGraph, "edge %d->%d closes a cycle", from, to)
	})
	if err != nil {
		return 0, 0, err
	}
	return counts[root], depths[root], nil
}

// Count returns the number of nodes in the tree unfolded from the root.
// An empty graph has count 0; a single root has count 1.
//
// Returns a CYCLIC_GRAPH error if a cycle is reachable from the root.
func (g *Graph[T]) Count() (int, error) {
	c, _, err := g.measure()
	return c, err
}

// Depth returns the number of nodes on the longest path from the root.
// An empty graph has depth 0; a single root has depth 1.
//
// Returns a CYCLIC_GRAPH error if a cycle is reachable from the root.
func (g *Graph[T]) Depth() (int, error) {
	_, d, err := g.measure()
	return d, err
}

// Color greedily colours the nodes reachable from the root so that a node
// differs from its out-neighbours that were coloured before it. Neighbours
// are coloured first; each node then takes the smallest colour not used by
// them. Sealed nodes always get colour 0.
//
// Back edges of cycles are ignored, so Color is safe on grid graphs.
func (g *Graph[T]) Color() map[int]int {
	colors := make(map[int]int)
	_ = g.walk(func(n *Node[T], state []int8) {
		if n.IsSealed() {
			colors[n.Index] = 0
			return
		}
		used := make(map[int]bool, len(n.Edges))
		for _, e := range n.Edges {
			if c, ok := colors[e.To]; ok && state[e.To] == black {
				used[c] = true
			}
		}
		c := 0
		for used[c] {
			c++
		}
		colors[n.Index] = c
	}, func(int, int) error { return nil })
	return colors
}
