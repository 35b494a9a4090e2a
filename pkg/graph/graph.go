package graph

import (
	"github.com/matzehuels/pathpane/pkg/errors"
)

// Link is a directed, weighted edge stored on its source node.
// There is no implicit back edge: bidirectional movement needs two links.
type Link struct {
	From   int // Source node index
	To     int // Destination node index
	Weight int // Non-negative traversal cost
}

// Node is a vertex in the arena. The zero value is not usable; nodes are
// created by [Graph.AddNode].
type Node[T any] struct {
	Data  T      // Payload, mutated in place by renderers
	Index int    // Stable index assigned at creation
	Edges []Link // Outgoing edges; nil means sealed
}

// IsSealed reports whether the node has no edge list.
func (n *Node[T]) IsSealed() bool { return n.Edges == nil }

// Graph is an index-addressed arena of nodes.
//
// The zero value is an empty graph ready for use.
type Graph[T any] struct {
	nodes []*Node[T]
}

// New creates an empty graph.
func New[T any]() *Graph[T] {
	return &Graph[T]{}
}

// AddNode stores a new node holding value and returns its index.
// The first node added becomes the root.
func (g *Graph[T]) AddNode(value T) int {
	i := len(g.nodes)
	g.nodes = append(g.nodes, &Node[T]{Data: value, Index: i})
	return i
}

// Link appends a directed edge from → to with the given weight.
// The source's edge list is created if the node was sealed.
//
// Returns a NOT_FOUND error if either index is not in the graph, and an
// INVALID_INPUT error for a negative weight. No edge is added on error.
func (g *Graph[T]) Link(from, to, weight int) error {
	src, ok := g.Node(from)
	if !ok {
		return errors.NotFound("link source %d does not exist", from)
	}
	if _, ok := g.Node(to); !ok {
		return errors.NotFound("link target %d does not exist", to)
	}
	if weight < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "link %d->%d has negative weight %d", from, to, weight)
	}
	if src.Edges == nil {
		src.Edges = []Link{}
	}
	src.Edges = append(src.Edges, Link{From: from, To: to, Weight: weight})
	return nil
}

// Node returns the node at index i.
func (g *Graph[T]) Node(i int) (*Node[T], bool) {
	if i < 0 || i >= len(g.nodes) {
		return nil, false
	}
	return g.nodes[i], true
}

// Len returns the number of nodes, which is also the next index to be assigned.
func (g *Graph[T]) Len() int { return len(g.nodes) }

// Root returns the index of the first node added.
func (g *Graph[T]) Root() (int, bool) {
	if len(g.nodes) == 0 {
		return 0, false
	}
	return 0, true
}

// Neighbors returns the outgoing edges of node i.
// The second result is false if i does not exist or is sealed.
func (g *Graph[T]) Neighbors(i int) ([]Link, bool) {
	n, ok := g.Node(i)
	if !ok || n.IsSealed() {
		return nil, false
	}
	return n.Edges, true
}

// EdgeCount returns the total number of links in the graph.
func (g *Graph[T]) EdgeCount() int {
	var total int
	for _, n := range g.nodes {
		total += len(n.Edges)
	}
	return total
}

// ForEach calls fn for every node in ascending index order.
func (g *Graph[T]) ForEach(fn func(i int, n *Node[T])) {
	for i, n := range g.nodes {
		fn(i, n)
	}
}

// Paint replaces the payload of node i.
func (g *Graph[T]) Paint(i int, value T) error {
	n, ok := g.Node(i)
	if !ok {
		return errors.NotFound("cannot paint node %d: does not exist", i)
	}
	n.Data = value
	return nil
}

// CleanAll resets every payload to value without touching edges.
func (g *Graph[T]) CleanAll(value T) {
	for _, n := range g.nodes {
		n.Data = value
	}
}

// Seal drops the edge list of node i, making it impassable to search.
// Links pointing at i from other nodes are kept; search still reaches the
// sealed node but never expands it.
func (g *Graph[T]) Seal(i int) error {
	n, ok := g.Node(i)
	if !ok {
		return errors.NotFound("cannot seal node %d: does not exist", i)
	}
	n.Edges = nil
	return nil
}

// SetEdgeWeight changes the weight of the pos-th outgoing edge of node i.
func (g *Graph[T]) SetEdgeWeight(i, pos, weight int) error {
	n, ok := g.Node(i)
	if !ok {
		return errors.NotFound("node %d does not exist", i)
	}
	if pos < 0 || pos >= len(n.Edges) {
		return errors.NotFound("node %d has no edge at position %d", i, pos)
	}
	if weight < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "negative weight %d", weight)
	}
	n.Edges[pos].Weight = weight
	return nil
}
