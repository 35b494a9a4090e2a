// Package graph provides the node store shared by the pathfinding engine and
// the text renderers.
//
// # Overview
//
// A [Graph] is an arena: every [Node] lives in a dense slice and is addressed
// by the integer index assigned when it was added. Indices start at 0, grow
// by one per [Graph.AddNode] and are never reused. Edges ([Link]) and every
// structure built on top of the graph (predecessor maps, visited sets, box
// layouts) refer to nodes by index only, never by pointer.
//
// Because nodes are shared by index, painting a node's payload through
// [Graph.Paint] is visible to every caller holding that index. Renderers use
// this to mark visited cells and shortest paths directly on the graph that
// was just searched, and [Graph.CleanAll] resets the payloads between runs.
//
// # Basic Usage
//
//	g := graph.New[string]()
//	a := g.AddNode("a")
//	b := g.AddNode("b")
//	if err := g.Link(a, b, 5); err != nil {
//	    // a or b does not exist
//	}
//
// # Sealed Nodes
//
// A node whose edge list is nil is sealed: it has never been linked, or it
// was closed with [Graph.Seal]. Search treats sealed nodes as impassable
// dead ends. A node whose edge list is empty but non-nil is not sealed.
//
// # Traversals
//
// [Graph.Count], [Graph.Depth] and [Graph.Color] walk the graph from its root
// with an explicit stack. Count and Depth are only meaningful on acyclic
// graphs and return an error coded CYCLIC_GRAPH instead of looping forever.
// Grid graphs are cyclic by construction.
//
// # Concurrency
//
// Graph instances are not safe for concurrent use. Callers must synchronize
// access if multiple goroutines read or modify the same graph.
package graph
