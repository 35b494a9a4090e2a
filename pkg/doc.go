// Package pkg holds the pathpane libraries.
//
// # Overview
//
// pathpane builds weighted graphs, searches them, and draws the result as
// text. The packages layer bottom up:
//
//	errors, observability     coded errors and event hooks
//	graph                     index-addressed node arena
//	canvas                    character grid with point and line drawing
//	grid                      w×h lattice graphs rendered row by row
//	search                    Dijkstra (with trace), A*, path reconstruction
//	animate                   frame sequences replaying a search
//	render/connector          connection lines above a row of boxes
//	render/boxes              framed box diagrams
//	render/nodelink           Graphviz DOT and SVG export
//	io                        JSON diagram documents
//	cache, config, server     frame cache, TOML settings, HTTP API
//
// # Quick Start
//
//	gr, _ := grid.New(5, 5, ".")
//	_ = gr.Seal(12)
//
//	pred, err := search.AStar(gr.Graph(), 0, 24, gr.Manhattan(24, grid.DefaultWeight))
//	if err != nil {
//	    return err
//	}
//	path, _ := search.PathTo(pred, 24, 0)
//	for _, i := range path {
//	    _ = gr.Paint(i, "#")
//	}
//	fmt.Println(gr)
//
// Or replay the whole search:
//
//	frames, _ := animate.Frames(gr, 0, 24, animate.DefaultMarkers())
//
// # Concurrency
//
// A graph is owned by one goroutine. Painting mutates nodes in place, so
// concurrent users (the HTTP server) build a fresh grid per request.
package pkg
