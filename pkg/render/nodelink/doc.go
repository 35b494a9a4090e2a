// Package nodelink exports graphs as Graphviz node-link diagrams.
//
// # Overview
//
// The ASCII renderers draw grids and box diagrams for the terminal. This
// package produces the same structures as Graphviz DOT source, and renders
// that source to SVG in-process, for documentation and the web.
//
// # Usage
//
//	dot := nodelink.ToDOT(g, label, nodelink.Options{Weights: true})
//	svg, err := nodelink.RenderSVG(ctx, dot, nodelink.EngineDot)
//
// Grids have a natural geometry, so [GridToDOT] pins every cell to its
// coordinates and should be rendered with [EngineNeato]:
//
//	dot := nodelink.GridToDOT(gr, path)
//	svg, err := nodelink.RenderSVG(ctx, dot, nodelink.EngineNeato)
//
// # Styling
//
// Sealed nodes are drawn dashed and grey. Nodes listed in
// [Options.Highlight] are filled and the links between consecutive
// highlighted nodes are drawn bold, which is how a found path is shown.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
