// Package render groups the renderers that turn graphs into text or images.
//
// # Overview
//
//   - [connector] draws the connection lines between a row of boxes.
//   - [boxes] frames labeled elements and draws a connector layout above them.
//   - [nodelink] exports graphs and grids to Graphviz DOT and SVG.
//
// Grid rendering lives with the grid itself in package grid, since each
// cell is a single character and needs no layout.
//
// [connector]: github.com/matzehuels/pathpane/pkg/render/connector
// [boxes]: github.com/matzehuels/pathpane/pkg/render/boxes
// [nodelink]: github.com/matzehuels/pathpane/pkg/render/nodelink
package render
