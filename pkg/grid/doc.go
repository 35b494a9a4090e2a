// Package grid builds W×H lattice graphs and renders them as text.
//
// # Layout
//
// Cells are numbered row-major: index i sits at column i % w and row i / w.
// Every cell is linked to its left, right, upper and lower neighbour with
// [DefaultWeight] in both directions, so the graph is a 4-connected lattice
// with symmetric weights until [Grid.SetEdgeWeight] or [Grid.Seal] change
// it. Edge lists are built in a fixed order: right/left links first, then
// down/up links.
//
// # Rendering
//
// [Grid.Canvas] slices the nodes into rows of w cells and joins each row's
// payloads with a single space:
//
//	. . .
//	. # .
//	. . .
//
// Payloads are single characters (see errors.ValidateMarker); the renderer
// does not pad wider ones.
package grid
