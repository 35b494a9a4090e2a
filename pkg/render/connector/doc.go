// Package connector lays out connector lines between a row of boxes.
//
// # Overview
//
// Given the widths of n boxes drawn side by side (separated by a gap) and a
// list of directed connections between them, [Layout] produces the canvas
// that sits directly above the boxes. Each connection occupies its own
// two-row level:
//
//	 ---            ← top line (row 2k)
//	|   |           ← connector points (row 2k+1), dropped to the floor
//	|   v
//	111 222         ← boxes, drawn by the caller below the canvas
//
// Connections are sorted lexicographically by (from, to) before layout and
// the k-th connection gets rows 2k and 2k+1. This is the only ordering rule:
// no crossing minimisation is attempted, so the result is deterministic.
//
// # Multiplicity
//
// A box touched by several connections would otherwise get every connector
// on its first column. Each time a box is used as an endpoint, the next
// connector on that box moves [Settings.ConnectionSize] columns to the right.
//
// # Intersections
//
// All coordinates are computed first, then drawn connection by connection:
// both vertical drops, the style glyph on the destination drop one row above
// the floor, then the horizontal top line. Later top lines overwrite earlier
// drops where they cross. Lines are half-open (see the canvas package), so a
// drop never paints the row of its own top line.
package connector
