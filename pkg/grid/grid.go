package grid

import (
	"fmt"
	"strings"

	"github.com/matzehuels/pathpane/pkg/canvas"
	"github.com/matzehuels/pathpane/pkg/errors"
	"github.com/matzehuels/pathpane/pkg/graph"
)

// DefaultWeight is the cost of every lattice edge at construction.
const DefaultWeight = 10

// NewGraph builds a w×h lattice with every payload set to fill.
func NewGraph[T any](w, h int, fill T) (*graph.Graph[T], error) {
	if err := errors.ValidateDimensions(w, h); err != nil {
		return nil, err
	}

	g := graph.New[T]()
	n := w * h
	for range n {
		g.AddNode(fill)
	}

	link := func(a, b int) error {
		if err := g.Link(a, b, DefaultWeight); err != nil {
			return err
		}
		return g.Link(b, a, DefaultWeight)
	}
	for i := 1; i < n; i++ {
		if i%w == 0 {
			continue
		}
		if err := link(i-1, i); err != nil {
			return nil, err
		}
	}
	for i := 0; i < n-w; i++ {
		if err := link(i, i+w); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Grid is a lattice of single-character cells.
type Grid struct {
	g      *graph.Graph[string]
	width  int
	height int
	fill   string
}

// New creates a w×h grid whose cells show fill.
func New(w, h int, fill string) (*Grid, error) {
	if err := errors.ValidateMarker(fill); err != nil {
		return nil, err
	}
	g, err := NewGraph(w, h, fill)
	if err != nil {
		return nil, err
	}
	return &Grid{g: g, width: w, height: h, fill: fill}, nil
}

// Graph returns the underlying graph. Painting through it is visible in
// the grid.
func (g *Grid) Graph() *graph.Graph[string] { return g.g }

// Size returns the grid width and height in cells.
func (g *Grid) Size() (w, h int) { return g.width, g.height }

// Len returns the number of cells.
func (g *Grid) Len() int { return g.width * g.height }

// Fill returns the blank payload.
func (g *Grid) Fill() string { return g.fill }

// Coordinates returns the column and row of cell i.
func (g *Grid) Coordinates(i int) (x, y int) {
	return i % g.width, i / g.width
}

// Index returns the cell at column x, row y.
func (g *Grid) Index(x, y int) (int, error) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return 0, errors.NotFound("cell (%d,%d) outside %dx%d grid", x, y, g.width, g.height)
	}
	return y*g.width + x, nil
}

// Paint sets the payload of cell i.
func (g *Grid) Paint(i int, marker string) error {
	if err := errors.ValidateMarker(marker); err != nil {
		return err
	}
	return g.g.Paint(i, marker)
}

// Clean resets every cell to the blank payload.
func (g *Grid) Clean() { g.g.CleanAll(g.fill) }

// Seal makes cell i impassable.
func (g *Grid) Seal(i int) error { return g.g.Seal(i) }

// SetEdgeWeight changes the weight of the pos-th edge of cell i.
func (g *Grid) SetEdgeWeight(i, pos, weight int) error {
	return g.g.SetEdgeWeight(i, pos, weight)
}

// Reweight sets every edge of every unsealed cell to weight.
func (g *Grid) Reweight(weight int) error {
	if weight < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "negative weight %d", weight)
	}
	g.g.ForEach(func(_ int, n *graph.Node[string]) {
		for j := range n.Edges {
			n.Edges[j].Weight = weight
		}
	})
	return nil
}

// MinWeight returns the cheapest edge weight among unsealed cells. ok is
// false when no cell has an edge.
func (g *Grid) MinWeight() (weight int, ok bool) {
	g.g.ForEach(func(_ int, n *graph.Node[string]) {
		for _, e := range n.Edges {
			if !ok || e.Weight < weight {
				weight, ok = e.Weight, true
			}
		}
	})
	return weight, ok
}

// Canvas renders the current payloads, one text row per grid row.
func (g *Grid) Canvas() (*canvas.Canvas, error) {
	rows := make([]*canvas.Canvas, 0, g.height)
	cells := make([]string, 0, g.width)
	g.g.ForEach(func(i int, n *graph.Node[string]) {
		cells = append(cells, n.Data)
		if len(cells) == g.width {
			rows = append(rows, canvas.FromString(strings.Join(cells, " ")))
			cells = cells[:0]
		}
	})
	return canvas.Stack(rows...), nil
}

// String renders the current payloads.
func (g *Grid) String() string {
	c, _ := g.Canvas()
	return c.String()
}

// Blank renders a grid of the same shape with every cell blank, without
// touching the current payloads.
func (g *Grid) Blank() *canvas.Canvas {
	row := strings.TrimSuffix(strings.Repeat(g.fill+" ", g.width), " ")
	rows := make([]*canvas.Canvas, g.height)
	for y := range rows {
		rows[y] = canvas.FromString(row)
	}
	return canvas.Stack(rows...)
}

// Structure lists each cell with the weights of its outgoing edges, in edge
// order. Sealed cells list no weights.
//
//	0 | 10 10
//	1 | 10 10 10
func (g *Grid) Structure() string {
	var b strings.Builder
	g.g.ForEach(func(i int, n *graph.Node[string]) {
		weights := make([]string, len(n.Edges))
		for j, e := range n.Edges {
			weights[j] = fmt.Sprint(e.Weight)
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d | %s", i, strings.Join(weights, " "))
	})
	return b.String()
}

// Manhattan returns a heuristic estimating the cost from any cell to target
// as the Manhattan distance in cells times unit. With unit no larger than
// the cheapest edge weight it never overestimates.
func (g *Grid) Manhattan(target, unit int) func(int) int {
	tx, ty := g.Coordinates(target)
	return func(i int) int {
		x, y := g.Coordinates(i)
		return (abs(tx-x) + abs(ty-y)) * unit
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

var _ canvas.Surface = (*Grid)(nil)
