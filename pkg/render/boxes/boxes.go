// Package boxes draws free-form graphs as a row of framed labels with
// connector lines above them.
//
// Every element is framed in an ASCII box. The boxes are placed left to
// right in insertion order and the connector package draws the edges on top:
//
//	 -----
//	|     v
//	----- -----
//	|   | |   |
//	| a | | b |
//	|   | |   |
//	----- -----
//
// A box with more connections than fit along its top edge is widened, so
// every connector lands on a column of its own box.
package boxes

import (
	"maps"
	"slices"
	"strings"

	"github.com/matzehuels/pathpane/pkg/canvas"
	"github.com/matzehuels/pathpane/pkg/errors"
	"github.com/matzehuels/pathpane/pkg/graph"
	"github.com/matzehuels/pathpane/pkg/render/connector"
)

// InOut counts the edges leaving and entering an element.
type InOut struct {
	Out int
	In  int
}

// Diagram is a set of labeled elements and directed connections.
type Diagram struct {
	labels   []string
	adjacent map[int][]int // element -> connected elements, in Connect order
	settings connector.Settings
}

// New creates an empty diagram.
func New(s connector.Settings) *Diagram {
	if s.ConnectionSize < 1 {
		s.ConnectionSize = 1
	}
	return &Diagram{
		adjacent: make(map[int][]int),
		settings: s,
	}
}

// AddElement adds a box holding label (which may span several lines) and
// returns its index.
func (d *Diagram) AddElement(label string) (int, error) {
	if err := errors.ValidateLabel(label); err != nil {
		return 0, err
	}
	d.labels = append(d.labels, label)
	return len(d.labels) - 1, nil
}

// Len returns the number of elements.
func (d *Diagram) Len() int { return len(d.labels) }

// Connect records a connection from a to b.
func (d *Diagram) Connect(a, b int) error {
	if err := errors.ValidateIndex(a, len(d.labels)); err != nil {
		return err
	}
	if err := errors.ValidateIndex(b, len(d.labels)); err != nil {
		return err
	}
	d.adjacent[a] = append(d.adjacent[a], b)
	if _, ok := d.adjacent[b]; !ok {
		d.adjacent[b] = nil
	}
	return nil
}

// Degree returns the number of connection ends on element i, counting a
// self connection twice. Elements never connected have degree 0.
func (d *Diagram) Degree(i int) int {
	out, ok := d.adjacent[i]
	if !ok {
		return 0
	}
	return len(out) + d.inDegree(i)
}

func (d *Diagram) inDegree(i int) int {
	var n int
	for _, targets := range d.adjacent {
		for _, t := range targets {
			if t == i {
				n++
			}
		}
	}
	return n
}

// Structure returns in/out counts for every connected element.
func (d *Diagram) Structure() map[int]InOut {
	s := make(map[int]InOut, len(d.adjacent))
	for i, targets := range d.adjacent {
		s[i] = InOut{Out: len(targets), In: d.inDegree(i)}
	}
	return s
}

// frame is one framed label.
type frame struct {
	lines []string
	tab   int
}

func newFrame(label string, tab int) frame {
	return frame{lines: strings.Split(label, "\n"), tab: tab}
}

func (f frame) textWidth() int {
	w := 0
	for _, l := range f.lines {
		w = max(w, len([]rune(l)))
	}
	return w
}

// width is the outer width including the side bars.
func (f frame) width() int {
	return 2 + 2*f.tab + f.textWidth()
}

func (f frame) canvas() *canvas.Canvas {
	w := f.width()
	pad := strings.Repeat(" ", f.tab)
	border := strings.Repeat("-", w)
	blank := "|" + strings.Repeat(" ", w-2) + "|"
	text := f.textWidth()

	rows := []string{border}
	if f.tab > 0 {
		rows = append(rows, blank)
	}
	for _, l := range f.lines {
		fill := strings.Repeat(" ", text-len([]rune(l)))
		rows = append(rows, "|"+pad+l+fill+pad+"|")
	}
	if f.tab > 0 {
		rows = append(rows, blank)
	}
	rows = append(rows, border)
	return canvas.Parse(strings.Join(rows, "\n"))
}

// frames sizes every box. A box whose degree exceeds the connectors that fit
// on a one-space-padded frame gets ConnectionSize extra padding per overflow.
func (d *Diagram) frames() []frame {
	size := d.settings.ConnectionSize
	frames := make([]frame, len(d.labels))
	for i, label := range d.labels {
		f := newFrame(label, 1)
		fit := (f.width() + size - 1) / size
		if n := d.Degree(i); n > fit {
			f = newFrame(label, (n-fit)*size+1)
		}
		frames[i] = f
	}
	return frames
}

// Canvas draws the connector layout stacked on top of the boxes.
func (d *Diagram) Canvas() (*canvas.Canvas, error) {
	frames := d.frames()
	widths := make([]int, len(frames))
	boxes := make([]*canvas.Canvas, len(frames))
	for i, f := range frames {
		widths[i] = f.width()
		boxes[i] = f.canvas()
	}

	layout := connector.New(widths, d.settings)
	for _, from := range slices.Sorted(maps.Keys(d.adjacent)) {
		for _, to := range d.adjacent[from] {
			if err := layout.Connect(from, to); err != nil {
				return nil, err
			}
		}
	}
	lines, err := layout.Canvas()
	if err != nil {
		return nil, err
	}

	return canvas.Stack(lines, canvas.Beside(d.settings.Gap, boxes...)), nil
}

// String renders the diagram with trailing blanks trimmed from each row.
func (d *Diagram) String() string {
	c, err := d.Canvas()
	if err != nil {
		return ""
	}
	rows := c.Rows()
	for i, r := range rows {
		rows[i] = strings.TrimRight(r, " ")
	}
	return strings.Join(rows, "\n")
}

// FromGraph builds a diagram with one element per node, labeled by label, and
// one connection per link.
func FromGraph[T any](g *graph.Graph[T], label func(i int, n *graph.Node[T]) string, s connector.Settings) (*Diagram, error) {
	d := New(s)
	var err error
	g.ForEach(func(i int, n *graph.Node[T]) {
		if err == nil {
			_, err = d.AddElement(label(i, n))
		}
	})
	if err != nil {
		return nil, err
	}
	g.ForEach(func(i int, n *graph.Node[T]) {
		for _, e := range n.Edges {
			if err == nil {
				err = d.Connect(e.From, e.To)
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Label returns the text of element i.
func (d *Diagram) Label(i int) (string, bool) {
	if i < 0 || i >= len(d.labels) {
		return "", false
	}
	return d.labels[i], true
}

// Graph converts the diagram into a graph store holding the labels, with
// one unit-weight link per connection.
func (d *Diagram) Graph() *graph.Graph[string] {
	g := graph.New[string]()
	for _, l := range d.labels {
		g.AddNode(l)
	}
	for _, from := range slices.Sorted(maps.Keys(d.adjacent)) {
		for _, to := range d.adjacent[from] {
			_ = g.Link(from, to, 1)
		}
	}
	return g
}

var _ canvas.Surface = (*Diagram)(nil)
