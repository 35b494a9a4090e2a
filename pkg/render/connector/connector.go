package connector

import (
	"slices"

	"github.com/matzehuels/pathpane/pkg/canvas"
	"github.com/matzehuels/pathpane/pkg/errors"
)

// Style selects the glyph marking the destination end of a connection.
type Style int

const (
	// General draws undirected connections: the destination drop ends in '|'.
	General Style = iota
	// Arrow draws directed connections: the destination drop ends in 'v'.
	Arrow
)

// Glyph returns the rune drawn on the destination side.
func (s Style) Glyph() rune {
	if s == Arrow {
		return 'v'
	}
	return '|'
}

// String returns the style name used by flags and config files.
func (s Style) String() string {
	if s == Arrow {
		return "arrow"
	}
	return "general"
}

// ParseStyle converts a style name ("general" or "arrow") into a Style.
func ParseStyle(name string) (Style, error) {
	switch name {
	case "general", "":
		return General, nil
	case "arrow":
		return Arrow, nil
	}
	return General, errors.New(errors.ErrCodeInvalidInput, "unknown connector style %q (want general or arrow)", name)
}

const (
	lineRune = '-'
	dropRune = '|'
)

// Settings controls spacing and glyphs.
type Settings struct {
	Gap            int   // Blank columns between neighbouring boxes
	ConnectionSize int   // Column step between connectors on the same box
	Style          Style // Destination glyph
}

// DefaultSettings returns gap 1, connection size 1 and the General style.
func DefaultSettings() Settings {
	return Settings{Gap: 1, ConnectionSize: 1, Style: General}
}

// Connection is a directed pair of box indices.
type Connection struct {
	From, To int
}

func compareConnections(a, b Connection) int {
	if a.From != b.From {
		return a.From - b.From
	}
	return a.To - b.To
}

// Layout computes and draws connector lines above a row of boxes.
// The zero value is not usable; use [New].
type Layout struct {
	boxes       []int
	connections []Connection
	settings    Settings
}

// New creates a layout for boxes of the given widths.
func New(boxes []int, s Settings) *Layout {
	return &Layout{
		boxes:    slices.Clone(boxes),
		settings: s,
	}
}

// Connect adds a connection from box from to box to. The connection list
// stays sorted. Returns a NOT_FOUND error if either index is not a box.
func (l *Layout) Connect(from, to int) error {
	if err := errors.ValidateIndex(from, len(l.boxes)); err != nil {
		return errors.Wrap(errors.ErrCodeNotFound, err, "connection source %d", from)
	}
	if err := errors.ValidateIndex(to, len(l.boxes)); err != nil {
		return errors.Wrap(errors.ErrCodeNotFound, err, "connection target %d", to)
	}
	c := Connection{From: from, To: to}
	i, _ := slices.BinarySearchFunc(l.connections, c, compareConnections)
	l.connections = slices.Insert(l.connections, i, c)
	return nil
}

// Connections returns the connections in layout order.
func (l *Layout) Connections() []Connection { return slices.Clone(l.connections) }

// Size returns the canvas dimensions: the total width of boxes and gaps, and
// two rows per connection.
func (l *Layout) Size() (width, height int) {
	for _, b := range l.boxes {
		width += b
	}
	if n := len(l.boxes); n > 1 {
		width += (n - 1) * l.settings.Gap
	}
	return width, 2 * len(l.connections)
}

// BoxStart returns the first column of box i.
func (l *Layout) BoxStart(i int) int {
	start := i * l.settings.Gap
	for _, b := range l.boxes[:i] {
		start += b
	}
	return start
}

// segment holds the computed coordinates of one connection.
type segment struct {
	from, to canvas.Point // top line, half-open
	lhs, rhs canvas.Point // connector points on the lower row
}

// segments computes coordinates for every connection in sorted order.
func (l *Layout) segments() []segment {
	used := make(map[int]int, len(l.boxes))
	offset := func(box int) int {
		n, seen := used[box]
		if seen {
			n += l.settings.ConnectionSize
		}
		used[box] = n
		return n
	}

	segs := make([]segment, 0, len(l.connections))
	for k, c := range l.connections {
		level := 2 * k
		fromX := l.BoxStart(c.From) + offset(c.From)
		toX := l.BoxStart(c.To) + offset(c.To)

		s := segment{
			lhs: canvas.Pt(fromX, level+1),
			rhs: canvas.Pt(toX, level+1),
		}
		if fromX > toX {
			s.from, s.to = canvas.Pt(fromX, level), canvas.Pt(toX+1, level)
		} else {
			s.from, s.to = canvas.Pt(fromX+1, level), canvas.Pt(toX, level)
		}
		segs = append(segs, s)
	}
	return segs
}

// Canvas draws the layout. Connectors pushed past the right edge by
// multiplicity offsets produce an OUT_OF_BOUNDS error; widen the boxes.
func (l *Layout) Canvas() (*canvas.Canvas, error) {
	width, height := l.Size()
	c := canvas.New(width, height)
	glyph := l.settings.Style.Glyph()

	for _, s := range l.segments() {
		lhsFloor := canvas.Pt(s.lhs.X, height)
		rhsFloor := canvas.Pt(s.rhs.X, height)
		if err := c.PutLine(s.lhs, lhsFloor, dropRune); err != nil {
			return nil, err
		}
		if err := c.PutLine(s.rhs, rhsFloor, dropRune); err != nil {
			return nil, err
		}
		if err := c.PutPoint(canvas.Pt(rhsFloor.X, rhsFloor.Y-1), glyph); err != nil {
			return nil, err
		}
		if err := c.PutLine(s.from, s.to, lineRune); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// String renders the layout, or an empty string if it does not fit.
func (l *Layout) String() string {
	c, err := l.Canvas()
	if err != nil {
		return ""
	}
	return c.String()
}

// Render is a one-shot helper: it lays out connections over boxes with the
// given gap and style, using a connection size of 1.
func Render(boxes []int, connections []Connection, gap int, style Style) (string, error) {
	l := New(boxes, Settings{Gap: gap, ConnectionSize: 1, Style: style})
	for _, c := range connections {
		if err := l.Connect(c.From, c.To); err != nil {
			return "", err
		}
	}
	c, err := l.Canvas()
	if err != nil {
		return "", err
	}
	return c.String(), nil
}

var _ canvas.Surface = (*Layout)(nil)
