package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pathpane/pkg/animate"
	"github.com/matzehuels/pathpane/pkg/config"
	"github.com/matzehuels/pathpane/pkg/errors"
	"github.com/matzehuels/pathpane/pkg/grid"
	diagramio "github.com/matzehuels/pathpane/pkg/io"
	"github.com/matzehuels/pathpane/pkg/render/boxes"
	"github.com/matzehuels/pathpane/pkg/render/connector"
)

// gridFlags describe a grid on the command line. Zero values fall back to
// the configuration.
type gridFlags struct {
	width   int
	height  int
	fill    string
	seal    string
	weights []string
}

func (f *gridFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.width, "width", "W", 0, "grid width (default from config)")
	cmd.Flags().IntVarP(&f.height, "height", "H", 0, "grid height (default from config)")
	cmd.Flags().StringVar(&f.fill, "fill", "", "blank cell character (default from config)")
	cmd.Flags().StringVar(&f.seal, "seal", "", "comma separated cells to seal, e.g. 1,4,7")
	cmd.Flags().StringArrayVar(&f.weights, "weight", nil, "edge weight edit node:pos:weight (repeatable)")
}

// resolve fills unset values from cfg.
func (f *gridFlags) resolve(cfg config.Grid) {
	if f.width == 0 {
		f.width = cfg.Width
	}
	if f.height == 0 {
		f.height = cfg.Height
	}
	if f.fill == "" {
		f.fill = cfg.Fill
	}
}

// build creates the grid, applies the configured base weight and then the
// seal and weight edits.
func (f *gridFlags) build(cfg config.Grid) (*grid.Grid, error) {
	f.resolve(cfg)
	g, err := grid.New(f.width, f.height, f.fill)
	if err != nil {
		return nil, err
	}
	if cfg.Weight != grid.DefaultWeight {
		if err := g.Reweight(cfg.Weight); err != nil {
			return nil, err
		}
	}
	sealed, err := f.sealed()
	if err != nil {
		return nil, err
	}
	edits := make([]grid.Edit, 0, len(f.weights))
	for _, w := range f.weights {
		e, err := grid.ParseEdit(w)
		if err != nil {
			return nil, err
		}
		edits = append(edits, e)
	}
	if err := g.Apply(sealed, edits); err != nil {
		return nil, err
	}
	return g, nil
}

func (f *gridFlags) sealed() ([]int, error) {
	return grid.ParseIndices(f.seal)
}

// endpointFlags select the search source and target.
type endpointFlags struct {
	from int
	to   int
}

func (f *endpointFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.from, "from", 0, "source cell")
	cmd.Flags().IntVar(&f.to, "to", -1, "target cell (default last cell)")
}

func (f *endpointFlags) resolve(g *grid.Grid) (from, to int) {
	to = f.to
	if to < 0 {
		to = g.Len() - 1
	}
	return f.from, to
}

// markerFlags override the configured markers.
type markerFlags struct {
	visited string
	path    string
}

func (f *markerFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.visited, "visited", "", "marker for visited cells (default from config)")
	cmd.Flags().StringVar(&f.path, "path-marker", "", "marker for path cells (default from config)")
}

func (f *markerFlags) markers(cfg animate.Markers) animate.Markers {
	if f.visited != "" {
		cfg.Visited = f.visited
	}
	if f.path != "" {
		cfg.Path = f.path
	}
	return cfg
}

// diagramFlags describe a box diagram on the command line.
type diagramFlags struct {
	nodes          []string
	edges          []string
	gap            int
	connectionSize int
	arrow          bool
	file           string
}

func (f *diagramFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&f.nodes, "node", "n", nil, "element label, \\n for line breaks (repeatable)")
	cmd.Flags().StringArrayVarP(&f.edges, "edge", "e", nil, "connection from:to between element indices (repeatable)")
	cmd.Flags().IntVar(&f.gap, "gap", -1, "columns between boxes (default from config)")
	cmd.Flags().IntVar(&f.connectionSize, "connection-size", 0, "columns between connectors on one box (default from config)")
	cmd.Flags().BoolVar(&f.arrow, "arrow", false, "draw arrow heads at connection targets")
	cmd.Flags().StringVar(&f.file, "file", "", "read elements and edges from a JSON document")
}

func (f *diagramFlags) settings(cfg config.Diagram) connector.Settings {
	s := connector.Settings{Gap: cfg.Gap, ConnectionSize: cfg.ConnectionSize, Style: connector.General}
	if f.gap >= 0 {
		s.Gap = f.gap
	}
	if f.connectionSize > 0 {
		s.ConnectionSize = f.connectionSize
	}
	if f.arrow || cfg.Arrow {
		s.Style = connector.Arrow
	}
	return s
}

// build creates the diagram from --file or from --node and --edge. Layout
// flags apply to both and file keys override them.
func (f *diagramFlags) build(cfg config.Diagram) (*boxes.Diagram, error) {
	if f.file != "" {
		if len(f.nodes) > 0 || len(f.edges) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "--file cannot be combined with --node or --edge")
		}
		doc, err := diagramio.ImportJSON(f.file)
		if err != nil {
			return nil, err
		}
		return doc.Build(f.settings(cfg))
	}
	if len(f.nodes) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "a diagram needs at least one --node")
	}
	d := boxes.New(f.settings(cfg))
	for _, n := range f.nodes {
		if _, err := d.AddElement(strings.ReplaceAll(n, `\n`, "\n")); err != nil {
			return nil, err
		}
	}
	for _, e := range f.edges {
		from, to, err := parseEdge(e)
		if err != nil {
			return nil, err
		}
		if err := d.Connect(from, to); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// parseEdge parses "from:to".
func parseEdge(s string) (int, int, error) {
	a, b, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "edge %q: want from:to", s)
	}
	from, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "edge %q", s)
	}
	to, err := strconv.Atoi(strings.TrimSpace(b))
	if err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "edge %q", s)
	}
	return from, to, nil
}
