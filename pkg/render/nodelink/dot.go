package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/pathpane/pkg/errors"
	"github.com/matzehuels/pathpane/pkg/graph"
	"github.com/matzehuels/pathpane/pkg/grid"
)

// Engine names a Graphviz layout engine.
type Engine string

// Supported layout engines.
const (
	EngineDot   Engine = "dot"   // layered, top to bottom
	EngineNeato Engine = "neato" // honours pinned positions
)

// ParseEngine converts a flag value into an Engine.
func ParseEngine(s string) (Engine, error) {
	switch Engine(s) {
	case EngineDot, EngineNeato:
		return Engine(s), nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unknown layout engine %q (want dot or neato)", s)
}

// Options configures DOT generation.
type Options struct {
	// Weights labels every edge with its weight.
	Weights bool

	// Merge draws a pair of opposite links with equal weight as a single
	// undirected edge.
	Merge bool

	// Highlight marks a node sequence, typically a path.
	Highlight []int

	// Position returns pinned coordinates for a node. Nil leaves placement
	// to the layout engine.
	Position func(i int) (x, y float64)
}

// ToDOT converts g to Graphviz DOT source, labelling nodes with label.
func ToDOT[T any](g *graph.Graph[T], label func(i int, n *graph.Node[T]) string, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=monospace];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	onPath := make(map[int]bool, len(opts.Highlight))
	hops := make(map[[2]int]bool, len(opts.Highlight))
	for k, i := range opts.Highlight {
		onPath[i] = true
		if k > 0 {
			prev := opts.Highlight[k-1]
			hops[[2]int{prev, i}] = true
			hops[[2]int{i, prev}] = true
		}
	}

	g.ForEach(func(i int, n *graph.Node[T]) {
		attrs := []string{fmt.Sprintf("label=%q", label(i, n))}
		switch {
		case onPath[i]:
			attrs = append(attrs, "fillcolor=gold")
		case n.IsSealed():
			attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
		}
		if opts.Position != nil {
			x, y := opts.Position(i)
			attrs = append(attrs, fmt.Sprintf("pos=\"%s,%s!\"", fmtFloat(x), fmtFloat(y)))
		}
		fmt.Fprintf(&buf, "  n%d [%s];\n", i, strings.Join(attrs, ", "))
	})

	buf.WriteString("\n")
	g.ForEach(func(i int, n *graph.Node[T]) {
		for _, e := range n.Edges {
			if opts.Merge && mergedAway(g, e) {
				continue
			}
			var attrs []string
			if opts.Weights {
				attrs = append(attrs, fmt.Sprintf("label=\"%d\"", e.Weight))
			}
			if opts.Merge && hasReverse(g, e) {
				attrs = append(attrs, "dir=none")
			}
			if hops[[2]int{e.From, e.To}] {
				attrs = append(attrs, "penwidth=3", "color=goldenrod")
			}
			if len(attrs) == 0 {
				fmt.Fprintf(&buf, "  n%d -> n%d;\n", e.From, e.To)
				continue
			}
			fmt.Fprintf(&buf, "  n%d -> n%d [%s];\n", e.From, e.To, strings.Join(attrs, ", "))
		}
	})

	buf.WriteString("}\n")
	return buf.String()
}

// GridToDOT exports a grid with every cell pinned to its coordinates and
// path highlighted. Opposite lattice links are merged.
func GridToDOT(gr *grid.Grid, path []int) string {
	label := func(i int, n *graph.Node[string]) string {
		return fmt.Sprintf("%d %s", i, n.Data)
	}
	return ToDOT(gr.Graph(), label, Options{
		Weights:   true,
		Merge:     true,
		Highlight: path,
		Position: func(i int) (float64, float64) {
			x, y := gr.Coordinates(i)
			return float64(x) * 1.5, float64(-y) * 1.5
		},
	})
}

// hasReverse reports whether e.To links back to e.From with the same weight.
func hasReverse[T any](g *graph.Graph[T], e graph.Link) bool {
	back, ok := g.Neighbors(e.To)
	if !ok {
		return false
	}
	for _, b := range back {
		if b.To == e.From && b.Weight == e.Weight {
			return true
		}
	}
	return false
}

// mergedAway reports whether e is the second half of a merged pair.
func mergedAway[T any](g *graph.Graph[T], e graph.Link) bool {
	return e.From > e.To && hasReverse(g, e)
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// RenderSVG renders DOT source to SVG using the given layout engine.
func RenderSVG(ctx context.Context, dot string, engine Engine) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	switch engine {
	case EngineNeato:
		gv.SetLayout(graphviz.NEATO)
	default:
		gv.SetLayout(graphviz.DOT)
	}

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-based svg header with a plain
// viewBox so the image scales in a browser.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(header))
}
