package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pathpane/pkg/animate"
	"github.com/matzehuels/pathpane/pkg/errors"
	"github.com/matzehuels/pathpane/pkg/graph"
	"github.com/matzehuels/pathpane/pkg/render/nodelink"
)

// Export formats.
const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// dotCommand creates the dot command.
func (c *CLI) dotCommand() *cobra.Command {
	var (
		gf        gridFlags
		ef        endpointFlags
		df        diagramFlags
		highlight bool
		format    string
		engine    string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "dot grid|diagram",
		Short: "Export a grid or diagram as Graphviz DOT or SVG",
		Long: `Export a grid or a box diagram as a node-link graph.

Grids keep their cell positions (neato layout) and label every edge with its
weight. With --highlight the A* path between --from and --to is drawn in
bold. Diagrams use the layered dot layout.

SVG output is rendered in-process; no Graphviz installation is needed.`,
		Example: `  pathpane dot grid -W 4 -H 3 --seal 5 --highlight
  pathpane dot diagram -n api -n db -e 0:1 --format svg -o diagram.svg`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"grid", "diagram"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				dot        string
				defaultEng nodelink.Engine
			)
			switch args[0] {
			case "grid":
				g, err := gf.build(c.Config.Grid)
				if err != nil {
					return err
				}
				var path []int
				if highlight {
					from, to := ef.resolve(g)
					sol, err := animate.Solve(g, from, to, animate.AStar, c.Config.Markers)
					if err != nil {
						return err
					}
					path = sol.Path
				}
				dot, defaultEng = nodelink.GridToDOT(g, path), nodelink.EngineNeato
			case "diagram":
				d, err := df.build(c.Config.Diagram)
				if err != nil {
					return err
				}
				label := func(_ int, n *graph.Node[string]) string { return n.Data }
				dot, defaultEng = nodelink.ToDOT(d.Graph(), label, nodelink.Options{}), nodelink.EngineDot
			default:
				return errors.New(errors.ErrCodeInvalidInput, "unknown source %q (want grid or diagram)", args[0])
			}

			data := []byte(dot)
			switch format {
			case formatDOT:
			case formatSVG:
				eng := defaultEng
				if engine != "" {
					e, err := nodelink.ParseEngine(engine)
					if err != nil {
						return err
					}
					eng = e
				}
				prog := newProgress(loggerFromContext(cmd.Context()))
				svg, err := nodelink.RenderSVG(cmd.Context(), dot, eng)
				if err != nil {
					return err
				}
				prog.done("Rendered SVG")
				data = svg
			default:
				return errors.New(errors.ErrCodeInvalidInput, "unknown format %q (want dot or svg)", format)
			}

			if output == "" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := errors.ValidateOutputPath(output); err != nil {
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", output)
			}
			r := reporter{cmd.ErrOrStderr()}
			r.success("Wrote %s", format)
			r.file(output)
			return nil
		},
	}

	gf.register(cmd)
	ef.register(cmd)
	df.register(cmd)
	cmd.Flags().BoolVar(&highlight, "highlight", false, "highlight the A* path on grids")
	cmd.Flags().StringVarP(&format, "format", "f", formatDOT, fmt.Sprintf("output format: %s or %s", formatDOT, formatSVG))
	cmd.Flags().StringVar(&engine, "engine", "", "layout engine for svg: dot or neato (default by source)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}
