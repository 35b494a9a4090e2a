package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

// diagramCommand creates the diagram command.
func (c *CLI) diagramCommand() *cobra.Command {
	var (
		df        diagramFlags
		structure bool
	)

	cmd := &cobra.Command{
		Use:   "diagram",
		Short: "Draw labeled boxes and their connections",
		Long: `Draw a row of boxed labels with connections routed above them.

Elements are numbered from 0 in the order of --node. Each --edge from:to
connects two elements; a box grows wider when it has more connectors than
its label is wide. With --file the elements and edges are read from a JSON
document instead:

  {"nodes": ["api", "db"], "edges": [[0, 1]], "arrow": true}`,
		Example: `  pathpane diagram -n api -n "queue\nworker" -n db -e 0:1 -e 1:2 -e 0:2
  pathpane diagram -n a -n b -e 0:1 --arrow --gap 3
  pathpane diagram --file diagram.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := df.build(c.Config.Diagram)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if structure {
				s := d.Structure()
				ids := make([]int, 0, len(s))
				for i := range s {
					ids = append(ids, i)
				}
				slices.Sort(ids)
				for _, i := range ids {
					label, _ := d.Label(i)
					fmt.Fprintf(out, "%d %q in=%d out=%d\n", i, label, s[i].In, s[i].Out)
				}
				return nil
			}
			fmt.Fprintln(out, d.String())
			return nil
		},
	}

	df.register(cmd)
	cmd.Flags().BoolVar(&structure, "structure", false, "print connector counts per element instead of drawing")
	return cmd
}
