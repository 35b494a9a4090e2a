package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// gridCommand creates the grid command.
func (c *CLI) gridCommand() *cobra.Command {
	var (
		gf        gridFlags
		structure bool
	)

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print a blank grid",
		Long: `Print a blank grid, one fill character per cell.

With --structure, print the weights of every cell's outgoing edges instead,
one "index | weights" line per cell. Sealed cells list no weights.`,
		Example: `  pathpane grid -W 5 -H 3
  pathpane grid -W 3 -H 3 --seal 4 --structure`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := gf.build(c.Config.Grid)
			if err != nil {
				return err
			}
			if structure {
				fmt.Fprintln(cmd.OutOrStdout(), g.Structure())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), g.String())
			return nil
		},
	}

	gf.register(cmd)
	cmd.Flags().BoolVar(&structure, "structure", false, "print edges and weights instead of cells")
	return cmd
}
