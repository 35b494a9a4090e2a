package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pathpane/pkg/animate"
)

// pathCommand creates the path command.
func (c *CLI) pathCommand() *cobra.Command {
	var (
		gf   gridFlags
		ef   endpointFlags
		mf   markerFlags
		algo string
	)

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Find the cheapest path through a grid",
		Long: `Find the cheapest path between two cells and print the grid with the
cells the search settled painted as visited and the path painted on top.

A* (the default) uses the Manhattan distance as its heuristic. Dijkstra
settles cells in order of distance and usually visits more of the grid.`,
		Example: `  pathpane path -W 5 -H 5 --seal 6,7,8
  pathpane path --from 0 --to 24 --algo dijkstra --weight 12:0:50`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := animate.ParseAlgorithm(algo)
			if err != nil {
				return err
			}
			g, err := gf.build(c.Config.Grid)
			if err != nil {
				return err
			}
			from, to := ef.resolve(g)

			sol, err := animate.Solve(g, from, to, a, mf.markers(c.Config.Markers))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, sol.Text)
			printStats(out, false,
				fmt.Sprintf("cost %d", sol.Cost),
				fmt.Sprintf("%d cells", len(sol.Path)),
				fmt.Sprintf("%d visited", sol.Visited),
				string(a),
			)
			return nil
		},
	}

	gf.register(cmd)
	ef.register(cmd)
	mf.register(cmd)
	cmd.Flags().StringVar(&algo, "algo", string(animate.AStar), "search algorithm: astar or dijkstra")
	return cmd
}
