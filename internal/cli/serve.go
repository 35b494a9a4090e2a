package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/pathpane/pkg/render/connector"
	"github.com/matzehuels/pathpane/pkg/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API. Request defaults (grid size, fill, markers and
diagram layout) come from the configuration file; animation frame sets are
stored in the configured cache.

Routes:
  GET  /healthz
  GET  /grid      ?w=&h=&fill=&seal=&weight=&structure=
  GET  /path      ?algo=&from=&to= plus grid parameters
  GET  /animate   ?from=&to= plus grid parameters
  POST /diagram   {"nodes": [...], "edges": [[0,1]]}`,
		Example: `  pathpane serve --addr :9000
  curl 'localhost:9000/path?w=5&h=5&seal=6,7,8'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if addr == "" {
				addr = c.Config.Server.Addr
			}

			cc, err := c.newCache(ctx, noCache)
			if err != nil {
				return err
			}
			defer cc.Close()

			opts := server.DefaultOptions()
			opts.Width = c.Config.Grid.Width
			opts.Height = c.Config.Grid.Height
			opts.Fill = c.Config.Grid.Fill
			opts.Markers = c.Config.Markers
			opts.MaxAnimateCells = c.Config.Server.MaxAnimateCells
			opts.Diagram = connector.Settings{
				Gap:            c.Config.Diagram.Gap,
				ConnectionSize: c.Config.Diagram.ConnectionSize,
				Style:          connector.General,
			}
			if c.Config.Diagram.Arrow {
				opts.Diagram.Style = connector.Arrow
			}
			opts.Cache = cc
			opts.TTL = c.Config.Cache.TTL.Duration

			c.Logger.Debug("frame cache", "backend", c.Config.Cache.Backend, "ttl", opts.TTL)
			return server.New(c.Logger, opts).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "serve without a frame cache")
	return cmd
}
