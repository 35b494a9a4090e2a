package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/pathpane/pkg/buildinfo"
	"github.com/matzehuels/pathpane/pkg/observability"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// Before any subcommand runs, the root applies --verbose, loads the
// configuration, installs logging hooks and attaches the logger to the
// command context.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "pathpane searches and draws weighted grids and box diagrams",
		Long:          `pathpane builds weighted grid graphs, finds paths through them with Dijkstra or A*, and renders grids, search animations and box diagrams as plain text.`,
		Version:       buildinfo.Get().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			if err := c.loadConfig(); err != nil {
				return err
			}
			hooks := logHooks{logger: c.Logger}
			observability.SetSearchHooks(hooks)
			observability.SetRenderHooks(hooks)
			observability.SetCacheHooks(hooks)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/pathpane/config.toml)")

	root.AddCommand(c.gridCommand())
	root.AddCommand(c.pathCommand())
	root.AddCommand(c.animateCommand())
	root.AddCommand(c.diagramCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
