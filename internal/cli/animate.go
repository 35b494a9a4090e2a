package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pathpane/pkg/animate"
	"github.com/matzehuels/pathpane/pkg/cache"
	"github.com/matzehuels/pathpane/pkg/config"
	"github.com/matzehuels/pathpane/pkg/grid"
)

// animateCommand creates the animate command.
func (c *CLI) animateCommand() *cobra.Command {
	var (
		gf      gridFlags
		ef      endpointFlags
		mf      markerFlags
		plain   bool
		delay   time.Duration
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "animate",
		Short: "Replay a Dijkstra search frame by frame",
		Long: `Replay a Dijkstra search. Each frame paints one settled cell and its
neighbours as visited; the closing frames draw the path from the target
back to the source.

On a terminal the frames play in an interactive viewer. With --plain, or
when output is redirected, every frame is printed followed by a blank line.

Rendered frame sets are cached (see "pathpane cache").`,
		Example: `  pathpane animate -W 8 -H 6 --seal 10,18,26
  pathpane animate --plain --delay 0s > frames.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			g, err := gf.build(c.Config.Grid)
			if err != nil {
				return err
			}
			from, to := ef.resolve(g)
			markers := mf.markers(c.Config.Markers)

			cc, err := c.newCache(ctx, noCache)
			if err != nil {
				return err
			}
			defer cc.Close()

			opts, err := gf.keyOpts(c.Config.Grid, from, to, markers)
			if err != nil {
				return err
			}
			frames, err := renderFrames(ctx, cc, c.Config.Cache.TTL.Duration, opts, g, markers)
			if err != nil {
				return err
			}
			logger.Debug("frames ready", "count", len(frames))

			if delay == 0 {
				delay = c.Config.Animation.Delay.Duration
			}
			player := animate.NewPlayer(frames, delay)

			out := cmd.OutOrStdout()
			if !plain && isTerminal(out) {
				title := fmt.Sprintf("dijkstra %d → %d", from, to)
				return runPlayer(ctx, out, NewPlayerModel(title, player, markers, g.Fill()))
			}
			return player.Play(ctx, func(frame string) error {
				_, err := fmt.Fprintf(out, "%s\n\n", frame)
				return err
			})
		},
	}

	gf.register(cmd)
	ef.register(cmd)
	mf.register(cmd)
	cmd.Flags().BoolVar(&plain, "plain", false, "print frames instead of playing them")
	cmd.Flags().DurationVar(&delay, "delay", 0, "pause between frames (default from config)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "render frames without the cache")
	return cmd
}

// keyOpts describes the grid for frame caching.
func (f *gridFlags) keyOpts(cfg config.Grid, from, to int, m animate.Markers) (cache.FramesKeyOpts, error) {
	sealed, err := f.sealed()
	if err != nil {
		return cache.FramesKeyOpts{}, err
	}
	opts := cache.FramesKeyOpts{
		Algorithm: string(animate.Dijkstra),
		Width:     f.width,
		Height:    f.height,
		Fill:      f.fill,
		Source:    from,
		Target:    to,
		Visited:   m.Visited,
		Path:      m.Path,
		Sealed:    sealed,
		Weights:   f.weights,
	}
	if cfg.Weight != grid.DefaultWeight {
		opts.Base = cfg.Weight
	}
	return opts, nil
}

// renderFrames returns cached frames for opts, rendering them from g on a miss.
func renderFrames(ctx context.Context, c cache.Cache, ttl time.Duration, opts cache.FramesKeyOpts, g *grid.Grid, m animate.Markers) ([]string, error) {
	key := cache.NewDefaultKeyer().FramesKey(opts)
	return cache.Frames(ctx, c, key, ttl, func() ([]string, error) {
		return animate.Frames(g, opts.Source, opts.Target, m)
	})
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
