// Package cli implements the pathpane command-line interface.
//
// # Commands
//
//   - grid: print a blank grid or its edge weights
//   - path: search a grid and print the painted result
//   - animate: replay a traced Dijkstra search, interactively or as text
//   - diagram: draw labeled boxes and their connections
//   - dot: export a grid or diagram as Graphviz DOT or SVG
//   - serve: run the HTTP API
//   - cache: inspect and clear the frame cache
//
// # Configuration
//
// Defaults come from a TOML file ($XDG_CONFIG_HOME/pathpane/config.toml or
// --config). Flags left at their zero value fall back to the file.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Library
// packages report through observability hooks, which the CLI turns into
// debug log lines.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pathpane/pkg/cache"
	"github.com/matzehuels/pathpane/pkg/config"
	"github.com/matzehuels/pathpane/pkg/errors"
)

const appName = "pathpane"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath string
	verbose    bool
}

// New creates a CLI with the built-in configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// loadConfig reads the --config file, or the default location if the flag
// was not given.
func (c *CLI) loadConfig() error {
	path, explicit := c.configPath, c.configPath != ""
	if !explicit {
		p, err := config.DefaultPath()
		if err != nil {
			return nil
		}
		path = p
	}
	cfg, err := config.Load(path, explicit)
	if err != nil {
		return err
	}
	c.Config = cfg
	c.Logger.Debug("config loaded", "path", path)
	return nil
}

// newCache opens the configured cache backend.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	switch c.Config.Cache.Backend {
	case config.BackendNone:
		return cache.NewNullCache(), nil
	case config.BackendRedis:
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:   c.Config.Cache.RedisAddr,
			Prefix: appName + ":",
		})
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeNetwork, err, "connect to cache")
		}
		return rc, nil
	default:
		dir, err := c.cacheDir()
		if err != nil {
			c.Logger.Warn("no cache directory, caching disabled", "err", err)
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	}
}

// cacheDir returns the configured cache directory, or the XDG default
// (~/.cache/pathpane/).
func (c *CLI) cacheDir() (string, error) {
	if c.Config.Cache.Dir != "" {
		return c.Config.Cache.Dir, nil
	}
	return cache.DefaultDir()
}
