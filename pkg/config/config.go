// Package config loads pathpane settings from a TOML file.
//
// Every field has a default (see [Default]); a file only needs the keys it
// changes. Command-line flags override file values.
//
//	[grid]
//	width = 20
//	height = 10
//
//	[markers]
//	visited = "*"
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/pathpane/pkg/animate"
	"github.com/matzehuels/pathpane/pkg/errors"
	"github.com/matzehuels/pathpane/pkg/grid"
)

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config is the full configuration file.
type Config struct {
	Grid      Grid            `toml:"grid"`
	Markers   animate.Markers `toml:"markers"`
	Diagram   Diagram         `toml:"diagram"`
	Animation Animation       `toml:"animation"`
	Cache     Cache           `toml:"cache"`
	Server    Server          `toml:"server"`
}

// Grid holds the default grid shape.
type Grid struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Fill   string `toml:"fill"`
	Weight int    `toml:"weight"`
}

// Diagram holds box diagram layout settings.
type Diagram struct {
	Gap            int  `toml:"gap"`
	ConnectionSize int  `toml:"connection_size"`
	Arrow          bool `toml:"arrow"`
}

// Animation holds playback settings.
type Animation struct {
	Delay Duration `toml:"delay"`
}

// Cache selects and configures the frame cache.
type Cache struct {
	Backend   string   `toml:"backend"`
	Dir       string   `toml:"dir"`
	RedisAddr string   `toml:"redis_addr"`
	TTL       Duration `toml:"ttl"`
}

// Server holds HTTP server settings.
type Server struct {
	Addr            string `toml:"addr"`
	MaxAnimateCells int    `toml:"max_animate_cells"`
}

// Duration is a time.Duration written as a string such as "80ms".
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Grid:      Grid{Width: 10, Height: 10, Fill: ".", Weight: grid.DefaultWeight},
		Markers:   animate.DefaultMarkers(),
		Diagram:   Diagram{Gap: 1, ConnectionSize: 1},
		Animation: Animation{Delay: Duration{80 * time.Millisecond}},
		Cache:     Cache{Backend: BackendFile, RedisAddr: "localhost:6379", TTL: Duration{24 * time.Hour}},
		Server:    Server{Addr: ":8080", MaxAnimateCells: 64 * 64},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/pathpane/config.toml, or the
// platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "pathpane", "config.toml"), nil
}

// Load reads path over the defaults. A missing file at the default location
// is not an error; pass explicit=true when the user named the file.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) && !explicit {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidInput, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges and markers.
func (c Config) Validate() error {
	if err := errors.ValidateDimensions(c.Grid.Width, c.Grid.Height); err != nil {
		return err
	}
	if err := errors.ValidateMarker(c.Grid.Fill); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "grid fill")
	}
	if c.Grid.Weight < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "grid weight must not be negative")
	}
	if err := c.Markers.Validate(); err != nil {
		return err
	}
	if c.Diagram.Gap < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "diagram gap must not be negative")
	}
	if c.Diagram.ConnectionSize < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "diagram connection_size must be at least 1")
	}
	if c.Server.MaxAnimateCells < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "server max_animate_cells must not be negative")
	}
	switch c.Cache.Backend {
	case BackendFile, BackendRedis, BackendNone:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown cache backend %q (want file, redis or none)", c.Cache.Backend)
	}
	return nil
}
