package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/pathpane/pkg/config"
	"github.com/matzehuels/pathpane/pkg/observability"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")
	dir, err := (&CLI{Config: config.Default()}).cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join("/tmp/xdg", "pathpane"); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCacheDirHome(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")
	dir, err := (&CLI{Config: config.Default()}).cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, ".cache", "pathpane"); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCLICacheDirFromConfig(t *testing.T) {
	c := &CLI{Config: config.Default()}
	c.Config.Cache.Dir = "/srv/frames"
	dir, err := c.cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if dir != "/srv/frames" {
		t.Errorf("cacheDir() = %q, want /srv/frames", dir)
	}
}

func TestCachePathCommand(t *testing.T) {
	got, err := execute(t, "cache", "path")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	want := filepath.Join(os.Getenv("XDG_CACHE_HOME"), "pathpane") + "\n"
	if got != want {
		t.Errorf("cache path = %q, want %q", got, want)
	}
}

func TestCacheClearCommand(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cacheHome := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cacheHome)
	t.Cleanup(observability.Reset)

	dir := filepath.Join(cacheHome, "pathpane")
	if err := os.MkdirAll(filepath.Join(dir, "ab"), 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"ab/one.json", "two.json"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if n := countEntries(dir); n != 2 {
		t.Fatalf("countEntries = %d, want 2", n)
	}

	root := New(os.Stderr, LogInfo).RootCommand()
	root.SetArgs([]string{"cache", "clear"})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if n := countEntries(dir); n != 0 {
		t.Errorf("entries after clear = %d, want 0", n)
	}
}

func TestCountEntriesMissingDir(t *testing.T) {
	if n := countEntries(filepath.Join(t.TempDir(), "absent")); n != 0 {
		t.Errorf("countEntries = %d, want 0", n)
	}
}
