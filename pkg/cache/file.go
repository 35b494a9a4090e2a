package cache

import (
	"context"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileCache keeps one JSON file per entry below a directory. Entries are
// spread over 256 subdirectories named by the first byte of the key digest.
//
// Writes go through a temporary file and a rename, so concurrent readers
// never see a partial entry.
type FileCache struct {
	dir string
}

// NewFileCache creates dir if needed and returns a cache rooted there.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// DefaultDir returns the per-user cache directory for pathpane
// ($XDG_CACHE_HOME/pathpane on Linux).
func DefaultDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "pathpane"), nil
}

type fileEntry struct {
	Data    []byte    `json:"data"`
	Expires time.Time `json:"expires,omitzero"`
}

func (e fileEntry) expired(now time.Time) bool {
	return !e.Expires.IsZero() && now.After(e.Expires)
}

// Get returns the entry for key. Expired and unreadable entries are removed
// and reported as misses.
func (c *FileCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)
	e, err := readEntry(path)
	switch {
	case os.IsNotExist(err):
		return nil, false, nil
	case err != nil, e.expired(time.Now()):
		_ = os.Remove(path)
		return nil, false, nil
	}
	return e.Data, true, nil
}

// Set writes data under key. A ttl of 0 never expires.
func (c *FileCache) Set(_ context.Context, key string, data []byte, ttl time.Duration) error {
	e := fileEntry{Data: data}
	if ttl > 0 {
		e.Expires = time.Now().Add(ttl)
	}
	raw, err := json.Marshal(e)
	if err != nil {
		return err
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), tempPrefix+"*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Delete removes key if present.
func (c *FileCache) Delete(_ context.Context, key string) error {
	if err := os.Remove(c.path(key)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Dir returns the directory holding the entries.
func (c *FileCache) Dir() string { return c.dir }

// Clear removes every entry and leaves an empty directory behind.
func (c *FileCache) Clear() error {
	if err := os.RemoveAll(c.dir); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}

const (
	tempPrefix = ".tmp-"
	// staleTemp is how old a temp file must be before Prune treats it as
	// left behind by an interrupted Set.
	staleTemp = time.Hour
)

// Prune removes entries that expired before now, entries that cannot be
// read, and temp files older than an hour. It returns how many files it
// removed.
func (c *FileCache) Prune(now time.Time) (int, error) {
	removed := 0
	err := filepath.WalkDir(c.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if ok, err := prunable(path, d, now); err != nil || !ok {
			return err
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return err
		}
		removed++
		return nil
	})
	return removed, err
}

func prunable(path string, d fs.DirEntry, now time.Time) (bool, error) {
	switch {
	case strings.HasPrefix(d.Name(), tempPrefix):
		info, err := d.Info()
		if os.IsNotExist(err) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return now.Sub(info.ModTime()) >= staleTemp, nil
	case strings.HasSuffix(path, ".json"):
		e, err := readEntry(path)
		return err != nil || e.expired(now), nil
	default:
		return false, nil
	}
}

// Close is a no-op.
func (c *FileCache) Close() error { return nil }

func (c *FileCache) path(key string) string {
	sum := digest([]byte(key))
	return filepath.Join(c.dir, sum[:2], sum[2:]+".json")
}

func readEntry(path string) (fileEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fileEntry{}, err
	}
	var e fileEntry
	if err := json.Unmarshal(raw, &e); err != nil {
		return fileEntry{}, err
	}
	return e, nil
}

var _ Cache = (*FileCache)(nil)
