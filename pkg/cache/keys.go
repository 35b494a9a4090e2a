package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"slices"
)

// FramesKeyOpts lists everything that changes a rendered frame set.
type FramesKeyOpts struct {
	Algorithm string   `json:"algorithm"`
	Width     int      `json:"width"`
	Height    int      `json:"height"`
	Fill      string   `json:"fill"`
	Source    int      `json:"source"`
	Target    int      `json:"target"`
	Visited   string   `json:"visited"`
	Path      string   `json:"path"`
	Sealed    []int    `json:"sealed,omitempty"`
	Weights   []string `json:"weights,omitempty"` // "node:pos:weight" edits
	Base      int      `json:"base,omitempty"`    // uniform weight before edits, 0 for the default
}

// Keyer derives cache keys.
type Keyer interface {
	FramesKey(opts FramesKeyOpts) string
}

// DefaultKeyer hashes the options under a "frames" prefix.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// FramesKey returns a key that is stable under reordering of sealed cells.
func (DefaultKeyer) FramesKey(opts FramesKeyOpts) string {
	opts.Sealed = slices.Clone(opts.Sealed)
	slices.Sort(opts.Sealed)
	return hashKey("frames", opts)
}

// ScopedKeyer wraps a Keyer with a prefix so that separate frontends
// sharing one backend do not collide.
//
//	serverKeyer := NewScopedKeyer(NewDefaultKeyer(), "server:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// A nil inner keyer means [DefaultKeyer].
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// FramesKey returns the prefixed key.
func (k *ScopedKeyer) FramesKey(opts FramesKeyOpts) string {
	return k.prefix + k.inner.FramesKey(opts)
}

// hashKey returns prefix:sha256(json(parts)).
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return prefix + ":" + digest(data)
}

// digest is the hex SHA-256 of data.
func digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
