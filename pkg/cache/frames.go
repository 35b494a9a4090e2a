package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/matzehuels/pathpane/pkg/observability"
)

const framesKeyType = "frames"

// GetFrames loads a frame set stored by [SetFrames].
// Undecodable entries are deleted and reported as [ErrCorrupt].
func GetFrames(ctx context.Context, c Cache, key string) ([]string, bool, error) {
	data, ok, err := c.Get(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		observability.Cache().OnCacheMiss(ctx, framesKeyType)
		return nil, false, nil
	}

	var frames []string
	if err := json.Unmarshal(data, &frames); err != nil {
		_ = c.Delete(ctx, key)
		return nil, false, fmt.Errorf("%w: %s: %v", ErrCorrupt, key, err)
	}
	observability.Cache().OnCacheHit(ctx, framesKeyType)
	return frames, true, nil
}

// SetFrames stores frames under key.
func SetFrames(ctx context.Context, c Cache, key string, frames []string, ttl time.Duration) error {
	data, err := json.Marshal(frames)
	if err != nil {
		return err
	}
	if err := c.Set(ctx, key, data, ttl); err != nil {
		return err
	}
	observability.Cache().OnCacheSet(ctx, framesKeyType, len(data))
	return nil
}

// Frames returns the cached frame set for key, or calls render and stores
// its result. Cache failures are not fatal: render still runs.
func Frames(ctx context.Context, c Cache, key string, ttl time.Duration, render func() ([]string, error)) ([]string, error) {
	if frames, ok, err := GetFrames(ctx, c, key); err == nil && ok {
		return frames, nil
	}
	frames, err := render()
	if err != nil {
		return nil, err
	}
	_ = SetFrames(ctx, c, key, frames, ttl)
	return frames, nil
}
