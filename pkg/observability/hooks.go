// Package observability lets an application watch searches, renders, cache
// traffic and HTTP requests.
//
// The graph engine and renderers are synchronous libraries that neither log
// nor depend on a metrics backend. Instead they report events through hooks
// that the application registers at startup. The CLI installs hooks that
// write debug logs; tests install recorders.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSearchHooks(&mySearchHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Search().OnSearchStart("dijkstra", source, target, g.Len())
//	// ... search ...
//	observability.Search().OnSearchComplete("dijkstra", expanded, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// SearchHooks receives events from the pathfinding engine. Search runs
// without a context, so these hooks take none.
type SearchHooks interface {
	// OnSearchStart is called before a search expands its first node.
	OnSearchStart(algorithm string, source, target, nodes int)
	// OnSearchComplete is called when a search returns. expanded counts the
	// nodes taken off the frontier.
	OnSearchComplete(algorithm string, expanded int, duration time.Duration, err error)
}

// RenderHooks receives events from renderers and the animator. kind is
// "grid", "diagram" or "frames"; units counts the frames or rows produced.
type RenderHooks interface {
	OnRender(kind string, units int, duration time.Duration, err error)
}

// CacheHooks receives events from the frame cache, keyed by entry type.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// HTTPHooks receives one event when a request arrives and one when its
// response is written.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, path string)
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

type (
	NoopSearchHooks struct{}
	NoopRenderHooks struct{}
	NoopCacheHooks  struct{}
	NoopHTTPHooks   struct{}
)

func (NoopSearchHooks) OnSearchStart(string, int, int, int)                {}
func (NoopSearchHooks) OnSearchComplete(string, int, time.Duration, error) {}

func (NoopRenderHooks) OnRender(string, int, time.Duration, error) {}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// slot holds the registered implementation of one hook interface and
// falls back to its no-op value.
type slot[H any] struct {
	mu   sync.RWMutex
	cur  H
	noop H
}

func newSlot[H any](noop H) *slot[H] { return &slot[H]{cur: noop, noop: noop} }

func (s *slot[H]) get() H {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

// set ignores a nil hook.
func (s *slot[H]) set(h H) {
	if any(h) == nil {
		return
	}
	s.mu.Lock()
	s.cur = h
	s.mu.Unlock()
}

func (s *slot[H]) reset() {
	s.mu.Lock()
	s.cur = s.noop
	s.mu.Unlock()
}

var (
	searchSlot = newSlot[SearchHooks](NoopSearchHooks{})
	renderSlot = newSlot[RenderHooks](NoopRenderHooks{})
	cacheSlot  = newSlot[CacheHooks](NoopCacheHooks{})
	httpSlot   = newSlot[HTTPHooks](NoopHTTPHooks{})
)

// SetSearchHooks, SetRenderHooks, SetCacheHooks and SetHTTPHooks register
// hooks, normally once at startup. A nil argument is ignored.
func SetSearchHooks(h SearchHooks) { searchSlot.set(h) }
func SetRenderHooks(h RenderHooks) { renderSlot.set(h) }
func SetCacheHooks(h CacheHooks)   { cacheSlot.set(h) }
func SetHTTPHooks(h HTTPHooks)     { httpSlot.set(h) }

func Search() SearchHooks { return searchSlot.get() }
func Render() RenderHooks { return renderSlot.get() }
func Cache() CacheHooks   { return cacheSlot.get() }
func HTTP() HTTPHooks     { return httpSlot.get() }

// Reset restores every hook to its no-op default.
func Reset() {
	searchSlot.reset()
	renderSlot.reset()
	cacheSlot.reset()
	httpSlot.reset()
}
