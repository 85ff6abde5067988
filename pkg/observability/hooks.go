// Package observability reports what the chart pipeline does.
//
// Libraries emit events through three hook sets: [Pipeline] (load, rank,
// render), [Cache] (artifact cache lookups) and [HTTP] (remote table
// fetches). Every set defaults to a no-op. The CLI installs [LogHooks] at
// start-up so the events show up in debug logs:
//
//	observability.NewLogHooks(logger).Install()
//
// Libraries call the current hooks at the event site:
//
//	observability.Pipeline().OnLoadStart(ctx, location)
//	table, err := load(ctx, location)
//	observability.Pipeline().OnLoadComplete(ctx, location, table.Len(), time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the chart pipeline.
type PipelineHooks interface {
	// Load events
	OnLoadStart(ctx context.Context, location string)
	OnLoadComplete(ctx context.Context, location string, entries int, duration time.Duration, err error)

	// Rank events
	OnRankComplete(ctx context.Context, entries, limit, ranked int, duration time.Duration)

	// Render events
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from HTTP client operations (remote table fetches).
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request.
	OnRequest(ctx context.Context, method, host, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError records an HTTP error (network failure, timeout).
	OnError(ctx context.Context, method, host, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLoadStart(context.Context, string)                               {}
func (NoopPipelineHooks) OnLoadComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnRankComplete(context.Context, int, int, int, time.Duration)      {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                           {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error)  {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// registry holds the installed hooks. Nil setters leave a slot unchanged.
type registry struct {
	mu       sync.RWMutex
	pipeline PipelineHooks
	cache    CacheHooks
	http     HTTPHooks
}

var hooks = newRegistry()

func newRegistry() *registry {
	return &registry{
		pipeline: NoopPipelineHooks{},
		cache:    NoopCacheHooks{},
		http:     NoopHTTPHooks{},
	}
}

func (r *registry) update(fn func(*registry)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(r)
}

// SetPipelineHooks installs h for load, rank and render events.
func SetPipelineHooks(h PipelineHooks) {
	if h != nil {
		hooks.update(func(r *registry) { r.pipeline = h })
	}
}

// SetCacheHooks installs h for artifact cache events.
func SetCacheHooks(h CacheHooks) {
	if h != nil {
		hooks.update(func(r *registry) { r.cache = h })
	}
}

// SetHTTPHooks installs h for remote fetch events.
func SetHTTPHooks(h HTTPHooks) {
	if h != nil {
		hooks.update(func(r *registry) { r.http = h })
	}
}

// Pipeline returns the installed pipeline hooks.
func Pipeline() PipelineHooks {
	hooks.mu.RLock()
	defer hooks.mu.RUnlock()
	return hooks.pipeline
}

// Cache returns the installed cache hooks.
func Cache() CacheHooks {
	hooks.mu.RLock()
	defer hooks.mu.RUnlock()
	return hooks.cache
}

// HTTP returns the installed HTTP hooks.
func HTTP() HTTPHooks {
	hooks.mu.RLock()
	defer hooks.mu.RUnlock()
	return hooks.http
}

// Reset restores the no-op hooks. Tests that install hooks call it in cleanup.
func Reset() {
	hooks.update(func(r *registry) {
		r.pipeline = NoopPipelineHooks{}
		r.cache = NoopCacheHooks{}
		r.http = NoopHTTPHooks{}
	})
}
