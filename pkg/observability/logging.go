package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks reports every event to a logger at debug level, errors at warn.
// It implements PipelineHooks, CacheHooks and HTTPHooks.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns hooks writing to l.
func NewLogHooks(l *log.Logger) *LogHooks {
	return &LogHooks{Logger: l}
}

// Install registers h for all hook categories.
func (h *LogHooks) Install() {
	SetPipelineHooks(h)
	SetCacheHooks(h)
	SetHTTPHooks(h)
}

func (h *LogHooks) OnLoadStart(_ context.Context, location string) {
	h.Logger.Debug("load started", "source", location)
}

func (h *LogHooks) OnLoadComplete(_ context.Context, location string, entries int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Warn("load failed", "source", location, "error", err)
		return
	}
	h.Logger.Debug("load complete", "source", location, "entries", entries, "took", d.Round(time.Microsecond))
}

func (h *LogHooks) OnRankComplete(_ context.Context, entries, limit, ranked int, d time.Duration) {
	h.Logger.Debug("ranked", "entries", entries, "limit", limit, "kept", ranked, "took", d.Round(time.Microsecond))
}

func (h *LogHooks) OnRenderStart(_ context.Context, formats []string) {
	h.Logger.Debug("render started", "formats", formats)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	if err != nil {
		h.Logger.Warn("render failed", "formats", formats, "error", err)
		return
	}
	h.Logger.Debug("render complete", "formats", formats, "took", d.Round(time.Microsecond))
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.Logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.Logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.Logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, host, path string) {
	h.Logger.Debug("http request", "method", method, "host", host, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.Logger.Debug("http response", "method", method, "host", host, "path", path, "status", status, "took", d.Round(time.Millisecond))
}

func (h *LogHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.Logger.Warn("http error", "method", method, "host", host, "path", path, "error", err)
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
	_ HTTPHooks     = (*LogHooks)(nil)
)
