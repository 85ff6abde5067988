package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/colorbars/pkg/cache"
	"github.com/matzehuels/colorbars/pkg/chart"
	"github.com/matzehuels/colorbars/pkg/freq"
	"github.com/matzehuels/colorbars/pkg/observability"
	"github.com/matzehuels/colorbars/pkg/source"
)

// keyTypeArtifact labels artifact keys in cache hooks.
const keyTypeArtifact = "artifact"

// Runner encapsulates pipeline execution with caching.
// Both CLI and server use it so caching logic lives in one place.
//
// The Runner holds no per-run state. Multiple goroutines can safely use the
// same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	Loader *source.Loader
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		Loader: source.NewLoader(),
	}
}

// Execute runs the complete load → rank → draw → render pipeline.
// The source is fetched exactly once.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	loadStart := time.Now()
	table, err := r.Load(ctx, opts.Source)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	loadTime := time.Since(loadStart)

	r.Logger.Info("loaded table",
		"source", source.Describe(opts.Source),
		"entries", table.Len(),
		"duration", loadTime)

	result, err := r.RenderTable(ctx, table, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.LoadTime = loadTime
	return result, nil
}

// Load fetches and decodes the table at location, reporting to the pipeline hooks.
func (r *Runner) Load(ctx context.Context, location string) (*freq.Table, error) {
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, location)

	start := time.Now()
	loader := r.Loader
	if loader == nil {
		loader = source.NewLoader()
	}
	table, err := loader.Load(ctx, location)

	entries := 0
	if table != nil {
		entries = table.Len()
	}
	hooks.OnLoadComplete(ctx, location, entries, time.Since(start), err)
	return table, err
}

// RenderTable ranks, draws and renders an in-memory table.
func (r *Runner) RenderTable(ctx context.Context, table *freq.Table, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if table == nil {
		table = freq.New()
	}

	result := &Result{
		RunID: uuid.New(),
		Table: table,
	}
	result.Stats.Entries = table.Len()

	data, err := table.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("hash table: %w", err)
	}
	result.TableHash = cache.Hash(data)

	rankStart := time.Now()
	ranked, frame := Draw(table, opts)
	result.Ranked = ranked
	result.Frame = frame
	result.Stats.RankTime = time.Since(rankStart)
	result.Stats.Bars = frame.RectCount()
	observability.Pipeline().OnRankComplete(ctx, table.Len(), opts.Limit, ranked.Len(), result.Stats.RankTime)

	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, frame, result.TableHash, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered chart",
		"run", result.RunID,
		"bars", result.Stats.Bars,
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// RenderWithCacheInfo renders f in every requested format and reports whether
// all artifacts came from the cache. tableHash keys the cache entries.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, f *chart.Frame, tableHash string, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	hooks := observability.Pipeline()
	cacheHooks := observability.Cache()
	useCache := !opts.NoCache && tableHash != ""

	if useCache {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(tableHash, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil {
				r.Logger.Warn("cache read failed", "format", format, "error", err)
			}
			if err != nil || !hit {
				cacheHooks.OnCacheMiss(ctx, keyTypeArtifact)
				break
			}
			cacheHooks.OnCacheHit(ctx, keyTypeArtifact)
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil // All artifacts from cache
		}
	}

	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	rendered, err := Render(f, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	if useCache {
		for format, data := range rendered {
			key := r.Keyer.ArtifactKey(tableHash, opts.ArtifactKeyOpts(format))
			if err := r.Cache.Set(ctx, key, data, opts.CacheTTL); err != nil {
				r.Logger.Warn("cache write failed", "format", format, "error", err)
				continue
			}
			cacheHooks.OnCacheSet(ctx, keyTypeArtifact, len(data))
		}
	}

	return rendered, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
