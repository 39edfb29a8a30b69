package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/synteny/pkg/cache"
	"github.com/matzehuels/synteny/pkg/filter"
	"github.com/matzehuels/synteny/pkg/layout"
	"github.com/matzehuels/synteny/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute runs the complete load → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		RunID:     uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}
	logger := r.Logger.With("run_id", result.RunID)

	// Stage 1: Load
	loadStart := time.Now()
	s, err := r.Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Snapshot = s
	result.Stats.LoadTime = time.Since(loadStart)

	logger.Info("loaded data",
		"chromosomes", len(s.Data.Chromosomes),
		"links", len(s.Data.Links),
		"duration", result.Stats.LoadTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	res, hit, err := r.LayoutWithCacheInfo(ctx, s, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = res
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.Chromosomes, result.Stats.Links = Counts(res)
	result.CacheInfo.LayoutHit = hit

	logger.Info("computed layout",
		"layout", res.Layout,
		"karyos", result.Stats.Chromosomes,
		"links", result.Stats.Links,
		"cached", hit,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, err := r.Render(ctx, res, s, result.RunID, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads the snapshot described by opts and reports it to the
// pipeline hooks.
func (r *Runner) Load(ctx context.Context, opts Options) (layout.Snapshot, error) {
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, opts.DataPath)

	start := time.Now()
	s, err := Load(opts)
	hooks.OnLoadComplete(ctx, opts.DataPath, len(s.Data.Chromosomes), len(s.Data.Links), time.Since(start), err)
	if err != nil {
		return layout.Snapshot{}, err
	}
	if chromosomes, links, err := filterCounts(s); err == nil {
		hooks.OnFilterComplete(ctx, s.Filters.Stages(), chromosomes, links)
	}
	return s, nil
}

// filterCounts runs both filter chains over s and counts what survives.
// Chain errors surface again from the layout stage.
func filterCounts(s layout.Snapshot) (chromosomes, links int, err error) {
	visible, err := filter.Chromosomes(s.Data, s.Filters, s.Config)
	if err != nil {
		return 0, 0, err
	}
	shown, err := filter.Links(s.Data, s.Filters, s.Config, visible)
	if err != nil {
		return 0, 0, err
	}
	return len(visible), len(shown), nil
}

// LayoutWithCacheInfo computes the layout of s and reports whether it came
// from the cache. Refresh in opts skips the lookup but still stores the
// fresh result.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, s layout.Snapshot, opts Options) (layout.Result, bool, error) {
	r.applyLogger(&opts)

	cacheKey, keyErr := cache.LayoutKey(s, s.Config.Layout)
	if keyErr != nil {
		opts.Logger.Debug("layout not cacheable", "error", keyErr)
	}

	if keyErr == nil && !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached layout.Result
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, true, nil
			}
			// If deserialization fails, fall through to recompute
		}
	}

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, s.Config.Layout, len(s.Data.Chromosomes))
	start := time.Now()
	res, err := Compute(s)
	hooks.OnLayoutComplete(ctx, s.Config.Layout, time.Since(start), err)
	if err != nil {
		return layout.Result{}, false, err
	}

	if keyErr == nil {
		if data, err := json.Marshal(res); err == nil {
			if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout); err != nil {
				opts.Logger.Warn("cache layout", "error", err)
			}
		}
	}
	return res, false, nil
}

// Layout is a convenience wrapper that calls LayoutWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Layout(ctx context.Context, s layout.Snapshot, opts Options) (layout.Result, error) {
	res, _, err := r.LayoutWithCacheInfo(ctx, s, opts)
	return res, err
}

// Render writes res in every requested format.
func (r *Runner) Render(ctx context.Context, res layout.Result, s layout.Snapshot, runID string, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	artifacts, err := Render(res, s, runID, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	return artifacts, err
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
