// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about loading, filtering, layout and rendering.
//
// # Architecture
//
// Hook interfaces come with no-op default implementations. The pipeline
// always calls the registered hooks; registering nothing costs nothing.
// [LogHooks] forwards every event to a charmbracelet logger at debug level.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(observability.NewLogHooks(logger))
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnLayoutStart(ctx, "linear", len(data.Chromosomes))
//	// ... compute layout ...
//	observability.Pipeline().OnLayoutComplete(ctx, "linear", duration, err)
package observability

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the synteny pipeline.
type PipelineHooks interface {
	// Load events
	OnLoadStart(ctx context.Context, path string)
	OnLoadComplete(ctx context.Context, path string, chromosomes, links int, duration time.Duration, err error)

	// Filter events
	OnFilterComplete(ctx context.Context, stages []string, chromosomes, links int)

	// Layout events
	OnLayoutStart(ctx context.Context, layout string, chromosomes int)
	OnLayoutComplete(ctx context.Context, layout string, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementation
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLoadStart(context.Context, string) {}
func (NoopPipelineHooks) OnLoadComplete(context.Context, string, int, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnFilterComplete(context.Context, []string, int, int)             {}
func (NoopPipelineHooks) OnLayoutStart(context.Context, string, int)                       {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, string, time.Duration, error)   {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

// =============================================================================
// Logging Implementation
// =============================================================================

// LogHooks writes pipeline events to a logger at debug level.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns hooks that log through l.
func NewLogHooks(l *log.Logger) *LogHooks { return &LogHooks{Logger: l} }

func (h *LogHooks) OnLoadStart(_ context.Context, path string) {
	h.Logger.Debug("load started", "path", path)
}

func (h *LogHooks) OnLoadComplete(_ context.Context, path string, chromosomes, links int, d time.Duration, err error) {
	h.Logger.Debug("load finished", "path", path, "chromosomes", chromosomes, "links", links, "duration", d, "err", err)
}

func (h *LogHooks) OnFilterComplete(_ context.Context, stages []string, chromosomes, links int) {
	h.Logger.Debug("filters applied", "stages", stages, "chromosomes", chromosomes, "links", links)
}

func (h *LogHooks) OnLayoutStart(_ context.Context, layout string, chromosomes int) {
	h.Logger.Debug("layout started", "layout", layout, "chromosomes", chromosomes)
}

func (h *LogHooks) OnLayoutComplete(_ context.Context, layout string, d time.Duration, err error) {
	h.Logger.Debug("layout finished", "layout", layout, "duration", d, "err", err)
}

func (h *LogHooks) OnRenderStart(_ context.Context, formats []string) {
	h.Logger.Debug("render started", "formats", formats)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	h.Logger.Debug("render finished", "formats", formats, "duration", d, "err", err)
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
