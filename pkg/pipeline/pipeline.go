// Package pipeline provides the load → filter → layout → render pipeline of
// synteny.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Load: read alignment data, display filters and configuration
//  2. Filter: choose the visible chromosomes and links (inside the layout engines)
//  3. Layout: compute linear or circular coordinates
//  4. Render: write SVG, PNG, PDF or JSON
//
// Each stage can be run on its own or as part of [Runner.Execute].
//
// # Usage
//
//	runner := pipeline.NewRunner(nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    DataPath: "data.json",
//	    Layout:   "circular",
//	    Formats:  []string{"svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/synteny/pkg/config"
	"github.com/matzehuels/synteny/pkg/errors"
	"github.com/matzehuels/synteny/pkg/layout"
)

// =============================================================================
// Default Values
// =============================================================================

// DefaultScale is the default PNG scale factor.
const DefaultScale = 2.0

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ValidLayouts is the set of supported layouts.
var ValidLayouts = map[string]bool{
	config.LayoutLinear:   true,
	config.LayoutCircular: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Load options
	DataPath    string `json:"data_path"`
	FiltersPath string `json:"filters_path,omitempty"`
	ConfigPath  string `json:"config_path,omitempty"`

	// Sets are key=value overrides applied on top of the configuration
	// with [config.Set].
	Sets []string `json:"sets,omitempty"`

	// Layout overrides the configured layout when set.
	Layout string `json:"layout,omitempty"`
	// Refresh recomputes the layout even when it is cached.
	Refresh bool `json:"refresh,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Scale   float64  `json:"scale,omitempty"`
	Hover   bool     `json:"hover,omitempty"`
	NoTicks bool     `json:"no_ticks,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies the run in logs and JSON exports.
	RunID string

	// Snapshot is the loaded data, filters and configuration.
	Snapshot layout.Snapshot

	// Layout holds the computed coordinates.
	Layout layout.Result

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Chromosomes int
	Links       int
	LoadTime    time.Duration
	LayoutTime  time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateLayout checks that a layout name is valid.
func ValidateLayout(name string) error {
	if !ValidLayouts[name] {
		return errors.New(errors.ErrCodeInvalidLayout, "invalid layout: %q (must be one of: linear, circular)", name)
	}
	return nil
}

// ParseSet splits a key=value override.
func ParseSet(s string) (key, value string, err error) {
	key, value, ok := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", "", errors.New(errors.ErrCodeInvalidInput, "invalid override %q (want key=value)", s)
	}
	return key, value, nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateForLoad checks required fields for loading.
func (o *Options) ValidateForLoad() error {
	if o.DataPath == "" {
		return errors.New(errors.ErrCodeEmptyValue, "data path is required")
	}
	for _, s := range o.Sets {
		if _, _, err := ParseSet(s); err != nil {
			return err
		}
	}
	if o.Layout != "" {
		if err := ValidateLayout(o.Layout); err != nil {
			return err
		}
	}
	o.setLoggerDefault()
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	o.setLoggerDefault()
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeTooSmall, "scale must be > 0, got %v", o.Scale)
	}
	return ValidateFormats(o.Formats)
}

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. Calling it more than once has no further effect.
func (o *Options) ValidateAndSetDefaults() error {
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	return nil
}

func (o *Options) setLoggerDefault() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// String summarizes the options for log lines.
func (o Options) String() string {
	return fmt.Sprintf("data=%s layout=%s formats=%s", o.DataPath, o.Layout, strings.Join(o.Formats, ","))
}
