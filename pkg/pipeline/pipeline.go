// Package pipeline runs the colorbars chart pipeline.
//
// A run has three stages:
//
//  1. Load: fetch the frequency table once from a file, stdin or URL
//  2. Rank: keep the top Limit entries in descending order
//  3. Render: draw the frame and encode it in each requested format
//
// The CLI and the HTTP server share this package so both produce the same
// artifacts for the same options.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Source:  "colors.json",
//	    Formats: []string{"svg", "png"},
//	})
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts["svg"]
//
// When the table is already in memory, skip loading:
//
//	result, err := runner.RenderTable(ctx, table, opts)
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/colorbars/pkg/cache"
	"github.com/matzehuels/colorbars/pkg/chart"
	"github.com/matzehuels/colorbars/pkg/errors"
	"github.com/matzehuels/colorbars/pkg/freq"
	"github.com/matzehuels/colorbars/pkg/palette"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultLimit is the number of bars drawn.
	DefaultLimit = freq.DefaultLimit

	// DefaultWidth is the default surface width in pixels.
	DefaultWidth = chart.DefaultWidth

	// DefaultHeight is the default surface height in pixels.
	DefaultHeight = chart.DefaultHeight

	// DefaultCacheTTL is how long rendered artifacts stay cached.
	DefaultCacheTTL = 24 * time.Hour
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatHTML = "html"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatHTML: true,
	FormatJSON: true,
}

// ContentTypes maps each format to its MIME type.
var ContentTypes = map[string]string{
	FormatSVG:  "image/svg+xml",
	FormatPNG:  "image/png",
	FormatPDF:  "application/pdf",
	FormatHTML: "text/html; charset=utf-8",
	FormatJSON: "application/json",
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Load options
	Source string `json:"source,omitempty"`

	// Rank options. Zero means DefaultLimit; negative limits are rejected.
	Limit int `json:"limit,omitempty"`

	// Render options
	Width      float64  `json:"width,omitempty"`
	Height     float64  `json:"height,omitempty"`
	Formats    []string `json:"formats,omitempty"`
	Title      string   `json:"title,omitempty"`
	Background string   `json:"background,omitempty"`
	Tooltips   bool     `json:"tooltips,omitempty"` // Per-bar <title> in SVG output

	// Cache options
	NoCache  bool          `json:"no_cache,omitempty"`
	CacheTTL time.Duration `json:"-"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies this run in logs and server responses.
	RunID uuid.UUID

	// Table is the loaded table, before ranking.
	Table *freq.Table

	// TableHash is the content hash of Table.
	TableHash string

	// Ranked is the table the chart was drawn from.
	Ranked *freq.Table

	// Frame is the drawn scene.
	Frame *chart.Frame

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks whether artifacts came from the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Entries    int
	Bars       int
	LoadTime   time.Duration
	RankTime   time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: %s)", format, strings.Join(FormatNames(), ", "))
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

// FormatNames returns the supported formats in sorted order.
func FormatNames() []string {
	names := make([]string, 0, len(ValidFormats))
	for f := range ValidFormats {
		names = append(names, f)
	}
	slices.Sort(names)
	return names
}

// ParseFormats splits a comma-separated list, lower-cases and dedupes it.
func ParseFormats(s string) ([]string, error) {
	var formats []string
	for _, part := range strings.Split(s, ",") {
		f := strings.ToLower(strings.TrimSpace(part))
		if f == "" || slices.Contains(formats, f) {
			continue
		}
		if err := ValidateFormat(f); err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}
	return formats, nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Source == "" {
		return errors.New(errors.ErrCodeInvalidInput, "source is required")
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetRenderDefaults sets default values for ranking and rendering.
func (o *Options) SetRenderDefaults() {
	if o.Limit == 0 {
		o.Limit = DefaultLimit
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.CacheTTL == 0 {
		o.CacheTTL = DefaultCacheTTL
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender applies defaults and validates ranking and render options.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := errors.ValidateLimit(o.Limit); err != nil {
		return err
	}
	if err := o.Surface().Validate(); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Background != "" {
		if _, err := palette.ParseCSS(o.Background); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "background")
		}
	}
	return nil
}

// Surface returns the chart surface for the configured size.
func (o *Options) Surface() chart.Surface {
	return chart.NewSurface(o.Width, o.Height)
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:     format,
		Limit:      o.Limit,
		Width:      o.Width,
		Height:     o.Height,
		Title:      o.Title,
		Background: o.Background,
		Tooltips:   o.Tooltips,
	}
}
