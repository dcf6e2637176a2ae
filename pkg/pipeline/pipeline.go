// Package pipeline provides the generate → reduce → render pipeline shared
// by the CLI and the HTTP server.
//
// # Architecture
//
// A run consists of three stages:
//
//  1. Generate: build a random box tree, lay it out with injected faults and
//     derive its constraints
//  2. Reduce: compute the fault closure of the violated constraints
//  3. Render: produce the requested format and, for Graphviz formats, an
//     optional SVG, PDF or PNG image
//
// Every run owns its [page.Page], so runs are independent and a [Runner] can
// serve concurrent requests.
//
// # Usage
//
//	runner := pipeline.NewRunner(nil, logger)
//	opts := pipeline.DefaultOptions()
//	opts.Seed = 42
//	opts.Format = "opl"
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	model := result.Output()
//
// [page.Page]: github.com/matzehuels/pagen/pkg/page#Page
package pipeline

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pagen/pkg/errors"
	"github.com/matzehuels/pagen/pkg/fault"
	"github.com/matzehuels/pagen/pkg/generate"
	"github.com/matzehuels/pagen/pkg/page"
	"github.com/matzehuels/pagen/pkg/render"
	"github.com/matzehuels/pagen/pkg/render/opl"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// RandomSeed asks the runner to draw a fresh seed.
	RandomSeed int64 = -1

	// DefaultFormat is the default output format.
	DefaultFormat = render.FormatText

	// DefaultScale is the default PNG scale factor.
	DefaultScale = 2.0

	// MaxDepthLimit caps tree depth; page size grows exponentially with it.
	MaxDepthLimit = 12
)

// Image formats for Graphviz output.
const (
	ImageNone = ""
	ImageSVG  = "svg"
	ImagePDF  = "pdf"
	ImagePNG  = "png"
)

var validImages = []string{ImageNone, ImageSVG, ImagePDF, ImagePNG}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
// It decodes from JSON requests and TOML profiles.
type Options struct {
	// Seed drives every random choice. Negative values draw a random seed.
	Seed int64 `json:"seed" toml:"seed"`

	// Tree shape
	MinDepth      int     `json:"min_depth" toml:"min_depth"`
	MaxDepth      int     `json:"max_depth" toml:"max_depth"`
	Degree        float64 `json:"degree" toml:"degree"`
	MinWidth      float64 `json:"min_width" toml:"min_width"`
	MaxWidth      float64 `json:"max_width" toml:"max_width"`
	MinHeight     float64 `json:"min_height" toml:"min_height"`
	MaxHeight     float64 `json:"max_height" toml:"max_height"`
	MaxRowSize    int     `json:"max_row_size" toml:"max_row_size"`
	MaxColumnSize int     `json:"max_column_size" toml:"max_column_size"`
	Padding       float64 `json:"padding" toml:"padding"`
	Spacing       float64 `json:"spacing" toml:"spacing"`

	// Fault injection
	Misalign float64 `json:"misalign" toml:"misalign"`
	Overlap  float64 `json:"overlap" toml:"overlap"`
	Overflow float64 `json:"overflow" toml:"overflow"`
	MinShift int     `json:"min_shift" toml:"min_shift"`
	MaxShift int     `json:"max_shift" toml:"max_shift"`

	// Render options
	Format string  `json:"format" toml:"format"`
	Image  string  `json:"image,omitempty" toml:"image"`
	Scale  float64 `json:"scale,omitempty" toml:"scale"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-" toml:"-"`

	// WithModel computes the repair model even when Format does not use it.
	WithModel bool `json:"-" toml:"-"`
}

// DefaultOptions returns options with every generation parameter at its
// default and a random seed.
func DefaultOptions() Options {
	cfg := generate.DefaultConfig()
	return Options{
		Seed:          RandomSeed,
		MinDepth:      cfg.MinDepth,
		MaxDepth:      cfg.MaxDepth,
		Degree:        cfg.Degree,
		MinWidth:      cfg.MinWidth,
		MaxWidth:      cfg.MaxWidth,
		MinHeight:     cfg.MinHeight,
		MaxHeight:     cfg.MaxHeight,
		MaxRowSize:    cfg.MaxRowSize,
		MaxColumnSize: cfg.MaxColumnSize,
		Padding:       cfg.Padding,
		Spacing:       cfg.Spacing,
		Misalign:      cfg.Misalign,
		Overlap:       cfg.Overlap,
		Overflow:      cfg.Overflow,
		MinShift:      cfg.MinShift,
		MaxShift:      cfg.MaxShift,
		Format:        string(DefaultFormat),
		Scale:         DefaultScale,
	}
}

// ValidateAndSetDefaults checks every option and fills in the render
// defaults. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Format == "" {
		o.Format = string(DefaultFormat)
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return o.Validate()
}

// Validate checks every option without changing any.
func (o *Options) Validate() error {
	checks := []error{
		errors.ValidateRange("depth", o.MinDepth, o.MaxDepth, 0),
		errors.ValidateRange("width", o.MinWidth, o.MaxWidth, 0),
		errors.ValidateRange("height", o.MinHeight, o.MaxHeight, 0),
		errors.ValidateRange("shift", o.MinShift, o.MaxShift, 0),
		errors.ValidateRange("row size", 0, o.MaxRowSize, 0),
		errors.ValidateRange("column size", 0, o.MaxColumnSize, 0),
		errors.ValidateProbability("misalign", o.Misalign),
		errors.ValidateProbability("overlap", o.Overlap),
		errors.ValidateProbability("overflow", o.Overflow),
		errors.ValidatePositive("scale", o.Scale),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	if o.Padding < 0 || o.Spacing < 0 {
		return errors.New(errors.ErrCodeInvalidRange, "padding and spacing cannot be negative")
	}
	if o.MaxDepth > MaxDepthLimit {
		return errors.New(errors.ErrCodeInvalidRange, "max depth %d exceeds the limit of %d", o.MaxDepth, MaxDepthLimit)
	}
	if o.Degree < 0 || o.Degree > 10 {
		return errors.New(errors.ErrCodeInvalidRange, "degree must be between 0 and 10, got %g", o.Degree)
	}

	format, err := render.ParseFormat(o.Format)
	if err != nil {
		return err
	}
	if !slices.Contains(validImages, o.Image) {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid image: %q (must be one of: svg, pdf, png)", o.Image)
	}
	if o.Image != ImageNone && !format.IsGraphviz() {
		return errors.New(errors.ErrCodeUnsupported, "%s output cannot be rendered as %s", format, o.Image)
	}
	return nil
}

// RenderFormat returns the parsed output format. Call it after validation.
func (o *Options) RenderFormat() render.Format {
	f, _ := render.ParseFormat(o.Format)
	return f
}

// NeedsModel reports whether a run has to compute the fault closure: the
// relative OPL model and the dependency graph read it, other formats do not.
func (o *Options) NeedsModel() bool {
	switch o.RenderFormat() {
	case render.FormatOPL, render.FormatGraph:
		return true
	}
	return o.WithModel
}

// GeneratorConfig converts the generation options.
func (o *Options) GeneratorConfig() generate.Config {
	return generate.Config{
		MinDepth:      o.MinDepth,
		MaxDepth:      o.MaxDepth,
		Degree:        o.Degree,
		MinWidth:      o.MinWidth,
		MaxWidth:      o.MaxWidth,
		MinHeight:     o.MinHeight,
		MaxHeight:     o.MaxHeight,
		MaxRowSize:    o.MaxRowSize,
		MaxColumnSize: o.MaxColumnSize,
		Padding:       o.Padding,
		Spacing:       o.Spacing,
		Misalign:      o.Misalign,
		Overlap:       o.Overlap,
		Overflow:      o.Overflow,
		MinShift:      o.MinShift,
		MaxShift:      o.MaxShift,
	}
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// Page is the generated page, including its tree, dependency graph and
	// constraints.
	Page *page.Page

	// Model is the closure-reduced repair model of Page. It is nil unless
	// the options needed it, see [Options.NeedsModel].
	Model *fault.Model

	// Seed is the seed actually used, which matters when a random seed was
	// requested.
	Seed uint64

	// Artifacts contains rendered outputs keyed by format: the source
	// format always, plus the image format when one was requested.
	Artifacts map[string][]byte

	// Primary is the key of the artifact a caller should deliver.
	Primary string

	// Stats contains timing and size information.
	Stats Stats
}

// Output returns the primary artifact.
func (r *Result) Output() []byte {
	return r.Artifacts[r.Primary]
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Boxes       int `json:"boxes"`
	Depth       int `json:"depth"`
	Properties  int `json:"properties"`
	Edges       int `json:"edges"`
	Constraints int `json:"constraints"`
	Violated    int `json:"violated"`

	// Closure results, zero when the run skipped the reduce stage.
	ReducedConstraints int `json:"reduced_constraints"`
	Faulty             int `json:"faulty"`
	Variables          int `json:"variables"`

	// Model is set for OPL output.
	Model opl.Stats `json:"model"`

	Faults page.Faults `json:"faults"`

	GenerateTime time.Duration `json:"generate_ns"`
	ReduceTime   time.Duration `json:"reduce_ns"`
	RenderTime   time.Duration `json:"render_ns"`

	// CacheHit reports whether the image came from the cache.
	CacheHit bool `json:"cache_hit"`
}
