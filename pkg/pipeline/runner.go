package pipeline

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pagen/pkg/cache"
	"github.com/matzehuels/pagen/pkg/fault"
	"github.com/matzehuels/pagen/pkg/generate"
	"github.com/matzehuels/pagen/pkg/observability"
	"github.com/matzehuels/pagen/pkg/page"
)

// Runner executes pipeline runs, caching rendered images.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
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
	return &Runner{
		Cache:  c,
		Keyer:  cache.NewDefaultKeyer(),
		Logger: logger,
	}
}

// Execute runs the complete generate → reduce → render pipeline. The
// reduce stage only runs when [Options.NeedsModel] reports true. ctx is
// checked between stages and inside the generate and reduce walks.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := opts.Logger

	result := &Result{
		Seed:      ResolveSeed(opts.Seed),
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Generate
	start := time.Now()
	pg, err := r.Generate(ctx, opts, result.Seed)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	result.Page = pg
	result.Stats.GenerateTime = time.Since(start)
	r.collectPageStats(result)

	logger.Info("generated page",
		"seed", result.Seed,
		"boxes", result.Stats.Boxes,
		"edges", result.Stats.Edges,
		"constraints", result.Stats.Constraints,
		"violations", result.Stats.Violated,
		"duration", result.Stats.GenerateTime)

	// Stage 2: Reduce
	if opts.NeedsModel() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start = time.Now()
		model, err := r.Reduce(ctx, pg)
		if err != nil {
			return nil, fmt.Errorf("reduce: %w", err)
		}
		result.Model = model
		result.Stats.ReduceTime = time.Since(start)
		result.Stats.ReducedConstraints = model.Constraints.Len()
		result.Stats.Faulty = len(model.Faulty)
		result.Stats.Variables = model.Variables()

		logger.Info("computed fault closure",
			"constraints", result.Stats.ReducedConstraints,
			"faulty", result.Stats.Faulty,
			"variables", result.Stats.Variables,
			"duration", result.Stats.ReduceTime)
	}

	// Stage 3: Render
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start = time.Now()
	if err := r.Render(ctx, pg, result.Model, opts, result); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Stats.RenderTime = time.Since(start)

	logger.Info("rendered output",
		"format", opts.Format,
		"image", opts.Image,
		"bytes", len(result.Output()),
		"cached", result.Stats.CacheHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Generate builds the page for seed.
func (r *Runner) Generate(ctx context.Context, opts Options, seed uint64) (*page.Page, error) {
	hooks := observability.Pipeline()
	hooks.OnGenerateStart(ctx, seed)
	start := time.Now()

	pg, err := generate.New(opts.GeneratorConfig(), seed).Generate(ctx)
	boxes := 0
	if pg != nil {
		boxes = pg.Tree.Len()
	}
	hooks.OnGenerateComplete(ctx, seed, boxes, time.Since(start), err)
	return pg, err
}

// Reduce computes the closure-reduced repair model of pg.
func (r *Runner) Reduce(ctx context.Context, pg *page.Page) (*fault.Model, error) {
	start := time.Now()
	m, err := fault.Reduce(ctx, pg.AllConstraints(), pg.Graph)
	if err != nil {
		return nil, err
	}
	observability.Pipeline().OnClosureComplete(ctx, m.Constraints.Len(), len(m.Faulty), time.Since(start))
	return m, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) collectPageStats(result *Result) {
	pg := result.Page
	all := pg.AllConstraints()
	violated := 0
	for _, c := range all {
		if !c.Verdict() {
			violated++
		}
	}
	result.Stats.Boxes = pg.Tree.Size(pg.Root)
	result.Stats.Depth = pg.Tree.Depth(pg.Root)
	result.Stats.Properties = pg.Registry.Len()
	result.Stats.Edges = pg.Graph.EdgeCount()
	result.Stats.Constraints = len(all)
	result.Stats.Violated = violated
	result.Stats.Faults = pg.Faults
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// ResolveSeed returns seed, or a random seed when seed is negative.
func ResolveSeed(seed int64) uint64 {
	if seed < 0 {
		return rand.Uint64() >> 1
	}
	return uint64(seed)
}
