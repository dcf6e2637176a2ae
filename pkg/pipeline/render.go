package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/pagen/pkg/cache"
	"github.com/matzehuels/pagen/pkg/errors"
	"github.com/matzehuels/pagen/pkg/fault"
	"github.com/matzehuels/pagen/pkg/observability"
	"github.com/matzehuels/pagen/pkg/page"
	"github.com/matzehuels/pagen/pkg/render"
	"github.com/matzehuels/pagen/pkg/render/dot"
	"github.com/matzehuels/pagen/pkg/render/html"
	"github.com/matzehuels/pagen/pkg/render/opl"
	"github.com/matzehuels/pagen/pkg/render/text"
)

// Render produces the requested format, and the requested image for
// Graphviz formats, into result.
func (r *Runner) Render(ctx context.Context, pg *page.Page, m *fault.Model, opts Options, result *Result) error {
	format := opts.RenderFormat()
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, string(format))
	start := time.Now()

	src, stats := Source(pg, m, format)
	result.Artifacts[string(format)] = src
	result.Primary = string(format)
	result.Stats.Model = stats

	var err error
	if opts.Image != ImageNone {
		var data []byte
		data, result.Stats.CacheHit, err = r.image(ctx, string(src), opts)
		if err == nil {
			result.Artifacts[opts.Image] = data
			result.Primary = opts.Image
		}
	}

	hooks.OnRenderComplete(ctx, result.Primary, len(result.Output()), time.Since(start), err)
	return err
}

// Source renders pg in format. Only OPL formats report model statistics.
func Source(pg *page.Page, m *fault.Model, format render.Format) ([]byte, opl.Stats) {
	switch format {
	case render.FormatHTML:
		return html.Render(pg.Tree, pg.Root, html.Options{Seed: pg.Seed}), opl.Stats{}
	case render.FormatHTMLFlat:
		return html.Render(pg.Tree, pg.Root, html.Options{Flat: true, Seed: pg.Seed}), opl.Stats{}
	case render.FormatDOT:
		return []byte(dot.Tree(pg.Tree, pg.Root)), opl.Stats{}
	case render.FormatGraph:
		return []byte(dot.Dependencies(pg, m.Faulty)), opl.Stats{}
	case render.FormatOPL:
		return opl.Relative(pg, m)
	case render.FormatOPLAbsolute:
		return opl.Absolute(pg)
	}
	return text.Render(pg.Tree, pg.Root), opl.Stats{}
}

// image lays out DOT source as SVG and converts it further if asked. Both
// steps are cached by the hash of their input.
func (r *Runner) image(ctx context.Context, src string, opts Options) ([]byte, bool, error) {
	svg, svgHit, err := r.cached(ctx, []byte(src), cache.ArtifactKeyOpts{Format: ImageSVG}, func() ([]byte, error) {
		return dot.RenderSVG(ctx, src)
	})
	if err != nil || opts.Image == ImageSVG {
		return svg, svgHit, err
	}

	switch opts.Image {
	case ImagePDF:
		return r.cached(ctx, svg, cache.ArtifactKeyOpts{Format: ImagePDF}, func() ([]byte, error) {
			return render.ToPDF(ctx, svg)
		})
	case ImagePNG:
		return r.cached(ctx, svg, cache.ArtifactKeyOpts{Format: ImagePNG, Scale: opts.Scale}, func() ([]byte, error) {
			return render.ToPNG(ctx, svg, opts.Scale)
		})
	}
	return nil, false, errors.New(errors.ErrCodeUnsupported, "unsupported image format %q", opts.Image)
}

func (r *Runner) cached(ctx context.Context, input []byte, key cache.ArtifactKeyOpts, fn func() ([]byte, error)) ([]byte, bool, error) {
	k := r.Keyer.ArtifactKey(cache.Hash(input), key)
	if data, hit, err := r.Cache.Get(ctx, k); err == nil && hit {
		return data, true, nil
	}
	data, err := fn()
	if err != nil {
		return nil, false, err
	}
	if err := r.Cache.Set(ctx, k, data, cache.TTLArtifact); err != nil {
		r.Logger.Warn("cache write failed", "error", err)
	}
	return data, false, nil
}
