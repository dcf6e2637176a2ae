package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/pagen/pkg/pipeline"
)

// pageFlags holds the generation flags shared by generate and inspect.
type pageFlags struct {
	profile  string
	seed     int64
	minDepth int
	maxDepth int
	degree   float64
	misalign float64
	overlap  float64
	overflow float64
	noCache  bool
}

func (f *pageFlags) register(cmd *cobra.Command) {
	d := pipeline.DefaultOptions()
	fl := cmd.Flags()
	fl.StringVar(&f.profile, "profile", "", "TOML generation profile applied before flags")
	fl.Int64Var(&f.seed, "seed", pipeline.RandomSeed, "random seed (negative draws one)")
	fl.IntVar(&f.minDepth, "min-depth", d.MinDepth, "minimum tree depth")
	fl.IntVar(&f.maxDepth, "max-depth", d.MaxDepth, "maximum tree depth")
	fl.Float64Var(&f.degree, "degree", d.Degree, "mean number of children per box")
	fl.Float64Var(&f.misalign, "misalign", d.Misalign, "probability of a misalignment fault per placement")
	fl.Float64Var(&f.overlap, "overlap", d.Overlap, "probability of an overlap fault per placement")
	fl.Float64Var(&f.overflow, "overflow", d.Overflow, "probability of an overflow fault per layout")
	fl.BoolVar(&f.noCache, "no-cache", false, "disable the image cache")
}

// options resolves the run options: defaults, then the profile, then every
// flag the user set explicitly.
func (f *pageFlags) options(cmd *cobra.Command) (pipeline.Options, error) {
	opts := pipeline.DefaultOptions()
	if f.profile != "" {
		if err := pipeline.LoadProfile(f.profile, &opts); err != nil {
			return opts, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("seed") {
		opts.Seed = f.seed
	}
	if changed("min-depth") {
		opts.MinDepth = f.minDepth
	}
	if changed("max-depth") {
		opts.MaxDepth = f.maxDepth
	}
	if changed("degree") {
		opts.Degree = f.degree
	}
	if changed("misalign") {
		opts.Misalign = f.misalign
	}
	if changed("overlap") {
		opts.Overlap = f.overlap
	}
	if changed("overflow") {
		opts.Overflow = f.overflow
	}
	return opts, nil
}
