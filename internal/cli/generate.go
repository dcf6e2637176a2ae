package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pagen/pkg/errors"
	"github.com/matzehuels/pagen/pkg/pipeline"
	"github.com/matzehuels/pagen/pkg/render"
)

// generateOptions holds the flags of the generate command.
type generateOptions struct {
	pageFlags
	format       string
	output       string
	svg          bool
	pdf          bool
	png          bool
	scale        float64
	quiet        bool
	printProfile bool
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random page layout",
		Long: `Generate a random page layout with injected faults and write it in one of
the output formats:

  text       box coordinates, one line per box
  html       nested absolutely positioned divs
  html-flat  the same boxes with page coordinates, not nested
  dot        the box tree as Graphviz DOT
  graph      the property dependency graph as Graphviz DOT
  opl        repair model restricted to the fault closure
  opl-abs    repair model over every box

The Graphviz formats can also be rendered to an image with --svg, --pdf or
--png. Without -o the output goes to stdout.`,
		Example: `  pagen generate --seed 42
  pagen generate -t html -o page.html --misalign 0.3
  pagen generate -t graph --svg -o graph.svg
  pagen generate --profile deep.toml -t opl -o model.mod`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, opts)
		},
	}

	opts.register(cmd)
	fl := cmd.Flags()
	fl.StringVarP(&opts.format, "format", "t", string(pipeline.DefaultFormat),
		"output format ("+strings.Join(render.FormatNames(), ", ")+")")
	fl.StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	fl.BoolVar(&opts.svg, "svg", false, "render a Graphviz format to SVG")
	fl.BoolVar(&opts.pdf, "pdf", false, "render a Graphviz format to PDF (requires rsvg-convert)")
	fl.BoolVar(&opts.png, "png", false, "render a Graphviz format to PNG (requires rsvg-convert)")
	fl.Float64Var(&opts.scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	fl.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress progress and statistics")
	fl.BoolVar(&opts.printProfile, "print-profile", false, "print the resolved options as a TOML profile and exit")
	cmd.MarkFlagsMutuallyExclusive("svg", "pdf", "png")

	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return render.FormatNames(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// resolve returns the run options for the generate command.
func (o *generateOptions) resolve(cmd *cobra.Command) (pipeline.Options, error) {
	opts, err := o.options(cmd)
	if err != nil {
		return opts, err
	}
	changed := cmd.Flags().Changed
	if changed("format") {
		opts.Format = o.format
	}
	if changed("scale") {
		opts.Scale = o.scale
	}
	switch {
	case o.svg:
		opts.Image = pipeline.ImageSVG
	case o.pdf:
		opts.Image = pipeline.ImagePDF
	case o.png:
		opts.Image = pipeline.ImagePNG
	}
	return opts, nil
}

func (c *CLI) runGenerate(cmd *cobra.Command, o *generateOptions) error {
	opts, err := o.resolve(cmd)
	if err != nil {
		return err
	}
	if o.printProfile {
		return pipeline.EncodeProfile(cmd.OutOrStdout(), opts)
	}

	runner, err := c.newRunner(o.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	opts.Logger = c.Logger
	if o.quiet {
		opts.Logger = c.Logger.With()
		opts.Logger.SetLevel(log.WarnLevel)
	}

	res, err := runner.Execute(cmd.Context(), opts)
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	if o.output == "" && (opts.Image == pipeline.ImagePDF || opts.Image == pipeline.ImagePNG) && !o.quiet {
		printWarning(stderr, "Writing binary %s to stdout", opts.Image)
	}
	if err := writeOutput(cmd, o.output, res.Output()); err != nil {
		return err
	}
	if o.quiet {
		return nil
	}
	printStats(stderr, res)
	if o.output != "" {
		printSuccess(stderr, "Wrote %s", res.Primary)
		printFile(stderr, o.output)
	}
	if res.Stats.Violated > 0 {
		printNextStep(stderr, "Browse the violated constraints",
			fmt.Sprintf("%s inspect --seed %d --violated", appName, res.Seed))
	}
	return nil
}

// writeOutput writes data to path, or to the command's stdout when path is
// empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
