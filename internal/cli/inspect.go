package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pagen/pkg/pipeline"
)

type inspectOptions struct {
	pageFlags
	violated bool
	plain    bool
}

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	opts := &inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Browse the constraints of a generated page",
		Long: `Generate a page and browse its constraints: kind, boxes, whether the
layout satisfies it and whether it is part of the reduced repair model.
Press enter on a constraint to list the properties it concerns; faulty
properties are marked with *.`,
		Example: `  pagen inspect --seed 42
  pagen inspect --seed 42 --violated
  pagen inspect --misalign 0.5 --plain`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd, opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().BoolVar(&opts.violated, "violated", false, "only show violated constraints")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "print the table and exit instead of browsing")

	return cmd
}

func (c *CLI) runInspect(cmd *cobra.Command, o *inspectOptions) error {
	opts, err := o.options(cmd)
	if err != nil {
		return err
	}
	opts.Format = string(pipeline.DefaultFormat)
	opts.Image = pipeline.ImageNone
	opts.WithModel = true

	runner, err := c.newRunner(o.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	opts.Logger = c.Logger.With()
	opts.Logger.SetLevel(log.WarnLevel)
	res, err := runner.Execute(cmd.Context(), opts)
	if err != nil {
		return err
	}
	rows := constraintRows(res, o.violated)
	prog.done(fmt.Sprintf("Generated page with %d constraints (%d violated)",
		res.Stats.Constraints, res.Stats.Violated))

	title := fmt.Sprintf("Page %s · seed %d", res.Page.ID, res.Seed)
	out := cmd.OutOrStdout()

	if o.plain {
		fmt.Fprintln(out, StyleTitle.Render(title))
		if len(rows) == 0 {
			printInfo(out, "No constraints to show")
			return nil
		}
		fmt.Fprintln(out, renderConstraintTable(rows, 0, len(rows), -1))
		return nil
	}

	if len(rows) == 0 {
		printInfo(out, "No constraints to show")
		return nil
	}

	p := tea.NewProgram(NewConstraintListModel(title, rows),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(out),
	)
	_, err = p.Run()
	return err
}
