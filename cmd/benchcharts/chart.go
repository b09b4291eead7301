package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/benchcharts-go/pkg/benchcharts"
	"go.uber.org/zap"
)

// chartCmd builds a single-file command rendering one fixed kind. label, when
// non-nil, supplies the performance-profile metric label.
func (a *app) chartCmd(use, short string, kind benchcharts.Kind, label func() string, message string) *cobra.Command {
	var sheet string
	cmd := &cobra.Command{
		Use:   use + " [input-data] [output-chart]",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			opts := a.options()
			if label != nil {
				opts.Label = label()
			}
			if err := a.renderFile(kind, args[0], args[1], sheet, opts); err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, message+args[1])
			return nil
		},
	}
	cmd.Flags().StringVar(&sheet, "sheet", "", "Sheet to read when the input is an .xlsx workbook (default: first sheet)")
	return cmd
}

// renderCmd is the parameterized form of the single-file commands.
func (a *app) renderCmd() *cobra.Command {
	var kindStr, label, sheet string
	cmd := &cobra.Command{
		Use:   "render [input-data] [output-chart]",
		Short: "Render a chart of the given kind",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := benchcharts.ParseKind(kindStr)
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			opts := a.options()
			opts.Label = label
			if err := a.renderFile(kind, args[0], args[1], sheet, opts); err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "Generated %s chart to %s\n", kind, args[1])
			return nil
		},
	}
	cmd.Flags().StringVar(&kindStr, "kind", "line", "Chart kind: line, column, performance-profile")
	cmd.Flags().StringVar(&label, "label", "", "Metric label for performance-profile charts")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Sheet to read when the input is an .xlsx workbook (default: first sheet)")
	return cmd
}

// renderFile runs the read, render, write pipeline for one input. Nothing is
// written unless the input parses and renders.
func (a *app) renderFile(kind benchcharts.Kind, input, output, sheet string, opts benchcharts.Options) error {
	data, err := benchcharts.Load(input, sheet)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	result, err := benchcharts.Render(kind, data, opts)
	if err != nil {
		return fmt.Errorf("failed to render %s chart: %w", kind, err)
	}

	if err := benchcharts.WriteResult(output, result); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	a.logger.Debug("chart written",
		zap.String("kind", string(kind)),
		zap.String("input", input),
		zap.String("output", output))
	return nil
}
