package main

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"
	"github.com/ukaji3/benchcharts-go/pkg/benchcharts"
	"go.uber.org/zap"
)

func (a *app) generateAllCmd() *cobra.Command {
	var concurrency int
	var workbook bool
	cmd := &cobra.Command{
		Use:   "generate-all [benchmark-folder] [output-folder]",
		Short: "Render column and line charts for every JSON file in a folder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			opts := a.options()
			if cmd.Flags().Changed("concurrency") {
				opts.Concurrency = concurrency
			}
			if cmd.Flags().Changed("workbook") {
				opts.Workbook = workbook
			}

			var mu sync.Mutex
			opts.OnWritten = func(input string, kind benchcharts.Kind, path string) {
				mu.Lock()
				defer mu.Unlock()
				if kind == benchcharts.KindWorkbook {
					fmt.Fprintf(a.stdout, "Generated workbook for %s to %s\n", input, path)
					return
				}
				fmt.Fprintf(a.stdout, "Generated %s charts for %s to %s\n", kind, input, path)
			}

			result, err := benchcharts.GenerateAll(cmd.Context(), args[0], args[1], opts)
			if err != nil {
				return err
			}

			for _, f := range result.Failures {
				a.logger.Error("input failed", zap.String("input", f.Input), zap.Error(f.Err))
			}
			fmt.Fprintf(a.stdout, "%d files, %d written, %d failed\n",
				len(result.Inputs), len(result.Written), len(result.Failures))

			if !result.OK() {
				return fmt.Errorf("%d of %d inputs failed", len(result.Failures), len(result.Inputs))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "Inputs processed in parallel (default: number of CPUs)")
	cmd.Flags().BoolVar(&workbook, "workbook", false, "Also write an .xlsx workbook with native charts per input")
	return cmd
}

func (a *app) workbookCmd() *cobra.Command {
	var kinds []string
	var sheet string
	cmd := &cobra.Command{
		Use:   "workbook [input-data] [output-xlsx]",
		Short: "Export a dataset to an Excel workbook with native charts",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var parsed []benchcharts.Kind
			for _, k := range kinds {
				kind, err := benchcharts.ParseKind(k)
				if err != nil {
					return err
				}
				parsed = append(parsed, kind)
			}
			cmd.SilenceUsage = true

			data, err := benchcharts.Load(args[0], sheet)
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			ds, err := benchcharts.ValidateDataset(data)
			if err != nil {
				return err
			}
			if err := benchcharts.WriteWorkbook(args[1], ds, parsed...); err != nil {
				return fmt.Errorf("failed to write workbook: %w", err)
			}
			fmt.Fprintln(a.stdout, "Generated workbook to "+args[1])
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&kinds, "kind", []string{"column", "line"}, "Chart kinds to add: line, column")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Sheet to read when the input is an .xlsx workbook (default: first sheet)")
	return cmd
}
