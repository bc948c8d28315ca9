package main

import (
	"context"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"

	"gnsadm/internal/iosplit"
	"gnsadm/pkg/config"
)

// getSplitCmd returns the split command.
func getSplitCmd() *cobra.Command {
	var (
		inputFile string
		outputDir string
		jobs      int
	)

	splitCmd := &cobra.Command{
		Use:   "split",
		Short: "Export the report into one workbook per country",
		Long: `Read the previously generated report workbook and write one
workbook per country into the export directory.

Filenames come from country display names with everything except
letters, digits and spaces removed. Exports run in parallel on a
bounded worker group.

Examples:
  gnsadm split
  gnsadm split -i divisions.xlsx -d exports --jobs 4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []config.Option
			if cmd.Flags().Changed("input") {
				opts = append(opts, config.OptReportFile(inputFile))
			}
			if cmd.Flags().Changed("dir") {
				opts = append(opts, config.OptSplitDir(outputDir))
			}
			if cmd.Flags().Changed("jobs") {
				opts = append(opts, config.OptJobsNumber(jobs))
			}
			cfg.Update(opts)

			err := iosplit.New(cfg).Split(context.Background())
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	splitCmd.Flags().StringVarP(
		&inputFile, "input", "i", "",
		"report workbook to split",
	)
	splitCmd.Flags().StringVarP(
		&outputDir, "dir", "d", "",
		"directory for per-country workbooks",
	)
	splitCmd.Flags().IntVarP(
		&jobs, "jobs", "j", 0,
		"number of parallel export workers",
	)

	return splitCmd
}
