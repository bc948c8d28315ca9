package main

import (
	"context"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"

	"gnsadm/internal/ioprocess"
	"gnsadm/pkg/config"
)

// getProcessCmd returns the process command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getProcessCmd() *cobra.Command {
	var (
		countriesFile string
		regionsFile   string
		outputFile    string
		topCountries  int
		displayPolicy string
		priorityLangs []string
	)

	processCmd := &cobra.Command{
		Use:   "process",
		Short: "Run the pipeline and write the report workbook",
		Long: `Run the full pipeline over the GEOnet extract.

This command:
  1. Loads the country reference table
  2. Streams the administrative regions extract
  3. Keeps ADM1-ADM4 and ADMD records that are displayable and have
     valid coordinates
  4. Collapses name variants to one canonical name per feature
     (authority type, then rank, then language; first row wins ties)
  5. Joins country metadata
  6. Writes the multi-sheet Excel report

Two historical display-filter variants exist; pick one explicitly with
--display-policy (nonempty keeps any record with a display value,
affirmative requires a literal Y marker).

Examples:
  # Use paths from config.yaml
  gnsadm process

  # Explicit inputs and output
  gnsadm process --countries Country_Codes.csv \
    --regions Administrative_Regions/Administrative_Regions.txt \
    -o divisions.xlsx

  # Strict display filter, English-or-nothing language policy
  gnsadm process --display-policy affirmative --priority-langs ""`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []config.Option
			if cmd.Flags().Changed("countries") {
				opts = append(opts, config.OptInputCountriesFile(countriesFile))
			}
			if cmd.Flags().Changed("regions") {
				opts = append(opts, config.OptInputRegionsFile(regionsFile))
			}
			if cmd.Flags().Changed("output") {
				opts = append(opts, config.OptReportFile(outputFile))
			}
			if cmd.Flags().Changed("top") {
				opts = append(opts, config.OptReportTopCountries(topCountries))
			}
			if cmd.Flags().Changed("display-policy") {
				opts = append(opts, config.OptDedupDisplayPolicy(displayPolicy))
			}
			if cmd.Flags().Changed("priority-langs") {
				opts = append(opts, config.OptDedupPriorityLanguages(priorityLangs))
			}
			cfg.Update(opts)

			err := ioprocess.New(cfg).Process(context.Background())
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	processCmd.Flags().StringVar(
		&countriesFile, "countries", "",
		"country reference CSV",
	)
	processCmd.Flags().StringVar(
		&regionsFile, "regions", "",
		"administrative regions extract (tab-separated)",
	)
	processCmd.Flags().StringVarP(
		&outputFile, "output", "o", "",
		"report workbook to write",
	)
	processCmd.Flags().IntVarP(
		&topCountries, "top", "t", 0,
		"row count of the top-countries sheet",
	)
	processCmd.Flags().StringVar(
		&displayPolicy, "display-policy", "",
		"display filter variant: nonempty or affirmative",
	)
	processCmd.Flags().StringSliceVar(
		&priorityLangs, "priority-langs", nil,
		"language codes preferred after English (empty = two-tier policy)",
	)

	return processCmd
}
