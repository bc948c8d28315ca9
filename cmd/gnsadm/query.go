package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"

	"gnsadm/internal/ioreport"
	"gnsadm/pkg/config"
	"gnsadm/pkg/gnsadm"
	"gnsadm/pkg/lookup"
)

// replLimit caps how many rows interactive commands print.
const replLimit = 20

// getQueryCmd returns the query command. The interactive prompt and
// the one-shot flags are both thin adapters over lookup.Match.
func getQueryCmd() *cobra.Command {
	var (
		inputFile   string
		countryCode string
		level       string
		name        string
		stats       bool
	)

	queryCmd := &cobra.Command{
		Use:   "query",
		Short: "Look up divisions by country, level or name",
		Long: `Search the canonical divisions of a previously generated report.

With filter flags the command runs once and prints every match. With
no filters it starts an interactive prompt with the commands country,
level, search, stats and quit.

Examples:
  gnsadm query -c CA -l ADM1     # Canadian provinces
  gnsadm query -n "saint"        # names containing "saint"
  gnsadm query --stats
  gnsadm query                   # interactive mode`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("input") {
				cfg.Update([]config.Option{config.OptReportFile(inputFile)})
			}

			divs, err := ioreport.ReadDivisions(cfg.Report.File)
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}

			if stats {
				printStats(divs)
				return nil
			}

			filter := lookup.Filter{
				CountryCode: countryCode,
				Level:       level,
				Name:        name,
			}
			if filter.IsZero() {
				repl(divs)
				return nil
			}

			matches := lookup.Match(divs, filter)
			if len(matches) == 0 {
				fmt.Println("No matching divisions found")
				return nil
			}
			fmt.Printf("Found %d divisions:\n", len(matches))
			printDivisions(matches, len(matches))
			return nil
		},
	}

	queryCmd.Flags().StringVarP(
		&inputFile, "input", "i", "",
		"report workbook to search",
	)
	queryCmd.Flags().StringVarP(
		&countryCode, "country", "c", "",
		"country code",
	)
	queryCmd.Flags().StringVarP(
		&level, "level", "l", "",
		"administrative level (ADM1, ADM2, ...)",
	)
	queryCmd.Flags().StringVarP(
		&name, "name", "n", "",
		"name substring",
	)
	queryCmd.Flags().BoolVar(
		&stats, "stats", false,
		"print dataset statistics",
	)

	return queryCmd
}

// repl runs the interactive prompt. All matching happens in the
// lookup package; this loop only parses commands and prints rows.
func repl(divs []gnsadm.Division) {
	fmt.Println("Administrative Division Lookup")
	fmt.Println("Commands:")
	fmt.Println("  country <CODE>   divisions of one country")
	fmt.Println("  level <LEVEL>    divisions of one level")
	fmt.Println("  search <NAME>    divisions matching a name")
	fmt.Println("  stats            dataset statistics")
	fmt.Println("  quit             exit")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("gnsadm> ")
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, rest := strings.ToLower(parts[0]), strings.Join(parts[1:], " ")

		switch {
		case cmd == "quit" || cmd == "exit" || cmd == "q":
			return
		case cmd == "stats":
			printStats(divs)
		case cmd == "country" && rest != "":
			show(divs, lookup.Filter{CountryCode: rest})
		case cmd == "level" && rest != "":
			show(divs, lookup.Filter{Level: rest})
		case cmd == "search" && rest != "":
			show(divs, lookup.Filter{Name: rest})
		default:
			fmt.Println("Unknown command. Type 'quit' to exit.")
		}
	}
}

func show(divs []gnsadm.Division, filter lookup.Filter) {
	matches := lookup.Match(divs, filter)
	if len(matches) == 0 {
		fmt.Println("No matching divisions found")
		return
	}
	if len(matches) > replLimit {
		fmt.Printf("Found %d divisions (showing first %d):\n",
			len(matches), replLimit)
	} else {
		fmt.Printf("Found %d divisions:\n", len(matches))
	}
	printDivisions(matches, replLimit)
}

func printDivisions(divs []gnsadm.Division, limit int) {
	for i, d := range divs {
		if i >= limit {
			return
		}
		country := d.CountryName
		if country == "" {
			country = d.CountryCode
		}
		fmt.Printf("  %s: %s (%s) - %.4f, %.4f\n",
			country, d.Name, d.Level, d.Latitude, d.Longitude)
	}
}

func printStats(divs []gnsadm.Division) {
	s := lookup.Summarize(divs)
	fmt.Println("Dataset statistics:")
	fmt.Printf("  Total divisions: %d\n", s.Total)
	fmt.Printf("  Countries:       %d\n", s.Countries)
	levels := make([]string, 0, len(s.ByLevel))
	for level := range s.ByLevel {
		levels = append(levels, level)
	}
	sort.Strings(levels)
	fmt.Println("  By level:")
	for _, level := range levels {
		fmt.Printf("    %s: %d\n", level, s.ByLevel[level])
	}
}
