// Package main provides the gnsadm CLI application.
// gnsadm turns the GEOnet administrative-regions extract into a
// deduplicated, country-enriched Excel report.
package main

import (
	"os"
)

func main() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
