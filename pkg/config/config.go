// Package config provides configuration management for gnsadm.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via
// gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml >
// defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Environment Variables
//
// Use GNSADM_ prefix with underscores for nesting:
//
//	GNSADM_INPUT_COUNTRIES_FILE=Country_Codes.csv
//	GNSADM_REPORT_TOP_COUNTRIES=30
//	GNSADM_LOG_LEVEL=info
package config

import (
	"runtime"
)

// Config represents the complete gnsadm configuration.
type Config struct {
	// Input locates the two source files of a run.
	Input InputConfig `mapstructure:"input" yaml:"input"`

	// Report controls the primary workbook output.
	Report ReportConfig `mapstructure:"report" yaml:"report"`

	// Split controls the per-country export.
	Split SplitConfig `mapstructure:"split" yaml:"split"`

	// Dedup holds the configurable parts of the deduplication policy.
	Dedup DedupConfig `mapstructure:"dedup" yaml:"dedup"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for the
	// per-country export. Defaults to the number of CPU threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config and log directories reside.
	// It is set by the CLI during init; there is no default for it.
	HomeDir string `mapstructure:"-" yaml:"-"`
}

// InputConfig locates the source files.
type InputConfig struct {
	// CountriesFile is the country reference CSV.
	CountriesFile string `mapstructure:"countries_file" yaml:"countries_file"`

	// RegionsFile is the tab-separated administrative regions extract.
	RegionsFile string `mapstructure:"regions_file" yaml:"regions_file"`
}

// ReportConfig controls the primary workbook.
type ReportConfig struct {
	// File is the path of the multi-sheet workbook to write.
	File string `mapstructure:"file" yaml:"file"`

	// TopCountries is the row count of the top-countries sheet.
	TopCountries int `mapstructure:"top_countries" yaml:"top_countries"`
}

// SplitConfig controls the per-country export.
type SplitConfig struct {
	// Dir is the directory per-country workbooks are written into.
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// DedupConfig holds the deduplication policy knobs. Two historical
// variants exist for both fields; see the classify package.
type DedupConfig struct {
	// DisplayPolicy is "nonempty" or "affirmative".
	DisplayPolicy string `mapstructure:"display_policy" yaml:"display_policy"`

	// PriorityLanguages are language codes scored between English and
	// the rest during name selection. Empty means the two-tier policy
	// (English, then everything else).
	PriorityLanguages []string `mapstructure:"priority_languages" yaml:"priority_languages"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Input: InputConfig{
			CountriesFile: "Country_Codes.csv",
			RegionsFile:   "Administrative_Regions/Administrative_Regions.txt",
		},
		Report: ReportConfig{
			File:         "Complete_Administrative_Divisions_with_Coordinates.xlsx",
			TopCountries: 30,
		},
		Split: SplitConfig{
			Dir: "Country_Exports",
		},
		Dedup: DedupConfig{
			DisplayPolicy: "nonempty",
			PriorityLanguages: []string{
				"spa", "fra", "deu", "ita", "por",
				"rus", "ara", "zho", "jpn", "hin",
			},
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
