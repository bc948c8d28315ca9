package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptInputCountriesFile sets the path of the country reference CSV.
func OptInputCountriesFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Countries File", s) {
			c.Input.CountriesFile = s
		}
	}
}

// OptInputRegionsFile sets the path of the administrative regions
// extract.
func OptInputRegionsFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Regions File", s) {
			c.Input.RegionsFile = s
		}
	}
}

// OptReportFile sets the path of the primary workbook.
func OptReportFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Report File", s) {
			c.Report.File = s
		}
	}
}

// OptReportTopCountries sets the row count of the top-countries sheet.
func OptReportTopCountries(i int) Option {
	return func(c *Config) {
		if isValidInt("Top Countries", i) {
			c.Report.TopCountries = i
		}
	}
}

// OptSplitDir sets the directory for per-country workbooks.
func OptSplitDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Split Dir", s) {
			c.Split.Dir = s
		}
	}
}

// OptDedupDisplayPolicy selects the display-filter variant.
// Valid values: "nonempty", "affirmative".
func OptDedupDisplayPolicy(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Dedup.DisplayPolicy", s) {
			c.Dedup.DisplayPolicy = s
		}
	}
}

// OptDedupPriorityLanguages sets the priority-language set used in name
// selection. An empty slice is valid and collapses the language score
// to two tiers.
func OptDedupPriorityLanguages(ss []string) Option {
	return func(c *Config) {
		langs := make([]string, 0, len(ss))
		for _, s := range ss {
			s = strings.ToLower(strings.TrimSpace(s))
			if s != "" {
				langs = append(langs, s)
			}
		}
		c.Dedup.PriorityLanguages = langs
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of concurrent workers for the
// per-country export. Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
