package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir).
// Used for round-tripping config.yaml ↔ Config conversions.
func (c *Config) ToOptions() []Option {
	var res []Option
	var s string
	var i int

	s = c.Input.CountriesFile
	if s != "" {
		res = append(res, OptInputCountriesFile(s))
	}
	s = c.Input.RegionsFile
	if s != "" {
		res = append(res, OptInputRegionsFile(s))
	}

	s = c.Report.File
	if s != "" {
		res = append(res, OptReportFile(s))
	}
	i = c.Report.TopCountries
	if i > 0 {
		res = append(res, OptReportTopCountries(i))
	}

	s = c.Split.Dir
	if s != "" {
		res = append(res, OptSplitDir(s))
	}

	s = c.Dedup.DisplayPolicy
	if s != "" {
		res = append(res, OptDedupDisplayPolicy(s))
	}
	if c.Dedup.PriorityLanguages != nil {
		res = append(res, OptDedupPriorityLanguages(c.Dedup.PriorityLanguages))
	}

	s = c.Log.Format
	if s != "" {
		res = append(res, OptLogFormat(s))
	}
	s = c.Log.Level
	if s != "" {
		res = append(res, OptLogLevel(s))
	}
	s = c.Log.Destination
	if s != "" {
		res = append(res, OptLogDestination(s))
	}

	i = c.JobsNumber
	if i > 0 {
		res = append(res, OptJobsNumber(i))
	}
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Dedup.DisplayPolicy": {"nonempty": s, "affirmative": s},
		"Log.Level":           {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":          {"json": s, "text": s},
		"Log.Destination":     {"file": s, "stderr": s, "stdout": s},
	}
	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}
	if _, ok := data[name][val]; ok {
		return true
	} else {
		gn.Warn(
			"<em>%s</em> does not support '%s' as a value. "+
				"Valid values are: \n%s\nIgnoring...",
			name, val, strings.Join(lines, "\n"),
		)
		return false
	}
}
