// Package lookup provides the pure matching core behind the query
// command. Interactive and one-shot front ends are thin adapters over
// Match; no logic here depends on how the query arrived.
package lookup

import (
	"strings"

	"gnsadm/pkg/gnsadm"
)

// Filter describes one query. Zero-value fields match everything.
type Filter struct {
	// CountryCode matches the country code exactly, case-insensitive.
	CountryCode string
	// Level matches the designation code exactly, case-insensitive.
	Level string
	// Name matches as a case-insensitive substring of the division name.
	Name string
}

// IsZero reports whether the filter constrains nothing.
func (f Filter) IsZero() bool {
	return f.CountryCode == "" && f.Level == "" && f.Name == ""
}

// Match returns the divisions satisfying every set field of the filter,
// in input order.
func Match(divs []gnsadm.Division, f Filter) []gnsadm.Division {
	code := strings.ToUpper(strings.TrimSpace(f.CountryCode))
	level := strings.ToUpper(strings.TrimSpace(f.Level))
	name := strings.ToLower(strings.TrimSpace(f.Name))

	var res []gnsadm.Division
	for _, d := range divs {
		if code != "" && strings.ToUpper(d.CountryCode) != code {
			continue
		}
		if level != "" && strings.ToUpper(d.Level) != level {
			continue
		}
		if name != "" && !strings.Contains(strings.ToLower(d.Name), name) {
			continue
		}
		res = append(res, d)
	}
	return res
}

// Stats summarizes a division set for the stats command.
type Stats struct {
	Total     int
	Countries int
	ByLevel   map[string]int
}

// Summarize computes dataset statistics.
func Summarize(divs []gnsadm.Division) Stats {
	countries := make(map[string]bool)
	byLevel := make(map[string]int)
	for _, d := range divs {
		countries[d.CountryCode] = true
		byLevel[d.Level]++
	}
	return Stats{
		Total:     len(divs),
		Countries: len(countries),
		ByLevel:   byLevel,
	}
}
