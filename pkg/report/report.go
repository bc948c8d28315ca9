// Package report projects the canonical division set into the views
// the workbook is built from: the ordered primary list, per-level
// partitions, the country-by-level pivot, and the top-N slice. All
// functions are pure and leave their input untouched.
package report

import (
	"fmt"
	"sort"

	"gnsadm/pkg/gnsadm"
)

// OrderPrimary returns the divisions sorted by country display name,
// administrative level, then division name, all ascending byte-wise.
func OrderPrimary(divs []gnsadm.Division) []gnsadm.Division {
	res := make([]gnsadm.Division, len(divs))
	copy(res, divs)
	sort.SliceStable(res, func(i, j int) bool {
		a, b := res[i], res[j]
		if a.CountryName != b.CountryName {
			return a.CountryName < b.CountryName
		}
		if a.Level != b.Level {
			return a.Level < b.Level
		}
		return a.Name < b.Name
	})
	return res
}

// PartitionByLevel splits divisions into one slice per distinct
// designation code, preserving the order rows arrive in. Feed it the
// output of OrderPrimary to keep the primary-view ordering within each
// partition.
func PartitionByLevel(divs []gnsadm.Division) map[string][]gnsadm.Division {
	res := make(map[string][]gnsadm.Division)
	for _, d := range divs {
		res[d.Level] = append(res[d.Level], d)
	}
	return res
}

// LevelsPresent returns the distinct designation codes in ascending
// order. Lexicographic order matches the conventional level order
// (ADM1 through ADM4, then ADMD).
func LevelsPresent(divs []gnsadm.Division) []string {
	seen := make(map[string]bool)
	var res []string
	for _, d := range divs {
		if !seen[d.Level] {
			seen[d.Level] = true
			res = append(res, d.Level)
		}
	}
	sort.Strings(res)
	return res
}

// CountrySummary is one pivot row: division counts per level for a
// single country, with the derived total.
type CountrySummary struct {
	CountryCode string
	CountryName string
	Counts      map[string]int
	Total       int
}

// Summarize builds the country-by-level pivot, sorted by total
// descending with ties broken by country code ascending.
func Summarize(divs []gnsadm.Division) []CountrySummary {
	byCode := make(map[string]*CountrySummary)
	var order []string
	for _, d := range divs {
		row, ok := byCode[d.CountryCode]
		if !ok {
			row = &CountrySummary{
				CountryCode: d.CountryCode,
				CountryName: d.CountryName,
				Counts:      make(map[string]int),
			}
			byCode[d.CountryCode] = row
			order = append(order, d.CountryCode)
		}
		row.Counts[d.Level]++
		row.Total++
	}

	res := make([]CountrySummary, 0, len(order))
	for _, code := range order {
		res = append(res, *byCode[code])
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Total != res[j].Total {
			return res[i].Total > res[j].Total
		}
		return res[i].CountryCode < res[j].CountryCode
	})
	return res
}

// TopN returns the first n pivot rows; n larger than the pivot returns
// the whole pivot.
func TopN(pivot []CountrySummary, n int) []CountrySummary {
	if n < 0 {
		n = 0
	}
	if n > len(pivot) {
		n = len(pivot)
	}
	return pivot[:n]
}

// TopSheetName names the top-countries view for a given n.
func TopSheetName(n int) string {
	return fmt.Sprintf("Top_%d_Countries", n)
}
