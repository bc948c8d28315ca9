// Package ioingest reads the two delimited inputs of a run: the
// country reference CSV and the tab-separated administrative regions
// extract. Column positions are resolved from the header row once, so
// the rest of the pipeline works with typed records only.
package ioingest

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"gnsadm/pkg/gnsadm"
)

// Country reference column names.
const (
	colCountryCode = "Country_Code"
	colShortName   = "Short_Name"
	colFullName    = "Full_Name"
)

// LoadCountries reads the country reference table into a map keyed by
// country code. The file is small and loaded whole; it stays read-only
// for the rest of the run.
func LoadCountries(path string) (map[string]gnsadm.Country, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, CountriesFileError(path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, CountriesFileError(path, err)
	}
	cols, err := resolveColumns(path, header,
		[]string{colCountryCode, colShortName, colFullName}, countriesHeaderError)
	if err != nil {
		return nil, err
	}

	res := make(map[string]gnsadm.Country)
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, CountriesFileError(path, err)
		}
		country := gnsadm.Country{
			Code:      strings.TrimSpace(field(row, cols[colCountryCode])),
			ShortName: strings.TrimSpace(field(row, cols[colShortName])),
			FullName:  strings.TrimSpace(field(row, cols[colFullName])),
		}
		if country.Code == "" {
			continue
		}
		res[country.Code] = country
	}
	return res, nil
}

// resolveColumns maps required column names to their positions in the
// header. A missing column is a configuration-class error surfaced
// before any row is processed.
func resolveColumns(
	path string,
	header, required []string,
	mkErr func(path, column string) error,
) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	res := make(map[string]int, len(required))
	for _, name := range required {
		i, ok := idx[name]
		if !ok {
			return nil, mkErr(path, name)
		}
		res[name] = i
	}
	return res, nil
}

func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
