// Package iosplit exports the primary workbook into one workbook per
// country. Writes are independent of each other, so they run on a
// bounded worker group; row order within each country follows the
// primary view.
package iosplit

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/dustin/go-humanize"
	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"

	"gnsadm/internal/ioreport"
	"gnsadm/pkg/config"
	"gnsadm/pkg/gnsadm"
)

type splitter struct {
	cfg *config.Config
}

// New creates a Splitter reading the workbook and export directory
// locations from cfg.
func New(cfg *config.Config) gnsadm.Splitter {
	return &splitter{cfg: cfg}
}

// Split reads the primary workbook and writes one workbook per country
// into the export directory.
func (s *splitter) Split(ctx context.Context) error {
	divs, err := ioreport.ReadDivisions(s.cfg.Report.File)
	if err != nil {
		return err
	}

	groups, order := groupByCountry(divs)
	if len(order) == 0 {
		slog.Info("No countries to export", "workbook", s.cfg.Report.File)
		return nil
	}

	if err = os.MkdirAll(s.cfg.Split.Dir, 0755); err != nil {
		return DirError(s.cfg.Split.Dir, err)
	}

	slog.Info("Exporting countries",
		"count", len(order),
		"dir", s.cfg.Split.Dir,
		"rows", humanize.Comma(int64(len(divs))),
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.JobsNumber)
	for _, country := range order {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(
				s.cfg.Split.Dir, SanitizeFilename(country)+".xlsx")
			if err := writeCountry(path, groups[country]); err != nil {
				return ExportError(country, path, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// groupByCountry buckets divisions by display name, keeping the order
// countries first appear in. Rows with no resolved country name have
// no meaningful filename and are skipped.
func groupByCountry(
	divs []gnsadm.Division,
) (map[string][]gnsadm.Division, []string) {
	groups := make(map[string][]gnsadm.Division)
	var order []string
	skipped := 0
	for _, d := range divs {
		if strings.TrimSpace(d.CountryName) == "" {
			skipped++
			continue
		}
		if _, ok := groups[d.CountryName]; !ok {
			order = append(order, d.CountryName)
		}
		groups[d.CountryName] = append(groups[d.CountryName], d)
	}
	if skipped > 0 {
		slog.Warn("Skipped rows without country name", "count", skipped)
	}
	return groups, order
}

func writeCountry(path string, divs []gnsadm.Division) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Divisions"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	for i, name := range ioreport.Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
	}
	for rowIdx, d := range divs {
		row := rowIdx + 2
		vals := []any{
			d.CountryCode, d.CountryName, d.CountryFullName,
			d.Level, d.Name, d.ADM1Code,
			d.Latitude, d.Longitude,
			d.FeatureID, d.NameID,
			d.NameType, d.NameRank, d.LanguageCode,
			d.TransliterationCode, d.ScriptCode, d.GenericTerm,
		}
		for i, v := range vals {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	tmp := fmt.Sprintf("%s.tmp", path)
	if err := f.SaveAs(tmp); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}

// SanitizeFilename keeps only letters, digits and spaces from a
// country display name and trims trailing spaces, producing a name
// safe for any file system.
func SanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimRight(b.String(), " \t")
}
