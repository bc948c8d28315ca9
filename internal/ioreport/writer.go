// Package ioreport writes the multi-sheet report workbook and reads it
// back for the split and query commands. Writing is atomic: the
// workbook is saved to a temporary file next to the target and renamed
// only on success, so a failed run never leaves a half-written report.
package ioreport

import (
	"fmt"
	"os"
	"time"

	"github.com/xuri/excelize/v2"

	"gnsadm/pkg/gnsadm"
	"gnsadm/pkg/report"
)

// SheetAll is the name of the primary view.
const SheetAll = "All_Admin_Divisions"

// SheetSummary is the name of the country-by-level pivot view.
const SheetSummary = "Country_Summary"

// Columns is the column set of every division sheet, in order.
var Columns = []string{
	"Country_Code",
	"Country_Name",
	"Country_Full_Name",
	"Administrative_Level",
	"Administrative_Name",
	"ADM1_Code",
	"Latitude",
	"Longitude",
	"Unique_Feature_ID",
	"Unique_Name_ID",
	"Name_Type",
	"Name_Rank",
	"Language_Code",
	"Transliteration_Code",
	"Script_Code",
	"Generic_Term",
}

// Write builds the full workbook from the canonical division set and
// saves it to path. The divisions are re-ordered into the primary view
// ordering first, so every sheet inherits a deterministic row order.
// runID is stamped into the document properties.
func Write(path string, divs []gnsadm.Division, topN int, runID string) error {
	ordered := report.OrderPrimary(divs)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetAll); err != nil {
		return WriteError(path, err)
	}

	style, err := headerStyle(f)
	if err != nil {
		return WriteError(path, err)
	}

	if err = writeDivisionSheet(f, SheetAll, ordered, style); err != nil {
		return WriteError(path, err)
	}

	byLevel := report.PartitionByLevel(ordered)
	for _, level := range report.LevelsPresent(ordered) {
		sheet := fmt.Sprintf("%s_Divisions", level)
		if _, err = f.NewSheet(sheet); err != nil {
			return WriteError(path, err)
		}
		if err = writeDivisionSheet(f, sheet, byLevel[level], style); err != nil {
			return WriteError(path, err)
		}
	}

	pivot := report.Summarize(ordered)
	levels := report.LevelsPresent(ordered)
	if err = writeSummarySheet(f, SheetSummary, pivot, levels, style); err != nil {
		return WriteError(path, err)
	}
	top := report.TopSheetName(topN)
	if err = writeSummarySheet(
		f, top, report.TopN(pivot, topN), levels, style,
	); err != nil {
		return WriteError(path, err)
	}

	now := time.Now().Format(time.RFC3339)
	_ = f.SetDocProps(&excelize.DocProperties{
		Creator:    "gnsadm " + gnsadm.Version,
		Identifier: runID,
		Title:      "GNS Administrative Divisions",
		Created:    now,
		Modified:   now,
	})

	return saveAtomic(f, path)
}

// saveAtomic writes the workbook to a temp file in the target's
// directory and renames it into place.
func saveAtomic(f *excelize.File, path string) error {
	tmp := path + ".tmp"
	if err := f.SaveAs(tmp); err != nil {
		os.Remove(tmp)
		return WriteError(path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return RenameError(path, err)
	}
	return nil
}

func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
}

func writeDivisionSheet(
	f *excelize.File,
	sheet string,
	divs []gnsadm.Division,
	style int,
) error {
	for i, name := range Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
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

	for i := range Columns {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, col, col, 18); err != nil {
			return err
		}
	}
	return nil
}

func writeSummarySheet(
	f *excelize.File,
	sheet string,
	pivot []report.CountrySummary,
	levels []string,
	style int,
) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	header := append([]string{"Country_Code", "Country_Name"}, levels...)
	header = append(header, "Total")
	for i, name := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
	}

	for rowIdx, row := range pivot {
		r := rowIdx + 2
		vals := []any{row.CountryCode, row.CountryName}
		for _, level := range levels {
			vals = append(vals, row.Counts[level])
		}
		vals = append(vals, row.Total)
		for i, v := range vals {
			cell, _ := excelize.CoordinatesToCellName(i+1, r)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	for i := range header {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, col, col, 15); err != nil {
			return err
		}
	}
	return nil
}
