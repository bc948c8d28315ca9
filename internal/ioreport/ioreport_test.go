package ioreport_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"gnsadm/internal/ioreport"
	"gnsadm/pkg/gnsadm"
)

func sampleDivisions() []gnsadm.Division {
	return []gnsadm.Division{
		{
			CountryCode: "FR", CountryName: "France",
			CountryFullName: "French Republic",
			Level:           "ADM1", Name: "Normandie",
			ADM1Code: "28", Latitude: 49.1, Longitude: 0.3,
			FeatureID: 200, NameID: 2000,
			NameType: "N", NameRank: "1", LanguageCode: "fra",
		},
		{
			CountryCode: "CA", CountryName: "Canada",
			CountryFullName: "Canada",
			Level:           "ADM1", Name: "Quebec",
			ADM1Code: "10", Latitude: 52.0, Longitude: -72.0,
			FeatureID: 100, NameID: 1000,
			NameType: "N", NameRank: "1", LanguageCode: "eng",
			ScriptCode: "latn",
		},
		{
			CountryCode: "CA", CountryName: "Canada",
			CountryFullName: "Canada",
			Level:           "ADM2", Name: "Montreal",
			ADM1Code: "10", Latitude: 45.5, Longitude: -73.6,
			FeatureID: 101, NameID: 1010,
			NameType: "N", NameRank: "2", LanguageCode: "eng",
		},
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")

	err := ioreport.Write(path, sampleDivisions(), 30, "run-1")
	require.NoError(t, err)

	divs, err := ioreport.ReadDivisions(path)
	require.NoError(t, err)

	// Read order is the primary view order, not input order.
	require.Len(t, divs, 3)
	assert.Equal(t, "Quebec", divs[0].Name)
	assert.Equal(t, "Montreal", divs[1].Name)
	assert.Equal(t, "Normandie", divs[2].Name)

	q := divs[0]
	assert.Equal(t, "CA", q.CountryCode)
	assert.Equal(t, "Canada", q.CountryFullName)
	assert.Equal(t, "ADM1", q.Level)
	assert.Equal(t, "10", q.ADM1Code)
	assert.InDelta(t, 52.0, q.Latitude, 1e-9)
	assert.InDelta(t, -72.0, q.Longitude, 1e-9)
	assert.Equal(t, int64(100), q.FeatureID)
	assert.Equal(t, int64(1000), q.NameID)
	assert.Equal(t, "1", q.NameRank)
	assert.Equal(t, "latn", q.ScriptCode)
}

func TestWriteSheetSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")

	err := ioreport.Write(path, sampleDivisions(), 5, "run-1")
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, ioreport.SheetAll)
	assert.Contains(t, sheets, "ADM1_Divisions")
	assert.Contains(t, sheets, "ADM2_Divisions")
	assert.Contains(t, sheets, ioreport.SheetSummary)
	assert.Contains(t, sheets, "Top_5_Countries")
	assert.NotContains(t, sheets, "Sheet1")
	assert.NotContains(t, sheets, "ADMD_Divisions")
}

func TestWriteSummaryContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")

	err := ioreport.Write(path, sampleDivisions(), 30, "run-1")
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(ioreport.SheetSummary)
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t,
		[]string{"Country_Code", "Country_Name", "ADM1", "ADM2", "Total"},
		rows[0])
	// Canada has more divisions, so it leads the pivot.
	assert.Equal(t, []string{"CA", "Canada", "1", "1", "2"}, rows[1])
	assert.Equal(t, "FR", rows[2][0])
}

func TestWriteLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.xlsx")

	err := ioreport.Write(path, sampleDivisions(), 30, "run-1")
	require.NoError(t, err)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file should be renamed away")
}

func TestWriteEmptySet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")

	err := ioreport.Write(path, nil, 30, "run-1")
	require.NoError(t, err)

	divs, err := ioreport.ReadDivisions(path)
	require.NoError(t, err)
	assert.Empty(t, divs)
}

func TestReadMissingFile(t *testing.T) {
	_, err := ioreport.ReadDivisions(
		filepath.Join(t.TempDir(), "no-such.xlsx"))
	assert.Error(t, err)
}

func TestReadForeignWorkbook(t *testing.T) {
	// A workbook without the expected primary sheet is rejected.
	path := filepath.Join(t.TempDir(), "foreign.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	_, err := ioreport.ReadDivisions(path)
	assert.Error(t, err)
}
