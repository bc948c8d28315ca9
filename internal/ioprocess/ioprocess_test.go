package ioprocess_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gnsadm/internal/ioprocess"
	"gnsadm/internal/ioreport"
	"gnsadm/pkg/config"
)

const regionsHeader = "ufi\tuni\tfull_name\tnt\tlat_dd\tlong_dd\t" +
	"desig_cd\tcc_ft\tadm1\tname_rank\tlang_cd\ttransl_cd\tscript_cd\t" +
	"display\tgeneric"

func row(fields ...string) string { return strings.Join(fields, "\t") }

func processConfig(t *testing.T, countries, regions string) *config.Config {
	t.Helper()
	dir := t.TempDir()

	countriesPath := filepath.Join(dir, "countries.csv")
	require.NoError(t, os.WriteFile(countriesPath, []byte(countries), 0644))
	regionsPath := filepath.Join(dir, "regions.txt")
	require.NoError(t, os.WriteFile(regionsPath, []byte(regions), 0644))

	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptInputCountriesFile(countriesPath),
		config.OptInputRegionsFile(regionsPath),
		config.OptReportFile(filepath.Join(dir, "report.xlsx")),
	})
	return cfg
}

func TestProcess(t *testing.T) {
	countries := strings.Join([]string{
		"Country_Code,Short_Name,Full_Name",
		"CA,Canada,Canada",
		"FR,France,French Republic",
	}, "\n")
	regions := strings.Join([]string{
		regionsHeader,
		// Two variants of the same feature: the approved name wins.
		row("100", "1", "Kebek", "V", "52.0", "-72.0", "ADM1", "CA", "10",
			"1", "eng", "", "latn", "1,2", ""),
		row("100", "2", "Quebec", "N", "52.0", "-72.0", "ADM1", "CA", "10",
			"1", "eng", "", "latn", "1,2", ""),
		// Populated place, filtered by level.
		row("300", "3", "Paris", "N", "48.8", "2.3", "PPL", "FR", "11",
			"1", "fra", "", "latn", "1", ""),
		// Second feature.
		row("200", "4", "Normandie", "N", "49.1", "0.3", "ADM1", "FR", "28",
			"1", "fra", "", "latn", "1", ""),
	}, "\n")

	cfg := processConfig(t, countries, regions)
	err := ioprocess.New(cfg).Process(context.Background())
	require.NoError(t, err)

	divs, err := ioreport.ReadDivisions(cfg.Report.File)
	require.NoError(t, err)

	require.Len(t, divs, 2)
	assert.Equal(t, "Quebec", divs[0].Name)
	assert.Equal(t, "Canada", divs[0].CountryName)
	assert.Equal(t, "Normandie", divs[1].Name)
	assert.Equal(t, "French Republic", divs[1].CountryFullName)
}

func TestProcessEmptyExtract(t *testing.T) {
	countries := "Country_Code,Short_Name,Full_Name\nCA,Canada,Canada\n"
	regions := regionsHeader + "\n"

	cfg := processConfig(t, countries, regions)
	err := ioprocess.New(cfg).Process(context.Background())
	require.NoError(t, err)

	// The workbook is written even when nothing survives filtering.
	divs, err := ioreport.ReadDivisions(cfg.Report.File)
	require.NoError(t, err)
	assert.Empty(t, divs)
}

func TestProcessMissingCountries(t *testing.T) {
	cfg := processConfig(t, "x", regionsHeader+"\n")
	cfg.Update([]config.Option{
		config.OptInputCountriesFile(
			filepath.Join(t.TempDir(), "absent.csv")),
	})

	err := ioprocess.New(cfg).Process(context.Background())
	assert.Error(t, err)

	_, statErr := os.Stat(cfg.Report.File)
	assert.True(t, os.IsNotExist(statErr), "no report on failure")
}
