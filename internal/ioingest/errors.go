package ioingest

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"

	"gnsadm/pkg/errcode"
)

func CountriesFileError(path string, err error) error {
	msg := `Cannot read the country reference table

<em>Expected file:</em> %s

Provide the file with <em>--countries</em>, the config file, or
<em>GNSADM_INPUT_COUNTRIES_FILE</em>.`
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CountriesFileError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot read countries file: %w",
			fn, err),
	}
}

func countriesHeaderError(path, column string) error {
	msg := `The country reference table is missing column <em>%s</em>

<em>File:</em> %s

Expected a CSV with Country_Code, Short_Name and Full_Name columns.`
	vars := []any{column, path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CountriesHeaderError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: missing column %q in %s",
			fn, column, path),
	}
}

func RegionsFileError(path string, err error) error {
	msg := `Cannot read the administrative regions extract

<em>Expected file:</em> %s

Provide the file with <em>--regions</em>, the config file, or
<em>GNSADM_INPUT_REGIONS_FILE</em>.`
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.RegionsFileError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot read regions file: %w",
			fn, err),
	}
}

func regionsHeaderError(path, column string) error {
	msg := `The administrative regions extract is missing column <em>%s</em>

<em>File:</em> %s

The extract must be the tab-separated GEOnet administrative regions
file with its original header row.`
	vars := []any{column, path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.RegionsHeaderError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: missing column %q in %s",
			fn, column, path),
	}
}
