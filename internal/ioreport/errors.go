package ioreport

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/gn"

	"gnsadm/pkg/errcode"
)

var errMissingHeader = errors.New("header row is missing or incomplete")

func WriteError(path string, err error) error {
	msg := "Cannot write report workbook <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReportWriteError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot write workbook: %w",
			fn, err),
	}
}

func RenameError(path string, err error) error {
	msg := `Report workbook was written but could not be moved to <em>%s</em>

The temporary file next to it has been removed.`
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReportRenameError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot rename workbook: %w",
			fn, err),
	}
}

func ReadError(path string, err error) error {
	msg := `Cannot open report workbook <em>%s</em>

Run <em>gnsadm process</em> first to generate it.`
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReportReadError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot open workbook: %w",
			fn, err),
	}
}

func SheetError(path, sheet string, err error) error {
	msg := `Workbook <em>%s</em> does not contain a usable <em>%s</em> sheet

The file may not have been produced by <em>gnsadm process</em>.`
	vars := []any{path, sheet}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReportSheetError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: sheet %s: %w", fn, sheet, err),
	}
}
