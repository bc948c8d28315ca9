package iosplit

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"

	"gnsadm/pkg/errcode"
)

func DirError(dir string, err error) error {
	msg := "Cannot create export directory <em>%s</em>"
	vars := []any{dir}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SplitDirError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot create directory: %w",
			fn, err),
	}
}

func ExportError(country, path string, err error) error {
	msg := "Cannot export <em>%s</em> to <em>%s</em>"
	vars := []any{country, path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SplitExportError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot export country: %w",
			fn, err),
	}
}
