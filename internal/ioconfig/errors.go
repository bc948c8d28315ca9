package ioconfig

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"

	"gnsadm/pkg/errcode"
)

func WriteConfigError(path string, err error) error {
	msg := "Cannot write config file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ConfigWriteError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot write config: %w",
			fn, err),
	}
}

func ReadConfigError(path string, err error) error {
	msg := "Cannot read config file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ConfigReadError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot read config: %w",
			fn, err),
	}
}
