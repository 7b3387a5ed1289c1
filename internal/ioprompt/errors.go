package ioprompt

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/root31/nursery/pkg/errcode"
)

// AbandonedError means the input ended before a value was given.
func AbandonedError(label string) error {
	msg := "Input for <em>%s</em> was abandoned"
	vars := []any{label}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InputAbandonedError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: no input for %q", fn.Name(), label),
	}
}

func ReadInputError(label string, err error) error {
	msg := "Cannot read input for <em>%s</em>"
	vars := []any{label}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InputFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read %q: %w", fn.Name(), label, err),
	}
}
