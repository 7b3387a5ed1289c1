package iostore

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/root31/nursery/pkg/errcode"
	"github.com/root31/nursery/pkg/inventory"
)

func StoreOpenError(path string, err error) error {
	msg := "Cannot open data store <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StoreOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot open %s: %w", fn.Name(), path, err),
	}
}

func StoreReadError(path string, err error) error {
	msg := "Cannot read <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StoreReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read %s: %w", fn.Name(), path, err),
	}
}

// StoreDecodeError reports malformed content. With skipped > 0 the
// collection loaded partially.
func StoreDecodeError(
	path, collection string,
	skipped int,
	err error,
) error {
	msg := "Malformed <em>%s</em> data in %s, nothing loaded"
	vars := []any{collection, path}
	if skipped > 0 {
		msg = "Skipped <em>%d</em> malformed %s record(s) in %s"
		vars = []any{skipped, collection, path}
	}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StoreDecodeError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot decode %s from %s: %w",
			fn.Name(), collection, path, err),
	}
}

func StoreWriteError(path string, err error) error {
	msg := "Cannot save data to <em>%s</em>, changes are kept in memory"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StoreWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot write %s: %w", fn.Name(), path, err),
	}
}

func StoreCloseError(path string, err error) error {
	msg := "Cannot close data store <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StoreCloseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot close %s: %w", fn.Name(), path, err),
	}
}

// IsPersistence is true for errors of reading or writing stored data.
func IsPersistence(err error) bool {
	return inventory.HasCode(err,
		errcode.StoreOpenError,
		errcode.StoreReadError,
		errcode.StoreDecodeError,
		errcode.StoreWriteError,
		errcode.StoreCloseError,
	)
}
