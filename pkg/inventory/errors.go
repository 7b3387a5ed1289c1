package inventory

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/root31/nursery/pkg/errcode"
)

func PlantValidationError(f Field, reason string) error {
	msg := "Plant <em>%s</em> %s"
	vars := []any{f.String(), reason}
	return &gn.Error{
		Code: errcode.PlantValidationError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: invalid plant %s: %s",
			caller(), f, reason),
	}
}

func PlantDuplicateIDError(id int) error {
	msg := "Plant ID <em>%d</em> is already taken"
	vars := []any{id}
	return &gn.Error{
		Code: errcode.PlantDuplicateIDError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: duplicate plant id %d", caller(), id),
	}
}

func PlantNotFoundError(id int) error {
	msg := "No plant with ID <em>%d</em>"
	vars := []any{id}
	return &gn.Error{
		Code: errcode.PlantNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: plant %d not found", caller(), id),
	}
}

func SupplierValidationError(field, reason string) error {
	msg := "Supplier <em>%s</em> %s"
	vars := []any{field, reason}
	return &gn.Error{
		Code: errcode.SupplierValidationError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: invalid supplier %s: %s",
			caller(), field, reason),
	}
}

func SupplierNotFoundError(name string) error {
	msg := "No supplier named <em>%s</em>"
	vars := []any{name}
	return &gn.Error{
		Code: errcode.SupplierNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: supplier %q not found", caller(), name),
	}
}

// IsValidation is true for errors caused by a bad field value.
func IsValidation(err error) bool {
	return HasCode(err,
		errcode.PlantValidationError,
		errcode.PlantDuplicateIDError,
		errcode.SupplierValidationError,
	)
}

// IsNotFound is true for errors caused by a missing plant or supplier.
func IsNotFound(err error) bool {
	return HasCode(err, errcode.PlantNotFoundError, errcode.SupplierNotFoundError)
}

// HasCode reports whether err is a *gn.Error with one of the codes.
func HasCode(err error, codes ...gn.ErrorCode) bool {
	var gnErr *gn.Error
	if !errors.As(err, &gnErr) {
		return false
	}
	for _, c := range codes {
		if gnErr.Code == c {
			return true
		}
	}
	return false
}

// caller names the function that called the error constructor.
func caller() string {
	pc, _, _, _ := runtime.Caller(2)
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	return fn.Name()
}
