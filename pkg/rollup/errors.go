package rollup

import (
	"errors"
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/skillgap/pkg/errcode"
)

// NotFoundError is returned when an employee lookup finds nothing.
func NotFoundError(nbk string) error {
	msg := "Employee <em>%s</em> not found"
	vars := []any{nbk}

	return &gn.Error{
		Code: errcode.EmployeeNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("employee %s not found", nbk),
	}
}

// InvalidLevelError is returned when an operation gets a level it cannot
// work with.
func InvalidLevelError(op string, l Level) error {
	msg := `Level <em>%s</em> cannot be used for %s

<em>Valid levels:</em> manager, dl, dh, gdl`
	vars := []any{l.String(), op}

	return &gn.Error{
		Code: errcode.InvalidLevelError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("invalid level %d for %s", l, op),
	}
}

// IsNotFound returns true if error was created by NotFoundError.
func IsNotFound(err error) bool {
	var gnErr *gn.Error
	if errors.As(err, &gnErr) {
		return gnErr.Code == errcode.EmployeeNotFoundError
	}
	return false
}
