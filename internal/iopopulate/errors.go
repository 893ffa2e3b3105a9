package iopopulate

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/skillgap/pkg/errcode"
)

// NotConnectedError creates an error for when populate
// operation is attempted without database connection.
func NotConnectedError() error {
	msg := "Populate operation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// NoRecordsError creates an error for an empty records set.
func NoRecordsError() error {
	msg := `Records file has no employees

<em>How to fix:</em>
  1. Check <em>store.data_file</em> in config or the --data flag
  2. Make sure the file has an <em>employees</em> list`

	return &gn.Error{
		Code: errcode.PopulateNoRecordsError,
		Msg:  msg,
		Err:  fmt.Errorf("no employee records to import"),
	}
}

// CancelledError creates an error for when populate is
// cancelled by the user or a deadline.
func CancelledError(err error) error {
	msg := "Population cancelled"

	return &gn.Error{
		Code: errcode.PopulateCancelledError,
		Msg:  msg,
		Err:  fmt.Errorf("population cancelled: %w", err),
	}
}
