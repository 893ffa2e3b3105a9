package iosql

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/skillgap/pkg/errcode"
)

// OpenError is returned when a record store cannot be opened.
func OpenError(target string, err error) error {
	msg := "Cannot open record store <em>%s</em>"
	vars := []any{target}

	return &gn.Error{
		Code: errcode.StoreOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot open store %s: %w", target, err),
	}
}

// QueryError is returned when a store query fails.
func QueryError(op string, err error) error {
	msg := "Record store query <em>%s</em> failed"
	vars := []any{op}

	return &gn.Error{
		Code: errcode.StoreQueryError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("query %s failed: %w", op, err),
	}
}

// InsertError is returned when records cannot be written.
func InsertError(table string, err error) error {
	msg := "Cannot insert records into <em>%s</em>"
	vars := []any{table}

	return &gn.Error{
		Code: errcode.PopulateInsertError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("insert into %s failed: %w", table, err),
	}
}
