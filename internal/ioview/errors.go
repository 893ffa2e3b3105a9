package ioview

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/skillgap/pkg/errcode"
)

// FormatError is returned for an unsupported output format.
func FormatError(s string) error {
	msg := `Unknown output format <em>%s</em>
Supported formats: text, json, yaml`
	vars := []any{s}

	return &gn.Error{
		Code: errcode.OutputFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown output format '%s'", s),
	}
}

// WriteError is returned when rendered output cannot be written or
// encoded.
func WriteError(err error) error {
	msg := "Cannot write output"

	return &gn.Error{
		Code: errcode.OutputWriteError,
		Msg:  msg,
		Err:  fmt.Errorf("cannot write output: %w", err),
	}
}
