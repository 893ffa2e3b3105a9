package cmd

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/skillgap/pkg/errcode"
)

// UnknownStoreError is returned for a store type without implementation.
func UnknownStoreError(s string) error {
	msg := `Unknown store type <em>%s</em>
Supported stores: memory, sqlite, postgres`
	vars := []any{s}

	return &gn.Error{
		Code: errcode.StoreUnknownTypeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown store type '%s'", s),
	}
}

// LevelError is returned when a level argument cannot be parsed.
func LevelError(s string) error {
	msg := `Unknown hierarchy level <em>%s</em>
Supported levels: manager (mgr), dl, dh, gdl`
	vars := []any{s}

	return &gn.Error{
		Code: errcode.LevelParseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown hierarchy level '%s'", s),
	}
}
