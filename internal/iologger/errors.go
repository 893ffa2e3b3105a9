package iologger

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/skillgap/pkg/errcode"
)

// CreateLogFileError is returned when skillgap.log cannot be opened for
// the "file" log destination.
func CreateLogFileError(path string, err error) error {
	msg := `Cannot open log file <em>%s</em>

<em>How to fix:</em>
  Set <em>log.destination</em> to stderr in ~/.config/skillgap/config.yaml
  or export SKILLGAP_LOG_DESTINATION=stderr`
	vars := []any{path}
	return &gn.Error{
		Code: errcode.CreateLogFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("open skillgap log %s: %w", path, err),
	}
}
