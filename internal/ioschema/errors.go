package ioschema

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/skillgap/pkg/errcode"
)

// NotConnectedError is returned when create or migrate runs before the
// PostgreSQL pool exists.
func NotConnectedError() error {
	msg := `Cannot build skillgap tables without a PostgreSQL connection

<em>How to fix:</em>
  Check the <em>database</em> section of ~/.config/skillgap/config.yaml`

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("schema manager has no connection pool"),
	}
}

// GORMConnectionError is returned when GORM cannot wrap the pgx pool.
func GORMConnectionError(err error) error {
	msg := "Cannot prepare the PostgreSQL session for skillgap tables"

	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  msg,
		Err:  fmt.Errorf("gorm open on pgx pool: %w", err),
	}
}

// CreateSchemaError is returned when employees, skills or
// training_resources tables cannot be created.
func CreateSchemaError(err error) error {
	msg := `Cannot create skillgap tables

<em>How to fix:</em>
  1. Make sure the database user may CREATE tables
  2. Run <em>skillgap create --force</em> again`

	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Err:  fmt.Errorf("create skillgap tables: %w", err),
	}
}

// MigrateSchemaError is returned when existing skillgap tables cannot be
// brought up to date.
func MigrateSchemaError(err error) error {
	msg := `Cannot update skillgap tables

<em>How to fix:</em>
  If the tables were changed by hand, recreate them with
  <em>skillgap create --force</em> and run <em>skillgap populate</em>`

	return &gn.Error{
		Code: errcode.SchemaMigrateError,
		Msg:  msg,
		Err:  fmt.Errorf("migrate skillgap tables: %w", err),
	}
}

// CollationError is returned when a name column cannot switch to "C"
// collation, which keeps database ordering equal to engine ordering.
func CollationError(table, column string, err error) error {
	msg := `Cannot set byte-wise ordering on <em>%s.%s</em>

Hierarchy names would sort differently in PostgreSQL and in memory.`
	vars := []any{table, column}

	return &gn.Error{
		Code: errcode.SchemaCollationError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"set C collation on %s.%s: %w", table, column, err),
	}
}
