/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/gnames/skillgap/internal/ioschema"
	"github.com/gnames/skillgap/pkg/lifecycle"
	"github.com/spf13/cobra"
)

// getMigrateCmd returns the migrate command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getMigrateCmd() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrate database schema to latest version",
		Long: `Migrate updates the database schema to the latest version.

This command:
  1. Opens the SQLite file or connects to PostgreSQL
  2. Checks if database schema exists
  3. Adds missing tables, columns and indexes
  4. Preserves existing data (non-destructive)

Migration does NOT delete columns or tables.

Use this command after updating skillgap to get schema changes.

Examples:
  skillgap migrate --store postgres`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runMigrate()
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	return migrateCmd
}

func runMigrate() error {
	ctx := context.Background()

	var st relStore
	var sm lifecycle.SchemaManager

	switch cfg.Store.Type {
	case "memory":
		gn.Warn("Memory store has no schema to migrate")
		return nil
	case "sqlite":
		sqlite, err := openSQLite(ctx)
		if err != nil {
			return err
		}
		defer sqlite.Close()
		st, sm = sqlite, sqlite
	case "postgres":
		op, err := connectPostgres(ctx)
		if err != nil {
			return err
		}
		defer op.Close()
		st, sm = op, ioschema.NewManager(op)
	default:
		return UnknownStoreError(cfg.Store.Type)
	}

	hasTables, err := st.HasTables(ctx)
	if err != nil {
		return err
	}

	if !hasTables {
		gn.Warn(`Warning: Database appears to be empty.
	Run 'skillgap create' first to initialize the schema.`)
		return nil
	}

	gn.Info("Migrating schema to latest version...")
	if err = sm.Migrate(ctx); err != nil {
		return err
	}

	gn.Info("Schema is now up to date.")

	return nil
}
