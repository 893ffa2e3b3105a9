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
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/skillgap/internal/ioschema"
	"github.com/gnames/skillgap/pkg/lifecycle"
	"github.com/spf13/cobra"
)

// relStore is a relational store that can be (re)created.
type relStore interface {
	HasTables(ctx context.Context) (bool, error)
	DropAllTables(ctx context.Context) error
}

// getCreateCmd returns the create command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getCreateCmd() *cobra.Command {
	var forceCreate bool

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create database schema",
		Long: `Create the skillgap database schema from scratch.

This command:
  1. Opens the SQLite file or connects to PostgreSQL, according to
     the store type
  2. Checks for existing tables and prompts for confirmation
  3. Creates employees, skills and training_resources tables
  4. Sets "C" collation on name columns of PostgreSQL tables

The memory store reads the records file directly and needs no schema.

Use --force to skip confirmation and drop existing tables.

Examples:
  skillgap create --store sqlite
  skillgap create --store postgres --force
  skillgap create -s postgres -f`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runCreate(cmd, forceCreate)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	createCmd.Flags().BoolVarP(&forceCreate, "force", "f",
		false, "drop existing tables without confirmation")

	return createCmd
}

func runCreate(cmd *cobra.Command, force bool) error {
	ctx := context.Background()

	var st relStore
	var sm lifecycle.SchemaManager

	switch cfg.Store.Type {
	case "memory":
		gn.Warn("Memory store reads <em>%s</em> directly, no schema to create",
			cfg.Store.DataFile)
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

	if hasTables {
		if !force {
			gn.Warn("\nWarning: Database contains existing tables.")
			gn.Warn("Creating schema will drop ALL existing tables and data.")
			ok, err := confirm(cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				gn.Warn("Failed to read user input")
				return err
			}
			if !ok {
				gn.Info("Aborted. No changes made.")
				return nil
			}
		}

		gn.Info("Dropping all existing tables...")
		if err = st.DropAllTables(ctx); err != nil {
			return err
		}
		gn.Info("All tables dropped")
	}

	gn.Info("Creating schema...")
	if err = sm.Create(ctx); err != nil {
		return err
	}

	gn.Info("\nDatabase schema creation complete!")
	gn.Info("\nNext steps:")
	gn.Info("  - Run 'skillgap populate' to import records")

	return nil
}

func confirm(r io.Reader, w io.Writer) (bool, error) {
	fmt.Fprint(w, "\nDo you want to continue? (yes/no): ")

	response, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "yes" || response == "y", nil
}
