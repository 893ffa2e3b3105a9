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
	"github.com/gnames/skillgap/internal/iodb"
	"github.com/gnames/skillgap/internal/iofs"
	"github.com/gnames/skillgap/internal/iopopulate"
	"github.com/gnames/skillgap/internal/ioview"
	"github.com/gnames/skillgap/pkg/lifecycle"
	"github.com/spf13/cobra"
)

// getPopulateCmd returns the populate command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getPopulateCmd() *cobra.Command {
	populateCmd := &cobra.Command{
		Use:   "populate",
		Short: "Populate database with employee and skill records",
		Long: `Import employees, skills and training resources from a YAML
records file.

This command:
  1. Reads and validates the records file (--data or store.data_file)
  2. Opens the SQLite file or connects to PostgreSQL
  3. Classifies current and future gaps of every skill concurrently
  4. Replaces all stored records in one transaction
  5. Reports counts of imported records and gaps

Gap flags are saved with skills. With --stored-gaps the engine reads
them instead of recomputing verdicts.

Examples:
  skillgap populate --store sqlite --data team.yaml
  skillgap populate -s postgres -d team.yaml -j 8
  skillgap populate -s sqlite -o json`,
		Aliases: []string{"import"},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runPopulate(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	return populateCmd
}

func runPopulate(cmd *cobra.Command) error {
	ctx := context.Background()

	f, err := ioview.ParseFormat(flags.format)
	if err != nil {
		return err
	}

	if cfg.Store.Type == "memory" {
		gn.Warn(`Memory store reads <em>%s</em> directly, nothing to populate.
   Use <em>--store sqlite</em> or <em>--store postgres</em>.`,
			cfg.Store.DataFile)
		return nil
	}

	recs, err := iofs.ReadRecords(cfg.Store.DataFile)
	if err != nil {
		return err
	}
	gn.Info("Read records from <em>%s</em>", cfg.Store.DataFile)

	var p lifecycle.Populator
	switch cfg.Store.Type {
	case "sqlite":
		st, err := openSQLite(ctx)
		if err != nil {
			return err
		}
		defer st.Close()
		if err = st.Create(ctx); err != nil {
			return err
		}
		p = iopopulate.NewSQLite(cfg, st)

	case "postgres":
		op, err := connectPostgres(ctx)
		if err != nil {
			return err
		}
		defer op.Close()

		hasTables, err := op.HasTables(ctx)
		if err != nil {
			return err
		}
		if !hasTables {
			return iodb.EmptyDatabaseError(cfg.Database.Host, cfg.Database.Database)
		}
		p = iopopulate.NewPostgres(cfg, op)

	default:
		return UnknownStoreError(cfg.Store.Type)
	}

	gn.Info("Starting data population...")
	rep, err := p.Populate(ctx, recs)
	if err != nil {
		return err
	}

	if f != ioview.Text {
		return ioview.New(cmd.OutOrStdout(), f).Report(rep)
	}

	gn.Info(`Next steps:
	 - Run '<em>skillgap rollup gdl NAME</em>' to see gaps of a whole group
	 - Run '<em>skillgap employee NBK --plan</em>' for an upskill plan
`)
	return nil
}
