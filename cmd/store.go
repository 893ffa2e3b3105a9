package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/gnames/skillgap/internal/iodb"
	"github.com/gnames/skillgap/internal/iomemory"
	"github.com/gnames/skillgap/internal/iosqlite"
	"github.com/gnames/skillgap/internal/iostore"
	"github.com/gnames/skillgap/internal/ioview"
	"github.com/gnames/skillgap/pkg/db"
	"github.com/gnames/skillgap/pkg/rollup"
	"github.com/spf13/cobra"
)

// openStore opens the record store selected by cfg.Store.Type.
// The returned function releases resources of the store.
func openStore(ctx context.Context) (rollup.Store, func(), error) {
	switch cfg.Store.Type {
	case "sqlite":
		st, err := openSQLite(ctx)
		if err != nil {
			return nil, nil, err
		}
		has, err := st.HasTables(ctx)
		if err == nil && !has {
			err = iodb.EmptyDatabaseError("sqlite", cfg.Store.SQLitePath)
		}
		if err != nil {
			st.Close()
			return nil, nil, err
		}
		return st, func() { st.Close() }, nil

	case "postgres":
		op, err := connectPostgres(ctx)
		if err != nil {
			return nil, nil, err
		}
		has, err := op.HasTables(ctx)
		if err == nil && !has {
			err = iodb.EmptyDatabaseError(cfg.Database.Host, cfg.Database.Database)
		}
		var st iostore.Store
		if err == nil {
			st, err = iostore.New(op)
		}
		if err != nil {
			op.Close()
			return nil, nil, err
		}
		return st, func() { op.Close() }, nil

	case "memory":
		st, err := iomemory.Open(cfg.Store.DataFile)
		if err != nil {
			return nil, nil, err
		}
		return st, func() {}, nil
	}

	return nil, nil, UnknownStoreError(cfg.Store.Type)
}

func openSQLite(ctx context.Context) (*iosqlite.Store, error) {
	st, err := iosqlite.Open(ctx, cfg.Store.SQLitePath)
	if err != nil {
		return nil, err
	}
	gn.Info("Opened SQLite database <em>%s</em>", cfg.Store.SQLitePath)
	return st, nil
}

func connectPostgres(ctx context.Context) (db.Operator, error) {
	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return nil, err
	}
	gn.Info("Connected to database <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)
	return op, nil
}

// withEngine opens the store, builds the engine and a renderer for the
// requested format, and runs fn with them.
func withEngine(
	cmd *cobra.Command,
	fn func(ctx context.Context, eng rollup.Engine, r *ioview.Renderer) error,
) error {
	ctx := context.Background()

	f, err := ioview.ParseFormat(flags.format)
	if err != nil {
		return err
	}

	st, closeStore, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	eng := rollup.New(cfg, st)
	return fn(ctx, eng, ioview.New(cmd.OutOrStdout(), f))
}

func parseLevelArg(s string) (rollup.Level, error) {
	l, ok := rollup.ParseLevel(s)
	if !ok {
		return l, LevelError(s)
	}
	return l, nil
}
