package iopopulate

import (
	"context"
	"log/slog"

	"github.com/gnames/skillgap/internal/iosqlite"
	"github.com/gnames/skillgap/pkg/schema"
)

type sqliteWriter struct {
	store *iosqlite.Store
}

func (w *sqliteWriter) write(ctx context.Context, recs *schema.Records) error {
	if err := w.store.Import(ctx, recs); err != nil {
		return err
	}
	slog.Info("Imported records into SQLite")
	return nil
}
