package iopopulate

import (
	"context"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/gnames/skillgap/internal/iosql"
	"github.com/gnames/skillgap/pkg/db"
	"github.com/gnames/skillgap/pkg/schema"
	"github.com/jackc/pgx/v5"
)

type pgWriter struct {
	operator  db.Operator
	batchSize int
}

// write replaces all rows in one transaction. Tables are truncated
// and refilled with CopyFrom in batches.
func (w *pgWriter) write(ctx context.Context, recs *schema.Records) error {
	pool := w.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return iosql.InsertError("begin", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, "TRUNCATE employees, skills, training_resources")
	if err != nil {
		return iosql.InsertError("truncate", err)
	}

	if err = copyRows(ctx, tx, schema.Employee{}, recs.Employees, w.batchSize); err != nil {
		return err
	}
	if err = copyRows(ctx, tx, schema.Skill{}, recs.Skills, w.batchSize); err != nil {
		return err
	}
	err = copyRows(ctx, tx, schema.TrainingResource{}, recs.TrainingResources, w.batchSize)
	if err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return iosql.InsertError("commit", err)
	}
	return nil
}

// copyRows performs bulk insert using pgx CopyFrom.
func copyRows[T any](
	ctx context.Context,
	tx pgx.Tx,
	model schema.DDLGenerator,
	rows []T,
	batchSize int,
) error {
	table := model.TableName()
	cols := schema.Columns(model)
	batchSize = max(batchSize, 1)

	var total int64
	for i := 0; i < len(rows); i += batchSize {
		end := min(i+batchSize, len(rows))
		records := make([][]any, 0, end-i)
		for _, r := range rows[i:end] {
			records = append(records, schema.Values(r))
		}

		n, err := tx.CopyFrom(
			ctx,
			pgx.Identifier{table},
			cols,
			pgx.CopyFromRows(records),
		)
		if err != nil {
			return iosql.InsertError(table, err)
		}
		total += n
	}

	slog.Info("Inserted rows", "table", table, "count", humanize.Comma(total))
	return nil
}
