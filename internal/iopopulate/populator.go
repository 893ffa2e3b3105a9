// Package iopopulate implements the Populator interface for importing
// a records file into PostgreSQL or SQLite.
// This is an impure I/O package: it classifies skill gaps concurrently and
// performs bulk inserts.
package iopopulate

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/skillgap/internal/iosqlite"
	"github.com/gnames/skillgap/pkg/config"
	"github.com/gnames/skillgap/pkg/db"
	"github.com/gnames/skillgap/pkg/lifecycle"
	"github.com/gnames/skillgap/pkg/schema"
	"github.com/google/uuid"
)

// writer replaces the content of a relational store.
type writer interface {
	write(ctx context.Context, recs *schema.Records) error
}

// populator implements the Populator interface.
type populator struct {
	cfg *config.Config
	w   writer
	now func() time.Time
}

// NewPostgres creates a Populator that writes to PostgreSQL with
// pgx CopyFrom.
func NewPostgres(cfg *config.Config, op db.Operator) lifecycle.Populator {
	return &populator{
		cfg: cfg,
		w:   &pgWriter{operator: op, batchSize: cfg.Database.BatchSize},
		now: time.Now,
	}
}

// NewSQLite creates a Populator that writes to a SQLite store.
func NewSQLite(cfg *config.Config, st *iosqlite.Store) lifecycle.Populator {
	return &populator{cfg: cfg, w: &sqliteWriter{store: st}, now: time.Now}
}

// Populate classifies every skill, stores the verdicts as gap flags and
// replaces the content of the store with records.
func (p *populator) Populate(
	ctx context.Context,
	recs *schema.Records,
) (*lifecycle.Report, error) {
	if recs == nil || len(recs.Employees) == 0 {
		return nil, NoRecordsError()
	}

	startTime := time.Now()
	runID := uuid.NewString()
	slog.Info("Starting population",
		"run", runID,
		"employees", humanize.Comma(int64(len(recs.Employees))),
		"skills", humanize.Comma(int64(len(recs.Skills))),
	)

	res, err := p.classify(ctx, recs)
	if err != nil {
		return nil, err
	}

	if err = p.w.write(ctx, recs); err != nil {
		if ctx.Err() != nil {
			return nil, CancelledError(ctx.Err())
		}
		return nil, err
	}

	res.Employees = len(recs.Employees)
	res.Skills = len(recs.Skills)
	res.Resources = len(recs.TrainingResources)
	res.Seconds = time.Since(startTime).Seconds()

	dur := gnfmt.TimeString(res.Seconds)
	slog.Info("Population complete",
		"run", runID,
		"current_gaps", res.CurrentGaps,
		"future_gaps", res.FutureGaps,
		"invalid_skills", res.InvalidSkills,
		"duration", dur,
	)
	gn.Info(`Population complete
Employees: %s, skills: %s, training resources: %s.
Elapsed time: <em>%s</em>`,
		humanize.Comma(int64(res.Employees)),
		humanize.Comma(int64(res.Skills)),
		humanize.Comma(int64(res.Resources)),
		dur,
	)
	if res.InvalidSkills > 0 {
		gn.Warn("%s skills have invalid proficiency values",
			humanize.Comma(int64(res.InvalidSkills)))
	}
	return res, nil
}
