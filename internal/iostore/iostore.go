// Package iostore implements rollup.Store on PostgreSQL. It runs queries
// through the pgx pool of a connected db.Operator.
package iostore

import (
	"context"
	"errors"

	"github.com/gnames/skillgap/internal/iodb"
	"github.com/gnames/skillgap/internal/iosql"
	"github.com/gnames/skillgap/pkg/db"
	"github.com/gnames/skillgap/pkg/rollup"
	"github.com/gnames/skillgap/pkg/schema"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgStore struct {
	pool *pgxpool.Pool
}

// Store is the set of interfaces the PostgreSQL store provides.
type Store interface {
	rollup.Store
	rollup.Distincter
	rollup.ResourceLister
}

// New creates a store on a connected operator.
func New(op db.Operator) (Store, error) {
	pool := op.Pool()
	if pool == nil {
		return nil, iodb.NotConnectedError()
	}
	return &pgStore{pool: pool}, nil
}

// GetEmployee implements rollup.Store.
func (s *pgStore) GetEmployee(
	ctx context.Context,
	nbk string,
) (schema.Employee, bool, error) {
	var res schema.Employee
	row := s.pool.QueryRow(ctx, iosql.GetEmployee(iosql.Dollar), nbk)
	err := row.Scan(schema.Fields(&res)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return res, false, nil
	}
	if err != nil {
		return res, false, iosql.QueryError("get employee", err)
	}
	return res, true, nil
}

// ListEmployees implements rollup.Store.
func (s *pgStore) ListEmployees(
	ctx context.Context,
	f rollup.EmployeeFilter,
) ([]schema.Employee, error) {
	q, args := iosql.ListEmployees(f, iosql.Dollar)
	return query[schema.Employee](ctx, s.pool, "list employees", q, args...)
}

// ListSkills implements rollup.Store.
func (s *pgStore) ListSkills(ctx context.Context, nbk string) ([]schema.Skill, error) {
	q := iosql.ListSkills(iosql.Dollar)
	return query[schema.Skill](ctx, s.pool, "list skills", q, nbk)
}

// ListResources implements rollup.ResourceLister.
func (s *pgStore) ListResources(
	ctx context.Context,
	skillName string,
) ([]schema.TrainingResource, error) {
	q := iosql.ListResources(iosql.Dollar)
	res, err := query[schema.TrainingResource](ctx, s.pool, "list resources", q, skillName)
	if err != nil {
		return nil, err
	}
	schema.SortResources(res)
	return res, nil
}

// DistinctNames implements rollup.Distincter.
func (s *pgStore) DistinctNames(
	ctx context.Context,
	level rollup.Level,
	f rollup.EmployeeFilter,
) ([]string, error) {
	q, args := iosql.DistinctNames(level, f, iosql.Dollar)
	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, iosql.QueryError("distinct names", err)
	}
	res, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, iosql.QueryError("distinct names", err)
	}
	return res, nil
}

func query[T any](
	ctx context.Context,
	pool *pgxpool.Pool,
	op, q string,
	args ...any,
) ([]T, error) {
	rows, err := pool.Query(ctx, q, args...)
	if err != nil {
		return nil, iosql.QueryError(op, err)
	}
	res, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (T, error) {
		var item T
		err := row.Scan(schema.Fields(&item)...)
		return item, err
	})
	if err != nil {
		return nil, iosql.QueryError(op, err)
	}
	return res, nil
}
