// Package iosqlite stores records in a SQLite file. It implements
// rollup.Store for the engine and lifecycle.SchemaManager for the create
// command, and imports records in a single transaction.
package iosqlite

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/gnames/skillgap/internal/iosql"
	"github.com/gnames/skillgap/pkg/rollup"
	"github.com/gnames/skillgap/pkg/schema"
	_ "modernc.org/sqlite"
)

// Store is a rollup.Store on a SQLite database.
type Store struct {
	path string
	db   *sql.DB
}

// Open opens (and creates if needed) a SQLite database file.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, iosql.OpenError(path, err)
	}
	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, iosql.OpenError(path, err)
	}
	return &Store{path: path, db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Create creates tables and indexes.
func (s *Store) Create(ctx context.Context) error {
	for _, m := range schema.AllDDL() {
		stmts := append([]string{m.TableDDL()}, m.IndexDDL()...)
		for _, q := range stmts {
			if _, err := s.db.ExecContext(ctx, q); err != nil {
				return iosql.QueryError("create "+m.TableName(), err)
			}
		}
	}
	slog.Info("SQLite schema created", "path", s.path)
	return nil
}

// Migrate is the same as Create: every statement is idempotent.
func (s *Store) Migrate(ctx context.Context) error {
	return s.Create(ctx)
}

// HasTables checks if the database has the employees table.
func (s *Store) HasTables(ctx context.Context) (bool, error) {
	var name string
	err := s.db.QueryRowContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'employees'",
	).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, iosql.QueryError("has tables", err)
	}
	return true, nil
}

// DropAllTables removes all skillgap tables.
func (s *Store) DropAllTables(ctx context.Context) error {
	for _, m := range schema.AllDDL() {
		_, err := s.db.ExecContext(ctx, "DROP TABLE IF EXISTS "+m.TableName())
		if err != nil {
			return iosql.QueryError("drop "+m.TableName(), err)
		}
	}
	return nil
}

// Import replaces all records in one transaction.
func (s *Store) Import(ctx context.Context, recs *schema.Records) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return iosql.QueryError("begin import", err)
	}
	defer tx.Rollback()

	for _, m := range schema.AllDDL() {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+m.TableName()); err != nil {
			return iosql.InsertError(m.TableName(), err)
		}
	}

	if err = insertAll(ctx, tx, schema.Employee{}, recs.Employees); err != nil {
		return err
	}
	if err = insertAll(ctx, tx, schema.Skill{}, recs.Skills); err != nil {
		return err
	}
	if err = insertAll(ctx, tx, schema.TrainingResource{}, recs.TrainingResources); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return iosql.InsertError("commit", err)
	}
	return nil
}

func insertAll[T any](
	ctx context.Context,
	tx *sql.Tx,
	model schema.DDLGenerator,
	rows []T,
) error {
	if len(rows) == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx, iosql.Insert(model, iosql.Question))
	if err != nil {
		return iosql.InsertError(model.TableName(), err)
	}
	defer stmt.Close()

	for i := range rows {
		if _, err = stmt.ExecContext(ctx, schema.Values(rows[i])...); err != nil {
			return iosql.InsertError(model.TableName(), err)
		}
	}
	return nil
}

// GetEmployee implements rollup.Store.
func (s *Store) GetEmployee(
	ctx context.Context,
	nbk string,
) (schema.Employee, bool, error) {
	var res schema.Employee
	row := s.db.QueryRowContext(ctx, iosql.GetEmployee(iosql.Question), nbk)
	err := row.Scan(schema.Fields(&res)...)
	if errors.Is(err, sql.ErrNoRows) {
		return res, false, nil
	}
	if err != nil {
		return res, false, iosql.QueryError("get employee", err)
	}
	return res, true, nil
}

// ListEmployees implements rollup.Store.
func (s *Store) ListEmployees(
	ctx context.Context,
	f rollup.EmployeeFilter,
) ([]schema.Employee, error) {
	q, args := iosql.ListEmployees(f, iosql.Question)
	return query[schema.Employee](ctx, s.db, "list employees", q, args...)
}

// ListSkills implements rollup.Store.
func (s *Store) ListSkills(ctx context.Context, nbk string) ([]schema.Skill, error) {
	q := iosql.ListSkills(iosql.Question)
	return query[schema.Skill](ctx, s.db, "list skills", q, nbk)
}

// ListResources implements rollup.ResourceLister.
func (s *Store) ListResources(
	ctx context.Context,
	skillName string,
) ([]schema.TrainingResource, error) {
	q := iosql.ListResources(iosql.Question)
	res, err := query[schema.TrainingResource](ctx, s.db, "list resources", q, skillName)
	if err != nil {
		return nil, err
	}
	schema.SortResources(res)
	return res, nil
}

// DistinctNames implements rollup.Distincter.
func (s *Store) DistinctNames(
	ctx context.Context,
	level rollup.Level,
	f rollup.EmployeeFilter,
) ([]string, error) {
	q, args := iosql.DistinctNames(level, f, iosql.Question)
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, iosql.QueryError("distinct names", err)
	}
	defer rows.Close()

	var res []string
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, iosql.QueryError("distinct names", err)
		}
		res = append(res, name)
	}
	if err = rows.Err(); err != nil {
		return nil, iosql.QueryError("distinct names", err)
	}
	return res, nil
}

func query[T any](
	ctx context.Context,
	db *sql.DB,
	op, q string,
	args ...any,
) ([]T, error) {
	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, iosql.QueryError(op, err)
	}
	defer rows.Close()

	var res []T
	for rows.Next() {
		var item T
		if err = rows.Scan(schema.Fields(&item)...); err != nil {
			return nil, iosql.QueryError(op, err)
		}
		res = append(res, item)
	}
	if err = rows.Err(); err != nil {
		return nil, iosql.QueryError(op, err)
	}
	return res, nil
}
