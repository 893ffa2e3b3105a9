// Package iosql keeps SQL text shared by the SQLite and PostgreSQL record
// stores. The two stores differ only in placeholders and drivers.
package iosql

import (
	"fmt"
	"strings"

	"github.com/gnames/skillgap/pkg/rollup"
	"github.com/gnames/skillgap/pkg/schema"
)

// Placeholder renders the n-th (1-based) query parameter.
type Placeholder func(n int) string

// Question is the SQLite placeholder.
func Question(int) string { return "?" }

// Dollar is the PostgreSQL placeholder.
func Dollar(n int) string { return fmt.Sprintf("$%d", n) }

// Scanner is a row of database/sql or pgx.
type Scanner interface {
	Scan(dest ...any) error
}

var (
	EmployeeSelect = selectSQL(schema.Employee{})
	SkillSelect    = selectSQL(schema.Skill{})
	ResourceSelect = selectSQL(schema.TrainingResource{})
)

// LevelColumn returns the employees column holding names of a level.
func LevelColumn(l rollup.Level) string {
	switch l {
	case rollup.Manager:
		return "manager_name"
	case rollup.DL:
		return "dl_name"
	case rollup.DH:
		return "dh_name"
	case rollup.GDL:
		return "gdl_name"
	}
	return "name"
}

// EmployeeWhere builds a WHERE clause for the filter. It returns an empty
// string for an empty filter.
func EmployeeWhere(f rollup.EmployeeFilter, ph Placeholder) (string, []any) {
	var conds []string
	var args []any
	for _, l := range []rollup.Level{rollup.Manager, rollup.DL, rollup.DH, rollup.GDL} {
		v := f.Get(l)
		if v == "" {
			continue
		}
		args = append(args, v)
		conds = append(conds, LevelColumn(l)+" = "+ph(len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// ListEmployees returns query and arguments of rollup.Store.ListEmployees.
func ListEmployees(f rollup.EmployeeFilter, ph Placeholder) (string, []any) {
	where, args := EmployeeWhere(f, ph)
	return EmployeeSelect + where + " ORDER BY nbk", args
}

// GetEmployee returns query of rollup.Store.GetEmployee.
func GetEmployee(ph Placeholder) string {
	return EmployeeSelect + " WHERE nbk = " + ph(1)
}

// ListSkills returns query of rollup.Store.ListSkills.
func ListSkills(ph Placeholder) string {
	return SkillSelect + " WHERE employee_nbk = " + ph(1) +
		" ORDER BY skill_name, id"
}

// ListResources returns query of rollup.ResourceLister.
func ListResources(ph Placeholder) string {
	return ResourceSelect + " WHERE skill_name = " + ph(1)
}

// DistinctNames returns query and arguments of rollup.Distincter.
func DistinctNames(
	l rollup.Level,
	f rollup.EmployeeFilter,
	ph Placeholder,
) (string, []any) {
	where, args := EmployeeWhere(f, ph)
	col := LevelColumn(l)
	return "SELECT DISTINCT " + col + " FROM employees" + where, args
}

// Insert returns an INSERT statement for all columns of a model.
func Insert(model schema.DDLGenerator, ph Placeholder) string {
	cols := schema.Columns(model)
	phs := make([]string, len(cols))
	for i := range cols {
		phs[i] = ph(i + 1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		model.TableName(),
		strings.Join(cols, ", "),
		strings.Join(phs, ", "),
	)
}

func selectSQL(model schema.DDLGenerator) string {
	return fmt.Sprintf("SELECT %s FROM %s",
		strings.Join(schema.Columns(model), ", "), model.TableName())
}
