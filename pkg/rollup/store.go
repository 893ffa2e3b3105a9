package rollup

import (
	"context"

	"github.com/gnames/skillgap/pkg/schema"
)

// Store supplies employee and skill records to the engine.
// The engine only reads. Implementations are responsible for giving a
// consistent point-in-time view while a call is running.
type Store interface {
	// GetEmployee returns the employee with the given NBK. The boolean is
	// false when there is no such employee.
	GetEmployee(ctx context.Context, nbk string) (schema.Employee, bool, error)

	// ListEmployees returns employees matching all non-empty fields of the
	// filter, ordered by NBK.
	ListEmployees(ctx context.Context, f EmployeeFilter) ([]schema.Employee, error)

	// ListSkills returns skill records of an employee ordered by skill
	// name.
	ListSkills(ctx context.Context, nbk string) ([]schema.Skill, error)
}

// Distincter is implemented by stores that can project distinct hierarchy
// names without returning whole employee records.
type Distincter interface {
	// DistinctNames returns distinct values of the name field of the given
	// level among employees matching the filter. The result may contain
	// empty strings and unassigned markers; the engine removes them.
	DistinctNames(ctx context.Context, level Level, f EmployeeFilter) ([]string, error)
}

// ResourceLister is implemented by stores that keep training resources.
type ResourceLister interface {
	// ListResources returns training resources for a skill ordered as
	// schema.SortResources does.
	ListResources(ctx context.Context, skillName string) ([]schema.TrainingResource, error)
}

// EmployeeFilter selects employees by hierarchy names. Empty fields match
// anything; non-empty fields must be equal.
type EmployeeFilter struct {
	Manager string
	DL      string
	DH      string
	GDL     string
}

// Get returns the filter value for a level.
func (f EmployeeFilter) Get(l Level) string {
	switch l {
	case Manager:
		return f.Manager
	case DL:
		return f.DL
	case DH:
		return f.DH
	case GDL:
		return f.GDL
	}
	return ""
}

// With returns a copy of the filter with the level set to name.
func (f EmployeeFilter) With(l Level, name string) EmployeeFilter {
	switch l {
	case Manager:
		f.Manager = name
	case DL:
		f.DL = name
	case DH:
		f.DH = name
	case GDL:
		f.GDL = name
	}
	return f
}

// Match returns true if the employee satisfies the filter.
func (f EmployeeFilter) Match(e schema.Employee) bool {
	for _, l := range []Level{Manager, DL, DH, GDL} {
		if v := f.Get(l); v != "" && l.Name(e) != v {
			return false
		}
	}
	return true
}

// IsEmpty is true when the filter matches every employee.
func (f EmployeeFilter) IsEmpty() bool {
	return f == EmployeeFilter{}
}
