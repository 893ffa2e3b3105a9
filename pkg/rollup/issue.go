package rollup

import (
	"cmp"
	"slices"
)

// IssueKind classifies data problems found during aggregation.
type IssueKind int

const (
	// InvalidProficiency marks a skill with a proficiency value that is
	// not on the scale. The skill is left out of gap counts.
	InvalidProficiency IssueKind = iota + 1

	// HierarchyInconsistency marks an employee whose declared chain of
	// DL/DH/GDL does not match the path the rollup reached it by. The
	// employee is not counted under that path.
	HierarchyInconsistency
)

func (k IssueKind) String() string {
	switch k {
	case InvalidProficiency:
		return "InvalidProficiency"
	case HierarchyInconsistency:
		return "HierarchyInconsistency"
	}
	return "Unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (k IssueKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Issue is a reportable, non-fatal problem attached to a summary or to a
// rollup node.
type Issue struct {
	Kind IssueKind `json:"kind" yaml:"kind"`
	// NBK of the affected employee.
	NBK string `json:"nbk" yaml:"nbk"`
	// Skill is set for InvalidProficiency.
	Skill string `json:"skill,omitempty" yaml:"skill,omitempty"`
	// Level is the hierarchy level where a HierarchyInconsistency
	// was found.
	Level   Level  `json:"level,omitempty" yaml:"level,omitempty"`
	Message string `json:"message" yaml:"message"`
}

func sortIssues(issues []Issue) {
	slices.SortStableFunc(issues, func(a, b Issue) int {
		return cmp.Or(
			cmp.Compare(a.NBK, b.NBK),
			cmp.Compare(a.Kind, b.Kind),
			cmp.Compare(a.Skill, b.Skill),
		)
	})
}
