package lifecycle

import (
	"context"

	"github.com/gnames/skillgap/pkg/schema"
)

// Populator imports records into a relational store. Gap flags of every
// skill are computed during import and stored with the skill.
type Populator interface {
	// Populate replaces the content of the store with records.
	Populate(ctx context.Context, recs *schema.Records) (*Report, error)
}

// Report summarizes a populate run.
type Report struct {
	Employees int `json:"employees" yaml:"employees"`
	Skills    int `json:"skills"    yaml:"skills"`
	Resources int `json:"resources" yaml:"resources"`

	// CurrentGaps and FutureGaps count Under-Skilled verdicts written.
	CurrentGaps int `json:"currentGaps" yaml:"current_gaps"`
	FutureGaps  int `json:"futureGaps"  yaml:"future_gaps"`

	// InvalidSkills counts skills with proficiency values outside of the
	// scale. They are imported with Not-Evaluated flags.
	InvalidSkills int `json:"invalidSkills" yaml:"invalid_skills"`

	// Seconds is the wall time of the run.
	Seconds float64 `json:"seconds" yaml:"seconds"`
}
