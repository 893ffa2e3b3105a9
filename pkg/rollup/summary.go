package rollup

import (
	"fmt"

	"github.com/gnames/skillgap/pkg/gap"
	"github.com/gnames/skillgap/pkg/schema"
)

// Summary is the per-employee skill-gap digest.
type Summary struct {
	NBK          string `json:"nbk"           yaml:"nbk"`
	Name         string `json:"name"          yaml:"name"`
	Role         string `json:"role"          yaml:"role"`
	FunctionName string `json:"function"      yaml:"function"`
	PmIc         string `json:"pmIc"          yaml:"pm_ic"`
	ManagerName  string `json:"manager"       yaml:"manager"`
	DLName       string `json:"dl"            yaml:"dl"`
	DHName       string `json:"dh"            yaml:"dh"`
	GDLName      string `json:"gdl"           yaml:"gdl"`

	// TotalSkills counts every skill record of the employee, including
	// those with invalid proficiency values.
	TotalSkills int `json:"totalSkills" yaml:"total_skills"`

	// CurrentGapCount counts skills with an Under-Skilled current verdict.
	CurrentGapCount int `json:"currentGapCount" yaml:"current_gap_count"`

	// FutureGapCount counts skills with an Under-Skilled future verdict.
	FutureGapCount int `json:"futureGapCount" yaml:"future_gap_count"`

	Issues []Issue `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// Summarize builds the summary of one employee from their skill records.
// Verdicts are recomputed from proficiency values.
func Summarize(emp schema.Employee, skills []schema.Skill) Summary {
	return summarize(emp, skills, false)
}

func summarize(emp schema.Employee, skills []schema.Skill, useStored bool) Summary {
	res := Summary{
		NBK:          emp.NBK,
		Name:         emp.Name,
		Role:         emp.Role,
		FunctionName: emp.FunctionName,
		PmIc:         emp.PmIc,
		ManagerName:  emp.ManagerName,
		DLName:       emp.DLName,
		DHName:       emp.DHName,
		GDLName:      emp.GDLName,
		TotalSkills:  len(skills),
	}

	for _, s := range skills {
		a := assess(s, useStored)
		if len(a.Errs) > 0 {
			res.Issues = append(res.Issues, proficiencyIssue(emp.NBK, s, a.Errs))
			continue
		}
		if a.Current.IsGap() {
			res.CurrentGapCount++
		}
		if a.Future.IsGap() {
			res.FutureGapCount++
		}
	}
	return res
}

// assess classifies a skill. With useStored a known stored flag replaces
// the computed verdict.
func assess(s schema.Skill, useStored bool) gap.Assessment {
	res := gap.Assess(
		s.CurrentProficiency,
		s.ExpectedCurrentProficiency,
		s.ExpectedFutureProficiency,
	)
	if !useStored {
		return res
	}
	if v, ok := gap.ParseVerdict(s.GapCurrent); ok {
		res.Current = v
	}
	if v, ok := gap.ParseVerdict(s.GapFuture); ok {
		res.Future = v
	}
	return res
}

func proficiencyIssue(nbk string, s schema.Skill, errs []error) Issue {
	msg := fmt.Sprintf("skill '%s' excluded from gap counts: %v", s.SkillName, errs[0])
	if len(errs) > 1 {
		msg += fmt.Sprintf(" (and %d more)", len(errs)-1)
	}
	return Issue{
		Kind:    InvalidProficiency,
		NBK:     nbk,
		Skill:   s.SkillName,
		Message: msg,
	}
}
