package rollup

import (
	"context"

	"github.com/gnames/skillgap/pkg/gap"
	"github.com/gnames/skillgap/pkg/schema"
)

// SkillView is a skill record with its verdicts.
type SkillView struct {
	Name            string `json:"name"            yaml:"name"`
	Type            string `json:"type"            yaml:"type"`
	Category        string `json:"category"        yaml:"category"`
	Current         string `json:"current"         yaml:"current"`
	ExpectedCurrent string `json:"expectedCurrent" yaml:"expected_current"`
	ExpectedFuture  string `json:"expectedFuture"  yaml:"expected_future"`

	GapCurrent gap.Verdict `json:"gapCurrent" yaml:"gap_current"`
	GapFuture  gap.Verdict `json:"gapFuture"  yaml:"gap_future"`

	// Stale is true when a stored gap flag disagrees with the verdict
	// computed from proficiency values.
	Stale bool `json:"stale,omitempty" yaml:"stale,omitempty"`
}

// Details is the full view of one employee.
type Details struct {
	Employee schema.Employee `json:"employee" yaml:"employee"`
	Summary  Summary         `json:"summary"  yaml:"summary"`
	Skills   []SkillView     `json:"skills"   yaml:"skills"`
}

// PlanItem is one skill to improve.
type PlanItem struct {
	Skill     string                    `json:"skill"               yaml:"skill"`
	Current   string                    `json:"current"             yaml:"current"`
	Target    string                    `json:"target"              yaml:"target"`
	Resources []schema.TrainingResource `json:"resources,omitempty" yaml:"resources,omitempty"`
}

// Plan is an upskilling plan. A skill that has a current gap is listed
// only once, under CurrentGaps.
type Plan struct {
	NBK         string     `json:"nbk"         yaml:"nbk"`
	Name        string     `json:"name"        yaml:"name"`
	CurrentGaps []PlanItem `json:"currentGaps" yaml:"current_gaps"`
	FutureGaps  []PlanItem `json:"futureGaps"  yaml:"future_gaps"`
}

func (e *engine) load(
	ctx context.Context,
	nbk string,
) (schema.Employee, []schema.Skill, error) {
	emp, ok, err := e.st.GetEmployee(ctx, nbk)
	if err != nil {
		return emp, nil, err
	}
	if !ok {
		return emp, nil, NotFoundError(nbk)
	}
	skills, err := e.st.ListSkills(ctx, nbk)
	if err != nil {
		return emp, nil, err
	}
	return emp, skills, nil
}

// EmployeeDetails implements Engine.
func (e *engine) EmployeeDetails(ctx context.Context, nbk string) (*Details, error) {
	emp, skills, err := e.load(ctx, nbk)
	if err != nil {
		return nil, err
	}

	res := &Details{
		Employee: emp,
		Summary:  summarize(emp, skills, e.cfg.UseStoredGaps),
		Skills:   make([]SkillView, 0, len(skills)),
	}
	for _, s := range skills {
		a := assess(s, e.cfg.UseStoredGaps)
		res.Skills = append(res.Skills, SkillView{
			Name:            s.SkillName,
			Type:            s.SkillType,
			Category:        s.Category,
			Current:         s.CurrentProficiency,
			ExpectedCurrent: s.ExpectedCurrentProficiency,
			ExpectedFuture:  s.ExpectedFutureProficiency,
			GapCurrent:      a.Current,
			GapFuture:       a.Future,
			Stale:           isStale(s),
		})
	}
	return res, nil
}

// UpskillPlan implements Engine.
func (e *engine) UpskillPlan(ctx context.Context, nbk string) (*Plan, error) {
	emp, skills, err := e.load(ctx, nbk)
	if err != nil {
		return nil, err
	}

	res := &Plan{
		NBK:         emp.NBK,
		Name:        emp.Name,
		CurrentGaps: []PlanItem{},
		FutureGaps:  []PlanItem{},
	}
	listed := make(map[string]struct{})
	var future []schema.Skill
	for _, s := range skills {
		a := assess(s, e.cfg.UseStoredGaps)
		if len(a.Errs) > 0 {
			continue
		}
		if a.Current.IsGap() {
			item, err := e.planItem(ctx, s, s.ExpectedCurrentProficiency)
			if err != nil {
				return nil, err
			}
			res.CurrentGaps = append(res.CurrentGaps, item)
			listed[s.SkillName] = struct{}{}
			continue
		}
		if a.Future.IsGap() {
			future = append(future, s)
		}
	}

	for _, s := range future {
		if _, ok := listed[s.SkillName]; ok {
			continue
		}
		item, err := e.planItem(ctx, s, s.ExpectedFutureProficiency)
		if err != nil {
			return nil, err
		}
		res.FutureGaps = append(res.FutureGaps, item)
		listed[s.SkillName] = struct{}{}
	}
	return res, nil
}

func (e *engine) planItem(
	ctx context.Context,
	s schema.Skill,
	target string,
) (PlanItem, error) {
	res := PlanItem{
		Skill:   s.SkillName,
		Current: s.CurrentProficiency,
		Target:  target,
	}
	rl, ok := e.st.(ResourceLister)
	if !ok {
		return res, nil
	}
	var err error
	res.Resources, err = rl.ListResources(ctx, s.SkillName)
	return res, err
}

func isStale(s schema.Skill) bool {
	a := assess(s, false)
	if v, ok := gap.ParseVerdict(s.GapCurrent); ok && v != a.Current {
		return true
	}
	if v, ok := gap.ParseVerdict(s.GapFuture); ok && v != a.Future {
		return true
	}
	return false
}
