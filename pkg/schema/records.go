package schema

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnlib"
	"github.com/gnames/gnuuid"
	"github.com/gnames/skillgap/pkg/errcode"
)

// Records is a complete set of input data: the content of a records file
// or of a store.
type Records struct {
	Employees         []Employee         `yaml:"employees"`
	Skills            []Skill            `yaml:"skills"`
	TrainingResources []TrainingResource `yaml:"training_resources,omitempty"`
}

// Normalize cleans text fields, fills missing IDs and checks that every
// NBK is unique. Skills of unknown employees are kept; they are never
// reached from the hierarchy.
func (r *Records) Normalize() error {
	seen := make(map[string]struct{}, len(r.Employees))
	for i := range r.Employees {
		e := &r.Employees[i]
		clean(&e.NBK, &e.Name, &e.Email, &e.Role, &e.FunctionName, &e.PmIc,
			&e.ManagerName, &e.DLName, &e.DHName, &e.GDLName)
		if e.NBK == "" {
			return emptyNBKError(i)
		}
		if _, ok := seen[e.NBK]; ok {
			return duplicateError(e.NBK)
		}
		seen[e.NBK] = struct{}{}
	}

	ids := make(map[string]struct{}, len(r.Skills))
	for i := range r.Skills {
		s := &r.Skills[i]
		clean(&s.EmployeeNBK, &s.SkillName, &s.SkillType, &s.Category,
			&s.CurrentProficiency, &s.ExpectedCurrentProficiency,
			&s.ExpectedFutureProficiency, &s.GapCurrent, &s.GapFuture)
		if s.ID == "" {
			s.ID = SkillID(s.EmployeeNBK, s.SkillName)
		}
		// the same skill listed twice for an employee keeps both rows
		if _, ok := ids[s.ID]; ok {
			s.ID = gnuuid.New(fmt.Sprintf("%s|%s|%d", s.EmployeeNBK, s.SkillName, i)).String()
		}
		ids[s.ID] = struct{}{}
	}

	for i := range r.TrainingResources {
		t := &r.TrainingResources[i]
		clean(&t.SkillName, &t.Tier, &t.URL)
		if t.ID == "" {
			t.ID = gnuuid.New(t.SkillName + "|" + t.Tier + "|" + t.URL).String()
		}
	}
	return nil
}

// SkillID returns a stable UUID v5 of a skill record.
func SkillID(nbk, skillName string) string {
	return gnuuid.New(nbk + "|" + skillName).String()
}

func clean(ss ...*string) {
	for _, s := range ss {
		*s = strings.TrimSpace(gnlib.FixUtf8(*s))
	}
}

func duplicateError(nbk string) error {
	msg := "Employee NBK <em>%s</em> appears more than once"
	vars := []any{nbk}
	return &gn.Error{
		Code: errcode.RecordsDuplicateError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("duplicate employee nbk %s", nbk),
	}
}

func emptyNBKError(idx int) error {
	msg := "Employee record #%d has no NBK"
	vars := []any{idx + 1}
	return &gn.Error{
		Code: errcode.RecordsInvalidError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("employee record %d has empty nbk", idx),
	}
}

// tiers lists training tiers from entry level to the most advanced.
var tiers = map[string]int{
	"new to role":         1,
	"in role development": 2,
	"mastery":             3,
}

// SortResources orders training resources from entry level to mastery.
// Unknown tiers go last, ties keep the URL order.
func SortResources(rs []TrainingResource) {
	rank := func(tier string) int {
		if r, ok := tiers[strings.ToLower(tier)]; ok {
			return r
		}
		return len(tiers) + 1
	}
	slices.SortStableFunc(rs, func(a, b TrainingResource) int {
		return cmp.Or(
			cmp.Compare(rank(a.Tier), rank(b.Tier)),
			cmp.Compare(a.URL, b.URL),
		)
	})
}
