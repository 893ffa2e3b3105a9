// Package rollup aggregates per-employee skill-gap summaries up the
// management hierarchy: Employee -> Manager -> DL -> DH -> GDL.
//
// The hierarchy is not stored as a tree. Every employee record carries
// the names of its manager, DL, DH and GDL, and the engine derives the
// tree from those fields on every call. Children of a node are resolved
// among employees that match the whole path from the top of the call to
// that node, so an employee is counted at most once under any node.
package rollup

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/gnames/skillgap/pkg/config"
	"github.com/gnames/skillgap/pkg/schema"
)

// Engine is the read-only aggregation API.
type Engine interface {
	// SummarizeEmployee returns the skill-gap summary of one employee.
	SummarizeEmployee(ctx context.Context, nbk string) (Summary, error)

	// EmployeeDetails returns the employee record with per-skill verdicts.
	EmployeeDetails(ctx context.Context, nbk string) (*Details, error)

	// UpskillPlan lists skills the employee has to improve, with training
	// resources when the store keeps them.
	UpskillPlan(ctx context.Context, nbk string) (*Plan, error)

	// ChildrenOf returns sorted distinct names at the given level whose
	// parent at the next level up is parent. Level must be Manager, DL
	// or DH.
	ChildrenOf(ctx context.Context, level Level, parent string) ([]string, error)

	// Rollup aggregates the subtree of a named node. Employees are
	// checked against the ancestors named on the way down, so a Manager
	// rollup taken on its own has no chain to compare with and keeps
	// every direct report.
	Rollup(ctx context.Context, level Level, name string) (*NodeRollup, error)

	// Search returns employee summaries from the subtree of a named node
	// that match the query.
	Search(ctx context.Context, level Level, name string, q Query) ([]Summary, error)
}

// NodeRollup is an aggregated hierarchy node. Manager nodes hold
// employee summaries, higher nodes hold child nodes.
type NodeRollup struct {
	Name      string        `json:"name"                yaml:"name"`
	Level     Level         `json:"level"               yaml:"level"`
	Children  []*NodeRollup `json:"children,omitempty"  yaml:"children,omitempty"`
	Employees []Summary     `json:"employees,omitempty" yaml:"employees,omitempty"`

	TotalEmployees   int `json:"totalEmployees"   yaml:"total_employees"`
	TotalSkills      int `json:"totalSkills"      yaml:"total_skills"`
	TotalCurrentGaps int `json:"totalCurrentGaps" yaml:"total_current_gaps"`
	TotalFutureGaps  int `json:"totalFutureGaps"  yaml:"total_future_gaps"`

	// Issues found while building this node. Issues of employee
	// summaries stay with the summaries.
	Issues []Issue `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// Flatten returns all employee summaries of the subtree in display order.
func (n *NodeRollup) Flatten() []Summary {
	var res []Summary
	n.walk(func(node *NodeRollup) {
		res = append(res, node.Employees...)
	})
	return res
}

// AllIssues collects node and summary issues of the whole subtree.
func (n *NodeRollup) AllIssues() []Issue {
	var res []Issue
	n.walk(func(node *NodeRollup) {
		res = append(res, node.Issues...)
		for _, s := range node.Employees {
			res = append(res, s.Issues...)
		}
	})
	return res
}

func (n *NodeRollup) walk(fn func(*NodeRollup)) {
	fn(n)
	for _, c := range n.Children {
		c.walk(fn)
	}
}

func (n *NodeRollup) add(c *NodeRollup) {
	n.Children = append(n.Children, c)
	n.TotalEmployees += c.TotalEmployees
	n.TotalSkills += c.TotalSkills
	n.TotalCurrentGaps += c.TotalCurrentGaps
	n.TotalFutureGaps += c.TotalFutureGaps
}

func (n *NodeRollup) addSummary(s Summary) {
	n.Employees = append(n.Employees, s)
	n.TotalEmployees++
	n.TotalSkills += s.TotalSkills
	n.TotalCurrentGaps += s.CurrentGapCount
	n.TotalFutureGaps += s.FutureGapCount
}

type engine struct {
	cfg config.RollupConfig
	st  Store
}

// New creates an Engine that reads records from the store.
func New(cfg *config.Config, st Store) Engine {
	return &engine{cfg: cfg.Rollup, st: st}
}

func (e *engine) newResolver() *resolver {
	return newResolver(e.st, e.cfg.UnassignedMarkers)
}

// SummarizeEmployee implements Engine.
func (e *engine) SummarizeEmployee(ctx context.Context, nbk string) (Summary, error) {
	emp, ok, err := e.st.GetEmployee(ctx, nbk)
	if err != nil {
		return Summary{}, err
	}
	if !ok {
		return Summary{}, NotFoundError(nbk)
	}
	skills, err := e.st.ListSkills(ctx, nbk)
	if err != nil {
		return Summary{}, err
	}
	return summarize(emp, skills, e.cfg.UseStoredGaps), nil
}

// ChildrenOf implements Engine.
func (e *engine) ChildrenOf(
	ctx context.Context,
	level Level,
	parent string,
) ([]string, error) {
	if level < Manager || level > DH {
		return nil, InvalidLevelError("children lookup", level)
	}
	r := e.newResolver()
	if r.isUnassigned(parent) {
		return []string{}, nil
	}
	parentLevel, _ := level.Parent()
	path := EmployeeFilter{}.With(parentLevel, parent)
	return r.names(ctx, level, path)
}

// Rollup implements Engine.
func (e *engine) Rollup(
	ctx context.Context,
	level Level,
	name string,
) (*NodeRollup, error) {
	if level < Manager || level > GDL {
		return nil, InvalidLevelError("rollup", level)
	}
	r := e.newResolver()
	if r.isUnassigned(name) {
		return &NodeRollup{Name: name, Level: level}, nil
	}
	path := EmployeeFilter{}.With(level, name)
	return e.node(ctx, r, level, name, path)
}

// Search implements Engine.
func (e *engine) Search(
	ctx context.Context,
	level Level,
	name string,
	q Query,
) ([]Summary, error) {
	if level < Manager || level > GDL {
		return nil, InvalidLevelError("search", level)
	}
	node, err := e.Rollup(ctx, level, name)
	if err != nil {
		return nil, err
	}
	return Filter(node.Flatten(), q), nil
}

func (e *engine) node(
	ctx context.Context,
	r *resolver,
	level Level,
	name string,
	path EmployeeFilter,
) (*NodeRollup, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &NodeRollup{Name: name, Level: level}
	if level == Manager {
		return res, e.managerNode(ctx, r, res, path)
	}

	childLevel := level - 1
	children, err := r.names(ctx, childLevel, path)
	if err != nil {
		return nil, err
	}
	for _, c := range children {
		child, err := e.node(ctx, r, childLevel, c, path.With(childLevel, c))
		if err != nil {
			return nil, err
		}
		res.add(child)
	}
	return res, nil
}

func (e *engine) managerNode(
	ctx context.Context,
	r *resolver,
	n *NodeRollup,
	path EmployeeFilter,
) error {
	emps, err := e.st.ListEmployees(ctx, EmployeeFilter{Manager: n.Name})
	if err != nil {
		return err
	}

	slices.SortFunc(emps, func(a, b schema.Employee) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.NBK, b.NBK))
	})

	for _, emp := range emps {
		if l, bad := r.mismatch(emp, path); bad {
			msg := fmt.Sprintf(
				"reports to %s but declares %s '%s' instead of '%s'",
				n.Name, l.Label(), l.Name(emp), path.Get(l),
			)
			slog.Debug("Hierarchy inconsistency", "nbk", emp.NBK, "issue", msg)
			n.Issues = append(n.Issues, Issue{
				Kind:    HierarchyInconsistency,
				NBK:     emp.NBK,
				Level:   l,
				Message: msg,
			})
			continue
		}

		skills, err := e.st.ListSkills(ctx, emp.NBK)
		if err != nil {
			return err
		}
		n.addSummary(summarize(emp, skills, e.cfg.UseStoredGaps))
	}
	sortIssues(n.Issues)
	return nil
}
