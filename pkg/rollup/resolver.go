package rollup

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/gnames/skillgap/pkg/schema"
)

// resolver finds children of hierarchy nodes. It caches answers for the
// lifetime of one top-level engine call, so repeated lookups inside a
// rollup tree do not hit the store twice.
type resolver struct {
	st         Store
	unassigned map[string]struct{}
	memo       map[string][]string
}

func newResolver(st Store, markers []string) *resolver {
	res := &resolver{
		st:         st,
		unassigned: make(map[string]struct{}, len(markers)),
		memo:       make(map[string][]string),
	}
	for _, v := range markers {
		res.unassigned[strings.ToLower(strings.TrimSpace(v))] = struct{}{}
	}
	return res
}

// isUnassigned is true for empty names and unassigned markers.
func (r *resolver) isUnassigned(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return true
	}
	_, ok := r.unassigned[name]
	return ok
}

// names returns the sorted distinct names at the given level among
// employees that match the path.
func (r *resolver) names(
	ctx context.Context,
	level Level,
	path EmployeeFilter,
) ([]string, error) {
	key := memoKey(level, path)
	if res, ok := r.memo[key]; ok {
		return res, nil
	}

	var raw []string
	if d, ok := r.st.(Distincter); ok {
		var err error
		raw, err = d.DistinctNames(ctx, level, path)
		if err != nil {
			return nil, err
		}
	} else {
		emps, err := r.st.ListEmployees(ctx, path)
		if err != nil {
			return nil, err
		}
		raw = make([]string, 0, len(emps))
		for _, e := range emps {
			raw = append(raw, level.Name(e))
		}
	}

	res := make([]string, 0, len(raw))
	for _, v := range raw {
		if r.isUnassigned(v) {
			continue
		}
		res = append(res, v)
	}
	slices.Sort(res)
	res = slices.Compact(res)

	r.memo[key] = res
	return res, nil
}

// mismatch returns the first level where the employee's declared chain
// differs from the path. The boolean is false when the chain agrees.
func (r *resolver) mismatch(e schema.Employee, path EmployeeFilter) (Level, bool) {
	for _, l := range []Level{DL, DH, GDL} {
		want := path.Get(l)
		if want != "" && l.Name(e) != want {
			return l, true
		}
	}
	return Employee, false
}

func memoKey(level Level, path EmployeeFilter) string {
	return fmt.Sprintf(
		"%d\x00%s\x00%s\x00%s\x00%s",
		level, path.Manager, path.DL, path.DH, path.GDL,
	)
}
