// Package iomemory keeps employee and skill records in memory.
// Records come from a YAML records file or are given directly. A reload
// swaps the whole snapshot, so every read sees one consistent data set.
package iomemory

import (
	"cmp"
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/gnames/skillgap/internal/iofs"
	"github.com/gnames/skillgap/pkg/rollup"
	"github.com/gnames/skillgap/pkg/schema"
)

type snapshot struct {
	employees map[string]schema.Employee
	// order keeps NBKs sorted.
	order     []string
	skills    map[string][]schema.Skill
	resources map[string][]schema.TrainingResource
}

// Store is a rollup.Store backed by an in-memory snapshot.
type Store struct {
	path string
	mu   sync.RWMutex
	snap *snapshot
}

// New creates a store from records. Records must be normalized.
func New(recs *schema.Records) *Store {
	return &Store{snap: newSnapshot(recs)}
}

// Open loads the store from a YAML records file.
func Open(path string) (*Store, error) {
	res := &Store{path: path}
	if err := res.Reload(context.Background()); err != nil {
		return nil, err
	}
	return res, nil
}

// Reload reads the records file again and replaces the snapshot.
// Readers running at the same time keep the previous snapshot.
func (s *Store) Reload(ctx context.Context) error {
	if s.path == "" {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	recs, err := iofs.ReadRecords(s.path)
	if err != nil {
		return err
	}
	snap := newSnapshot(recs)

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()

	slog.Info("Loaded records",
		"file", s.path,
		"employees", humanize.Comma(int64(len(recs.Employees))),
		"skills", humanize.Comma(int64(len(recs.Skills))),
	)
	return nil
}

// Records returns a copy of all records in the store.
func (s *Store) Records() *schema.Records {
	snap := s.current()
	res := &schema.Records{}
	for _, nbk := range snap.order {
		res.Employees = append(res.Employees, snap.employees[nbk])
		res.Skills = append(res.Skills, snap.skills[nbk]...)
	}
	for _, k := range slices.Sorted(maps.Keys(snap.resources)) {
		res.TrainingResources = append(res.TrainingResources, snap.resources[k]...)
	}
	return res
}

func (s *Store) current() *snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// GetEmployee implements rollup.Store.
func (s *Store) GetEmployee(
	ctx context.Context,
	nbk string,
) (schema.Employee, bool, error) {
	if err := ctx.Err(); err != nil {
		return schema.Employee{}, false, err
	}
	e, ok := s.current().employees[nbk]
	return e, ok, nil
}

// ListEmployees implements rollup.Store.
func (s *Store) ListEmployees(
	ctx context.Context,
	f rollup.EmployeeFilter,
) ([]schema.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	snap := s.current()
	var res []schema.Employee
	for _, nbk := range snap.order {
		e := snap.employees[nbk]
		if f.Match(e) {
			res = append(res, e)
		}
	}
	return res, nil
}

// ListSkills implements rollup.Store.
func (s *Store) ListSkills(ctx context.Context, nbk string) ([]schema.Skill, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(s.current().skills[nbk]), nil
}

// DistinctNames implements rollup.Distincter.
func (s *Store) DistinctNames(
	ctx context.Context,
	level rollup.Level,
	f rollup.EmployeeFilter,
) ([]string, error) {
	emps, err := s.ListEmployees(ctx, f)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	var res []string
	for _, e := range emps {
		name := level.Name(e)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		res = append(res, name)
	}
	return res, nil
}

// ListResources implements rollup.ResourceLister.
func (s *Store) ListResources(
	ctx context.Context,
	skillName string,
) ([]schema.TrainingResource, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(s.current().resources[skillName]), nil
}

func newSnapshot(recs *schema.Records) *snapshot {
	res := &snapshot{
		employees: make(map[string]schema.Employee, len(recs.Employees)),
		skills:    make(map[string][]schema.Skill),
		resources: make(map[string][]schema.TrainingResource),
	}
	for _, e := range recs.Employees {
		res.employees[e.NBK] = e
		res.order = append(res.order, e.NBK)
	}
	slices.Sort(res.order)

	for _, sk := range recs.Skills {
		res.skills[sk.EmployeeNBK] = append(res.skills[sk.EmployeeNBK], sk)
	}
	for k := range res.skills {
		slices.SortStableFunc(res.skills[k], func(a, b schema.Skill) int {
			return cmp.Compare(a.SkillName, b.SkillName)
		})
	}

	for _, r := range recs.TrainingResources {
		res.resources[r.SkillName] = append(res.resources[r.SkillName], r)
	}
	for k := range res.resources {
		schema.SortResources(res.resources[k])
	}
	return res
}
