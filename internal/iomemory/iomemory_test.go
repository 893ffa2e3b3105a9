package iomemory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/gnames/skillgap/internal/iomemory"
	"github.com/gnames/skillgap/internal/iotesting"
	"github.com/gnames/skillgap/pkg/rollup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEmployee(t *testing.T) {
	ctx := context.Background()
	st := iotesting.MemoryStore(t)

	e, ok, err := st.GetEmployee(ctx, "mr002")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Mike Ross", e.Name)
	assert.Equal(t, "Harvey Specter", e.ManagerName)

	_, ok, err = st.GetEmployee(ctx, "none")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestListEmployees(t *testing.T) {
	ctx := context.Background()
	st := iotesting.MemoryStore(t)

	tests := []struct {
		msg string
		f   rollup.EmployeeFilter
		res []string
	}{
		{"all", rollup.EmployeeFilter{},
			[]string{"dp004", "hg006", "jm007", "jp001", "kb005", "mr002", "rz003"}},
		{"manager", rollup.EmployeeFilter{Manager: "Louis Litt"},
			[]string{"hg006", "jm007", "kb005"}},
		{"manager and dl", rollup.EmployeeFilter{Manager: "Louis Litt", DL: "Travis Tanner"},
			[]string{"jm007"}},
		{"unknown", rollup.EmployeeFilter{DH: "Cameron Dennis"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			emps, err := st.ListEmployees(ctx, tt.f)
			require.NoError(t, err)
			var nbks []string
			for _, e := range emps {
				nbks = append(nbks, e.NBK)
			}
			assert.Equal(t, tt.res, nbks)
		})
	}
}

func TestListSkills(t *testing.T) {
	ctx := context.Background()
	st := iotesting.MemoryStore(t)

	skills, err := st.ListSkills(ctx, "mr002")
	require.NoError(t, err)
	require.Len(t, skills, 5)
	assert.Equal(t, "Drafting", skills[0].SkillName)
	assert.Equal(t, "Research", skills[4].SkillName)

	skills[0].SkillName = "changed"
	again, err := st.ListSkills(ctx, "mr002")
	require.NoError(t, err)
	assert.Equal(t, "Drafting", again[0].SkillName, "store data is not shared")

	skills, err = st.ListSkills(ctx, "none")
	require.NoError(t, err)
	assert.Empty(t, skills)
}

func TestDistinctNames(t *testing.T) {
	ctx := context.Background()
	st := iotesting.MemoryStore(t)

	names, err := st.DistinctNames(ctx, rollup.Manager,
		rollup.EmployeeFilter{DL: "Robert Zane"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Harvey Specter", "Louis Litt"}, names)

	names, err = st.DistinctNames(ctx, rollup.GDL, rollup.EmployeeFilter{})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"", "Jessica Pearson"}, names)
}

func TestListResources(t *testing.T) {
	ctx := context.Background()
	st := iotesting.MemoryStore(t)

	rs, err := st.ListResources(ctx, "Research")
	require.NoError(t, err)
	require.Len(t, rs, 2)
	assert.Equal(t, "New to Role", rs[0].Tier)
	assert.Equal(t, "Mastery", rs[1].Tier)
}

func TestOpenAndReload(t *testing.T) {
	ctx := context.Background()
	path := iotesting.WriteTempRecords(t, iotesting.RecordsYAML)

	st, err := iomemory.Open(path)
	require.NoError(t, err)
	recs := st.Records()
	assert.Len(t, recs.Employees, 7)
	assert.Len(t, recs.Skills, 15)
	assert.Len(t, recs.TrainingResources, 3)

	recs.Employees = recs.Employees[:1]
	iotesting.RewriteRecords(t, path, recs)

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := st.ListEmployees(ctx, rollup.EmployeeFilter{})
			assert.NoError(t, err)
		}()
	}
	require.NoError(t, st.Reload(ctx))
	wg.Wait()

	emps, err := st.ListEmployees(ctx, rollup.EmployeeFilter{})
	require.NoError(t, err)
	assert.Len(t, emps, 1)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := iomemory.Open("/no/such/records.yaml")
	assert.Error(t, err)
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	st := iotesting.MemoryStore(t)
	_, err := st.ListEmployees(ctx, rollup.EmployeeFilter{})
	assert.ErrorIs(t, err, context.Canceled)
}
