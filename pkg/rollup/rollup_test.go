package rollup_test

import (
	"context"
	"testing"

	"github.com/gnames/skillgap/internal/iomemory"
	"github.com/gnames/skillgap/internal/iotesting"
	"github.com/gnames/skillgap/pkg/config"
	"github.com/gnames/skillgap/pkg/rollup"
	"github.com/gnames/skillgap/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plainStore hides the optional interfaces of the wrapped store.
type plainStore struct {
	rollup.Store
}

func newEngine(t *testing.T) rollup.Engine {
	t.Helper()
	return rollup.New(config.New(), iotesting.MemoryStore(t))
}

func TestSummarizeEmployee(t *testing.T) {
	ctx := context.Background()
	eng := newEngine(t)

	tests := []struct {
		nbk                  string
		total, current, futr int
		issues               int
	}{
		{"mr002", 5, 2, 3, 0},
		{"rz003", 2, 0, 0, 0},
		{"dp004", 3, 1, 2, 1},
		{"kb005", 2, 1, 1, 0},
		{"jp001", 1, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.nbk, func(t *testing.T) {
			s, err := eng.SummarizeEmployee(ctx, tt.nbk)
			require.NoError(t, err)
			assert.Equal(t, tt.nbk, s.NBK)
			assert.Equal(t, tt.total, s.TotalSkills, "total skills")
			assert.Equal(t, tt.current, s.CurrentGapCount, "current gaps")
			assert.Equal(t, tt.futr, s.FutureGapCount, "future gaps")
			assert.Len(t, s.Issues, tt.issues)
		})
	}

	t.Run("hierarchy fields", func(t *testing.T) {
		s, err := eng.SummarizeEmployee(ctx, "kb005")
		require.NoError(t, err)
		assert.Equal(t, "Katrina Bennett", s.Name)
		assert.Equal(t, "Associate", s.Role)
		assert.Equal(t, "Legal", s.FunctionName)
		assert.Equal(t, "Louis Litt", s.ManagerName)
		assert.Equal(t, "Robert Zane", s.DLName)
		assert.Equal(t, "Daniel Hardman", s.DHName)
		assert.Equal(t, "Jessica Pearson", s.GDLName)

		s, err = eng.SummarizeEmployee(ctx, "jp001")
		require.NoError(t, err)
		assert.Equal(t, "N/A", s.ManagerName)
		assert.Equal(t, "unassigned", s.DHName)
		assert.Equal(t, "", s.GDLName)
	})

	t.Run("invalid proficiency issue", func(t *testing.T) {
		s, err := eng.SummarizeEmployee(ctx, "dp004")
		require.NoError(t, err)
		require.Len(t, s.Issues, 1)
		assert.Equal(t, rollup.InvalidProficiency, s.Issues[0].Kind)
		assert.Equal(t, "Intuition", s.Issues[0].Skill)
		assert.Contains(t, s.Issues[0].Message, "Guru")
	})

	t.Run("not found", func(t *testing.T) {
		_, err := eng.SummarizeEmployee(ctx, "zz999")
		require.Error(t, err)
		assert.True(t, rollup.IsNotFound(err))
	})
}

func TestSummarizeNoSkills(t *testing.T) {
	emp := schema.Employee{NBK: "x1", Name: "Louis Litt"}
	s := rollup.Summarize(emp, nil)
	assert.Equal(t, 0, s.TotalSkills)
	assert.Equal(t, 0, s.CurrentGapCount)
	assert.Equal(t, 0, s.FutureGapCount)
	assert.Empty(t, s.Issues)
}

func TestSummarizeBounds(t *testing.T) {
	recs := iotesting.Records(t)
	byNBK := make(map[string][]schema.Skill)
	for _, s := range recs.Skills {
		byNBK[s.EmployeeNBK] = append(byNBK[s.EmployeeNBK], s)
	}
	for _, e := range recs.Employees {
		s := rollup.Summarize(e, byNBK[e.NBK])
		assert.LessOrEqual(t, s.CurrentGapCount, s.TotalSkills, e.NBK)
		assert.LessOrEqual(t, s.FutureGapCount, s.TotalSkills, e.NBK)
		assert.GreaterOrEqual(t, s.CurrentGapCount, 0, e.NBK)
	}
}

func TestUseStoredGaps(t *testing.T) {
	ctx := context.Background()
	recs := &schema.Records{
		Employees: []schema.Employee{{NBK: "ab001", Name: "Alex Williams"}},
		Skills: []schema.Skill{
			{
				EmployeeNBK:                "ab001",
				SkillName:                  "Trial",
				CurrentProficiency:         "3",
				ExpectedCurrentProficiency: "3",
				ExpectedFutureProficiency:  "3",
				GapCurrent:                 "Under-Skilled",
				GapFuture:                  "garbage",
			},
		},
	}
	require.NoError(t, recs.Normalize())
	st := iomemory.New(recs)

	t.Run("recomputed by default", func(t *testing.T) {
		eng := rollup.New(config.New(), st)
		s, err := eng.SummarizeEmployee(ctx, "ab001")
		require.NoError(t, err)
		assert.Equal(t, 0, s.CurrentGapCount)

		d, err := eng.EmployeeDetails(ctx, "ab001")
		require.NoError(t, err)
		require.Len(t, d.Skills, 1)
		assert.True(t, d.Skills[0].Stale)
	})

	t.Run("stored flags trusted", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{config.OptRollupUseStoredGaps(true)})
		eng := rollup.New(cfg, st)
		s, err := eng.SummarizeEmployee(ctx, "ab001")
		require.NoError(t, err)
		assert.Equal(t, 1, s.CurrentGapCount)
		assert.Equal(t, 0, s.FutureGapCount, "unparseable flag falls back")
	})
}

func TestChildrenOf(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		msg    string
		level  rollup.Level
		parent string
		res    []string
	}{
		{"managers of dl", rollup.Manager, "Robert Zane",
			[]string{"Harvey Specter", "Louis Litt"}},
		{"managers of other dl", rollup.Manager, "Travis Tanner",
			[]string{"Louis Litt"}},
		{"dls of dh", rollup.DL, "Daniel Hardman",
			[]string{"Robert Zane", "Travis Tanner"}},
		{"dhs of gdl", rollup.DH, "Jessica Pearson",
			[]string{"Daniel Hardman"}},
		{"unknown parent", rollup.Manager, "Cameron Dennis", []string{}},
		{"unassigned parent", rollup.Manager, "N/A", []string{}},
		{"unassigned parent case", rollup.DL, " UNASSIGNED ", []string{}},
		{"empty parent", rollup.DH, "", []string{}},
	}

	stores := map[string]rollup.Store{
		"distincter": iotesting.MemoryStore(t),
		"plain":      plainStore{iotesting.MemoryStore(t)},
	}

	for name, st := range stores {
		eng := rollup.New(config.New(), st)
		for _, tt := range tests {
			t.Run(name+"/"+tt.msg, func(t *testing.T) {
				res, err := eng.ChildrenOf(ctx, tt.level, tt.parent)
				require.NoError(t, err)
				assert.Equal(t, tt.res, res)
			})
		}
	}

	t.Run("sentinels never returned", func(t *testing.T) {
		eng := newEngine(t)
		for _, l := range []rollup.Level{rollup.Manager, rollup.DL, rollup.DH} {
			for _, p := range []string{"Robert Zane", "Daniel Hardman", "Jessica Pearson"} {
				res, err := eng.ChildrenOf(ctx, l, p)
				require.NoError(t, err)
				assert.NotContains(t, res, "N/A")
				assert.NotContains(t, res, "unassigned")
				assert.NotContains(t, res, "")
			}
		}
	})

	t.Run("invalid levels", func(t *testing.T) {
		eng := newEngine(t)
		for _, l := range []rollup.Level{rollup.Employee, rollup.GDL} {
			_, err := eng.ChildrenOf(ctx, l, "Jessica Pearson")
			require.Error(t, err)
		}
	})
}

func TestRollupManager(t *testing.T) {
	ctx := context.Background()
	eng := newEngine(t)

	n, err := eng.Rollup(ctx, rollup.Manager, "Harvey Specter")
	require.NoError(t, err)
	assert.Equal(t, 3, n.TotalEmployees)
	assert.Equal(t, 3, n.TotalCurrentGaps)
	assert.Equal(t, 5, n.TotalFutureGaps)
	assert.Equal(t, 10, n.TotalSkills)
	assert.Empty(t, n.Children)

	var names []string
	for _, s := range n.Employees {
		names = append(names, s.Name)
	}
	assert.Equal(t,
		[]string{"Donna Paulsen", "Mike Ross", "Rachel Zane"}, names,
		"employees are sorted by name")
}

func TestRollupDL(t *testing.T) {
	ctx := context.Background()
	eng := newEngine(t)

	n, err := eng.Rollup(ctx, rollup.DL, "Robert Zane")
	require.NoError(t, err)
	assert.Equal(t, 5, n.TotalEmployees)
	assert.Equal(t, 4, n.TotalCurrentGaps)
	assert.Equal(t, 7, n.TotalFutureGaps)
	require.Len(t, n.Children, 2)

	harvey, louis := n.Children[0], n.Children[1]
	assert.Equal(t, "Harvey Specter", harvey.Name)
	assert.Equal(t, rollup.Manager, harvey.Level)
	assert.Equal(t, 3, harvey.TotalEmployees)
	assert.Equal(t, 3, harvey.TotalCurrentGaps)

	assert.Equal(t, "Louis Litt", louis.Name)
	assert.Equal(t, 2, louis.TotalEmployees)
	assert.Equal(t, 1, louis.TotalCurrentGaps)

	require.Len(t, louis.Issues, 1, "jm007 belongs to another DL")
	assert.Equal(t, rollup.HierarchyInconsistency, louis.Issues[0].Kind)
	assert.Equal(t, "jm007", louis.Issues[0].NBK)
	assert.Equal(t, rollup.DL, louis.Issues[0].Level)
}

func TestRollupManagerAlone(t *testing.T) {
	ctx := context.Background()
	eng := newEngine(t)

	n, err := eng.Rollup(ctx, rollup.Manager, "Louis Litt")
	require.NoError(t, err)
	assert.Equal(t, 3, n.TotalEmployees, "jm007 is kept without a DL to compare")
	assert.Empty(t, n.Issues)

	var nbks []string
	for _, s := range n.Employees {
		nbks = append(nbks, s.NBK)
	}
	assert.Equal(t, []string{"hg006", "jm007", "kb005"}, nbks)

	dl, err := eng.Rollup(ctx, rollup.DL, "Travis Tanner")
	require.NoError(t, err)
	require.Len(t, dl.Children, 1)
	assert.Equal(t, 1, dl.Children[0].TotalEmployees)
	assert.Len(t, dl.Children[0].Issues, 2, "Robert Zane reports are flagged here")
}

func TestRollupEmptyDL(t *testing.T) {
	ctx := context.Background()
	eng := rollup.New(config.New(), iomemory.New(&schema.Records{}))

	children, err := eng.ChildrenOf(ctx, rollup.Manager, "Robert Zane")
	require.NoError(t, err)
	assert.Empty(t, children)

	n, err := eng.Rollup(ctx, rollup.DL, "Robert Zane")
	require.NoError(t, err)
	assert.Equal(t, 0, n.TotalEmployees)
	assert.Equal(t, 0, n.TotalCurrentGaps)
	assert.Empty(t, n.Children)
}

func TestRollupNoDoubleCounting(t *testing.T) {
	ctx := context.Background()
	eng := newEngine(t)

	for _, level := range []rollup.Level{rollup.DH, rollup.GDL} {
		name := "Daniel Hardman"
		if level == rollup.GDL {
			name = "Jessica Pearson"
		}
		n, err := eng.Rollup(ctx, level, name)
		require.NoError(t, err)

		flat := n.Flatten()
		seen := make(map[string]int)
		for _, s := range flat {
			seen[s.NBK]++
		}
		for nbk, count := range seen {
			assert.Equal(t, 1, count, "%s counted once", nbk)
		}
		assert.Len(t, flat, 6)
		assert.Equal(t, 6, n.TotalEmployees)
		assert.Equal(t, 5, n.TotalCurrentGaps)
		assert.Equal(t, 8, n.TotalFutureGaps)
	}
}

func TestRollupTotalsMatchChildren(t *testing.T) {
	ctx := context.Background()
	eng := newEngine(t)

	n, err := eng.Rollup(ctx, rollup.GDL, "Jessica Pearson")
	require.NoError(t, err)

	var check func(n *rollup.NodeRollup)
	check = func(n *rollup.NodeRollup) {
		var emps, gaps, fut, skills int
		for _, c := range n.Children {
			check(c)
			emps += c.TotalEmployees
			gaps += c.TotalCurrentGaps
			fut += c.TotalFutureGaps
			skills += c.TotalSkills
		}
		for _, s := range n.Employees {
			emps++
			gaps += s.CurrentGapCount
			fut += s.FutureGapCount
			skills += s.TotalSkills
		}
		assert.Equal(t, emps, n.TotalEmployees, n.Name)
		assert.Equal(t, gaps, n.TotalCurrentGaps, n.Name)
		assert.Equal(t, fut, n.TotalFutureGaps, n.Name)
		assert.Equal(t, skills, n.TotalSkills, n.Name)
	}
	check(n)

	issues := n.AllIssues()
	assert.Len(t, issues, 4, "3 inconsistent placements and 1 bad proficiency")
}

func TestRollupEdgeCases(t *testing.T) {
	ctx := context.Background()
	eng := newEngine(t)

	t.Run("unassigned name", func(t *testing.T) {
		n, err := eng.Rollup(ctx, rollup.Manager, "N/A")
		require.NoError(t, err)
		assert.Equal(t, 0, n.TotalEmployees)
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := eng.Rollup(ctx, rollup.Employee, "Mike Ross")
		require.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := eng.Rollup(cctx, rollup.GDL, "Jessica Pearson")
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("deterministic", func(t *testing.T) {
		for _, l := range []rollup.Level{rollup.DH, rollup.GDL} {
			name := "Daniel Hardman"
			if l == rollup.GDL {
				name = "Jessica Pearson"
			}
			a, err := eng.Rollup(ctx, l, name)
			require.NoError(t, err)
			b, err := eng.Rollup(ctx, l, name)
			require.NoError(t, err)
			assert.Equal(t, a, b, l.String())
		}
	})
}

func TestRollupSeesReload(t *testing.T) {
	ctx := context.Background()
	path := iotesting.WriteTempRecords(t, iotesting.RecordsYAML)
	st, err := iomemory.Open(path)
	require.NoError(t, err)
	eng := rollup.New(config.New(), st)

	n, err := eng.Rollup(ctx, rollup.Manager, "Harvey Specter")
	require.NoError(t, err)
	assert.Equal(t, 3, n.TotalEmployees)

	recs := st.Records()
	recs.Employees = append(recs.Employees, schema.Employee{
		NBK:         "kz008",
		Name:        "Kyle Durant",
		ManagerName: "Harvey Specter",
		DLName:      "Robert Zane",
	})
	iotesting.RewriteRecords(t, path, recs)
	require.NoError(t, st.Reload(ctx))

	n, err = eng.Rollup(ctx, rollup.Manager, "Harvey Specter")
	require.NoError(t, err)
	assert.Equal(t, 4, n.TotalEmployees)
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	eng := newEngine(t)

	tests := []struct {
		msg string
		q   rollup.Query
		res []string
	}{
		{"empty query", rollup.Query{},
			[]string{"dp004", "mr002", "rz003", "hg006", "kb005"}},
		{"text on name", rollup.Query{Text: "ZANE"}, []string{"rz003"}},
		{"text on nbk", rollup.Query{Text: "MR00"}, []string{"mr002"}},
		{"text on shared nbk part", rollup.Query{Text: "00"},
			[]string{"dp004", "mr002", "rz003", "hg006", "kb005"}},
		{"role is not searched", rollup.Query{Text: "associate"}, []string{}},
		{"function is not searched", rollup.Query{Text: "operations"}, []string{}},
		{"nbk", rollup.Query{NBK: "mr002"}, []string{"mr002"}},
		{"nbk is case-sensitive", rollup.Query{NBK: "MR002"}, []string{}},
		{"nbk and text", rollup.Query{NBK: "mr002", Text: "rachel"}, []string{}},
		{"nbk and matching text", rollup.Query{NBK: "mr002", Text: "ross"},
			[]string{"mr002"}},
		{"no match", rollup.Query{Text: "astronaut"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			res, err := eng.Search(ctx, rollup.DL, "Robert Zane", tt.q)
			require.NoError(t, err)
			nbks := []string{}
			for _, s := range res {
				nbks = append(nbks, s.NBK)
			}
			assert.Equal(t, tt.res, nbks)
		})
	}
}

func TestFilterKeepsInput(t *testing.T) {
	in := []rollup.Summary{
		{NBK: "a1", Name: "Mike Ross"},
		{NBK: "a2", Name: "Rachel Zane"},
	}
	res := rollup.Filter(in, rollup.Query{Text: "rachel"})
	require.Len(t, res, 1)
	assert.Equal(t, "a2", res[0].NBK)
	assert.Len(t, in, 2)
	assert.Equal(t, "a1", in[0].NBK)
}

func TestFilterIdempotent(t *testing.T) {
	ctx := context.Background()
	eng := newEngine(t)

	n, err := eng.Rollup(ctx, rollup.GDL, "Jessica Pearson")
	require.NoError(t, err)
	all := n.Flatten()

	queries := []rollup.Query{
		{},
		{Text: "zane"},
		{Text: "00"},
		{NBK: "kb005"},
		{NBK: "kb005", Text: "katrina"},
		{Text: "astronaut"},
	}
	for _, q := range queries {
		once := rollup.Filter(all, q)
		twice := rollup.Filter(once, q)
		assert.Equal(t, once, twice, "%+v", q)
		for _, s := range once {
			assert.Contains(t, all, s)
		}
	}
}

func TestEmployeeDetails(t *testing.T) {
	ctx := context.Background()
	eng := newEngine(t)

	d, err := eng.EmployeeDetails(ctx, "dp004")
	require.NoError(t, err)
	assert.Equal(t, "Donna Paulsen", d.Employee.Name)
	assert.Equal(t, 1, d.Summary.CurrentGapCount)
	require.Len(t, d.Skills, 3)

	names := []string{d.Skills[0].Name, d.Skills[1].Name, d.Skills[2].Name}
	assert.Equal(t, []string{"Filing", "Intuition", "Scheduling"}, names)
	assert.Equal(t, "Under-Skilled", d.Skills[0].GapCurrent.String())
	assert.Equal(t, "Not-Evaluated", d.Skills[1].GapCurrent.String())
	assert.Equal(t, "Meets-Expectation", d.Skills[2].GapCurrent.String())
	assert.Equal(t, "Under-Skilled", d.Skills[2].GapFuture.String())

	_, err = eng.EmployeeDetails(ctx, "nobody")
	assert.True(t, rollup.IsNotFound(err))
}

func TestUpskillPlan(t *testing.T) {
	ctx := context.Background()
	eng := newEngine(t)

	p, err := eng.UpskillPlan(ctx, "mr002")
	require.NoError(t, err)
	assert.Equal(t, "Mike Ross", p.Name)

	require.Len(t, p.CurrentGaps, 2)
	assert.Equal(t, "Negotiation", p.CurrentGaps[0].Skill)
	assert.Equal(t, "3", p.CurrentGaps[0].Target)
	require.Len(t, p.CurrentGaps[0].Resources, 1)

	research := p.CurrentGaps[1]
	assert.Equal(t, "Research", research.Skill)
	assert.Equal(t, "4", research.Target)
	require.Len(t, research.Resources, 2)
	assert.Equal(t, "New to Role", research.Resources[0].Tier)

	require.Len(t, p.FutureGaps, 1, "current gaps are not repeated")
	assert.Equal(t, "Litigation", p.FutureGaps[0].Skill)
	assert.Equal(t, "4", p.FutureGaps[0].Target)

	t.Run("without resources", func(t *testing.T) {
		eng := rollup.New(config.New(), plainStore{iotesting.MemoryStore(t)})
		p, err := eng.UpskillPlan(ctx, "mr002")
		require.NoError(t, err)
		require.Len(t, p.CurrentGaps, 2)
		assert.Empty(t, p.CurrentGaps[1].Resources)
	})

	t.Run("nothing to improve", func(t *testing.T) {
		p, err := eng.UpskillPlan(ctx, "jp001")
		require.NoError(t, err)
		assert.Empty(t, p.CurrentGaps)
		assert.Empty(t, p.FutureGaps)
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in  string
		res rollup.Level
		ok  bool
	}{
		{"manager", rollup.Manager, true},
		{"MGR", rollup.Manager, true},
		{"dl", rollup.DL, true},
		{"Delivery Lead", rollup.DL, true},
		{"delivery_head", rollup.DH, true},
		{"gdl", rollup.GDL, true},
		{"ceo", rollup.Employee, false},
	}
	for _, tt := range tests {
		res, ok := rollup.ParseLevel(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.res, res, tt.in)
	}
}
