package ioview_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/gnames/skillgap/internal/iotesting"
	"github.com/gnames/skillgap/internal/ioview"
	"github.com/gnames/skillgap/pkg/config"
	"github.com/gnames/skillgap/pkg/lifecycle"
	"github.com/gnames/skillgap/pkg/rollup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func engine(t *testing.T) rollup.Engine {
	t.Helper()
	return rollup.New(config.New(), iotesting.MemoryStore(t))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  ioview.Format
		isErr bool
	}{
		{"", ioview.Text, false},
		{"text", ioview.Text, false},
		{" JSON ", ioview.JSON, false},
		{"yml", ioview.YAML, false},
		{"yaml", ioview.YAML, false},
		{"xml", ioview.Text, true},
	}
	for _, tt := range tests {
		f, err := ioview.ParseFormat(tt.input)
		assert.Equal(t, tt.want, f, tt.input)
		assert.Equal(t, tt.isErr, err != nil, tt.input)
	}
}

func TestNodeText(t *testing.T) {
	ctx := context.Background()
	n, err := engine(t).Rollup(ctx, rollup.DL, "Robert Zane")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ioview.New(&buf, ioview.Text).Node(n))
	out := buf.String()
	assert.Contains(t, out, "Delivery Lead: Robert Zane")
	assert.Contains(t, out, "Employees: 5, skills:")
	assert.Contains(t, out, "current gaps: 4")
	assert.Contains(t, out, "Manager: Harvey Specter")
	assert.Contains(t, out, "Mike Ross")
	assert.Contains(t, out, "HierarchyInconsistency jm007")
}

func TestNodeEmpty(t *testing.T) {
	ctx := context.Background()
	n, err := engine(t).Rollup(ctx, rollup.DL, "Nobody")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ioview.New(&buf, ioview.Text).Node(n))
	assert.Contains(t, buf.String(), "No employees found")
}

func TestNodeJSON(t *testing.T) {
	ctx := context.Background()
	n, err := engine(t).Rollup(ctx, rollup.Manager, "Harvey Specter")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ioview.New(&buf, ioview.JSON).Node(n))

	var res struct {
		Name             string `json:"name"`
		Level            string `json:"level"`
		TotalEmployees   int    `json:"totalEmployees"`
		TotalCurrentGaps int    `json:"totalCurrentGaps"`
		Employees        []struct {
			NBK string `json:"nbk"`
		} `json:"employees"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &res))
	assert.Equal(t, "Harvey Specter", res.Name)
	assert.Equal(t, "manager", res.Level)
	assert.Equal(t, 3, res.TotalEmployees)
	assert.Equal(t, 3, res.TotalCurrentGaps)
	require.Len(t, res.Employees, 3)
}

func TestSummaryYAML(t *testing.T) {
	ctx := context.Background()
	s, err := engine(t).SummarizeEmployee(ctx, "mr002")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ioview.New(&buf, ioview.YAML).Summary(s))

	var res map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &res))
	assert.Equal(t, "mr002", res["nbk"])
	assert.Equal(t, 5, res["total_skills"])
	assert.Equal(t, 2, res["current_gap_count"])
	assert.Equal(t, "Harvey Specter", res["manager"])
	assert.Equal(t, "Robert Zane", res["dl"])
	assert.Equal(t, "Daniel Hardman", res["dh"])
	assert.Equal(t, "Jessica Pearson", res["gdl"])

	buf.Reset()
	require.NoError(t, ioview.New(&buf, ioview.Text).Summary(s))
	assert.Contains(t, buf.String(),
		"Manager: Harvey Specter, DL: Robert Zane, DH: Daniel Hardman, GDL: Jessica Pearson")
}

func TestDetailsAndPlanText(t *testing.T) {
	ctx := context.Background()
	eng := engine(t)

	d, err := eng.EmployeeDetails(ctx, "mr002")
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, ioview.New(&buf, ioview.Text).Details(d))
	out := buf.String()
	assert.Contains(t, out, "Mike Ross (mr002)")
	assert.Contains(t, out, "Manager: Harvey Specter")
	assert.Contains(t, out, "Negotiation")
	assert.Contains(t, out, "Under-Skilled")

	p, err := eng.UpskillPlan(ctx, "mr002")
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, ioview.New(&buf, ioview.Text).Plan(p))
	out = buf.String()
	assert.Contains(t, out, "Upskill plan for Mike Ross (mr002)")
	assert.Contains(t, out, "Current gaps: 2")
	assert.Contains(t, out, "https://learn.example.com/research-101")
}

func TestChildren(t *testing.T) {
	var buf bytes.Buffer
	r := ioview.New(&buf, ioview.Text)
	require.NoError(t, r.Children(rollup.Manager, "Robert Zane",
		[]string{"Harvey Specter", "Louis Litt"}))
	out := buf.String()
	assert.Contains(t, out, "Managers under Delivery Lead Robert Zane: 2")
	assert.Contains(t, out, "  Louis Litt")

	buf.Reset()
	r = ioview.New(&buf, ioview.JSON)
	require.NoError(t, r.Children(rollup.DL, "Nobody", nil))
	var res ioview.ChildList
	require.NoError(t, json.Unmarshal(buf.Bytes(), &res))
	assert.Equal(t, "Nobody", res.Parent)
	assert.NotNil(t, res.Children)
	assert.Empty(t, res.Children)
}

func TestSummaries(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ioview.New(&buf, ioview.Text).Summaries(nil))
	assert.Contains(t, buf.String(), "No employees found")

	ss := []rollup.Summary{
		{NBK: "kb005", Name: "Katrina Bennett", TotalSkills: 2, CurrentGapCount: 1},
	}
	buf.Reset()
	require.NoError(t, ioview.New(&buf, ioview.Text).Summaries(ss))
	assert.Contains(t, buf.String(), "Katrina Bennett")
	assert.Contains(t, buf.String(), "Found 1 employees")
}

func TestReport(t *testing.T) {
	rep := &lifecycle.Report{Employees: 1200, Skills: 15000, CurrentGaps: 5}

	var buf bytes.Buffer
	require.NoError(t, ioview.New(&buf, ioview.Text).Report(rep))
	assert.Contains(t, buf.String(), "1,200")
	assert.Contains(t, buf.String(), "15,000")
	assert.Contains(t, buf.String(), "Elapsed time:")

	buf.Reset()
	require.NoError(t, ioview.New(&buf, ioview.JSON).Report(rep))
	assert.Contains(t, buf.String(), `"currentGaps": 5`)
}
