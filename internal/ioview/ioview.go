// Package ioview renders engine results for the terminal and for other
// programs. Text output is aligned with tabwriter, JSON goes through
// gnfmt and YAML through yaml.v3.
package ioview

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gnfmt"
	"github.com/gnames/skillgap/pkg/lifecycle"
	"github.com/gnames/skillgap/pkg/rollup"
	"gopkg.in/yaml.v3"
)

// Format is an output format.
type Format int

const (
	Text Format = iota
	JSON
	YAML
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return "text"
	}
}

// ParseFormat converts a format name to Format. Empty string means Text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return Text, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return Text, FormatError(s)
}

// Renderer writes results to w in one format.
type Renderer struct {
	w io.Writer
	f Format
}

// New creates a Renderer.
func New(w io.Writer, f Format) *Renderer {
	return &Renderer{w: w, f: f}
}

// ChildList is the structured form of a children listing.
type ChildList struct {
	Level    rollup.Level `json:"level"    yaml:"level"`
	Parent   string       `json:"parent"   yaml:"parent"`
	Children []string     `json:"children" yaml:"children"`
}

// Summary renders one employee summary.
func (r *Renderer) Summary(s rollup.Summary) error {
	if r.f != Text {
		return r.encode(s)
	}
	return r.text(func(tw *tabwriter.Writer) {
		writeSummary(tw, s)
	})
}

// Node renders a rollup as an indented tree.
func (r *Renderer) Node(n *rollup.NodeRollup) error {
	if r.f != Text {
		return r.encode(n)
	}
	return r.text(func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "%s: %s\n", n.Level.Label(), n.Name)
		fmt.Fprintf(tw, "Employees: %s, skills: %s, current gaps: %s, future gaps: %s\n",
			comma(n.TotalEmployees), comma(n.TotalSkills),
			comma(n.TotalCurrentGaps), comma(n.TotalFutureGaps))
		if n.TotalEmployees == 0 {
			fmt.Fprintln(tw, "No employees found")
			return
		}

		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "NAME\tNBK\tEMPLOYEES\tSKILLS\tCURRENT GAPS\tFUTURE GAPS")
		writeRows(tw, n, 0)
		writeIssues(tw, n.AllIssues())
	})
}

// Details renders the employee record with every skill.
func (r *Renderer) Details(d *rollup.Details) error {
	if r.f != Text {
		return r.encode(d)
	}
	return r.text(func(tw *tabwriter.Writer) {
		writeSummary(tw, d.Summary)
		if len(d.Skills) == 0 {
			return
		}

		var stale bool
		fmt.Fprintln(tw)
		fmt.Fprintln(tw,
			"SKILL\tTYPE\tCATEGORY\tCURRENT\tEXPECTED\tFUTURE\tGAP NOW\tGAP FUTURE")
		for _, s := range d.Skills {
			mark := ""
			if s.Stale {
				mark = "*"
				stale = true
			}
			fmt.Fprintf(tw, "%s%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				s.Name, mark, dash(s.Type), dash(s.Category),
				dash(s.Current), dash(s.ExpectedCurrent), dash(s.ExpectedFuture),
				s.GapCurrent, s.GapFuture)
		}
		if stale {
			fmt.Fprintln(tw, "\n* stored gap flags differ from proficiency values")
		}
	})
}

// Plan renders an upskilling plan.
func (r *Renderer) Plan(p *rollup.Plan) error {
	if r.f != Text {
		return r.encode(p)
	}
	return r.text(func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "Upskill plan for %s (%s)\n", p.Name, p.NBK)
		writePlanItems(tw, "Current gaps", p.CurrentGaps)
		writePlanItems(tw, "Future gaps", p.FutureGaps)
	})
}

// Children renders names found under parent.
func (r *Renderer) Children(level rollup.Level, parent string, names []string) error {
	if names == nil {
		names = []string{}
	}
	if r.f != Text {
		return r.encode(ChildList{Level: level, Parent: parent, Children: names})
	}
	return r.text(func(tw *tabwriter.Writer) {
		pl, _ := level.Parent()
		fmt.Fprintf(tw, "%s under %s %s: %d\n",
			plural(level.Label()), pl.Label(), parent, len(names))
		for _, n := range names {
			fmt.Fprintf(tw, "  %s\n", n)
		}
	})
}

// Summaries renders a list of summaries as a table.
func (r *Renderer) Summaries(ss []rollup.Summary) error {
	if ss == nil {
		ss = []rollup.Summary{}
	}
	if r.f != Text {
		return r.encode(ss)
	}
	return r.text(func(tw *tabwriter.Writer) {
		if len(ss) == 0 {
			fmt.Fprintln(tw, "No employees found")
			return
		}
		fmt.Fprintln(tw, "NBK\tNAME\tROLE\tFUNCTION\tSKILLS\tCURRENT GAPS\tFUTURE GAPS")
		for _, s := range ss {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				s.NBK, s.Name, dash(s.Role), dash(s.FunctionName),
				comma(s.TotalSkills), comma(s.CurrentGapCount), comma(s.FutureGapCount))
		}
		fmt.Fprintf(tw, "\nFound %s employees\n", comma(len(ss)))
	})
}

// Report renders the result of a populate run.
func (r *Renderer) Report(rep *lifecycle.Report) error {
	if r.f != Text {
		return r.encode(rep)
	}
	return r.text(func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "Employees:\t%s\n", comma(rep.Employees))
		fmt.Fprintf(tw, "Skills:\t%s\n", comma(rep.Skills))
		fmt.Fprintf(tw, "Training resources:\t%s\n", comma(rep.Resources))
		fmt.Fprintf(tw, "Current gaps:\t%s\n", comma(rep.CurrentGaps))
		fmt.Fprintf(tw, "Future gaps:\t%s\n", comma(rep.FutureGaps))
		fmt.Fprintf(tw, "Invalid skills:\t%s\n", comma(rep.InvalidSkills))
		fmt.Fprintf(tw, "Elapsed time:\t%s\n", gnfmt.TimeString(rep.Seconds))
	})
}

func (r *Renderer) text(fn func(*tabwriter.Writer)) error {
	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	fn(tw)
	if err := tw.Flush(); err != nil {
		return WriteError(err)
	}
	return nil
}

func (r *Renderer) encode(obj any) error {
	switch r.f {
	case YAML:
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err := enc.Encode(obj); err != nil {
			return WriteError(err)
		}
		if err := enc.Close(); err != nil {
			return WriteError(err)
		}
		return nil
	default:
		bs, err := gnfmt.GNjson{Pretty: true}.Encode(obj)
		if err != nil {
			return WriteError(err)
		}
		if _, err = fmt.Fprintln(r.w, string(bs)); err != nil {
			return WriteError(err)
		}
		return nil
	}
}

func writeSummary(w io.Writer, s rollup.Summary) {
	fmt.Fprintf(w, "%s (%s)\n", s.Name, s.NBK)
	fmt.Fprintf(w, "Role: %s, function: %s, PM/IC: %s\n",
		dash(s.Role), dash(s.FunctionName), dash(s.PmIc))
	fmt.Fprintf(w, "Manager: %s, DL: %s, DH: %s, GDL: %s\n",
		dash(s.ManagerName), dash(s.DLName), dash(s.DHName), dash(s.GDLName))
	fmt.Fprintf(w, "Skills: %s, current gaps: %s, future gaps: %s\n",
		comma(s.TotalSkills), comma(s.CurrentGapCount), comma(s.FutureGapCount))
	writeIssues(w, s.Issues)
}

func writeRows(w io.Writer, n *rollup.NodeRollup, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(w, "%s%s: %s\t\t%s\t%s\t%s\t%s\n",
		indent, n.Level.Label(), n.Name, comma(n.TotalEmployees),
		comma(n.TotalSkills), comma(n.TotalCurrentGaps), comma(n.TotalFutureGaps))
	for _, c := range n.Children {
		writeRows(w, c, depth+1)
	}
	for _, s := range n.Employees {
		fmt.Fprintf(w, "%s  %s\t%s\t\t%s\t%s\t%s\n",
			indent, s.Name, s.NBK, comma(s.TotalSkills),
			comma(s.CurrentGapCount), comma(s.FutureGapCount))
	}
}

func writeIssues(w io.Writer, issues []rollup.Issue) {
	if len(issues) == 0 {
		return
	}
	fmt.Fprintf(w, "\nIssues: %d\n", len(issues))
	for _, is := range issues {
		fmt.Fprintf(w, "  ! %s %s: %s\n", is.Kind, is.NBK, is.Message)
	}
}

func writePlanItems(w io.Writer, title string, items []rollup.PlanItem) {
	fmt.Fprintf(w, "\n%s: %d\n", title, len(items))
	for _, it := range items {
		fmt.Fprintf(w, "  %s: %s -> %s\n", it.Skill, dash(it.Current), it.Target)
		for _, res := range it.Resources {
			fmt.Fprintf(w, "    - [%s] %s\n", res.Tier, res.URL)
		}
	}
}

func comma(i int) string {
	return humanize.Comma(int64(i))
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func plural(s string) string {
	return s + "s"
}
