package gap

import (
	"strings"
)

// Verdict is the result of comparing actual and expected proficiency.
type Verdict int

const (
	// NotEvaluated means at least one of the compared values is missing
	// or invalid.
	NotEvaluated Verdict = iota
	// UnderSkilled means actual proficiency is below expectation.
	UnderSkilled
	// MeetsExpectation means actual proficiency equals expectation.
	MeetsExpectation
	// OverSkilled means actual proficiency is above expectation.
	OverSkilled
)

var verdictNames = map[Verdict]string{
	NotEvaluated:     "Not-Evaluated",
	UnderSkilled:     "Under-Skilled",
	MeetsExpectation: "Meets-Expectation",
	OverSkilled:      "Over-Skilled",
}

func (v Verdict) String() string {
	if s, ok := verdictNames[v]; ok {
		return s
	}
	return verdictNames[NotEvaluated]
}

// IsGap returns true for verdicts that count as a skill gap.
func (v Verdict) IsGap() bool {
	return v == UnderSkilled
}

// MarshalText implements encoding.TextMarshaler, so verdicts show
// up by name in JSON and YAML output.
func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// ParseVerdict reads a stored gap flag. Case, spaces and underscores are
// tolerated ("under skilled", "UNDER_SKILLED"). The second value is false
// when the string is not a known verdict.
func ParseVerdict(s string) (Verdict, bool) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "-", "_", "-").Replace(norm)
	for k, v := range verdictNames {
		if strings.ToLower(v) == norm {
			return k, true
		}
	}
	return NotEvaluated, false
}
