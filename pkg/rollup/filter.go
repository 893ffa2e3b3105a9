package rollup

import (
	"strings"
)

// Query narrows a list of employee summaries. Empty fields match
// everything.
type Query struct {
	// Text is a case-insensitive substring matched against name and NBK.
	Text string

	// NBK must be equal to the employee NBK.
	NBK string
}

// IsEmpty is true when the query matches every summary.
func (q Query) IsEmpty() bool {
	return strings.TrimSpace(q.Text) == "" && strings.TrimSpace(q.NBK) == ""
}

// Match returns true if the summary satisfies the query.
func (q Query) Match(s Summary) bool {
	nbk := strings.TrimSpace(q.NBK)
	if nbk != "" && nbk != s.NBK {
		return false
	}

	text := strings.ToLower(strings.TrimSpace(q.Text))
	if text == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s.Name), text) ||
		strings.Contains(strings.ToLower(s.NBK), text)
}

// Filter returns summaries that match the query, keeping their order.
// The input is not modified.
func Filter(ss []Summary, q Query) []Summary {
	res := make([]Summary, 0, len(ss))
	for _, s := range ss {
		if q.Match(s) {
			res = append(res, s)
		}
	}
	return res
}
