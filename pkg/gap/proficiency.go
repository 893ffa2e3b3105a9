// Package gap classifies proficiency gaps between what an employee can do
// and what the role expects.
//
// The package is pure: it parses proficiency strings into an ordered scale
// and compares them. It never reads records on its own.
package gap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidProficiency is wrapped by errors returned from
// ParseProficiency when a value is present but does not belong to the
// proficiency scale.
var ErrInvalidProficiency = errors.New("invalid proficiency")

// Proficiency is a position on the ordered proficiency scale.
// Higher values mean more skill. Unrated marks a missing value.
type Proficiency int

// Unrated means the proficiency was not provided.
const Unrated Proficiency = -1

// named maps proficiency words to the numeric scale.
var named = map[string]Proficiency{
	"novice":       1,
	"beginner":     1,
	"basic":        1,
	"foundational": 1,
	"awareness":    1,
	"intermediate": 2,
	"working":      2,
	"developing":   2,
	"advanced":     3,
	"proficient":   3,
	"skilled":      3,
	"expert":       4,
	"master":       5,
	"mastery":      5,
}

// missing lists values that mean "not assessed".
var missing = map[string]struct{}{
	"":      {},
	"n/a":   {},
	"na":    {},
	"nan":   {},
	"-":     {},
	"none":  {},
	"null":  {},
	"blank": {},
}

// IsRated returns true if proficiency has a value on the scale.
func (p Proficiency) IsRated() bool {
	return p >= 0
}

func (p Proficiency) String() string {
	if !p.IsRated() {
		return "Unrated"
	}
	return strconv.Itoa(int(p))
}

// ParseProficiency converts a proficiency string to the ordered scale.
//
// Accepted forms are non-negative integers ("3"), "L3", "Level 3" and
// named levels ("Intermediate", "Expert"...), case-insensitive. Missing
// values return Unrated and no error. Unrecognized values return Unrated
// and an error wrapping ErrInvalidProficiency.
func ParseProficiency(s string) (Proficiency, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if _, ok := missing[v]; ok {
		return Unrated, nil
	}

	if p, ok := named[v]; ok {
		return p, nil
	}

	num := v
	switch {
	case strings.HasPrefix(num, "level"):
		num = strings.TrimSpace(strings.TrimPrefix(num, "level"))
	case strings.HasPrefix(num, "l"):
		num = strings.TrimPrefix(num, "l")
	}
	// "3.0" comes from spreadsheets exporting numbers as floats.
	num = strings.TrimSuffix(num, ".0")

	i, err := strconv.Atoi(num)
	if err != nil || i < 0 {
		return Unrated, fmt.Errorf("%w: '%s'", ErrInvalidProficiency, s)
	}
	return Proficiency(i), nil
}
