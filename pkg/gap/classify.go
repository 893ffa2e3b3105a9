package gap

// Classify compares actual proficiency with the expected one.
// It is total: if either side is Unrated the verdict is NotEvaluated.
func Classify(actual, expected Proficiency) Verdict {
	if !actual.IsRated() || !expected.IsRated() {
		return NotEvaluated
	}
	switch {
	case actual < expected:
		return UnderSkilled
	case actual > expected:
		return OverSkilled
	default:
		return MeetsExpectation
	}
}

// Assessment holds both verdicts of one skill record.
type Assessment struct {
	Current Verdict
	Future  Verdict

	// Errs keeps parsing errors of proficiency values. When it is not
	// empty at least one verdict is NotEvaluated because of invalid data.
	Errs []error
}

// Assess parses the three proficiency values of a skill and classifies
// current and future expectations independently.
func Assess(current, expectedCurrent, expectedFuture string) Assessment {
	var res Assessment
	parse := func(s string) Proficiency {
		p, err := ParseProficiency(s)
		if err != nil {
			res.Errs = append(res.Errs, err)
		}
		return p
	}

	actual := parse(current)
	expCur := parse(expectedCurrent)
	expFut := parse(expectedFuture)

	res.Current = Classify(actual, expCur)
	res.Future = Classify(actual, expFut)
	return res
}
