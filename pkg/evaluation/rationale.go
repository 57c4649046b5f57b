package evaluation

// Rationale explains the outcome of a check: the value the check
// expected, the value it observed, and an optional hint for the
// reader.
type Rationale struct {
	// Expected describes the value the check expected.
	Expected string `json:"expected"`

	// Actual describes the value that was observed.
	Actual string `json:"actual"`

	// Hint is an optional, human-readable explanation shown on
	// failure.
	Hint string `json:"hint,omitempty"`
}

// SkippedRationale returns the rationale used for checks that were
// never executed.
func SkippedRationale() Rationale {
	return Rationale{
		Expected: "(skipped)",
		Actual:   "(skipped)",
	}
}
