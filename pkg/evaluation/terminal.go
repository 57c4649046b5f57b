package evaluation

// Formatter renders a value of the subject type for rationale
// text.
type Formatter[T any] func(subject T) string

// Reason generates the rationale for a terminal check. Any field
// left nil falls back to a default: "<not set>" for Expected and
// the string form of the subject for Actual.
type Reason[T any] struct {
	Expected Formatter[T]
	Actual   Formatter[T]
	Hint     Formatter[T]
}

func (r Reason[T]) generate(subject T) Rationale {
	out := Rationale{
		Expected: "<not set>",
		Actual:   StringOf(subject),
	}
	if r.Expected != nil {
		out.Expected = r.Expected(subject)
	}
	if r.Actual != nil {
		out.Actual = r.Actual(subject)
	}
	if r.Hint != nil {
		out.Hint = r.Hint(subject)
	}
	return out
}

// Terminal is a single named check over a subject. It is immutable
// once constructed.
type Terminal[T any] struct {
	name     string
	test     func(subject T) bool
	nullable bool
	reason   Reason[T]
}

// NewTerminal creates a check whose test assumes a non-nil
// subject. When the subject is nil the check fails without the
// test being called.
func NewTerminal[T any](
	name string,
	test func(subject T) bool,
	reason Reason[T],
) *Terminal[T] {
	return &Terminal[T]{
		name:   name,
		test:   test,
		reason: reason,
	}
}

// NewNullableTerminal creates a check whose test tolerates a nil
// subject. The test is always called, even when the subject is
// nil.
func NewNullableTerminal[T any](
	name string,
	test func(subject T) bool,
	reason Reason[T],
) *Terminal[T] {
	return &Terminal[T]{
		name:     name,
		test:     test,
		nullable: true,
		reason:   reason,
	}
}

// Name returns the name of the check.
func (t *Terminal[T]) Name() string { return t.name }

// Nullable reports whether the check's test tolerates a nil
// subject.
func (t *Terminal[T]) Nullable() bool { return t.nullable }

// Evaluate runs the check against the subject. A non-nullable
// check fails on a nil subject without its test or actual-value
// formatter being called.
func (t *Terminal[T]) Evaluate(subject T) *Evaluated {
	if !t.nullable && IsNil(subject) {
		r := Rationale{
			Expected: "<not set>",
			Actual:   StringOf(subject),
		}
		if t.reason.Expected != nil {
			r.Expected = t.reason.Expected(subject)
		}
		if t.reason.Hint != nil {
			r.Hint = t.reason.Hint(subject)
		}
		return &Evaluated{
			Name:      t.name,
			State:     StateFailed,
			Rationale: r,
		}
	}

	state := StateFailed
	if t.test(subject) {
		state = StatePassed
	}

	return &Evaluated{
		Name:      t.name,
		State:     state,
		Rationale: t.reason.generate(subject),
	}
}

// Skip records the check as skipped without executing it.
func (t *Terminal[T]) Skip() *Evaluated {
	return &Evaluated{
		Name:      t.name,
		State:     StateSkipped,
		Rationale: SkippedRationale(),
	}
}
