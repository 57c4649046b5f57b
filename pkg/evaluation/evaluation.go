package evaluation

// Evaluation is a single named check that can be evaluated against
// a subject of type T.
type Evaluation[T any] interface {
	// Name returns the name of the check.
	Name() string

	// Evaluate runs the check against the subject and returns
	// the result.
	Evaluate(subject T) *Evaluated

	// Skip records the check as skipped without executing it.
	Skip() *Evaluated
}
