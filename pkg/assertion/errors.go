package assertion

import (
	"errors"
	"fmt"

	"digital.vasic.zeal/pkg/evaluation"
	"digital.vasic.zeal/pkg/report"
)

// Usage errors signal programmer mistakes, not check failures.
var (
	// ErrNilExpression is returned when a nil expression is
	// passed to a precondition.
	ErrNilExpression = errors.New(
		"expression must not be nil",
	)

	// ErrNilEvaluation is returned when an expression produces
	// a nil evaluation result.
	ErrNilEvaluation = errors.New(
		"expression produced a nil evaluation",
	)
)

// NullSubjectError reports a failed precondition whose subject
// was nil.
type NullSubjectError struct {
	// Message is the caller-supplied message, if any.
	Message string

	// Evaluated is the result tree of the failed evaluation.
	Evaluated *evaluation.Evaluated
}

// Error renders the message followed by the evaluation rationale.
func (e *NullSubjectError) Error() string {
	return renderError(
		"precondition failed: subject is (null)",
		e.Message, e.Evaluated,
	)
}

// InvalidValueError reports a failed precondition whose subject
// was not nil.
type InvalidValueError struct {
	// Message is the caller-supplied message, if any.
	Message string

	// Evaluated is the result tree of the failed evaluation.
	Evaluated *evaluation.Evaluated
}

// Error renders the message followed by the evaluation rationale.
func (e *InvalidValueError) Error() string {
	return renderError(
		"precondition failed: illegal value",
		e.Message, e.Evaluated,
	)
}

func renderError(
	kind, message string,
	evaluated *evaluation.Evaluated,
) string {
	header := kind
	if message != "" {
		header = fmt.Sprintf("%s: %s", kind, message)
	}

	out, err := report.NewTextRenderer().Render(evaluated)
	if err != nil {
		return header
	}
	return header + "\n" + string(out)
}
