// Package assertion converts evaluated expressions into
// preconditions: checks whose failure is surfaced as an error (or
// a panic) rather than a result value.
//
// A typical usage guards a constructor argument:
//
//	title, err := assertion.Require(
//		expression.ThatString(title).IsNotNull().IsPopulated(),
//	)
package assertion

import (
	"digital.vasic.zeal/pkg/evaluation"
	"digital.vasic.zeal/pkg/expression"
)

// Require evaluates the expression and returns its subject when
// every check passes.
//
// On failure the error kind depends on the subject: a nil subject
// yields a *NullSubjectError, any other subject a
// *InvalidValueError. A nil expression or a nil evaluation result
// is a usage error (ErrNilExpression, ErrNilEvaluation).
func Require[T any](
	expr expression.Expression[T],
) (T, error) {
	return RequireMsg(expr, "")
}

// RequireMsg behaves like Require with a caller-supplied message
// included in any failure error.
func RequireMsg[T any](
	expr expression.Expression[T],
	message string,
) (T, error) {
	var zero T

	if expr == nil || evaluation.IsNil(expr) {
		return zero, ErrNilExpression
	}

	evaluated := expr.Evaluate()
	if evaluated == nil {
		return zero, ErrNilEvaluation
	}

	if evaluated.State == evaluation.StatePassed {
		return expr.Subject(), nil
	}

	if evaluation.IsNil(expr.Subject()) {
		return zero, &NullSubjectError{
			Message:   message,
			Evaluated: evaluated,
		}
	}
	return zero, &InvalidValueError{
		Message:   message,
		Evaluated: evaluated,
	}
}

// Must evaluates the expression and returns its subject, panicking
// with the error Require would return when the evaluation fails.
func Must[T any](expr expression.Expression[T]) T {
	return MustMsg(expr, "")
}

// MustMsg behaves like Must with a caller-supplied message.
func MustMsg[T any](
	expr expression.Expression[T],
	message string,
) T {
	v, err := RequireMsg(expr, message)
	if err != nil {
		panic(err)
	}
	return v
}
