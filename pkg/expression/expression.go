package expression

import "digital.vasic.zeal/pkg/evaluation"

// Expression is an evaluable chain of checks over a subject.
type Expression[T any] interface {
	// Subject returns the value under evaluation.
	Subject() T

	// Evaluate runs every check in the chain and returns a
	// fresh result tree. Evaluate is pure: repeated calls on an
	// unchanged expression yield structurally equal results.
	Evaluate() *evaluation.Evaluated
}
