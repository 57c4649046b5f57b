// Package expression provides the fluent builder surface of zeal.
// Callers wrap a subject with That or ThatString, chain named
// checks onto it, and finish with Evaluate to obtain the result
// tree:
//
//	result := expression.ThatString("abc").
//		IsNotNull().
//		HasLengthOf(3).
//		Evaluate()
//
// Checks are evaluated in the order they are chained, with one
// exception: IsNotNull is always evaluated first, because every
// other check on an object presumes a non-nil subject.
package expression
