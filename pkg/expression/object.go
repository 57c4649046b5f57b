package expression

import (
	"fmt"
	"reflect"

	"digital.vasic.zeal/pkg/evaluation"
)

const (
	predicateSatisfied   = "Predicate satisfied"
	predicateUnsatisfied = "Predicate unsatisfied"

	alwaysFailNilType = "Always fail: cannot compare to (null) type"
	nilTypeHint       = "Check will always fail when compared " +
		"to a (null) type"
)

// ObjectExpression is a fluent chain of checks over an arbitrary
// subject.
type ObjectExpression[T any] struct {
	c chain[T]
}

// That creates an expression over the supplied subject with a
// default name.
func That[T any](subject T) *ObjectExpression[T] {
	return ThatNamed(subject, fmt.Sprintf(
		"Object[%s] evaluation", evaluation.StringOf(subject),
	))
}

// ThatNamed creates an expression over the supplied subject with
// the given name.
func ThatNamed[T any](
	subject T,
	name string,
) *ObjectExpression[T] {
	return &ObjectExpression[T]{c: newChain(subject, name)}
}

// Subject returns the value under evaluation.
func (e *ObjectExpression[T]) Subject() T { return e.c.subject }

// Evaluate runs every check in the chain and returns the result
// tree.
func (e *ObjectExpression[T]) Evaluate() *evaluation.Evaluated {
	return e.c.evaluate()
}

// IsNotNull adds a check that the subject is not nil.
//
// This check takes precedence over every other check: no matter
// where it appears in the chain, it is evaluated first, because
// all non-nullity checks presume a non-nil subject.
func (e *ObjectExpression[T]) IsNotNull() *ObjectExpression[T] {
	e.c.newNullableCheck(func(s T) bool {
		return !evaluation.IsNil(s)
	}).
		named("isNotNull").
		expected("not[(null)]").
		prepend()
	return e
}

// IsNull adds a check that the subject is nil.
func (e *ObjectExpression[T]) IsNull() *ObjectExpression[T] {
	e.c.newNullableCheck(func(s T) bool {
		return evaluation.IsNil(s)
	}).
		named("isNull").
		expected("(null)").
		append()
	return e
}

// IsEqualTo adds a check that the subject is deeply equal to the
// supplied value. The check passes when both are nil.
func (e *ObjectExpression[T]) IsEqualTo(
	other any,
) *ObjectExpression[T] {
	e.c.newNullableCheck(func(s T) bool {
		return evaluation.EqualValues(s, other)
	}).
		named(fmt.Sprintf(
			"isEqualTo[%s]", evaluation.StringOf(other),
		)).
		expected(evaluation.StringOf(other)).
		append()
	return e
}

// IsNotEqualTo adds a check that the subject is not deeply equal
// to the supplied value. The check fails when both are nil.
func (e *ObjectExpression[T]) IsNotEqualTo(
	other any,
) *ObjectExpression[T] {
	e.c.newNullableCheck(func(s T) bool {
		return !evaluation.EqualValues(s, other)
	}).
		named(fmt.Sprintf(
			"isNotEqualTo[%s]", evaluation.StringOf(other),
		)).
		expected(fmt.Sprintf(
			"not[%s]", evaluation.StringOf(other),
		)).
		append()
	return e
}

// Is adds a check that the subject is identical to the supplied
// value: the same pointer, or the same comparable value. The
// check passes when both are nil.
func (e *ObjectExpression[T]) Is(other any) *ObjectExpression[T] {
	e.c.newNullableCheck(func(s T) bool {
		return sameAs(s, other)
	}).
		named(fmt.Sprintf(
			"is[%s]", evaluation.StringOf(other),
		)).
		expected(evaluation.StringOf(other)).
		hint(fmt.Sprintf(
			"Subject should be identical to %s",
			evaluation.StringOf(other),
		)).
		append()
	return e
}

// IsNot adds a check that the subject is not identical to the
// supplied value.
func (e *ObjectExpression[T]) IsNot(
	other any,
) *ObjectExpression[T] {
	e.c.newNullableCheck(func(s T) bool {
		return !sameAs(s, other)
	}).
		named(fmt.Sprintf(
			"isNot[%s]", evaluation.StringOf(other),
		)).
		expected(fmt.Sprintf(
			"not[%s]", evaluation.StringOf(other),
		)).
		append()
	return e
}

// IsType adds a check that the subject's dynamic type exactly
// matches the supplied type. A subject of a different type, even
// an assignable one, fails. A nil type always fails.
func (e *ObjectExpression[T]) IsType(
	t reflect.Type,
) *ObjectExpression[T] {
	b := e.c.newCheck(func(s T) bool {
		return t != nil && reflect.TypeOf(any(s)) == t
	})

	if t == nil {
		b.named("isType[(null)]").
			expected(alwaysFailNilType).
			hint(nilTypeHint)
	} else {
		b.named(fmt.Sprintf("isType[%s]", t)).
			expected(t.String()).
			hint(fmt.Sprintf(
				"Subject should be exactly of type %s", t,
			))
	}

	b.actual(typeOfSubject[T]).append()
	return e
}

// IsNotType adds a check that the subject's dynamic type does not
// exactly match the supplied type. A nil type always fails.
func (e *ObjectExpression[T]) IsNotType(
	t reflect.Type,
) *ObjectExpression[T] {
	b := e.c.newCheck(func(s T) bool {
		return t != nil && reflect.TypeOf(any(s)) != t
	})

	if t == nil {
		b.named("isNotType[(null)]").
			expected(alwaysFailNilType).
			hint(nilTypeHint)
	} else {
		b.named(fmt.Sprintf("isNotType[%s]", t)).
			expected(fmt.Sprintf("not[%s]", t)).
			hint(fmt.Sprintf(
				"Subject should be any type other than %s", t,
			))
	}

	b.actual(typeOfSubject[T]).append()
	return e
}

// IsInstanceOf adds a check that the subject's dynamic type is
// assignable to the supplied type. Interface types can be named
// via reflect.TypeOf((*io.Reader)(nil)).Elem(). A nil type always
// fails.
func (e *ObjectExpression[T]) IsInstanceOf(
	t reflect.Type,
) *ObjectExpression[T] {
	b := e.c.newCheck(func(s T) bool {
		return t != nil &&
			reflect.TypeOf(any(s)).AssignableTo(t)
	})

	if t == nil {
		b.named("isInstanceOf[(null)]").
			expected(alwaysFailNilType).
			hint(nilTypeHint)
	} else {
		b.named(fmt.Sprintf("isInstanceOf[%s]", t)).
			expected(fmt.Sprintf("assignable[%s]", t)).
			hint(fmt.Sprintf(
				"Subject should be of type %s or assignable "+
					"to it", t,
			))
	}

	b.actual(typeOfSubject[T]).append()
	return e
}

// IsNotInstanceOf adds a check that the subject's dynamic type is
// not assignable to the supplied type. A nil type always fails.
func (e *ObjectExpression[T]) IsNotInstanceOf(
	t reflect.Type,
) *ObjectExpression[T] {
	b := e.c.newCheck(func(s T) bool {
		return t != nil &&
			!reflect.TypeOf(any(s)).AssignableTo(t)
	})

	if t == nil {
		b.named("isNotInstanceOf[(null)]").
			expected(alwaysFailNilType).
			hint(nilTypeHint)
	} else {
		b.named(fmt.Sprintf("isNotInstanceOf[%s]", t)).
			expected(fmt.Sprintf("not[assignable[%s]]", t)).
			hint(fmt.Sprintf(
				"Subject should not be assignable to %s", t,
			))
	}

	b.actual(typeOfSubject[T]).append()
	return e
}

// Satisfies adds a check that the supplied predicate holds for
// the subject. The predicate is only called with a non-nil
// subject.
func (e *ObjectExpression[T]) Satisfies(
	predicate func(subject T) bool,
) *ObjectExpression[T] {
	e.c.newCheck(predicate).
		named("predicate").
		expected(predicateSatisfied).
		actual(func(s T) string {
			if predicate(s) {
				return predicateSatisfied
			}
			return predicateUnsatisfied
		}).
		append()
	return e
}

// DoesNotSatisfy adds a check that the supplied predicate does
// not hold for the subject.
func (e *ObjectExpression[T]) DoesNotSatisfy(
	predicate func(subject T) bool,
) *ObjectExpression[T] {
	e.c.newCheck(func(s T) bool { return !predicate(s) }).
		named("not[predicate]").
		expected(predicateUnsatisfied).
		actual(func(s T) string {
			if predicate(s) {
				return predicateSatisfied
			}
			return predicateUnsatisfied
		}).
		append()
	return e
}

// ToStringIs adds a check that the subject's string form equals
// the supplied value.
func (e *ObjectExpression[T]) ToStringIs(
	expected string,
) *ObjectExpression[T] {
	e.c.newCheck(func(s T) bool {
		return fmt.Sprint(s) == expected
	}).
		named(fmt.Sprintf("toString[%s]", expected)).
		expected(expected).
		append()
	return e
}

// ToStringIsNot adds a check that the subject's string form does
// not equal the supplied value.
func (e *ObjectExpression[T]) ToStringIsNot(
	expected string,
) *ObjectExpression[T] {
	e.c.newCheck(func(s T) bool {
		return fmt.Sprint(s) != expected
	}).
		named(fmt.Sprintf("not[toString[%s]]", expected)).
		expected(fmt.Sprintf("not[%s]", expected)).
		append()
	return e
}

// typeOfSubject renders the subject's dynamic type for rationale
// text.
func typeOfSubject[T any](s T) string {
	t := reflect.TypeOf(any(s))
	if t == nil {
		return "(null)"
	}
	return t.String()
}

// sameAs reports identity: both nil, the same pointer, or equal
// comparable values of the same type.
func sameAs(a, b any) bool {
	if evaluation.IsNil(a) || evaluation.IsNil(b) {
		return evaluation.IsNil(a) && evaluation.IsNil(b)
	}

	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Kind() == reflect.Ptr && rb.Kind() == reflect.Ptr {
		return ra.Pointer() == rb.Pointer()
	}
	if ra.Type() != rb.Type() || !ra.Type().Comparable() {
		return false
	}
	return a == b
}
