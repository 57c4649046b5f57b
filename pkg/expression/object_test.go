package expression

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.zeal/pkg/evaluation"
)

type widget struct {
	Name string
}

func (w widget) String() string {
	return fmt.Sprintf("widget(%s)", w.Name)
}

func TestObjectNullityEvaluatesFirst(t *testing.T) {
	var subject *widget

	result := That(subject).
		IsEqualTo(&widget{Name: "a"}).
		IsNotNull().
		Evaluate()

	require.Len(t, result.Children, 2)
	assert.Equal(t, "isNotNull", result.Children[0].Name)
	assert.Equal(t, evaluation.StateFailed,
		result.Children[0].State)
	assert.Equal(t, evaluation.StateSkipped,
		result.Children[1].State)
	assert.Equal(t, evaluation.StateFailed, result.State)
}

func TestObjectIsNull(t *testing.T) {
	var subject *widget
	assert.Equal(t, evaluation.StatePassed,
		That(subject).IsNull().Evaluate().State)

	assert.Equal(t, evaluation.StateFailed,
		That(&widget{}).IsNull().Evaluate().State)
}

func TestObjectIsEqualTo(t *testing.T) {
	a := widget{Name: "a"}
	same := widget{Name: "a"}
	other := widget{Name: "b"}

	assert.Equal(t, evaluation.StatePassed,
		That(a).IsEqualTo(same).Evaluate().State)
	assert.Equal(t, evaluation.StateFailed,
		That(a).IsEqualTo(other).Evaluate().State)
	assert.Equal(t, evaluation.StatePassed,
		That(a).IsNotEqualTo(other).Evaluate().State)

	// Equality against nil passes only for a nil subject.
	var nilWidget *widget
	assert.Equal(t, evaluation.StatePassed,
		That(nilWidget).IsEqualTo(nil).Evaluate().State)
	assert.Equal(t, evaluation.StateFailed,
		That(&a).IsEqualTo(nil).Evaluate().State)
}

func TestObjectIdentity(t *testing.T) {
	a := &widget{Name: "a"}
	b := &widget{Name: "a"}

	assert.Equal(t, evaluation.StatePassed,
		That(a).Is(a).Evaluate().State)
	assert.Equal(t, evaluation.StateFailed,
		That(a).Is(b).Evaluate().State,
		"equal but distinct pointers are not identical")
	assert.Equal(t, evaluation.StatePassed,
		That(a).IsNot(b).Evaluate().State)

	// Comparable values of the same type compare by value.
	assert.Equal(t, evaluation.StatePassed,
		That(42).Is(42).Evaluate().State)
	assert.Equal(t, evaluation.StateFailed,
		That(42).Is(int64(42)).Evaluate().State)
}

func TestObjectIsType(t *testing.T) {
	subject := widget{Name: "a"}

	assert.Equal(t, evaluation.StatePassed,
		That(subject).
			IsType(reflect.TypeOf(widget{})).
			Evaluate().State)
	assert.Equal(t, evaluation.StateFailed,
		That(subject).
			IsType(reflect.TypeOf(&widget{})).
			Evaluate().State)
	assert.Equal(t, evaluation.StatePassed,
		That(subject).
			IsNotType(reflect.TypeOf("")).
			Evaluate().State)
}

func TestObjectIsTypeNilAlwaysFails(t *testing.T) {
	result := That(widget{}).IsType(nil).Evaluate()

	assert.Equal(t, evaluation.StateFailed, result.State)
	require.Len(t, result.Children, 1)
	child := result.Children[0]
	assert.Equal(t, "isType[(null)]", child.Name)
	assert.Equal(t,
		"Always fail: cannot compare to (null) type",
		child.Rationale.Expected)
	assert.NotEmpty(t, child.Rationale.Hint)

	// The negated form fails on a nil type too.
	assert.Equal(t, evaluation.StateFailed,
		That(widget{}).IsNotType(nil).Evaluate().State)
}

func TestObjectIsInstanceOf(t *testing.T) {
	stringer := reflect.TypeOf(
		(*fmt.Stringer)(nil),
	).Elem()

	assert.Equal(t, evaluation.StatePassed,
		That(widget{}).IsInstanceOf(stringer).
			Evaluate().State)
	assert.Equal(t, evaluation.StateFailed,
		That(42).IsInstanceOf(stringer).
			Evaluate().State)
	assert.Equal(t, evaluation.StatePassed,
		That(42).IsNotInstanceOf(stringer).
			Evaluate().State)

	assert.Equal(t, evaluation.StateFailed,
		That(widget{}).IsInstanceOf(nil).Evaluate().State)
}

func TestObjectSatisfies(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }

	assert.Equal(t, evaluation.StatePassed,
		That(4).Satisfies(even).Evaluate().State)
	assert.Equal(t, evaluation.StateFailed,
		That(3).Satisfies(even).Evaluate().State)
	assert.Equal(t, evaluation.StatePassed,
		That(3).DoesNotSatisfy(even).Evaluate().State)
}

func TestObjectSatisfiesNilSubjectSkipsPredicate(t *testing.T) {
	called := false
	var subject *widget

	result := That(subject).
		Satisfies(func(w *widget) bool {
			called = true
			return w.Name != ""
		}).
		Evaluate()

	assert.False(t, called,
		"predicate must not run on a nil subject")
	assert.Equal(t, evaluation.StateFailed, result.State)
}

func TestObjectToString(t *testing.T) {
	subject := widget{Name: "a"}

	assert.Equal(t, evaluation.StatePassed,
		That(subject).ToStringIs("widget(a)").
			Evaluate().State)
	assert.Equal(t, evaluation.StateFailed,
		That(subject).ToStringIs("widget(b)").
			Evaluate().State)
	assert.Equal(t, evaluation.StatePassed,
		That(subject).ToStringIsNot("widget(b)").
			Evaluate().State)
}

func TestObjectNamed(t *testing.T) {
	result := ThatNamed(42, "answer check").Evaluate()
	assert.Equal(t, "answer check", result.Name)

	result = That(42).Evaluate()
	assert.Equal(t, "Object[42] evaluation", result.Name)
}

func TestObjectSubject(t *testing.T) {
	subject := &widget{Name: "a"}
	assert.Same(t, subject, That(subject).Subject())
}
