package expression

import (
	"fmt"
	"regexp"
	"strings"

	"digital.vasic.zeal/pkg/evaluation"
)

// StringExpression is a fluent chain of checks over a string
// subject. The subject is held as a pointer so that nullability
// checks remain meaningful; use ThatString for plain values and
// ThatStringPtr when the subject may be nil.
type StringExpression struct {
	c chain[*string]
}

// ThatString creates an expression over a string value. The
// subject of such an expression is never nil.
func ThatString(subject string) *StringExpression {
	return ThatStringPtr(&subject)
}

// ThatStringPtr creates an expression over a possibly-nil string
// pointer.
func ThatStringPtr(subject *string) *StringExpression {
	return &StringExpression{
		c: newChain(subject, fmt.Sprintf(
			"String[%s] evaluation",
			evaluation.StringOf(subject),
		)),
	}
}

// Subject returns the value under evaluation.
func (e *StringExpression) Subject() *string {
	return e.c.subject
}

// Evaluate runs every check in the chain and returns the result
// tree.
func (e *StringExpression) Evaluate() *evaluation.Evaluated {
	return e.c.evaluate()
}

// value adapts a string predicate to the pointer subject. The
// chain only calls it for non-nil subjects.
func value(test func(s string) bool) func(*string) bool {
	return func(s *string) bool { return test(*s) }
}

func actualLength(s *string) string {
	return fmt.Sprint(len(*s))
}

// IsNotNull adds a check that the subject is not nil. No matter
// where it appears in the chain, it is evaluated first.
func (e *StringExpression) IsNotNull() *StringExpression {
	e.c.newNullableCheck(func(s *string) bool {
		return s != nil
	}).
		named("isNotNull").
		expected("not[(null)]").
		prepend()
	return e
}

// IsNull adds a check that the subject is nil.
func (e *StringExpression) IsNull() *StringExpression {
	e.c.newNullableCheck(func(s *string) bool {
		return s == nil
	}).
		named("isNull").
		expected("(null)").
		append()
	return e
}

// IsEqualTo adds a check that the subject equals the supplied
// string.
func (e *StringExpression) IsEqualTo(
	other string,
) *StringExpression {
	e.c.newCheck(value(func(s string) bool {
		return s == other
	})).
		named(fmt.Sprintf("isEqualTo[%s]", other)).
		expected(other).
		append()
	return e
}

// IsNotEqualTo adds a check that the subject does not equal the
// supplied string.
func (e *StringExpression) IsNotEqualTo(
	other string,
) *StringExpression {
	e.c.newCheck(value(func(s string) bool {
		return s != other
	})).
		named(fmt.Sprintf("isNotEqualTo[%s]", other)).
		expected(fmt.Sprintf("not[%s]", other)).
		append()
	return e
}

// IsCaseInsensitiveEqualTo adds a check that the subject equals
// the supplied string ignoring case.
func (e *StringExpression) IsCaseInsensitiveEqualTo(
	other string,
) *StringExpression {
	e.c.newCheck(value(func(s string) bool {
		return strings.EqualFold(s, other)
	})).
		named(fmt.Sprintf(
			"isCaseInsensitiveEqualTo[%s]", other,
		)).
		expected(fmt.Sprintf("caseInsensitive[%s]", other)).
		append()
	return e
}

// IsEmpty adds a check that the subject is the empty string.
func (e *StringExpression) IsEmpty() *StringExpression {
	e.c.newCheck(value(func(s string) bool {
		return s == ""
	})).
		named("isEmpty").
		expected("[]").
		append()
	return e
}

// IsNotEmpty adds a check that the subject is not the empty
// string.
func (e *StringExpression) IsNotEmpty() *StringExpression {
	e.c.newCheck(value(func(s string) bool {
		return s != ""
	})).
		named("isNotEmpty").
		expected("not[[]]").
		append()
	return e
}

// IsPopulated adds a check that the subject is non-nil and not
// the empty string.
func (e *StringExpression) IsPopulated() *StringExpression {
	e.c.newNullableCheck(func(s *string) bool {
		return s != nil && *s != ""
	}).
		named("isPopulated").
		expected("populated").
		append()
	return e
}

// IsBlank adds a check that the subject contains only whitespace.
func (e *StringExpression) IsBlank() *StringExpression {
	e.c.newCheck(value(func(s string) bool {
		return strings.TrimSpace(s) == ""
	})).
		named("isBlank").
		expected("blank").
		append()
	return e
}

// IsNotBlank adds a check that the subject contains at least one
// non-whitespace character.
func (e *StringExpression) IsNotBlank() *StringExpression {
	e.c.newCheck(value(func(s string) bool {
		return strings.TrimSpace(s) != ""
	})).
		named("isNotBlank").
		expected("not[blank]").
		append()
	return e
}

// HasLengthOf adds a check that the subject has exactly the
// supplied length.
func (e *StringExpression) HasLengthOf(
	length int,
) *StringExpression {
	e.c.newCheck(value(func(s string) bool {
		return len(s) == length
	})).
		named(fmt.Sprintf("hasLengthOf[%d]", length)).
		expected(fmt.Sprintf("length == %d", length)).
		actual(actualLength).
		append()
	return e
}

// IsLongerThan adds a check that the subject is longer than the
// supplied length.
func (e *StringExpression) IsLongerThan(
	length int,
) *StringExpression {
	e.c.newCheck(value(func(s string) bool {
		return len(s) > length
	})).
		named(fmt.Sprintf("isLongerThan[%d]", length)).
		expected(fmt.Sprintf("length > %d", length)).
		actual(actualLength).
		append()
	return e
}

// IsShorterThan adds a check that the subject is shorter than the
// supplied length.
func (e *StringExpression) IsShorterThan(
	length int,
) *StringExpression {
	e.c.newCheck(value(func(s string) bool {
		return len(s) < length
	})).
		named(fmt.Sprintf("isShorterThan[%d]", length)).
		expected(fmt.Sprintf("length < %d", length)).
		actual(actualLength).
		append()
	return e
}

// IsLongerThanOrEqualTo adds a check that the subject is at least
// the supplied length.
func (e *StringExpression) IsLongerThanOrEqualTo(
	length int,
) *StringExpression {
	e.c.newCheck(value(func(s string) bool {
		return len(s) >= length
	})).
		named(fmt.Sprintf(
			"isLongerThanOrEqualTo[%d]", length,
		)).
		expected(fmt.Sprintf("length >= %d", length)).
		actual(actualLength).
		append()
	return e
}

// IsShorterThanOrEqualTo adds a check that the subject is at most
// the supplied length.
func (e *StringExpression) IsShorterThanOrEqualTo(
	length int,
) *StringExpression {
	e.c.newCheck(value(func(s string) bool {
		return len(s) <= length
	})).
		named(fmt.Sprintf(
			"isShorterThanOrEqualTo[%d]", length,
		)).
		expected(fmt.Sprintf("length <= %d", length)).
		actual(actualLength).
		append()
	return e
}

// Includes adds a check that the subject contains the supplied
// substring.
func (e *StringExpression) Includes(
	sub string,
) *StringExpression {
	e.c.newCheck(value(func(s string) bool {
		return strings.Contains(s, sub)
	})).
		named(fmt.Sprintf("includes[%s]", sub)).
		expected(fmt.Sprintf("includes[%s]", sub)).
		append()
	return e
}

// Excludes adds a check that the subject does not contain the
// supplied substring.
func (e *StringExpression) Excludes(
	sub string,
) *StringExpression {
	e.c.newCheck(value(func(s string) bool {
		return !strings.Contains(s, sub)
	})).
		named(fmt.Sprintf("excludes[%s]", sub)).
		expected(fmt.Sprintf("excludes[%s]", sub)).
		append()
	return e
}

// Occurs adds a check that the supplied rune occurs exactly the
// given number of times in the subject.
func (e *StringExpression) Occurs(
	r rune,
	times int,
) *StringExpression {
	e.c.newCheck(value(func(s string) bool {
		return runeCount(s, r) == times
	})).
		named(fmt.Sprintf("occurs[%q] == %d", r, times)).
		expected(fmt.Sprint(times)).
		actual(func(s *string) string {
			return fmt.Sprint(runeCount(*s, r))
		}).
		append()
	return e
}

// OccursMoreThan adds a check that the supplied rune occurs more
// than the given number of times in the subject.
func (e *StringExpression) OccursMoreThan(
	r rune,
	times int,
) *StringExpression {
	e.c.newCheck(value(func(s string) bool {
		return runeCount(s, r) > times
	})).
		named(fmt.Sprintf("occurs[%q] > %d", r, times)).
		expected(fmt.Sprintf("> %d", times)).
		actual(func(s *string) string {
			return fmt.Sprint(runeCount(*s, r))
		}).
		append()
	return e
}

// OccursLessThan adds a check that the supplied rune occurs fewer
// than the given number of times in the subject.
func (e *StringExpression) OccursLessThan(
	r rune,
	times int,
) *StringExpression {
	e.c.newCheck(value(func(s string) bool {
		return runeCount(s, r) < times
	})).
		named(fmt.Sprintf("occurs[%q] < %d", r, times)).
		expected(fmt.Sprintf("< %d", times)).
		actual(func(s *string) string {
			return fmt.Sprint(runeCount(*s, r))
		}).
		append()
	return e
}

// StartsWith adds a check that the subject starts with the
// supplied prefix.
func (e *StringExpression) StartsWith(
	prefix string,
) *StringExpression {
	e.c.newCheck(value(func(s string) bool {
		return strings.HasPrefix(s, prefix)
	})).
		named(fmt.Sprintf("startsWith[%s]", prefix)).
		expected(fmt.Sprintf("startsWith[%s]", prefix)).
		append()
	return e
}

// DoesNotStartWith adds a check that the subject does not start
// with the supplied prefix.
func (e *StringExpression) DoesNotStartWith(
	prefix string,
) *StringExpression {
	e.c.newCheck(value(func(s string) bool {
		return !strings.HasPrefix(s, prefix)
	})).
		named(fmt.Sprintf("doesNotStartWith[%s]", prefix)).
		expected(fmt.Sprintf("not[startsWith[%s]]", prefix)).
		append()
	return e
}

// EndsWith adds a check that the subject ends with the supplied
// suffix.
func (e *StringExpression) EndsWith(
	suffix string,
) *StringExpression {
	e.c.newCheck(value(func(s string) bool {
		return strings.HasSuffix(s, suffix)
	})).
		named(fmt.Sprintf("endsWith[%s]", suffix)).
		expected(fmt.Sprintf("endsWith[%s]", suffix)).
		append()
	return e
}

// DoesNotEndWith adds a check that the subject does not end with
// the supplied suffix.
func (e *StringExpression) DoesNotEndWith(
	suffix string,
) *StringExpression {
	e.c.newCheck(value(func(s string) bool {
		return !strings.HasSuffix(s, suffix)
	})).
		named(fmt.Sprintf("doesNotEndWith[%s]", suffix)).
		expected(fmt.Sprintf("not[endsWith[%s]]", suffix)).
		append()
	return e
}

// Matches adds a check that the entire subject matches the
// supplied regular expression. An invalid pattern always fails.
func (e *StringExpression) Matches(
	pattern string,
) *StringExpression {
	re, err := regexp.Compile("^(?:" + pattern + ")$")

	b := e.c.newCheck(value(func(s string) bool {
		return err == nil && re.MatchString(s)
	})).
		named(fmt.Sprintf("matches[%s]", pattern)).
		expected(fmt.Sprintf("matches[%s]", pattern))

	if err != nil {
		b.hint(fmt.Sprintf("Invalid pattern: %v", err))
	}

	b.append()
	return e
}

// HasAtIndex adds a check that the first occurrence of the
// supplied substring is at the given index.
func (e *StringExpression) HasAtIndex(
	sub string,
	index int,
) *StringExpression {
	e.c.newCheck(value(func(s string) bool {
		return strings.Index(s, sub) == index
	})).
		named(fmt.Sprintf("hasAtIndex[%s, %d]", sub, index)).
		expected(fmt.Sprintf("index == %d", index)).
		actual(func(s *string) string {
			return fmt.Sprint(strings.Index(*s, sub))
		}).
		append()
	return e
}

// Satisfies adds a check that the supplied predicate holds for
// the subject. The predicate is only called with a non-nil
// subject.
func (e *StringExpression) Satisfies(
	predicate func(s string) bool,
) *StringExpression {
	e.c.newCheck(value(predicate)).
		named("predicate").
		expected(predicateSatisfied).
		actual(func(s *string) string {
			if predicate(*s) {
				return predicateSatisfied
			}
			return predicateUnsatisfied
		}).
		append()
	return e
}

func runeCount(s string, r rune) int {
	return strings.Count(s, string(r))
}
