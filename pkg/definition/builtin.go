package definition

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"digital.vasic.zeal/pkg/evaluation"
)

// registerBuiltins registers all built-in check factories.
func (e *DefaultEngine) registerBuiltins() {
	e.factories["not_nil"] = factoryNotNil
	e.factories["not_empty"] = factoryNotEmpty
	e.factories["equals"] = factoryEquals
	e.factories["not_equals"] = factoryNotEquals
	e.factories["contains"] = factoryContains
	e.factories["contains_any"] = factoryContainsAny
	e.factories["starts_with"] = factoryStartsWith
	e.factories["ends_with"] = factoryEndsWith
	e.factories["matches"] = factoryMatches
	e.factories["min_length"] = factoryMinLength
	e.factories["max_length"] = factoryMaxLength
	e.factories["min_count"] = factoryMinCount
	e.factories["exact_count"] = factoryExactCount
	e.factories["no_duplicates"] = factoryNoDuplicates
}

func factoryNotNil(def Definition) (
	evaluation.Evaluation[any], error,
) {
	return evaluation.NewNullableTerminal(
		"not_nil",
		func(v any) bool { return !evaluation.IsNil(v) },
		reason(def, "not[(null)]", nil),
	), nil
}

func factoryNotEmpty(def Definition) (
	evaluation.Evaluation[any], error,
) {
	test := func(v any) bool {
		switch t := v.(type) {
		case string:
			return strings.TrimSpace(t) != ""
		case []any:
			return len(t) > 0
		case map[string]any:
			return len(t) > 0
		}
		return true
	}
	return evaluation.NewTerminal(
		"not_empty", test, reason(def, "not[empty]", nil),
	), nil
}

func factoryEquals(def Definition) (
	evaluation.Evaluation[any], error,
) {
	return evaluation.NewNullableTerminal(
		checkName(def),
		func(v any) bool { return equalLoose(v, def.Value) },
		reason(def, evaluation.StringOf(def.Value), nil),
	), nil
}

func factoryNotEquals(def Definition) (
	evaluation.Evaluation[any], error,
) {
	return evaluation.NewNullableTerminal(
		checkName(def),
		func(v any) bool { return !equalLoose(v, def.Value) },
		reason(def, fmt.Sprintf(
			"not[%s]", evaluation.StringOf(def.Value),
		), nil),
	), nil
}

func factoryContains(def Definition) (
	evaluation.Evaluation[any], error,
) {
	expected, err := expectedString(def)
	if err != nil {
		return nil, err
	}

	test := func(v any) bool {
		s, ok := asString(v)
		return ok && strings.Contains(
			strings.ToLower(s), strings.ToLower(expected),
		)
	}
	return evaluation.NewTerminal(
		checkName(def), test,
		reason(def, fmt.Sprintf(
			"contains[%s]", expected,
		), nil),
	), nil
}

func factoryContainsAny(def Definition) (
	evaluation.Evaluation[any], error,
) {
	values := stringValues(def)
	if len(values) == 0 {
		return nil, fmt.Errorf(
			"contains_any requires at least one value",
		)
	}

	test := func(v any) bool {
		s, ok := asString(v)
		if !ok {
			return false
		}
		lower := strings.ToLower(s)
		for _, expected := range values {
			trimmed := strings.TrimSpace(expected)
			if strings.Contains(
				lower, strings.ToLower(trimmed),
			) {
				return true
			}
		}
		return false
	}
	return evaluation.NewTerminal(
		checkName(def), test,
		reason(def, fmt.Sprintf(
			"containsAny[%s]", strings.Join(values, ", "),
		), nil),
	), nil
}

func factoryStartsWith(def Definition) (
	evaluation.Evaluation[any], error,
) {
	expected, err := expectedString(def)
	if err != nil {
		return nil, err
	}

	test := func(v any) bool {
		s, ok := asString(v)
		return ok && strings.HasPrefix(s, expected)
	}
	return evaluation.NewTerminal(
		checkName(def), test,
		reason(def, fmt.Sprintf(
			"startsWith[%s]", expected,
		), nil),
	), nil
}

func factoryEndsWith(def Definition) (
	evaluation.Evaluation[any], error,
) {
	expected, err := expectedString(def)
	if err != nil {
		return nil, err
	}

	test := func(v any) bool {
		s, ok := asString(v)
		return ok && strings.HasSuffix(s, expected)
	}
	return evaluation.NewTerminal(
		checkName(def), test,
		reason(def, fmt.Sprintf(
			"endsWith[%s]", expected,
		), nil),
	), nil
}

func factoryMatches(def Definition) (
	evaluation.Evaluation[any], error,
) {
	pattern, err := expectedString(def)
	if err != nil {
		return nil, err
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf(
			"invalid pattern %q: %w", pattern, err,
		)
	}

	test := func(v any) bool {
		s, ok := asString(v)
		return ok && re.MatchString(s)
	}
	return evaluation.NewTerminal(
		checkName(def), test,
		reason(def, fmt.Sprintf(
			"matches[%s]", pattern,
		), nil),
	), nil
}

func factoryMinLength(def Definition) (
	evaluation.Evaluation[any], error,
) {
	n, err := expectedInt(def)
	if err != nil {
		return nil, err
	}

	test := func(v any) bool {
		s, ok := asString(v)
		return ok && len(s) >= n
	}
	return evaluation.NewTerminal(
		checkName(def), test,
		reason(def, fmt.Sprintf(
			"length >= %d", n,
		), actualStringLength),
	), nil
}

func factoryMaxLength(def Definition) (
	evaluation.Evaluation[any], error,
) {
	n, err := expectedInt(def)
	if err != nil {
		return nil, err
	}

	test := func(v any) bool {
		s, ok := asString(v)
		return ok && len(s) <= n
	}
	return evaluation.NewTerminal(
		checkName(def), test,
		reason(def, fmt.Sprintf(
			"length <= %d", n,
		), actualStringLength),
	), nil
}

func factoryMinCount(def Definition) (
	evaluation.Evaluation[any], error,
) {
	n, err := expectedInt(def)
	if err != nil {
		return nil, err
	}

	test := func(v any) bool {
		count, ok := countOf(v)
		return ok && count >= n
	}
	return evaluation.NewTerminal(
		checkName(def), test,
		reason(def, fmt.Sprintf(
			"count >= %d", n,
		), actualCount),
	), nil
}

func factoryExactCount(def Definition) (
	evaluation.Evaluation[any], error,
) {
	n, err := expectedInt(def)
	if err != nil {
		return nil, err
	}

	test := func(v any) bool {
		count, ok := countOf(v)
		return ok && count == n
	}
	return evaluation.NewTerminal(
		checkName(def), test,
		reason(def, fmt.Sprintf(
			"count == %d", n,
		), actualCount),
	), nil
}

func factoryNoDuplicates(def Definition) (
	evaluation.Evaluation[any], error,
) {
	test := func(v any) bool {
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Slice &&
			rv.Kind() != reflect.Array {
			return false
		}

		seen := make(map[string]bool, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			key := fmt.Sprint(rv.Index(i).Interface())
			if seen[key] {
				return false
			}
			seen[key] = true
		}
		return true
	}
	return evaluation.NewTerminal(
		"no_duplicates", test,
		reason(def, "no duplicate elements", nil),
	), nil
}

// reason builds the rationale generator for a built-in check:
// constant expected text, an optional actual formatter, and the
// definition's message as the hint.
func reason(
	def Definition,
	expected string,
	actual evaluation.Formatter[any],
) evaluation.Reason[any] {
	r := evaluation.Reason[any]{
		Expected: func(any) string { return expected },
		Actual:   actual,
	}
	if def.Message != "" {
		r.Hint = func(any) string { return def.Message }
	}
	return r
}

func checkName(def Definition) string {
	if def.Value == nil {
		return def.Type
	}
	return fmt.Sprintf(
		"%s[%s]", def.Type, evaluation.StringOf(def.Value),
	)
}

func actualStringLength(v any) string {
	s, ok := asString(v)
	if !ok {
		return "value is not a string"
	}
	return fmt.Sprint(len(s))
}

func actualCount(v any) string {
	count, ok := countOf(v)
	if !ok {
		return "value is not countable"
	}
	return fmt.Sprint(count)
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// stringValues collects a definition's expected values as strings,
// from the Values list when present, otherwise from a comma
// separated Value string.
func stringValues(def Definition) []string {
	if len(def.Values) > 0 {
		values := make([]string, 0, len(def.Values))
		for _, v := range def.Values {
			values = append(values, fmt.Sprint(v))
		}
		return values
	}

	s, ok := def.Value.(string)
	if !ok || s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// countOf returns the element count of slices, arrays, and maps.
func countOf(v any) (int, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	}
	return 0, false
}

// expectedString extracts the definition's expected value as a
// string.
func expectedString(def Definition) (string, error) {
	s, ok := def.Value.(string)
	if !ok {
		return "", fmt.Errorf(
			"%s requires a string value", def.Type,
		)
	}
	return s, nil
}

// expectedInt extracts the definition's expected value as an
// integer, accepting native numbers and numeric strings (JSON
// numbers decode as float64, YAML numbers as int).
func expectedInt(def Definition) (int, error) {
	switch v := def.Value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf(
				"%s requires a numeric value: %w",
				def.Type, err,
			)
		}
		return n, nil
	}
	return 0, fmt.Errorf(
		"%s requires a numeric value", def.Type,
	)
}

// equalLoose compares values the way decoded config values need:
// numbers compare across int/float representations, everything
// else deeply.
func equalLoose(a, b any) bool {
	af, aok := asFloat(a)
	bf, bok := asFloat(b)
	if aok && bok {
		return af == bf
	}
	return evaluation.EqualValues(a, b)
}

func asFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case float64:
		return t, true
	case float32:
		return float64(t), true
	}
	return 0, false
}
