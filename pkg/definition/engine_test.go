package definition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.zeal/pkg/evaluation"
)

func TestEngineEvaluatePasses(t *testing.T) {
	engine := NewEngine()
	defs := ParseAll(
		"not_nil", "not_empty", "contains:func", "min_length:10",
	)

	result, err := engine.Evaluate(
		"code sample", defs, "func main() {}",
	)

	require.NoError(t, err)
	assert.Equal(t, evaluation.StatePassed, result.State)
	require.Len(t, result.Children, 4)
	assert.True(t, result.AllPassed())
}

func TestEngineNullityDefinitionEvaluatesFirst(t *testing.T) {
	engine := NewEngine()
	defs := ParseAll("min_length:3", "not_nil")

	result, err := engine.Evaluate("value", defs, nil)

	require.NoError(t, err)
	require.Len(t, result.Children, 2)
	assert.Equal(t, "not_nil", result.Children[0].Name)
	assert.Equal(t, evaluation.StateFailed,
		result.Children[0].State)
	assert.Equal(t, evaluation.StateSkipped,
		result.Children[1].State)
}

func TestEngineUnknownCheckType(t *testing.T) {
	engine := NewEngine()

	_, err := engine.Evaluate(
		"value", ParseAll("no_such_check"), "x",
	)

	require.Error(t, err)
	assert.Contains(t, err.Error(),
		"unknown check type: no_such_check")
}

func TestEngineMalformedDefinition(t *testing.T) {
	engine := NewEngine()
	defs := []Definition{{Type: "min_length", Value: "abc"}}

	_, err := engine.Evaluate("value", defs, "x")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "build check min_length")
}

func TestEngineRegisterCustomFactory(t *testing.T) {
	engine := NewEngine()

	err := engine.Register("is_answer",
		func(def Definition) (
			evaluation.Evaluation[any], error,
		) {
			return evaluation.NewTerminal(
				"is_answer",
				func(v any) bool { return v == 42 },
				evaluation.Reason[any]{},
			), nil
		})
	require.NoError(t, err)
	assert.True(t, engine.HasFactory("is_answer"))

	result, err := engine.Evaluate(
		"answer", []Definition{{Type: "is_answer"}}, 42,
	)
	require.NoError(t, err)
	assert.Equal(t, evaluation.StatePassed, result.State)
}

func TestEngineRegisterDuplicateFails(t *testing.T) {
	engine := NewEngine()
	err := engine.Register("not_nil", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestEngineEvaluateAll(t *testing.T) {
	engine := NewEngine()
	defs := []Definition{
		{Type: "not_empty", Target: "title"},
		{Type: "min_length", Target: "title", Value: 3},
		{Type: "not_empty", Target: "body"},
	}
	values := map[string]any{
		"title": "hello",
		"body":  "",
	}

	result, err := engine.EvaluateAll("article", defs, values)

	require.NoError(t, err)
	assert.Equal(t, evaluation.StateFailed, result.State)
	require.Len(t, result.Children, 2)

	title := result.Children[0]
	assert.Equal(t, "title", title.Name)
	assert.Equal(t, evaluation.StatePassed, title.State)

	body := result.Children[1]
	assert.Equal(t, "body", body.Name)
	assert.Equal(t, evaluation.StateFailed, body.State)

	assert.Equal(t, "Passed: 1, Failed: 1, Skipped: 0",
		result.Rationale.Actual)
}

func TestEngineEvaluateAllMissingTarget(t *testing.T) {
	engine := NewEngine()
	defs := []Definition{
		{Type: "not_empty", Target: "present"},
		{Type: "not_empty", Target: "absent"},
	}
	values := map[string]any{"present": "x"}

	result, err := engine.EvaluateAll("check", defs, values)

	require.NoError(t, err)
	assert.Equal(t, evaluation.StateFailed, result.State)
	require.Len(t, result.Children, 2)
	assert.Equal(t, evaluation.StateFailed,
		result.Children[1].State)
	assert.Contains(t,
		result.Children[1].Rationale.Actual,
		"target not found: absent")
}

func TestBuiltinChecks(t *testing.T) {
	tests := []struct {
		name   string
		def    Definition
		value  any
		passes bool
	}{
		{
			"not_nil passes",
			Definition{Type: "not_nil"}, "x", true,
		},
		{
			"not_nil fails on nil",
			Definition{Type: "not_nil"}, nil, false,
		},
		{
			"not_empty fails on whitespace",
			Definition{Type: "not_empty"}, "  ", false,
		},
		{
			"not_empty passes on slice",
			Definition{Type: "not_empty"},
			[]any{1}, true,
		},
		{
			"equals matches across numeric types",
			Definition{Type: "equals", Value: 3},
			float64(3), true,
		},
		{
			"equals fails",
			Definition{Type: "equals", Value: "a"},
			"b", false,
		},
		{
			"not_equals",
			Definition{Type: "not_equals", Value: "a"},
			"b", true,
		},
		{
			"contains is case insensitive",
			Definition{Type: "contains", Value: "WORLD"},
			"hello world", true,
		},
		{
			"contains_any from values list",
			Definition{
				Type:   "contains_any",
				Values: []any{"xyz", "wor"},
			},
			"hello world", true,
		},
		{
			"contains_any from comma value",
			Definition{
				Type:  "contains_any",
				Value: "xyz,abc",
			},
			"hello world", false,
		},
		{
			"starts_with",
			Definition{Type: "starts_with", Value: "he"},
			"hello", true,
		},
		{
			"ends_with",
			Definition{Type: "ends_with", Value: "lo"},
			"hello", true,
		},
		{
			"matches",
			Definition{Type: "matches", Value: `^\d+$`},
			"12345", true,
		},
		{
			"matches fails on non-string",
			Definition{Type: "matches", Value: `^\d+$`},
			12345, false,
		},
		{
			"min_length",
			Definition{Type: "min_length", Value: 3},
			"abc", true,
		},
		{
			"max_length",
			Definition{Type: "max_length", Value: 3},
			"abcd", false,
		},
		{
			"min_count",
			Definition{Type: "min_count", Value: 2},
			[]any{1, 2, 3}, true,
		},
		{
			"exact_count",
			Definition{Type: "exact_count", Value: 2},
			[]any{1, 2, 3}, false,
		},
		{
			"no_duplicates passes",
			Definition{Type: "no_duplicates"},
			[]any{"a", "b"}, true,
		},
		{
			"no_duplicates fails",
			Definition{Type: "no_duplicates"},
			[]any{"a", "a"}, false,
		},
	}

	engine := NewEngine()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := engine.Evaluate(
				tc.name, []Definition{tc.def}, tc.value,
			)
			require.NoError(t, err)

			expected := evaluation.StateFailed
			if tc.passes {
				expected = evaluation.StatePassed
			}
			assert.Equal(t, expected, result.State)
		})
	}
}

func TestBuiltinMessageBecomesHint(t *testing.T) {
	engine := NewEngine()
	defs := []Definition{{
		Type:    "min_length",
		Value:   10,
		Message: "titles need at least ten characters",
	}}

	result, err := engine.Evaluate("title", defs, "short")
	require.NoError(t, err)

	require.Len(t, result.Children, 1)
	assert.Equal(t,
		"titles need at least ten characters",
		result.Children[0].Rationale.Hint)
	assert.Equal(t, "5",
		result.Children[0].Rationale.Actual)
}

func TestBuiltinInvalidPattern(t *testing.T) {
	engine := NewEngine()
	defs := []Definition{{Type: "matches", Value: "["}}

	_, err := engine.Evaluate("value", defs, "x")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid pattern")
}
