package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.zeal/pkg/evaluation"
	"digital.vasic.zeal/pkg/expression"
)

func sampleTree() *evaluation.Evaluated {
	return expression.ThatString("banana").
		IsNotNull().
		StartsWith("ba").
		EndsWith("xx").
		Includes("nan").
		Evaluate()
}

func TestTextRenderer(t *testing.T) {
	out, err := NewTextRenderer().Render(sampleTree())
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "[failed] String[banana] evaluation")
	assert.Contains(t, text, "[passed] isNotNull")
	assert.Contains(t, text, "[failed] endsWith[xx]")
	assert.Contains(t, text, "[skipped] includes[nan]")
	assert.Contains(t, text,
		"(expected: All children must pass, "+
			"actual: Passed: 2, Failed: 1, Skipped: 1)")
}

func TestTextRendererSkippedNodesOmitRationale(t *testing.T) {
	out, err := NewTextRenderer().Render(sampleTree())
	require.NoError(t, err)

	for _, line := range bytes.Split(out, []byte("\n")) {
		if bytes.Contains(line, []byte("[skipped]")) {
			assert.NotContains(t, string(line), "expected:")
		}
	}
}

func TestTextRendererIndentsByDepth(t *testing.T) {
	renderer := &TextRenderer{Indent: "    "}
	out, err := renderer.Render(sampleTree())
	require.NoError(t, err)

	lines := bytes.Split(
		bytes.TrimSpace(out), []byte("\n"),
	)
	require.Greater(t, len(lines), 1)
	assert.False(t, bytes.HasPrefix(lines[0], []byte(" ")))
	assert.True(t, bytes.HasPrefix(lines[1], []byte("    ")))
}

func TestTextRendererNilTree(t *testing.T) {
	_, err := NewTextRenderer().Render(nil)
	assert.ErrorIs(t, err, ErrNilResult)

	err = NewTextRenderer().Write(&bytes.Buffer{}, nil)
	assert.ErrorIs(t, err, ErrNilResult)
}

func TestJSONRenderer(t *testing.T) {
	out, err := NewJSONRenderer().Render(sampleTree())
	require.NoError(t, err)

	var decoded evaluation.Evaluated
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "String[banana] evaluation", decoded.Name)
	assert.Equal(t, evaluation.StateFailed, decoded.State)
	assert.Len(t, decoded.Children, 4)
}

func TestJSONRendererPretty(t *testing.T) {
	renderer := &JSONRenderer{Pretty: true}
	out, err := renderer.Render(sampleTree())
	require.NoError(t, err)
	assert.Contains(t, string(out), "\n  ")
}

func TestJSONRendererWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t,
		NewJSONRenderer().Write(&buf, sampleTree()))
	assert.True(t, json.Valid(buf.Bytes()))
}

func TestBuildSummary(t *testing.T) {
	summary := BuildSummary(sampleTree())

	require.NotNil(t, summary)
	assert.NotEmpty(t, summary.ID)
	assert.False(t, summary.GeneratedAt.IsZero())
	assert.Equal(t, "String[banana] evaluation", summary.Name)
	assert.Equal(t, evaluation.StateFailed, summary.State)
	assert.Equal(t, 4, summary.TotalChecks)
	assert.Equal(t, 2, summary.Passed)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 1, summary.Skipped)
	assert.InDelta(t, 0.5, summary.PassRate(), 1e-9)
}

func TestBuildSummaryNilTree(t *testing.T) {
	summary := BuildSummary(nil)

	require.NotNil(t, summary)
	assert.Zero(t, summary.TotalChecks)
	assert.Zero(t, summary.PassRate())
}

func TestBuildSummaryIDsAreUnique(t *testing.T) {
	first := BuildSummary(sampleTree())
	second := BuildSummary(sampleTree())
	assert.NotEqual(t, first.ID, second.ID)
}
