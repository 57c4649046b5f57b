package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleLoggerWritesLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(false)
	logger.SetOutput(&buf)

	logger.Info("starting")
	logger.Warn("slow")
	logger.Error("broken")

	out := buf.String()
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "starting")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "ERROR")
}

func TestConsoleLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(false)
	logger.SetOutput(&buf)

	logger.Info("loaded",
		StringField("path", "rules.yaml"),
		IntField("count", 3))

	out := buf.String()
	assert.Contains(t, out, "path=rules.yaml")
	assert.Contains(t, out, "count=3")
}

func TestConsoleLoggerDebugRequiresVerbose(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(false)
	logger.SetOutput(&buf)

	logger.Debug("hidden")
	assert.Empty(t, buf.String())

	verbose := NewConsoleLogger(true)
	verbose.SetOutput(&buf)
	verbose.Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestConsoleLoggerClose(t *testing.T) {
	require.NoError(t, NewConsoleLogger(false).Close())
}

func TestFieldConstructors(t *testing.T) {
	assert.Equal(t, Field{Key: "k", Value: "v"},
		StringField("k", "v"))
	assert.Equal(t, Field{Key: "n", Value: 1},
		IntField("n", 1))
	assert.Equal(t, Field{Key: "n", Value: int64(1)},
		Int64Field("n", 1))
	assert.Equal(t, Field{Key: "ok", Value: true},
		BoolField("ok", true))
	assert.Equal(t, Field{Key: "any", Value: 1.5},
		LogField("any", 1.5))
}

func TestErrorField(t *testing.T) {
	assert.Equal(t,
		Field{Key: "error", Value: "boom"},
		ErrorField(errors.New("boom")))
	assert.Equal(t,
		Field{Key: "error", Value: "<nil>"},
		ErrorField(nil))
}

func TestNullLoggerDiscardsEverything(t *testing.T) {
	logger := NewNullLogger()

	logger.Info("msg")
	logger.Warn("msg")
	logger.Error("msg")
	logger.Debug("msg")
	require.NoError(t, logger.Close())
}
