package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func reset() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

func TestSetVerbose(t *testing.T) {
	defer reset()

	SetVerbose(false)
	assert.False(t, IsVerbose())
	SetVerbose(true)
	assert.True(t, IsVerbose())
}

func TestLevels_WhenVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("calling %s(%d)", "Factorial", 5)
	Info("result %d", 120)
	Warn("input %d above ceiling", 99)
	Section("linear")

	out := buf.String()
	assert.Contains(t, out, "[DEBUG] calling Factorial(5)\n")
	assert.Contains(t, out, "[INFO] result 120\n")
	assert.Contains(t, out, "[WARN] input 99 above ceiling\n")
	assert.Contains(t, out, "\n=== linear ===\n")
}

func TestLevels_WhenQuiet(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("x")
	Info("x")
	Warn("x")
	Section("x")

	assert.Empty(t, buf.String())
}
