package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/avify/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_Info(t *testing.T) {
	l := logger.New()

	var buf bytes.Buffer
	l.SetOutput(&buf)

	l.Info("converted photo.png")

	assert.Contains(t, buf.String(), "converted photo.png")
}

func TestLogger_ErrorChain(t *testing.T) {
	l := logger.New()

	var buf bytes.Buffer
	l.SetOutput(&buf)

	err := zerr.Wrap(zerr.New("encoder exited with status 1"), "conversion failed")
	l.Error(err)

	out := buf.String()
	assert.Contains(t, out, "conversion failed")
	assert.Contains(t, out, "Caused by:")
	assert.Contains(t, out, "encoder exited with status 1")
}

func TestLogger_ErrorNil(t *testing.T) {
	l := logger.New()

	var buf bytes.Buffer
	l.SetOutput(&buf)

	l.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_JSONMode(t *testing.T) {
	l := logger.New()

	var buf bytes.Buffer
	l.SetOutput(&buf)
	l.SetJSON(true)

	l.Info("cache persisted")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "cache persisted", record["msg"])
	assert.Equal(t, "INFO", record["level"])
}

func TestLogger_JSONModeKeepsOutput(t *testing.T) {
	l := logger.New()

	var buf bytes.Buffer
	l.SetOutput(&buf)
	l.SetJSON(true)
	l.Warn("cache unusable")

	// Switching modes must not silently fall back to stderr.
	assert.NotEmpty(t, buf.String())
}
