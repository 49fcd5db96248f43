package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidmartinii-sketch/ai-business-assistant/internal/logger"
)

func TestLoggerWritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter("debug", &buf)

	log.Info("account registered", "id", "abc-123", "email", "john@example.com")

	line := map[string]any{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))

	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "account registered", line["message"])
	assert.Equal(t, "abc-123", line["id"])
	assert.Equal(t, "john@example.com", line["email"])
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter("error", &buf)

	log.Debug("noise")
	log.Info("more noise")
	assert.Zero(t, buf.Len())

	log.Error("real problem", "error", "boom")
	assert.NotZero(t, buf.Len())
}

func TestLoggerSkipsNonStringKeys(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter("info", &buf)

	log.Info("odd arguments", 42, "value", "trailing")

	line := map[string]any{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "odd arguments", line["message"])
}
