package observability

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "warn", FormatJSON)
	require.NoError(t, err)

	logger.Info().Msg("hidden")
	logger.Warn().Str("section", "education").Msg("shown")

	var event map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &event))
	assert.Equal(t, "warn", event["level"])
	assert.Equal(t, "education", event["section"])
	assert.Equal(t, "shown", event["message"])
	assert.Contains(t, event, "time")
}

func TestNewLogger_Console(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "INFO", "")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())

	logger.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestNewLogger_Invalid(t *testing.T) {
	_, err := NewLogger(&bytes.Buffer{}, "chatty", FormatJSON)
	assert.ErrorContains(t, err, "invalid log level")

	_, err = NewLogger(&bytes.Buffer{}, "info", "xml")
	assert.ErrorContains(t, err, "invalid log format")
}
