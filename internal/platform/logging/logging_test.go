package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("chatty"))
}

func TestNewWritesJSONWithAppAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{Level: "warn", Environment: "test", Version: "1.2.3"})

	logger.Info("dropped")
	assert.Zero(t, buf.Len())

	logger.Warn("kept", "rows", 3)
	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "backoffice", record["app"])
	assert.Equal(t, "1.2.3", record["version"])
	assert.EqualValues(t, 3, record["rows"])
}
