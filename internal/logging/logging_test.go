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
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLevel("loud")
	require.Error(t, err)
}

func TestNew_TextFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New("warn", "text", &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "file", "a.rs")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "file=a.rs")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New("debug", "json", &buf)
	require.NoError(t, err)

	logger.Debug("parsed", "variations", 2)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "parsed", record["msg"])
	assert.Equal(t, float64(2), record["variations"])
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := New("info", "xml", &bytes.Buffer{})
	require.Error(t, err)
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	assert.False(t, logger.Enabled(t.Context(), slog.LevelError))
}
