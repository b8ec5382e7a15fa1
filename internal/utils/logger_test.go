package utils

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T, level LogLevel) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, InitLogger(LogOptions{Level: level, Output: &buf}))
	t.Cleanup(func() {
		_ = InitLogger(LogOptions{Level: LevelInfo})
	})
	return &buf
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"loud", LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLogLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}

func TestLogMessage_FiltersBelowLevel(t *testing.T) {
	buf := captureLogs(t, LevelWarn)

	Debug("hidden %d", 1)
	Info("hidden %d", 2)
	Warn("shown %d", 3)
	Error("shown %d", 4)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "shown 3", entry["message"])
}

func TestRaylibLogCallback(t *testing.T) {
	buf := captureLogs(t, LevelInfo)

	RaylibLogCallback(3, "INFO: Initializing raylib")
	assert.Empty(t, buf.String(), "raylib info is hidden unless requested")

	RaylibLogCallback(4, "WARNING: no audio")
	assert.Contains(t, buf.String(), "raylib: WARNING: no audio")
}

func TestRaylibLogCallback_ShowInfo(t *testing.T) {
	buf := captureLogs(t, LevelInfo)
	ShowRaylibInfo = true
	t.Cleanup(func() { ShowRaylibInfo = false })

	RaylibLogCallback(3, "INFO: Display size: 1920 x 1080")
	assert.Contains(t, buf.String(), "Display size")
}

func TestInitLogger_WritesFile(t *testing.T) {
	var console bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "clockface.log")
	require.NoError(t, InitLogger(LogOptions{Level: LevelInfo, File: path, Output: &console}))
	t.Cleanup(func() {
		_ = InitLogger(LogOptions{Level: LevelInfo})
	})

	Info("tick %s", "00:00:01")
	CloseLogger()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "tick 00:00:01")
	assert.Contains(t, console.String(), "tick 00:00:01")
}
