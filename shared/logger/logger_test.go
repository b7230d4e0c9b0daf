package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T, level, format string) (*Logger, *bytes.Buffer) {
	t.Helper()

	output := &bytes.Buffer{}
	logger, err := New(&Config{
		Level:      level,
		Format:     format,
		TimeFormat: time.RFC3339,
		writer:     output,
	})
	require.NoError(t, err)
	require.NotNil(t, logger)

	return logger, output
}

func TestNew_LevelFiltering(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		emit      func(l *Logger)
		wantLines int
		wantLevel string
		wantMsg   string
		wantAttrs map[string]string
	}{
		{
			name:  "debug level logs debug",
			level: "debug",
			emit: func(l *Logger) {
				l.Debug("test debug message", slog.String("key", "value"))
			},
			wantLines: 1,
			wantLevel: "DEBUG",
			wantMsg:   "test debug message",
			wantAttrs: map[string]string{"key": "value"},
		},
		{
			name:  "info level drops debug",
			level: "info",
			emit: func(l *Logger) {
				l.Debug("debug message")
				l.Info("info message", slog.String("type", "test"))
			},
			wantLines: 1,
			wantLevel: "INFO",
			wantMsg:   "info message",
			wantAttrs: map[string]string{"type": "test"},
		},
		{
			name:  "warn level drops info",
			level: "warn",
			emit: func(l *Logger) {
				l.Info("info message")
				l.Warn("warn message", slog.String("severity", "high"))
			},
			wantLines: 1,
			wantLevel: "WARN",
			wantMsg:   "warn message",
			wantAttrs: map[string]string{"severity": "high"},
		},
		{
			name:  "error level drops warn",
			level: "error",
			emit: func(l *Logger) {
				l.Warn("warn message")
				l.Error("error message", slog.String("code", "500"))
			},
			wantLines: 1,
			wantLevel: "ERROR",
			wantMsg:   "error message",
			wantAttrs: map[string]string{"code": "500"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, output := newTestLogger(t, tt.level, "json")
			tt.emit(logger)

			lines := strings.Split(strings.TrimSpace(output.String()), "\n")
			require.Len(t, lines, tt.wantLines)

			var logEntry map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &logEntry))

			assert.Equal(t, tt.wantLevel, logEntry["level"])
			assert.Equal(t, tt.wantMsg, logEntry["msg"])
			for key, val := range tt.wantAttrs {
				assert.Equal(t, val, logEntry[key])
			}
			assert.Contains(t, logEntry, "time")
		})
	}
}

func TestNew_ConsoleFormat(t *testing.T) {
	logger, output := newTestLogger(t, "info", "console")
	logger.Info("console test")

	// tint renders the level as "INF"
	logOutput := output.String()
	assert.Contains(t, logOutput, "INF")
	assert.Contains(t, logOutput, "console test")
}

func TestNew_SourceLocation(t *testing.T) {
	output := &bytes.Buffer{}
	logger, err := New(&Config{
		Level:        "info",
		Format:       "json",
		EnableSource: true,
		writer:       output,
	})
	require.NoError(t, err)

	logger.Info("message with source")

	var logEntry map[string]interface{}
	require.NoError(t, json.Unmarshal(output.Bytes(), &logEntry))

	require.Contains(t, logEntry, "source")
	source := logEntry["source"].(map[string]interface{})
	assert.Contains(t, source, "file")
	assert.Contains(t, source, "line")
}

func TestNew_FileOutput(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "service.log")

	logger, err := New(&Config{
		Level:  "info",
		Format: "json",
		Output: logPath,
	})
	require.NoError(t, err)

	logger.Info("written to file")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestNewDefault(t *testing.T) {
	logger := NewDefault()
	require.NotNil(t, logger)
	assert.NotNil(t, logger.Logger)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		// parseLevel is case-sensitive; anything unknown falls back to info
		{"DEBUG", slog.LevelInfo},
		{"invalid", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run("level "+tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.level))
		})
	}
}

func TestLogger_WithGroup(t *testing.T) {
	logger, output := newTestLogger(t, "info", "json")

	groupLogger := logger.WithGroup("request")
	require.NotNil(t, groupLogger)

	groupLogger.Info("test message", slog.String("key", "value"))

	var logEntry map[string]interface{}
	require.NoError(t, json.Unmarshal(output.Bytes(), &logEntry))

	require.Contains(t, logEntry, "request")
	group := logEntry["request"].(map[string]interface{})
	assert.Equal(t, "value", group["key"])
}

func TestLogger_With(t *testing.T) {
	logger, output := newTestLogger(t, "info", "json")

	contextLogger := logger.With(
		slog.String("service", "api"),
		slog.Int("version", 1),
	)
	require.NotNil(t, contextLogger)

	contextLogger.Info("operation complete")

	var logEntry map[string]interface{}
	require.NoError(t, json.Unmarshal(output.Bytes(), &logEntry))

	assert.Equal(t, "api", logEntry["service"])
	assert.Equal(t, float64(1), logEntry["version"]) // JSON numbers decode as float64
	assert.Equal(t, "operation complete", logEntry["msg"])
}
