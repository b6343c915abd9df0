package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func splitNonEmpty(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

func TestJSONLogger_Stdout(t *testing.T) {
	logger, err := NewJSONLogger(LoggerConfig{
		Level: LevelInfo,
	})
	require.NoError(t, err)
	assert.NotNil(t, logger)
	assert.NoError(t, logger.Close())
}

func TestJSONLogger_File(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "run.log")

	logger, err := NewJSONLogger(LoggerConfig{
		OutputPath: logPath,
		Level:      LevelDebug,
		Verbose:    true,
	})
	require.NoError(t, err)

	logger.Info("problem_started",
		Field{Key: "problem", Value: "2022/day-01"},
	)
	logger.Debug("puzzle_data_missing")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)

	lines := splitNonEmpty(string(data))
	require.Len(t, lines, 2)

	var entry LogEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "INFO", entry.Level)
	assert.Equal(t, "problem_started", entry.Message)
	assert.Equal(t, "2022/day-01", entry.Fields["problem"])
}

func TestJSONLogger_LevelFiltering(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "level.log")

	logger, err := NewJSONLogger(LoggerConfig{
		OutputPath: logPath,
		Level:      LevelWarn,
		Verbose:    true,
	})
	require.NoError(t, err)

	logger.Debug("should not appear")
	logger.Info("should not appear")
	logger.Warn("should appear")
	logger.Error("should appear")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Len(t, splitNonEmpty(string(data)), 2)
}

func TestJSONLogger_WithFields(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "fields.log")

	logger, err := NewJSONLogger(LoggerConfig{
		OutputPath: logPath,
		Level:      LevelInfo,
	})
	require.NoError(t, err)

	child := logger.WithFields(Field{Key: "year", Value: 2022})
	child.Info("batch_started")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)

	lines := splitNonEmpty(string(data))
	require.Len(t, lines, 1)

	var entry LogEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.EqualValues(t, 2022, entry.Fields["year"])
}

func TestJSONLogger_ClosedIsSilent(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "closed.log")

	logger, err := NewJSONLogger(LoggerConfig{
		OutputPath: logPath,
		Level:      LevelInfo,
	})
	require.NoError(t, err)
	require.NoError(t, logger.Close())

	logger.Info("after close")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Empty(t, splitNonEmpty(string(data)))
}
