package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/dprpwg-gen/internal/config"
)

func TestParseLogLevel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected config.LogLevel
	}{
		{"off lowercase", "off", config.LogLevelOff},
		{"none", "none", config.LogLevelOff},
		{"error uppercase", "ERROR", config.LogLevelError},
		{"debug with whitespace", "  debug  ", config.LogLevelDebug},
		{"unknown value", "warn", config.LogLevelError},
		{"empty returns error", "", config.LogLevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, config.ParseLogLevel(tt.input))
		})
	}
}

func TestLogLevel_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "off", config.LogLevelOff.String())
	assert.Equal(t, "error", config.LogLevelError.String())
	assert.Equal(t, "debug", config.LogLevelDebug.String())
	assert.Equal(t, "error", config.LogLevel(99).String())
}

func TestStreamLogger_Levels(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := config.NewStreamLogger(config.LogLevelError, &buf)

	logger.Debug("hidden %d", 1)
	logger.Error("shown %d", 2)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "[ERROR] shown 2")

	assert.Equal(t, config.LogLevelError, logger.Level())
	require.NoError(t, logger.Close())

	debug := config.NewStreamLogger(config.LogLevelDebug, &buf)
	debug.Debug("now visible")
	assert.Contains(t, buf.String(), "[DEBUG] now visible")
}

func TestFileLogger(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "logs", "dprpwg.log")

	logger, err := config.NewLogger(config.LogLevelDebug, path)
	require.NoError(t, err)
	logger.Debug("drew %d values", 9)
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path) //nolint:gosec // G304: Test path from t.TempDir()
	require.NoError(t, err)
	assert.Contains(t, string(data), "[DEBUG] drew 9 values")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// logging after close is a no-op
	logger.Error("dropped")
	data, err = os.ReadFile(path) //nolint:gosec // G304: Test path from t.TempDir()
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dropped")
}

func TestFileLogger_CreatedOnFirstLine(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "logs", "dprpwg.log")

	logger, err := config.NewLogger(config.LogLevelError, path)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Dir(path))
	require.ErrorIs(t, err, os.ErrNotExist)

	logger.Debug("below level")
	_, err = os.Stat(path)
	require.ErrorIs(t, err, os.ErrNotExist)

	logger.Error("refusing to overwrite")
	require.NoError(t, logger.Close())
	assert.FileExists(t, path)
}

func TestFileLogger_UnopenableReportedOnClose(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	// a directory cannot be opened for appending
	logger, err := config.NewLogger(config.LogLevelDebug, dir)
	require.NoError(t, err)
	logger.Debug("lost")
	logger.Error("lost too")
	require.Error(t, logger.Close())
}

func TestNullLogger(t *testing.T) {
	t.Parallel()

	logger := config.NullLogger()
	logger.Error("nothing")
	assert.Equal(t, config.LogLevelOff, logger.Level())
	require.NoError(t, logger.Close())

	disabled, err := config.NewLogger(config.LogLevelDebug, "")
	require.NoError(t, err)
	disabled.Debug("nothing")
	require.NoError(t, disabled.Close())
}
