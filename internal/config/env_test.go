package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"1", "1", true},
		{"true", "true", true},
		{"YES", "YES", true},
		{"on", "on", true},
		{"with spaces", "  true  ", true},
		{"0", "0", false},
		{"false", "false", false},
		{"off", "off", false},
		{"empty", "", false},
		{"random", "random", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, parseBool(tc.input))
		})
	}
}

func TestApplyEnvironment(t *testing.T) {
	t.Setenv(EnvTemplate, " /tmp/stub.h ")
	t.Setenv(EnvBits, "16")
	t.Setenv(EnvOutputFormat, "JSON")
	t.Setenv(EnvVerbose, "yes")
	t.Setenv(EnvLogLevel, "DEBUG")
	t.Setenv(EnvLogFile, "/tmp/dprpwg.log")

	cfg := Defaults()
	ApplyEnvironment(cfg)

	assert.Equal(t, "/tmp/stub.h", cfg.Generator.Template)
	assert.Equal(t, 16, cfg.Generator.Bits)
	assert.Equal(t, "json", cfg.Output.DefaultFormat)
	assert.True(t, cfg.Output.Verbose)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/dprpwg.log", cfg.Logging.File)
}

func TestApplyEnvironment_InvalidBits(t *testing.T) {
	t.Setenv(EnvBits, "thirty-two")

	cfg := Defaults()
	ApplyEnvironment(cfg)

	assert.Equal(t, -1, cfg.Generator.Bits)
	assert.Error(t, cfg.Validate())
}

func TestApplyEnvironment_Unset(t *testing.T) {
	for _, name := range []string{EnvTemplate, EnvBits, EnvOutputFormat, EnvVerbose, EnvLogLevel, EnvLogFile} {
		t.Setenv(name, "")
	}

	cfg := Defaults()
	ApplyEnvironment(cfg)
	assert.Equal(t, Defaults(), cfg)
}
