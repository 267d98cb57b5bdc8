package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment variable names.
const (
	EnvConfig       = "DPRPWG_CONFIG"
	EnvTemplate     = "DPRPWG_TEMPLATE"
	EnvBits         = "DPRPWG_BITS"
	EnvOutputFormat = "DPRPWG_OUTPUT_FORMAT"
	EnvVerbose      = "DPRPWG_VERBOSE"
	EnvLogLevel     = "DPRPWG_LOG_LEVEL"
	EnvLogFile      = "DPRPWG_LOG_FILE"
)

// ApplyEnvironment applies environment variable overrides to the configuration.
func ApplyEnvironment(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvTemplate)); v != "" {
		cfg.Generator.Template = v
	}

	// an unparsable width is kept so Validate can report it
	if v := strings.TrimSpace(os.Getenv(EnvBits)); v != "" {
		if bits, err := strconv.Atoi(v); err == nil {
			cfg.Generator.Bits = bits
		} else {
			cfg.Generator.Bits = -1
		}
	}

	if v := os.Getenv(EnvOutputFormat); v != "" {
		cfg.Output.DefaultFormat = strings.ToLower(v)
	}

	if v := os.Getenv(EnvVerbose); v != "" {
		cfg.Output.Verbose = parseBool(v)
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}

	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

// parseBool parses a boolean string value.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "1" || s == "true" || s == "yes" || s == "on" {
		return true
	}
	b, _ := strconv.ParseBool(s)
	return b
}
