package config

import (
	"os"
	"path/filepath"
)

// DefaultBits is the width of a C unsigned int on the platforms the
// generated header targets.
const DefaultBits = 32

// DefaultConfigFile is where "config init" writes when no path is given.
const DefaultConfigFile = "dprpwg.yaml"

// templateRel is the bundled stub location relative to the executable's
// directory.
//
//nolint:gochecknoglobals // Path segments of the bundled template
var templateRel = []string{"..", "src", "dprpwg_config.stub.h"}

// Defaults returns the default configuration.
func Defaults() *Config {
	return &Config{
		Version: 1,
		Generator: GeneratorConfig{
			Template: DefaultTemplate(),
			Bits:     DefaultBits,
		},
		Output: OutputConfig{
			DefaultFormat: "auto",
			Verbose:       false,
		},
		Logging: LoggingConfig{
			Level: "error",
			File:  "",
		},
	}
}

// DefaultTemplate returns the bundled template path, resolved next to the
// running executable. It falls back to a path relative to the working
// directory when the executable cannot be located.
func DefaultTemplate() string {
	exe, err := os.Executable()
	if err != nil {
		return filepath.Join(templateRel[1:]...)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(append([]string{filepath.Dir(exe)}, templateRel...)...)
}
