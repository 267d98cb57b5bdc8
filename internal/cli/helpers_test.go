package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mrz1836/dprpwg-gen/internal/config"
)

// testStub is shared with the generator tests.
const testStub = "../generator/testdata/dprpwg_config.stub.h"

// resetFlags restores every flag of cmd and its children to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

// isolateEnv blanks every environment override for the test.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		config.EnvConfig, config.EnvTemplate, config.EnvBits, config.EnvOutputFormat,
		config.EnvVerbose, config.EnvLogLevel, config.EnvLogFile,
	} {
		t.Setenv(name, "")
	}
}

// executeCommand runs the CLI with args against fresh global state and
// returns what it wrote to stdout and stderr.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	resetFlags(rootCmd)
	cfg, logger, formatter = nil, nil, nil

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := execute(rootCmd)
	return stdout.String(), stderr.String(), err
}
