// Package cli implements the dprpwg-gen command-line interface.
//
// This package uses global variables to manage CLI state, which is the standard
// pattern for Cobra-based CLI applications. The globals are initialized in
// PersistentPreRunE and cleaned up in PersistentPostRun.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level state
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrz1836/dprpwg-gen/internal/config"
	"github.com/mrz1836/dprpwg-gen/internal/generator"
	"github.com/mrz1836/dprpwg-gen/internal/metrics"
	"github.com/mrz1836/dprpwg-gen/internal/output"
	generr "github.com/mrz1836/dprpwg-gen/pkg/errors"
)

// stdoutTarget selects standard output instead of a file.
const stdoutTarget = "-"

var (
	// Global flags
	configPath   string
	templatePath string
	outputFormat string
	verbose      bool

	// Generation flags
	outputPath string
	bits       int

	// Global state initialized in PersistentPreRunE
	cfg       *config.Config
	logger    *config.Logger
	formatter *output.Formatter
)

// rootCmd generates the header when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "dprpwg-gen",
	Short: "Generate dprpwg_config.h with secure random constants",
	Long: `dprpwg-gen creates dprpwg_config.h from its stub template.

Every line of the template naming one of the multiplier variables
(PW_MUL, PW_SEEK_MUL, PW_INV_MUL, DOM_MUL, DOM_SEEK_MUL, DOM_INV_MUL,
YR_MUL, YR_SEEK_MUL, YR_INV_MUL) has its <YOUR_NUMBER> token replaced
by an unsigned integer drawn from the system's secure random source.

The output must not exist yet: each run draws new values, so an existing
header is never overwritten. The generated file is made read-only.

Example:
  dprpwg-gen -o src/dprpwg_config.h
  dprpwg-gen -t src/dprpwg_config.stub.h -o build/dprpwg_config.h
  dprpwg-gen -o - > /tmp/preview.h`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return initGlobals(cmd)
	},
	RunE: runGenerate,
}

// Execute runs the root command.
func Execute() error {
	return execute(rootCmd)
}

func execute(root *cobra.Command) error {
	err := root.Execute()
	if err != nil {
		if logger != nil {
			logger.Error("%s: %v", generr.Code(err), err)
		}
		format := output.FormatText
		if formatter != nil {
			format = formatter.Format()
		}
		_ = output.FormatError(root.ErrOrStderr(), err, format)
		cleanup()
		return err
	}
	return nil
}

// ExitCode returns the appropriate exit code for an error.
func ExitCode(err error) int {
	return generr.ExitCode(err)
}

// initGlobals initializes global configuration, logger, and formatter.
// Precedence is flags, then environment, then config file, then defaults.
func initGlobals(cmd *cobra.Command) error {
	path := configPath
	if path == "" {
		path = os.Getenv(config.EnvConfig)
	}

	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	} else {
		cfg = config.Defaults()
	}

	return applyOverrides(cmd)
}

// applyOverrides layers the environment and flags over cfg, then builds the
// logger and formatter from the result.
func applyOverrides(cmd *cobra.Command) error {
	config.ApplyEnvironment(cfg)

	if templatePath != "" {
		cfg.Generator.Template = templatePath
	}
	if f := cmd.Flags().Lookup("bits"); f != nil && f.Changed {
		cfg.Generator.Bits = bits
	}
	if verbose {
		cfg.Output.Verbose = true
		cfg.Logging.Level = "debug"
	}
	if outputFormat != "" && outputFormat != string(output.FormatAuto) {
		cfg.Output.DefaultFormat = outputFormat
	}

	if err := initLogger(cmd); err != nil {
		return err
	}

	explicitFormat := output.ParseFormat(cfg.GetOutputFormat())
	formatter = output.NewFormatter(output.DetectFormat(cmd.OutOrStdout(), explicitFormat), cmd.OutOrStdout())

	return cfg.Validate()
}

func initLogger(cmd *cobra.Command) error {
	level := config.ParseLogLevel(cfg.Logging.Level)
	if cfg.IsVerbose() && level < config.LogLevelDebug {
		level = config.LogLevelDebug
	}

	if cfg.Logging.File == "" {
		if cfg.IsVerbose() {
			logger = config.NewStreamLogger(level, cmd.ErrOrStderr())
		} else {
			logger = config.NullLogger()
		}
		return nil
	}

	var err error
	logger, err = config.NewLogger(level, cfg.Logging.File)
	if err != nil {
		logger = config.NullLogger()
		return generr.WithDetails(generr.WithCause(generr.ErrFileAccess, err),
			map[string]string{"log_file": cfg.Logging.File})
	}
	return nil
}

// cleanup releases resources. A log file that could not be written is
// reported on stderr without failing the run.
func cleanup() {
	if logger == nil {
		return
	}
	if err := logger.Close(); err != nil {
		_, _ = fmt.Fprintf(rootCmd.ErrOrStderr(), "warning: log file %s: %v\n", cfg.Logging.File, err)
	}
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	if outputPath == "" {
		return generr.WithSuggestion(
			generr.Wrap(generr.ErrInvalidInput, "--output is required"),
			"pass -o PATH for the header to create, or -o - for standard output")
	}

	gen := generator.New(
		generator.WithBits(cfg.GetBits()),
		generator.WithLogger(logger),
	)

	logger.Debug("generating %s from %s", outputPath, cfg.GetTemplate())
	if logger.Level() >= config.LogLevelDebug {
		defer logRunMetrics()
	}

	if outputPath == stdoutTarget {
		_, err := gen.GenerateTo(cfg.GetTemplate(), cmd.OutOrStdout())
		return err
	}

	res, err := gen.Generate(cfg.GetTemplate(), outputPath)
	if err != nil {
		return err
	}

	return displayResult(res)
}

func logRunMetrics() {
	snap := metrics.Global.Snapshot()
	logger.Debug("runs=%d errors=%d conflicts=%d entropy_bytes=%d lines=%d filled=%d avg_ms=%.3f",
		snap.RunsTotal, snap.RunErrors, snap.Conflicts, snap.EntropyBytes,
		snap.LinesRead, snap.LinesFilled, metrics.Global.RunLatencyAvgMs())
}

func displayResult(res *generator.Result) error {
	if formatter.IsJSON() {
		return formatter.JSON(res)
	}

	if err := formatter.Printf("Generated %s from %s\n", res.Output, res.Template); err != nil {
		return err
	}
	return formatter.Printf("  %d of %d lines substituted with %d-bit values; file is now read-only\n",
		res.Substituted, res.Lines, res.Bits)
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for flag registration
func init() {
	// Assigned here rather than in the literal: cleanup refers to rootCmd.
	rootCmd.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		cleanup()
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: $"+config.EnvConfig+")")
	rootCmd.PersistentFlags().StringVarP(&templatePath, "template", "t", "", "template to fill in (default: bundled dprpwg_config.stub.h)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "auto", "report format: text, json, auto")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "header to create, or - for standard output (required)")
	rootCmd.Flags().IntVar(&bits, "bits", config.DefaultBits, "width of each generated unsigned integer: 8, 16, 32 or 64")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return generr.WithCause(generr.ErrInvalidInput, err)
	})
}
