package cli

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mrz1836/dprpwg-gen/internal/config"
	"github.com/mrz1836/dprpwg-gen/internal/output"
	generr "github.com/mrz1836/dprpwg-gen/pkg/errors"
)

// configCmd is the parent command for configuration operations.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Create and inspect the dprpwg-gen configuration file.`,
}

// configInitCmd writes a configuration file.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a configuration file",
	Long: `Write a configuration file holding the default settings, with the
template and bit width taken from the environment and --template.

The file goes to the given path, else --config, else $DPRPWG_CONFIG,
else dprpwg.yaml in the current directory. An existing file is kept
unless --force is specified.

Example:
  dprpwg-gen config init
  dprpwg-gen config init -t src/dprpwg_config.stub.h ~/.config/dprpwg.yaml`,
	Args: cobra.MaximumNArgs(1),
	// the file named by --config may not exist yet
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cfg = config.Defaults()
		return applyOverrides(cmd)
	},
	RunE: runConfigInit,
}

// configShowCmd shows the effective configuration.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Display the settings a run would use after the config file, the
environment and flags are applied.

Example:
  dprpwg-gen config show
  dprpwg-gen config show -f json`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var configForce bool

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing configuration file")
}

func configInitPath(args []string) string {
	switch {
	case len(args) > 0:
		return args[0]
	case configPath != "":
		return configPath
	case os.Getenv(config.EnvConfig) != "":
		return os.Getenv(config.EnvConfig)
	default:
		return config.DefaultConfigFile
	}
}

func runConfigInit(_ *cobra.Command, args []string) error {
	path := configInitPath(args)

	if _, err := os.Stat(path); err == nil && !configForce {
		return generr.WithSuggestion(
			generr.WithDetails(generr.ErrAlreadyExists, map[string]string{"path": path}),
			"use --force to overwrite the configuration file")
	}

	fresh := config.Defaults()
	fresh.Generator.Template = cfg.GetTemplate()
	fresh.Generator.Bits = cfg.GetBits()

	if err := config.Save(fresh, path); err != nil {
		return generr.WithDetails(generr.WithCause(generr.ErrFileAccess, err),
			map[string]string{"path": path})
	}
	logger.Debug("wrote configuration to %s", path)

	if formatter.IsJSON() {
		return formatter.JSON(struct {
			Path   string         `json:"path"`
			Config *config.Config `json:"config"`
		}{path, fresh})
	}
	return formatter.Printf("Configuration written to %s\n", path)
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	if formatter.IsJSON() {
		return formatter.JSON(cfg)
	}

	tbl := output.NewTable("SETTING", "VALUE")
	tbl.AddRow("generator.template", cfg.GetTemplate())
	tbl.AddRow("generator.bits", strconv.Itoa(cfg.GetBits()))
	tbl.AddRow("output.default_format", cfg.GetOutputFormat())
	tbl.AddRow("output.verbose", strconv.FormatBool(cfg.IsVerbose()))
	tbl.AddRow("logging.level", cfg.Logging.Level)
	tbl.AddRow("logging.file", cfg.Logging.File)
	return tbl.Render(formatter.Writer())
}
