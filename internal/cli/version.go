package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Build information, set via -ldflags -X at release time.
//
//nolint:gochecknoglobals // Populated by the linker
var (
	version = ""
	commit  = ""
	date    = ""
)

// BuildInfo identifies a build of the binary.
type BuildInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// GetBuildInfo returns the linked build information.
func GetBuildInfo() BuildInfo {
	return BuildInfo{Version: version, Commit: commit, Date: date}
}

func formatVersion(info BuildInfo) string {
	v, c, d := info.Version, info.Commit, info.Date
	if v == "" {
		v = "dev"
	}
	if c == "" {
		c = "unknown"
	}
	if d == "" {
		d = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		if formatter.IsJSON() {
			return formatter.JSON(GetBuildInfo())
		}
		return formatter.Println(formatVersion(GetBuildInfo()))
	},
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(versionCmd)
}
