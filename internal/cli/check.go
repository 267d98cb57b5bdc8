package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrz1836/dprpwg-gen/internal/generator"
	"github.com/mrz1836/dprpwg-gen/internal/output"
	generr "github.com/mrz1836/dprpwg-gen/pkg/errors"
)

// checkCmd validates a template without generating anything.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that a template fills every variable exactly once",
	Long: `Check reads the template and reports which line receives each variable's
value, placeholders no variable owns, variable lines without a placeholder,
and identifiers that look like misspelled variable names.

Nothing is written and no random values are drawn. The command exits
non-zero when a variable is missing or repeated, or a placeholder is
left without an owner.

Example:
  dprpwg-gen check -t src/dprpwg_config.stub.h`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(_ *cobra.Command, _ []string) error {
	report, err := generator.CheckFile(cfg.GetTemplate())
	if err != nil {
		return err
	}
	logger.Debug("checked %s: ok=%t", report.Template, report.OK())

	if formatter.IsJSON() {
		if err := formatter.JSON(struct {
			*generator.Report
			OK bool `json:"ok"`
		}{report, report.OK()}); err != nil {
			return err
		}
	} else if err := displayReportText(report); err != nil {
		return err
	}

	if report.OK() {
		return nil
	}
	return generr.WithDetails(generr.ErrTemplateIncomplete, problemDetails(report))
}

func displayReportText(report *generator.Report) error {
	if err := formatter.Printf("Template: %s\n\n", report.Template); err != nil {
		return err
	}

	tbl := output.NewTable("VARIABLE", "LINES")
	for _, c := range report.Coverage {
		tbl.AddRow(c.Variable.String(), joinInts(c.Lines))
	}
	if err := tbl.Render(formatter.Writer()); err != nil {
		return err
	}

	if len(report.Orphans) > 0 {
		if err := formatter.Printf("\nPlaceholder without a variable on line(s) %s\n", joinInts(report.Orphans)); err != nil {
			return err
		}
	}
	if len(report.Unfilled) > 0 {
		if err := formatter.Printf("\nVariable without a placeholder on line(s) %s\n", joinInts(report.Unfilled)); err != nil {
			return err
		}
	}
	for _, m := range report.NearMisses {
		if err := formatter.Printf("\nLine %d: '%s' looks like %s\n", m.Line, m.Identifier, m.Suggestion); err != nil {
			return err
		}
	}

	status := "OK"
	if !report.OK() {
		status = "INCOMPLETE"
	}
	return formatter.Printf("\n%s\n", status)
}

func problemDetails(report *generator.Report) map[string]string {
	details := map[string]string{"template": report.Template}
	if missing := report.Missing(); len(missing) > 0 {
		details["missing"] = joinVariables(missing)
	}
	if dup := report.Duplicated(); len(dup) > 0 {
		details["repeated"] = joinVariables(dup)
	}
	if len(report.Orphans) > 0 {
		details["orphan_lines"] = joinInts(report.Orphans)
	}
	return details
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func joinVariables(vars []generator.Variable) string {
	parts := make([]string, len(vars))
	for i, v := range vars {
		parts[i] = v.String()
	}
	return strings.Join(parts, ",")
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(checkCmd)
}
