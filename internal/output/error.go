package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	generr "github.com/mrz1836/dprpwg-gen/pkg/errors"
)

// ErrorOutput represents a structured error for JSON output.
type ErrorOutput struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error details.
type ErrorDetail struct {
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	Cause      string            `json:"cause,omitempty"`
	Details    map[string]string `json:"details,omitempty"`
	Suggestion string            `json:"suggestion,omitempty"`
	ExitCode   int               `json:"exit_code"`
}

// FormatError formats an error for display on the error stream.
func FormatError(w io.Writer, err error, format Format) error {
	if err == nil {
		return nil
	}

	if format == FormatJSON {
		return formatErrorJSON(w, err)
	}
	return formatErrorText(w, err)
}

func detailOf(err error) ErrorDetail {
	var ge *generr.GenError
	if generr.As(err, &ge) {
		d := ErrorDetail{
			Code:       ge.Code,
			Message:    ge.Message,
			Details:    ge.Details,
			Suggestion: ge.Suggestion,
			ExitCode:   ge.ExitCode,
		}
		if ge.Cause != nil {
			d.Cause = ge.Cause.Error()
		}
		return d
	}

	return ErrorDetail{
		Code:     generr.Code(err),
		Message:  err.Error(),
		ExitCode: generr.ExitGeneral,
	}
}

func formatErrorJSON(w io.Writer, err error) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ErrorOutput{Error: detailOf(err)})
}

func formatErrorText(w io.Writer, err error) error {
	d := detailOf(err)

	var sb strings.Builder
	sb.WriteString("*** " + d.Message)
	if d.Cause != "" {
		sb.WriteString(": " + d.Cause)
	}
	sb.WriteString("\n")

	if len(d.Details) > 0 {
		keys := make([]string, 0, len(d.Details))
		for k := range d.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("    %s: %s\n", k, d.Details[k]))
		}
	}

	if d.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("    hint: %s\n", d.Suggestion))
	}

	_, writeErr := io.WriteString(w, sb.String())
	return writeErr
}
