// Package errors provides structured error handling for dprpwg-gen.
// It defines sentinel errors, exit codes, and helpers for adding
// context, details, and suggestions to errors.
//
//nolint:revive // Package name intentionally shadows stdlib for domain-specific error handling
package errors

import (
	"errors"
	"fmt"
	"sort"
)

// Exit codes. Every operational failure exits with ExitGeneral; only
// command-line misuse is reported with ExitInput.
const (
	ExitSuccess = 0 // Successful execution
	ExitGeneral = 1 // Generation aborted
	ExitInput   = 2 // Invalid command-line input
)

// GenError is the structured error type for dprpwg-gen.
type GenError struct {
	Code       string            // Machine-readable error code
	Message    string            // Human-readable message
	Details    map[string]string // Additional context
	Suggestion string            // Actionable suggestion for user
	Cause      error             // Underlying error
	ExitCode   int               // Exit code for CLI
}

func (e *GenError) Error() string {
	msg := e.Message

	// Include details in error message (sorted for deterministic output)
	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			msg = fmt.Sprintf("%s (%s: %s)", msg, k, e.Details[k])
		}
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *GenError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is for GenError.
func (e *GenError) Is(target error) bool {
	var t *GenError
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// Sentinel errors.
var (
	// ErrGeneral classifies failures that carry no GenError of their own.
	ErrGeneral = &GenError{
		Code:     "GENERAL_ERROR",
		Message:  "an error occurred",
		ExitCode: ExitGeneral,
	}

	ErrInvalidInput = &GenError{
		Code:     "INVALID_INPUT",
		Message:  "invalid input",
		ExitCode: ExitInput,
	}

	// ErrAlreadyExists is returned when the output path is already a file.
	ErrAlreadyExists = &GenError{
		Code:     "ALREADY_EXISTS",
		Message:  "output file already exists",
		ExitCode: ExitGeneral,
	}

	// ErrFileAccess covers an unreadable template or an unwritable output.
	ErrFileAccess = &GenError{
		Code:     "FILE_ACCESS",
		Message:  "file access failed",
		ExitCode: ExitGeneral,
	}

	// ErrPermissionChange is returned when the output was written but could
	// not be made read-only.
	ErrPermissionChange = &GenError{
		Code:     "PERMISSION_CHANGE",
		Message:  "failed to make output read-only",
		ExitCode: ExitGeneral,
	}

	ErrEntropy = &GenError{
		Code:     "ENTROPY_UNAVAILABLE",
		Message:  "secure random source failed",
		ExitCode: ExitGeneral,
	}

	ErrTemplateIncomplete = &GenError{
		Code:     "TEMPLATE_INCOMPLETE",
		Message:  "template does not cover every variable",
		ExitCode: ExitGeneral,
	}

	// Config-specific errors.
	ErrConfigNotFound = &GenError{
		Code:     "CONFIG_NOT_FOUND",
		Message:  "configuration file not found",
		ExitCode: ExitGeneral,
	}

	ErrConfigInvalid = &GenError{
		Code:     "CONFIG_INVALID",
		Message:  "configuration is invalid",
		ExitCode: ExitInput,
	}
)

// Wrap wraps an error with additional context.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, args...)

	var ge *GenError
	if errors.As(err, &ge) {
		return &GenError{
			Code:       ge.Code,
			Message:    fmt.Sprintf("%s: %s", msg, ge.Message),
			Details:    ge.Details,
			Suggestion: ge.Suggestion,
			Cause:      err,
			ExitCode:   ge.ExitCode,
		}
	}

	return &GenError{
		Code:     ErrGeneral.Code,
		Message:  msg,
		Cause:    err,
		ExitCode: ExitGeneral,
	}
}

// WithCause returns a copy of the sentinel kind carrying cause as its
// underlying error, so both errors.Is(err, kind) and errors.Is(err, cause)
// hold.
func WithCause(kind *GenError, cause error) error {
	return &GenError{
		Code:       kind.Code,
		Message:    kind.Message,
		Details:    kind.Details,
		Suggestion: kind.Suggestion,
		Cause:      cause,
		ExitCode:   kind.ExitCode,
	}
}

// WithDetails adds details to an error.
func WithDetails(err error, details map[string]string) error {
	if err == nil {
		return nil
	}

	var ge *GenError
	if errors.As(err, &ge) {
		return &GenError{
			Code:       ge.Code,
			Message:    ge.Message,
			Details:    details,
			Suggestion: ge.Suggestion,
			Cause:      ge.Cause,
			ExitCode:   ge.ExitCode,
		}
	}

	return &GenError{
		Code:     ErrGeneral.Code,
		Message:  err.Error(),
		Details:  details,
		Cause:    err,
		ExitCode: ExitGeneral,
	}
}

// WithSuggestion adds a suggestion to an error.
func WithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}

	var ge *GenError
	if errors.As(err, &ge) {
		return &GenError{
			Code:       ge.Code,
			Message:    ge.Message,
			Details:    ge.Details,
			Suggestion: suggestion,
			Cause:      ge.Cause,
			ExitCode:   ge.ExitCode,
		}
	}

	return &GenError{
		Code:       ErrGeneral.Code,
		Message:    err.Error(),
		Suggestion: suggestion,
		Cause:      err,
		ExitCode:   ExitGeneral,
	}
}

// ExitCode returns the appropriate exit code for an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var ge *GenError
	if errors.As(err, &ge) {
		return ge.ExitCode
	}

	return ExitGeneral
}

// Code returns the error code for an error.
func Code(err error) string {
	var ge *GenError
	if errors.As(err, &ge) {
		return ge.Code
	}
	return ErrGeneral.Code
}

// Is wraps errors.Is for convenience.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience.
func As(err error, target any) bool {
	return errors.As(err, target)
}
