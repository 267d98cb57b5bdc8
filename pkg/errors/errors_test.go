package errors_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	generr "github.com/mrz1836/dprpwg-gen/pkg/errors"
)

var (
	errInner = errors.New("inner")
	errPlain = errors.New("plain error")
)

func TestExitCodes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"success", nil, generr.ExitSuccess},
		{"general error", generr.ErrGeneral, generr.ExitGeneral},
		{"input error", generr.ErrInvalidInput, generr.ExitInput},
		{"already exists", generr.ErrAlreadyExists, generr.ExitGeneral},
		{"file access", generr.ErrFileAccess, generr.ExitGeneral},
		{"permission change", generr.ErrPermissionChange, generr.ExitGeneral},
		{"entropy", generr.ErrEntropy, generr.ExitGeneral},
		{"plain error", errPlain, generr.ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, generr.ExitCode(tt.err))
		})
	}
}

func TestWrapPreservesIdentity(t *testing.T) {
	t.Parallel()

	for _, sentinel := range []*generr.GenError{
		generr.ErrGeneral,
		generr.ErrAlreadyExists,
		generr.ErrFileAccess,
		generr.ErrPermissionChange,
		generr.ErrConfigInvalid,
	} {
		wrapped := generr.Wrap(sentinel, "context %d", 1)
		require.ErrorIs(t, wrapped, sentinel)
		assert.Equal(t, sentinel.ExitCode, generr.ExitCode(wrapped))
		assert.Contains(t, wrapped.Error(), "context 1")
	}
}

func TestWithCause(t *testing.T) {
	t.Parallel()

	err := generr.WithCause(generr.ErrFileAccess, fs.ErrNotExist)
	require.ErrorIs(t, err, generr.ErrFileAccess)
	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.False(t, errors.Is(err, generr.ErrAlreadyExists))
	assert.Equal(t, "FILE_ACCESS", generr.Code(err))
	assert.Equal(t, "file access failed: file does not exist", err.Error())
}

func TestWithDetailsAndSuggestion(t *testing.T) {
	t.Parallel()
	details := map[string]string{"path": "config.h"}

	err := generr.WithDetails(generr.ErrAlreadyExists, details)
	err = generr.WithSuggestion(err, "choose another output path")

	var ge *generr.GenError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, details, ge.Details)
	assert.Equal(t, "choose another output path", ge.Suggestion)
	assert.Equal(t, "ALREADY_EXISTS", ge.Code)
}

func TestGenError_Error(t *testing.T) {
	t.Parallel()

	t.Run("message only", func(t *testing.T) {
		t.Parallel()
		err := &generr.GenError{Code: "TEST", Message: "something failed"}
		assert.Equal(t, "something failed", err.Error())
	})

	t.Run("with details sorted", func(t *testing.T) {
		t.Parallel()
		err := &generr.GenError{
			Code:    "TEST",
			Message: "failed",
			Details: map[string]string{"beta": "2", "alpha": "1"},
		}
		assert.Equal(t, "failed (alpha: 1) (beta: 2)", err.Error())
	})

	t.Run("with details and cause", func(t *testing.T) {
		t.Parallel()
		err := &generr.GenError{
			Code:    "TEST",
			Message: "outer",
			Details: map[string]string{"key": "val"},
			Cause:   errInner,
		}
		assert.Equal(t, "outer (key: val): inner", err.Error())
	})
}

func TestGenError_Is(t *testing.T) {
	t.Parallel()

	a := &generr.GenError{Code: "SAME_CODE", Message: "a"}
	b := &generr.GenError{Code: "SAME_CODE", Message: "b"}
	c := &generr.GenError{Code: "OTHER", Message: "c"}
	assert.True(t, a.Is(b))
	assert.False(t, a.Is(c))
	assert.False(t, a.Is(errPlain))
}

func TestEdgeCases(t *testing.T) {
	t.Parallel()

	t.Run("nil input", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, generr.Wrap(nil, "context"))
		require.NoError(t, generr.WithDetails(nil, map[string]string{"k": "v"}))
		require.NoError(t, generr.WithSuggestion(nil, "s"))
		assert.Equal(t, "GENERAL_ERROR", generr.Code(nil))
	})

	t.Run("non-GenError input", func(t *testing.T) {
		t.Parallel()
		wrapped := generr.Wrap(errPlain, "context")
		var ge *generr.GenError
		require.ErrorAs(t, wrapped, &ge)
		assert.Equal(t, "GENERAL_ERROR", ge.Code)
		assert.Equal(t, "context", ge.Message)
		assert.Equal(t, errPlain, ge.Cause)
	})
}
