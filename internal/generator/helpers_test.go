package generator

import (
	"errors"
	"io"
	"testing"

	"github.com/mrz1836/dprpwg-gen/internal/entropy"
)

var errNoEntropy = errors.New("entropy source unavailable")

// readerFunc adapts a function to io.Reader.
type readerFunc func(p []byte) (int, error)

func (f readerFunc) Read(p []byte) (int, error) { return f(p) }

// withEntropy replaces the secure random source and restores it on cleanup.
func withEntropy(t *testing.T, r io.Reader) {
	t.Helper()
	orig := entropy.Reader
	t.Cleanup(func() { entropy.Reader = orig })
	entropy.Reader = r
}

// withFailingEntropy fails the test if any entropy is drawn.
func withFailingEntropy(t *testing.T) {
	t.Helper()
	withEntropy(t, readerFunc(func([]byte) (int, error) {
		t.Error("entropy must not be drawn")
		return 0, errNoEntropy
	}))
}

// fixedTable returns a table with predictable values: PW_MUL=1, PW_SEEK_MUL=2, ...
func fixedTable() *Table {
	t := &Table{bits: 32, values: make(map[Variable]string)}
	for i, v := range variables {
		t.values[v] = string(rune('1' + i))
	}
	return t
}

// withHooks restores the filesystem hooks on cleanup.
func withHooks(t *testing.T) {
	t.Helper()
	origWrite, origChmod := writeExclusiveFn, makeReadOnlyFn
	t.Cleanup(func() {
		writeExclusiveFn = origWrite
		makeReadOnlyFn = origChmod
	})
}
