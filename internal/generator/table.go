package generator

import (
	"strconv"

	"github.com/mrz1836/dprpwg-gen/internal/entropy"
)

// Table maps every variable to the decimal form of its generated value.
// A Table is built once per run and never reused.
type Table struct {
	bits   int
	values map[Variable]string
}

// NewTable draws one independent value of the given width for each
// variable from the secure random source.
func NewTable(bits int) (*Table, error) {
	draws, err := entropy.Uints(len(variables), bits)
	if err != nil {
		return nil, err
	}

	t := &Table{
		bits:   bits,
		values: make(map[Variable]string, len(variables)),
	}
	for i, v := range variables {
		t.values[v] = strconv.FormatUint(draws[i], 10)
	}
	return t, nil
}

// Value returns the decimal string generated for v.
func (t *Table) Value(v Variable) (string, bool) {
	s, ok := t.values[v]
	return s, ok
}

// Bits returns the width every value was drawn with.
func (t *Table) Bits() int {
	return t.bits
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.values)
}
