package generator

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/dprpwg-gen/internal/entropy"
)

func TestNewTable_OneEntryPerVariable(t *testing.T) {
	table, err := NewTable(32)
	require.NoError(t, err)

	assert.Equal(t, 9, table.Len())
	assert.Equal(t, 32, table.Bits())
	for _, v := range Variables() {
		value, ok := table.Value(v)
		require.True(t, ok, "missing %s", v)
		assert.Regexp(t, `^[0-9]+$`, value)
	}

	_, ok := table.Value("NOT_A_VARIABLE")
	assert.False(t, ok)
}

func TestNewTable_ValuesWithinWidth(t *testing.T) {
	for _, bits := range []int{8, 16, 32, 64} {
		table, err := NewTable(bits)
		require.NoError(t, err)

		for _, v := range Variables() {
			value, _ := table.Value(v)
			n, err := strconv.ParseUint(value, 10, bits)
			require.NoError(t, err, "%s=%s does not fit in %d bits", v, value, bits)
			if bits < 64 {
				assert.LessOrEqual(t, n, uint64(1)<<bits-1)
			}
		}
	}
}

func TestNewTable_FreshEachRun(t *testing.T) {
	first, err := NewTable(32)
	require.NoError(t, err)
	second, err := NewTable(32)
	require.NoError(t, err)

	for _, v := range Variables() {
		a, _ := first.Value(v)
		b, _ := second.Value(v)
		assert.NotEqual(t, a, b, "%s repeated across runs", v)
	}
}

func TestNewTable_InvalidWidth(t *testing.T) {
	_, err := NewTable(31)
	require.ErrorIs(t, err, entropy.ErrInvalidWidth)
}
