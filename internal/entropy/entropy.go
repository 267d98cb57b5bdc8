// Package entropy wraps the platform's cryptographically secure random
// source and turns its output into fixed-width unsigned integers.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// MaxBits is the widest integer Uints can produce.
const MaxBits = 64

// ErrInvalidWidth is returned for a bit width that is not a whole number of
// bytes between 8 and MaxBits.
var ErrInvalidWidth = errors.New("bit width must be a multiple of 8 between 8 and 64")

// Reader is the cryptographically secure random number generator.
// It wraps crypto/rand.Reader for consistency and testability.
//
//nolint:gochecknoglobals // Package-level RNG is required for testability
var Reader io.Reader = rand.Reader

// SecureRandomBytes generates random bytes in a SecureBytes container.
func SecureRandomBytes(n int) (*SecureBytes, error) {
	sb, err := NewSecureBytes(n)
	if err != nil {
		return nil, err
	}

	if _, err := io.ReadFull(Reader, sb.Bytes()); err != nil {
		sb.Destroy()
		return nil, err
	}

	return sb, nil
}

// ValidWidth reports whether bits is a width Uints accepts.
func ValidWidth(bits int) bool {
	return bits >= 8 && bits <= MaxBits && bits%8 == 0
}

// Uints draws count independent, uniformly distributed integers of the
// given bit width. Every value lies in [0, 2^bits - 1]. The raw bytes are
// held in locked memory and wiped before returning.
func Uints(count, bits int) ([]uint64, error) {
	if !ValidWidth(bits) {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWidth, bits)
	}
	if count <= 0 {
		return nil, nil
	}

	width := bits / 8
	raw, err := SecureRandomBytes(count * width)
	if err != nil {
		return nil, fmt.Errorf("reading random source: %w", err)
	}
	defer raw.Destroy()

	var word [8]byte
	buf := raw.Bytes()
	values := make([]uint64, raw.Len()/width)
	for i := range values {
		// right-align the value in a big-endian 64-bit word
		copy(word[8-width:], buf[i*width:(i+1)*width])
		values[i] = binary.BigEndian.Uint64(word[:])
	}
	clear(word[:])

	return values, nil
}
