package bigend

import (
	"golang.org/x/exp/constraints"

	"github.com/ony/leveldb-tl/internal/kverrors"
)

// Encode serializes v as a big-endian byte slice of exactly width bytes.
// Callers are responsible for choosing a width that can hold every value
// of T they intend to encode; a too-narrow width silently truncates.
func Encode[T constraints.Unsigned](v T, width int) []byte {
	buf := make([]byte, width)
	u := uint64(v)
	for i := width - 1; i >= 0; i-- {
		buf[i] = byte(u)
		u >>= 8
	}
	return buf
}

// Decode parses a big-endian byte slice produced by Encode. It reports a
// kverrors Corruption error if b's length doesn't match width exactly,
// mirroring the original's "invalid entry (value size mismatch)" check.
func Decode[T constraints.Unsigned](b []byte, width int) (T, error) {
	if len(b) != width {
		return 0, kverrors.Corruption("invalid entry (value size mismatch)")
	}
	var u uint64
	for _, c := range b {
		u = u<<8 | uint64(c)
	}
	return T(u), nil
}

// NextNet increments b in place, treating it as a big-endian integer:
// the least significant (last) byte is incremented first, carrying into
// more significant bytes on 0x00 wraparound. It reports true if the carry
// escaped the most significant byte — b was already all 0xFF, so every
// byte wrapped back to 0x00 and there is no representable successor.
func NextNet(b []byte) (overflowed bool) {
	for i := len(b) - 1; i >= 0; i-- {
		b[i]++
		if b[i] != 0 {
			return false
		}
	}
	return true
}
