package cpu6502

import (
	"github.com/pkg/errors"
)

// ToSigned converts an unsigned byte (0..255) to its two's-complement
// signed interpretation (-128..127). Go's int8 conversion already performs
// the reinterpretation the 6502 relies on, so the unsigned and signed
// views are two names for the same bit pattern.
func ToSigned(n uint8) int8 {
	return int8(n)
}

// ToUnsigned converts a signed byte (-128..127) back to its unsigned
// (0..255) representation.
func ToUnsigned(n int8) uint8 {
	return uint8(n)
}

// ToSignedChecked is ToSigned for callers that only have a raw int (e.g.
// a value parsed from a debugger command) and need the declared-domain
// violation reported as ErrValueOutOfRange rather than silently
// truncated.
func ToSignedChecked(n int) (int8, error) {
	if n < 0 || n > 255 {
		return 0, errors.Wrapf(ErrValueOutOfRange, "%d not in 0..255", n)
	}
	return ToSigned(uint8(n)), nil
}

// ToUnsignedChecked is ToUnsigned for callers working from a raw int.
func ToUnsignedChecked(n int) (uint8, error) {
	if n < -128 || n > 127 {
		return 0, errors.Wrapf(ErrValueOutOfRange, "%d not in -128..127", n)
	}
	return ToUnsigned(int8(n)), nil
}
