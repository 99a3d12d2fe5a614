package cpu6502

import "github.com/pkg/errors"

// Sentinel error kinds. The core treats all of these as fatal: it surfaces
// them to its caller rather than attempting recovery.
var (
	ErrIllegalOpcode     = errors.New("illegal opcode")
	ErrAddressOutOfRange = errors.New("address out of range")
	ErrDecodeLength      = errors.New("operand byte count mismatch")
	ErrValueOutOfRange   = errors.New("value out of declared domain")
)
