package cpu6502

// Register8 is an 8-bit general-purpose register (A, X, Y, SP). Writes are
// always masked to 8 bits, whatever width the caller hands in.
type Register8 struct {
	value uint8
}

// Value returns the register's unsigned 0..255 contents.
func (r *Register8) Value() uint8 { return r.value }

// Set masks v to 8 bits and stores it.
func (r *Register8) Set(v int) { r.value = uint8(v & 0xFF) }

// Signed returns the two's-complement interpretation of the register.
func (r *Register8) Signed() int8 { return ToSigned(r.value) }

// SetSigned normalizes a signed input via two's complement before storing.
func (r *Register8) SetSigned(v int8) { r.value = ToUnsigned(v) }

// Register16 is the 16-bit program counter. Writes mask to 16 bits.
type Register16 struct {
	value uint16
}

// Value returns the register's contents.
func (r *Register16) Value() uint16 { return r.value }

// Set masks v to 16 bits and stores it.
func (r *Register16) Set(v int) { r.value = uint16(v & 0xFFFF) }
