package cpu6502

// StatusFlag is a single bit of the packed status register: N V - B D I Z C.
type StatusFlag uint8

const (
	FlagC StatusFlag = 1 << iota // Carry
	FlagZ                        // Zero
	FlagI                        // Interrupt disable
	FlagD                        // Decimal mode (unused by the ALU)
	FlagB                        // Break
	flagUnused                   // bit 5, always 1
	FlagV                        // Overflow
	FlagN                        // Negative
)

// StatusRegister is the packed 8-bit processor status byte.
type StatusRegister struct {
	value uint8
}

// NewStatusRegister returns a status register with only bit 5 set, the
// reset-time value.
func NewStatusRegister() StatusRegister {
	return StatusRegister{value: uint8(flagUnused)}
}

// Get returns 0 or 1 depending on whether f is set.
func (s *StatusRegister) Get(f StatusFlag) uint8 {
	if s.value&uint8(f) != 0 {
		return 1
	}
	return 0
}

// Set sets or clears f.
func (s *StatusRegister) Set(f StatusFlag, on bool) {
	if on {
		s.value |= uint8(f)
	} else {
		s.value &^= uint8(f)
	}
	s.value |= uint8(flagUnused)
}

// Packed returns the full status byte, bit 5 always 1.
func (s *StatusRegister) Packed() uint8 {
	return s.value | uint8(flagUnused)
}

// SetPacked replaces the whole status byte, forcing bit 5 back to 1.
func (s *StatusRegister) SetPacked(v uint8) {
	s.value = v | uint8(flagUnused)
}
