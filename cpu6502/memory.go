package cpu6502

import "github.com/pkg/errors"

// MemorySize is the full 64 KiB address space of a 6502. (The Python
// reference this core was ported from shipped a Memory.SIZE of 0x1900,
// commented "64 KB" but 6400 decimal; its own test asserted 0x10000. This
// is the true size.)
const MemorySize = 0x10000

// Memory is a flat, byte-addressable 64 KiB store. Every address in range
// is always readable; writes wrap their value to 8 bits.
type Memory struct {
	data [MemorySize]byte
}

// NewMemory returns a zero-filled 64 KiB memory.
func NewMemory() *Memory {
	return &Memory{}
}

// ReadByte reads the byte at addr. addr is a uint16, so it is always in
// range by construction.
func (m *Memory) ReadByte(addr uint16) uint8 {
	return m.data[addr]
}

// WriteByte stores v&0xFF at addr.
func (m *Memory) WriteByte(addr uint16, v uint8) {
	m.data[addr] = v
}

// ReadWord reads a little-endian word starting at addr. Per 6502 behavior,
// a read at addr=0xFFFF wraps its high byte to address 0x0000 — Go's
// uint16 addition already wraps modulo 65536, so this falls out for free.
func (m *Memory) ReadWord(addr uint16) uint16 {
	lo := m.data[addr]
	hi := m.data[addr+1]
	return uint16(hi)<<8 | uint16(lo)
}

// WriteWord stores v as a little-endian word starting at addr, with the
// same wraparound behavior as ReadWord.
func (m *Memory) WriteWord(addr uint16, v uint16) {
	m.data[addr] = byte(v)
	m.data[addr+1] = byte(v >> 8)
}

// Load bulk-copies data into memory starting at address. address is an
// int (rather than uint16) because callers of this external interface —
// the debugger's `load`/`file` commands — parse it from text and may hand
// in something out of range; that is exactly the case this validates.
func (m *Memory) Load(address int, data []byte) error {
	if address < 0 || address+len(data) > MemorySize {
		return errors.Wrapf(ErrAddressOutOfRange, "load at %#x, %d bytes", address, len(data))
	}
	copy(m.data[address:], data)
	return nil
}

// ReadRange returns a copy of the bytes in [address, address+length), for
// display/inspection callers that, like Load, work from unchecked ints.
func (m *Memory) ReadRange(address, length int) ([]byte, error) {
	if address < 0 || length < 0 || address+length > MemorySize {
		return nil, errors.Wrapf(ErrAddressOutOfRange, "read %d bytes at %#x", length, address)
	}
	out := make([]byte, length)
	copy(out, m.data[address:address+length])
	return out, nil
}

// Zero fills memory with 0x00. Used by Reset.
func (m *Memory) Zero() {
	for i := range m.data {
		m.data[i] = 0
	}
}
