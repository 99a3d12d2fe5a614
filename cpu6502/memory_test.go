package cpu6502

import "testing"

func TestMemorySizeIsFull64KiB(t *testing.T) {
	if MemorySize != 0x10000 {
		t.Errorf("MemorySize = %#x, want 0x10000", MemorySize)
	}
}

func TestMemoryReadWriteByte(t *testing.T) {
	m := NewMemory()
	m.WriteByte(0x1234, 0x42)
	if got := m.ReadByte(0x1234); got != 0x42 {
		t.Errorf("ReadByte(0x1234) = %#02x, want 0x42", got)
	}
}

func TestMemoryReadWriteWord(t *testing.T) {
	m := NewMemory()
	m.WriteWord(0x0000, 0x1234)
	if got := m.ReadByte(0x0000); got != 0x34 {
		t.Errorf("low byte = %#02x, want 0x34", got)
	}
	if got := m.ReadByte(0x0001); got != 0x12 {
		t.Errorf("high byte = %#02x, want 0x12", got)
	}
	if got := m.ReadWord(0x0000); got != 0x1234 {
		t.Errorf("ReadWord(0x0000) = %#04x, want 0x1234", got)
	}
}

func TestMemoryReadWordWrapsAtTopOfAddressSpace(t *testing.T) {
	m := NewMemory()
	m.WriteByte(0xFFFF, 0xAD)
	m.WriteByte(0x0000, 0xDE)
	if got := m.ReadWord(0xFFFF); got != 0xDEAD {
		t.Errorf("ReadWord(0xffff) = %#04x, want 0xdead", got)
	}
}

func TestMemoryLoadBoundsChecked(t *testing.T) {
	m := NewMemory()
	if err := m.Load(0xFFFE, []byte{1, 2, 3}); err == nil {
		t.Error("expected error loading past end of memory")
	}
	if err := m.Load(-1, []byte{1}); err == nil {
		t.Error("expected error loading at negative address")
	}
	if err := m.Load(0x0200, []byte{0xAA, 0xBB}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ReadByte(0x0200) != 0xAA || m.ReadByte(0x0201) != 0xBB {
		t.Error("Load did not copy bytes correctly")
	}
}

func TestMemoryReadRange(t *testing.T) {
	m := NewMemory()
	m.Load(0x0000, []byte{1, 2, 3, 4})
	got, err := m.ReadRange(0x0001, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ReadRange()[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	if _, err := m.ReadRange(0xFFFF, 2); err == nil {
		t.Error("expected error reading past end of memory")
	}
}

func TestMemoryZero(t *testing.T) {
	m := NewMemory()
	m.WriteByte(0x1000, 0xFF)
	m.Zero()
	if m.ReadByte(0x1000) != 0 {
		t.Error("Zero() did not clear memory")
	}
}
