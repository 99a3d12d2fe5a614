package cpu6502

import "testing"

func TestRegister8MasksToByte(t *testing.T) {
	tests := []struct {
		in   int
		want uint8
	}{
		{0x00, 0x00},
		{0xFF, 0xFF},
		{0x100, 0x00},
		{0x1FF, 0xFF},
		{-1, 0xFF},
	}
	var r Register8
	for _, test := range tests {
		r.Set(test.in)
		if got := r.Value(); got != test.want {
			t.Errorf("Set(%#x).Value() = %#02x, want %#02x", test.in, got, test.want)
		}
	}
}

func TestRegister16MasksToWord(t *testing.T) {
	var r Register16
	r.Set(0x10000)
	if got := r.Value(); got != 0x0000 {
		t.Errorf("Set(0x10000).Value() = %#04x, want 0x0000", got)
	}
	r.Set(0x1234)
	if got := r.Value(); got != 0x1234 {
		t.Errorf("Set(0x1234).Value() = %#04x, want 0x1234", got)
	}
}

func TestRegister8SignedRoundTrip(t *testing.T) {
	var r Register8
	r.SetSigned(-1)
	if got := r.Value(); got != 0xFF {
		t.Errorf("SetSigned(-1).Value() = %#02x, want 0xff", got)
	}
	if got := r.Signed(); got != -1 {
		t.Errorf("Signed() = %d, want -1", got)
	}
}
