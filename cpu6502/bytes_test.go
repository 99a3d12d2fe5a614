package cpu6502

import "testing"

func TestToSignedRoundTrip(t *testing.T) {
	for n := 0; n <= 255; n++ {
		u := uint8(n)
		if got := ToUnsigned(ToSigned(u)); got != u {
			t.Errorf("ToUnsigned(ToSigned(%d)) = %d, want %d", u, got, u)
		}
	}
}

func TestToUnsignedRoundTrip(t *testing.T) {
	for n := -128; n <= 127; n++ {
		s := int8(n)
		if got := ToSigned(ToUnsigned(s)); got != s {
			t.Errorf("ToSigned(ToUnsigned(%d)) = %d, want %d", s, got, s)
		}
	}
}

func TestToSignedCheckedOutOfRange(t *testing.T) {
	if _, err := ToSignedChecked(256); err == nil {
		t.Error("expected error for 256")
	}
	if _, err := ToSignedChecked(-1); err == nil {
		t.Error("expected error for -1")
	}
}

func TestToUnsignedCheckedOutOfRange(t *testing.T) {
	if _, err := ToUnsignedChecked(128); err == nil {
		t.Error("expected error for 128")
	}
	if _, err := ToUnsignedChecked(-129); err == nil {
		t.Error("expected error for -129")
	}
}
