package mem

import "testing"

func TestAddrStartsUnoffset(t *testing.T) {
	a := NewAddr(0x1234)
	if a.Raw() != 0x1234 || a.Relative() != 0x1234 {
		t.Fatalf("fresh addr got raw %04X rel %04X, want both 1234", a.Raw(), a.Relative())
	}
	if a.Offset() != 0 {
		t.Fatalf("fresh addr offset got %04X want 0", a.Offset())
	}
}

func TestAddrOffsetBy(t *testing.T) {
	a := NewAddr(0x9FFF).OffsetBy(0x8000)
	if a.Raw() != 0x9FFF {
		t.Fatalf("raw changed by offsetting: got %04X", a.Raw())
	}
	if a.Relative() != 0x1FFF {
		t.Fatalf("relative got %04X want 1FFF", a.Relative())
	}
	if a.Offset() != 0x8000 {
		t.Fatalf("offset got %04X want 8000", a.Offset())
	}

	// Offsets applied by nested devices accumulate.
	a = a.OffsetBy(0x1000)
	if a.Relative() != 0x0FFF || a.Offset() != 0x9000 {
		t.Fatalf("compound offset: rel %04X offset %04X, want 0FFF/9000", a.Relative(), a.Offset())
	}
}

func TestAddrOffsetByUnderflowPanics(t *testing.T) {
	mustPanic(t, "offset past window start", func() {
		NewAddr(0x0010).OffsetBy(0x0020)
	})
}
