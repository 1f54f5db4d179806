package limbs

import "testing"

func TestLimbsToBEBytesValue(t *testing.T) {
	var l [8]uint32
	l[0] = 0x01020304
	b := LimbsToBEBytes(l)
	want := [4]byte{0x01, 0x02, 0x03, 0x04}
	if [4]byte{b[28], b[29], b[30], b[31]} != want {
		t.Fatalf("limb[0] should land in the last 4 big-endian bytes, got %x", b[28:32])
	}
}

func TestLimbsToBEBytesRoundTrip(t *testing.T) {
	var l [8]uint32
	for i := range l {
		l[i] = uint32(i)*0x01010101 + 1
	}
	b := LimbsToBEBytes(l)
	back := BEBytesToLimbs(b)
	if back != l {
		t.Fatalf("round trip mismatch: got %v want %v", back, l)
	}
}

func TestLEBytesToLimbsRoundTrip(t *testing.T) {
	var l [8]uint32
	for i := range l {
		l[i] = uint32(i)*0x01010101 + 1
	}
	b := LimbsToLEBytes(l)
	back := LEBytesToLimbs(b)
	if back != l {
		t.Fatalf("round trip mismatch: got %v want %v", back, l)
	}
}

func TestLimbsToLEBytesValue(t *testing.T) {
	var l [8]uint32
	l[0] = 0x01020304
	b := LimbsToLEBytes(l)
	want := [4]byte{0x04, 0x03, 0x02, 0x01}
	if [4]byte{b[0], b[1], b[2], b[3]} != want {
		t.Fatalf("limb[0] should land in the first 4 little-endian bytes, got %x", b[0:4])
	}
}

func TestScalarBEToLimbs(t *testing.T) {
	var b [32]byte
	b[31] = 0x2a
	got := ScalarBEToLimbs(b)
	want := BEBytesToLimbs(b)
	if got != want {
		t.Fatalf("ScalarBEToLimbs should alias BEBytesToLimbs")
	}
}

func TestNegateBEZero(t *testing.T) {
	var zero [32]byte
	neg := NegateBE(zero)
	if neg != zero {
		t.Fatalf("negate(0) should be 0, got %x", neg)
	}
}

func TestNegateBEOne(t *testing.T) {
	var one [32]byte
	one[31] = 1
	neg := NegateBE(one)
	var allFF [32]byte
	for i := range allFF {
		allFF[i] = 0xFF
	}
	if neg != allFF {
		t.Fatalf("negate(1) should be all-0xFF, got %x", neg)
	}
}

func TestNegateBEInvolution(t *testing.T) {
	var v [32]byte
	v[0] = 0x12
	v[31] = 0x34
	back := NegateBE(NegateBE(v))
	if back != v {
		t.Fatalf("negate(negate(x)) != x")
	}
}

func TestDPMask8(t *testing.T) {
	mask := DPMask(8)
	want := [8]uint32{0xFF, 0, 0, 0, 0, 0, 0, 0}
	if mask != want {
		t.Fatalf("DPMask(8) = %v, want %v", mask, want)
	}
}

func TestDPMask32(t *testing.T) {
	mask := DPMask(32)
	want := [8]uint32{0xFFFFFFFF, 0, 0, 0, 0, 0, 0, 0}
	if mask != want {
		t.Fatalf("DPMask(32) = %v, want %v", mask, want)
	}
}

func TestDPMask40(t *testing.T) {
	mask := DPMask(40)
	want := [8]uint32{0xFFFFFFFF, 0xFF, 0, 0, 0, 0, 0, 0}
	if mask != want {
		t.Fatalf("DPMask(40) = %v, want %v", mask, want)
	}
}

func TestIsDistinguished(t *testing.T) {
	mask := DPMask(8)
	clear := [8]uint32{0xFFFFFF00, 0, 0, 0, 0, 0, 0, 0}
	if !IsDistinguished(clear, mask) {
		t.Fatalf("x with low byte zero should be distinguished under an 8-bit mask")
	}
	notClear := [8]uint32{0xFFFFFF01, 0, 0, 0, 0, 0, 0, 0}
	if IsDistinguished(notClear, mask) {
		t.Fatalf("x with low byte nonzero should not be distinguished under an 8-bit mask")
	}
}
