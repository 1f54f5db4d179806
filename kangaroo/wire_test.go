package kangaroo

import (
	"bytes"
	"testing"

	"secp256kangaroo.dev/curve"
)

func TestKangarooStateRoundTrip(t *testing.T) {
	r := bytes.NewReader(bytes.Repeat([]byte{0x11}, 64))
	start := curve.ScalarFromUint64(1 << 10)
	k, err := SeedTame(0, r, start, 24)
	if err != nil {
		t.Fatalf("SeedTame: %v", err)
	}

	st := ToKangarooState(k)

	var back Kangaroo
	back.ID = k.ID
	back.Herd = k.Herd
	LoadKangarooState(&back, st)

	if back.Position() != k.Position() {
		t.Fatalf("position mismatch after KangarooState round trip")
	}
	if back.Distance.Cmp(k.Distance) != 0 {
		t.Fatalf("distance mismatch after KangarooState round trip")
	}
}

func TestKangarooStateByteRoundTrip(t *testing.T) {
	r := bytes.NewReader(bytes.Repeat([]byte{0x22}, 64))
	start := curve.ScalarFromUint64(42)
	k, err := SeedTame(1, r, start, 24)
	if err != nil {
		t.Fatalf("SeedTame: %v", err)
	}

	st := ToKangarooState(k)
	wire := MarshalKangarooState(st)
	back := UnmarshalKangarooState(wire)

	if back != st {
		t.Fatalf("byte round trip mismatch: got %+v want %+v", back, st)
	}
}

func TestJumpEntryRoundTrip(t *testing.T) {
	table := NewJumpTable(32)
	entries := table.ToJumpEntries()

	for i, e := range entries {
		gotPoint := JumpEntryPoint(e)
		if gotPoint != table.Points[i] {
			t.Fatalf("jump %d: point mismatch after JumpEntry round trip", i)
		}
		gotScalar := JumpEntryScalar(e)
		if gotScalar.Cmp(table.Exponents[i]) != 0 {
			t.Fatalf("jump %d: exponent mismatch after JumpEntry round trip", i)
		}
	}
}

func TestJumpEntryByteRoundTrip(t *testing.T) {
	table := NewJumpTable(16)
	entries := table.ToJumpEntries()

	for i, e := range entries {
		wire := MarshalJumpEntry(e)
		back := UnmarshalJumpEntry(wire)
		if back != e {
			t.Fatalf("jump %d: byte round trip mismatch: got %+v want %+v", i, back, e)
		}
	}
}

func TestDPOutputBufferHarvestsWithinCapacity(t *testing.T) {
	buf := NewDPOutputBuffer(4)
	for i := uint32(0); i < 4; i++ {
		buf.Push(DPOutputRecord{ID: i})
	}
	got := buf.Harvested()
	if len(got) != 4 {
		t.Fatalf("expected 4 harvested records, got %d", len(got))
	}
	seen := map[uint32]bool{}
	for _, rec := range got {
		seen[rec.ID] = true
	}
	for i := uint32(0); i < 4; i++ {
		if !seen[i] {
			t.Fatalf("missing record with ID %d", i)
		}
	}
}

func TestDPOutputBufferClampsOverflow(t *testing.T) {
	buf := NewDPOutputBuffer(2)
	for i := uint32(0); i < 5; i++ {
		buf.Push(DPOutputRecord{ID: i})
	}
	got := buf.Harvested()
	if len(got) != 2 {
		t.Fatalf("expected overflow to clamp to buffer capacity 2, got %d", len(got))
	}
}
