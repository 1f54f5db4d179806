package kangaroo

import (
	"testing"

	"secp256kangaroo.dev/curve"
)

func TestJumpTableSize(t *testing.T) {
	jt := NewJumpTable(32)
	if len(jt.Points) != NJumps || len(jt.Exponents) != NJumps {
		t.Fatalf("expected %d jump entries, got %d/%d", NJumps, len(jt.Points), len(jt.Exponents))
	}
}

func TestJumpTableEntriesMatchExponent(t *testing.T) {
	jt := NewJumpTable(32)
	for i, s := range jt.Exponents {
		want := curve.MulG(&s)
		got := jt.Points[i]
		if got.X != want.X || got.Y != want.Y {
			t.Fatalf("jump entry %d: point does not equal exponent*G", i)
		}
	}
}

func TestSelectIsMaskOfNJumps(t *testing.T) {
	for i := uint32(0); i < 64; i++ {
		idx := Select(i)
		if idx < 0 || idx >= NJumps {
			t.Fatalf("Select(%d) = %d out of range", i, idx)
		}
		if idx != int(i%NJumps) {
			t.Fatalf("Select(%d) = %d, want %d", i, idx, i%NJumps)
		}
	}
}
