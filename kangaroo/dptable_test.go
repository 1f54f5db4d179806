package kangaroo

import (
	"testing"

	"github.com/davecgh/go-spew/spew"

	"secp256kangaroo.dev/curve"
)

func TestDPTableInsertNewRecord(t *testing.T) {
	dt := NewDPTable()
	var x [32]byte
	x[0] = 1
	collision, sameHerd := dt.Insert(x, Tame, curve.ScalarFromUint64(5))
	if collision != nil || sameHerd {
		t.Fatalf("first insert of a fresh x should neither collide nor flag same-herd")
	}
	if dt.Len() != 1 {
		t.Fatalf("expected 1 record, got %d", dt.Len())
	}
}

func TestDPTableSameHerdFlagged(t *testing.T) {
	dt := NewDPTable()
	var x [32]byte
	x[0] = 2
	dt.Insert(x, Tame, curve.ScalarFromUint64(5))
	collision, sameHerd := dt.Insert(x, Tame, curve.ScalarFromUint64(9))
	if collision != nil {
		t.Fatalf("same-herd re-hit should not report a collision")
	}
	if !sameHerd {
		t.Fatalf("expected sameHerd true on a repeated tame hit")
	}
}

func TestDPTableOppositeHerdCollision(t *testing.T) {
	dt := NewDPTable()
	var x [32]byte
	x[0] = 3
	dt.Insert(x, Tame, curve.ScalarFromUint64(11))
	collision, sameHerd := dt.Insert(x, Wild, curve.ScalarFromUint64(4))
	if sameHerd {
		t.Fatalf("opposite-herd hit should not report sameHerd")
	}
	if collision == nil {
		t.Fatalf("expected a collision for opposite-herd hit on the same x")
	}
	if collision.TameDistance.Cmp(curve.ScalarFromUint64(11)) != 0 {
		t.Fatalf("collision.TameDistance mismatch:\n%s", spew.Sdump(collision))
	}
	if collision.WildDistance.Cmp(curve.ScalarFromUint64(4)) != 0 {
		t.Fatalf("collision.WildDistance mismatch:\n%s", spew.Sdump(collision))
	}
}
