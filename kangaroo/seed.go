package kangaroo

import (
	"io"

	"secp256kangaroo.dev/curve"
)

// randScalar draws a uniform scalar in [0, 2^rangeBits) from r. The
// reader is an explicit capability rather than a package-level default
// (teacher convention in ECSeckeyGenerate reads crypto/rand directly;
// generalized here per the design note that tests should be able to
// inject a reproducible reader instead of depending on a process-wide
// RNG).
func randScalar(r io.Reader, rangeBits uint32) (curve.Scalar, error) {
	nbytes := (rangeBits + 7) / 8
	buf := make([]byte, nbytes)
	if _, err := io.ReadFull(r, buf); err != nil {
		return curve.Scalar{}, err
	}
	// Mask off any bits above rangeBits in the top byte.
	excess := nbytes*8 - rangeBits
	if excess > 0 {
		buf[0] &= byte(0xFF >> excess)
	}
	var full [32]byte
	copy(full[32-len(buf):], buf)
	return curve.ScalarFromBytes(full), nil
}

// SeedTame creates a tame kangaroo at start*G + distance*G for a fresh
// random distance in [0, 2^rangeBits).
func SeedTame(id uint32, r io.Reader, start curve.Scalar, rangeBits uint32) (*Kangaroo, error) {
	d, err := randScalar(r, rangeBits)
	if err != nil {
		return nil, err
	}
	total := start.Add(d)
	pos := curve.MulG(&total)
	k := &Kangaroo{ID: id, Herd: Tame, Distance: d}
	k.pos = curve.NewJacobianFromPoint(pos)
	return k, nil
}

// SeedWild creates a wild kangaroo at P + distance*G. index is the
// wild kangaroo's position within its herd (0-based) and is mixed into
// the seed distance so that two wild kangaroos never start at exactly
// the same distance even if the RNG stream repeats a draw (the Open
// Question on per-walker offsets, decided: offset by index * s_0 where
// s_0 is the jump table's smallest jump, before adding the random
// draw). The offset sum is masked back into [0, 2^rangeBits) afterward
// so the seed distance never drifts outside the interval the random
// draw itself is confined to; pos is derived from the masked distance,
// so this is a straightforward re-draw within range rather than a
// correction applied after the fact.
func SeedWild(id uint32, index uint32, r io.Reader, target curve.Point, table *JumpTable, rangeBits uint32) (*Kangaroo, error) {
	d, err := randScalar(r, rangeBits)
	if err != nil {
		return nil, err
	}
	offset := table.Exponents[0].Mul(curve.ScalarFromUint64(uint64(index)))
	d = maskToRangeBits(d.Add(offset), rangeBits)

	pos := curve.AddPoints(target, curve.MulG(&d))
	k := &Kangaroo{ID: id, Herd: Wild, Distance: d}
	k.pos = curve.NewJacobianFromPoint(pos)
	return k, nil
}

// maskToRangeBits truncates s to its low rangeBits bits, the same
// masking randScalar applies to a fresh draw, used here to pull a
// wild kangaroo's offset seed distance back inside [0, 2^rangeBits)
// after index*s_0 is folded in.
func maskToRangeBits(s curve.Scalar, rangeBits uint32) curve.Scalar {
	b := s.Bytes()
	nbytes := (rangeBits + 7) / 8
	for i := 0; i < 32-int(nbytes); i++ {
		b[i] = 0
	}
	excess := nbytes*8 - rangeBits
	if excess > 0 {
		b[32-nbytes] &= byte(0xFF >> excess)
	}
	return curve.ScalarFromBytes(b)
}

// Reseed reassigns a kangaroo a fresh seed position and resets its
// distance, used both for same-herd DP re-seeding (§4.F) and when a
// kangaroo's accumulated distance overflows the reseed-slack threshold
// (§4.G).
func Reseed(k *Kangaroo, r io.Reader, start curve.Scalar, target curve.Point, table *JumpTable, rangeBits uint32, wildIndex uint32) error {
	if k.Herd == Tame {
		fresh, err := SeedTame(k.ID, r, start, rangeBits)
		if err != nil {
			return err
		}
		k.Distance = fresh.Distance
		k.pos = fresh.pos
		return nil
	}
	fresh, err := SeedWild(k.ID, wildIndex, r, target, table, rangeBits)
	if err != nil {
		return err
	}
	k.Distance = fresh.Distance
	k.pos = fresh.pos
	return nil
}
