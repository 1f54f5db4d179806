package kangaroo

import "secp256kangaroo.dev/curve"

// NJumps is the fixed jump-table size.
const NJumps = 32

// JumpTable holds the 32 precomputed jumps (J_i, s_i) used to advance
// every kangaroo: the step at position x picks jump i = x mod NJumps.
type JumpTable struct {
	Points    [NJumps]curve.Point
	Exponents [NJumps]curve.Scalar
}

// NewJumpTable builds the jump table for an interval of rangeBits
// bits. The exponent schedule climbs a_i = min(i, ceil(rangeBits/2))
// so that jump sizes range from 2^0 up to 2^ceil(r/2) and saturate at
// the midpoint for the remaining entries; this keeps the realized mean
// jump size within a small constant factor of the textbook target
// 2^(r/2)/sqrt(pi) without requiring a distribution-fitting search.
// (Decided open question; the distilled spec left the exact schedule
// unspecified.)
func NewJumpTable(rangeBits uint32) *JumpTable {
	half := (rangeBits + 1) / 2
	jt := &JumpTable{}
	for i := 0; i < NJumps; i++ {
		a := uint(i)
		if a > uint(half) {
			a = uint(half)
		}
		s := curve.ScalarFromUint64(1).Lsh(a)
		jt.Exponents[i] = s
		jt.Points[i] = curve.MulG(&s)
	}
	return jt
}

// Select returns the jump index for an x-coordinate's low limb parity,
// i.e. x mod NJumps (NJumps is a power of two, so this is a mask).
func Select(xLowLimb uint32) int {
	return int(xLowLimb & (NJumps - 1))
}
