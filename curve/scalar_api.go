package curve

// Exported helpers built on top of the unexported Scalar/FieldElement
// method sets above, for use by the kangaroo package.

// ScalarFromBytes reduces a 32-byte big-endian value mod n.
func ScalarFromBytes(b [32]byte) Scalar {
	var s Scalar
	s.setB32(b[:])
	return s
}

// Bytes returns the canonical 32-byte big-endian encoding of s.
func (s Scalar) Bytes() [32]byte {
	var out [32]byte
	s.v.FillBytes(out[:])
	return out
}

// Add returns a+b mod n.
func (s Scalar) Add(other Scalar) Scalar {
	var r Scalar
	r.add(&s, &other)
	return r
}

// Sub returns a-b mod n.
func (s Scalar) Sub(other Scalar) Scalar {
	var r Scalar
	r.sub(&s, &other)
	return r
}

// Mul returns a*b mod n.
func (s Scalar) Mul(other Scalar) Scalar {
	var r Scalar
	r.mul(&s, &other)
	return r
}

// IsZero reports whether s == 0.
func (s Scalar) IsZero() bool { return s.isZero() }

// Cmp compares two scalars as unsigned integers mod n.
func (s Scalar) Cmp(other Scalar) int { return s.v.Cmp(&other.v) }

// BitLen returns the number of bits needed to represent s.
func (s Scalar) BitLen() int { return s.v.BitLen() }

// Uint64 exposes a small scalar as a uint64, for shift/mask
// bookkeeping on jump-table exponents. Only valid for values that fit.
func (s Scalar) Uint64() uint64 { return s.v.Uint64() }

// ScalarFromUint64 builds a scalar from a small integer.
func ScalarFromUint64(v uint64) Scalar {
	var s Scalar
	s.setInt(v)
	return s
}

// Lsh returns (s << n) mod n, the curve order; for shifts that stay
// below the order's bit width this is the plain shifted value.
func (s Scalar) Lsh(n uint) Scalar {
	var r Scalar
	r.v.Lsh(&s.v, n)
	r.v.Mod(&r.v, curveOrder)
	return r
}
