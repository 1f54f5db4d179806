// Package curve implements secp256k1 field, scalar, and point arithmetic.
package curve

import (
	"crypto/subtle"
	"math/big"
)

// fieldPrime is p = 2^256 - 2^32 - 977.
var fieldPrime, _ = new(big.Int).SetString(
	"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F", 16)

// FieldElement is an element of GF(p), always held fully reduced.
//
// The teacher library represented field elements as five 52-bit limbs
// with a lazy normalize/magnitude scheme; its wide-multiply reduction
// and inverse/sqrt addition chains were left as incomplete placeholders
// (see field_mul.go in the original). Correctness here matters more than
// shaving a multiply, so the internal representation is a canonically
// reduced math/big.Int instead, behind the same method surface.
type FieldElement struct {
	v big.Int
}

// NewFieldElement returns the zero element.
func NewFieldElement() *FieldElement {
	return &FieldElement{}
}

func feFromBig(x *big.Int) *FieldElement {
	fe := &FieldElement{}
	fe.v.Mod(x, fieldPrime)
	return fe
}

// setB32 loads a 32-byte big-endian value, reducing mod p. Returns false
// if the input already exceeded p before reduction (teacher convention:
// setB32 reports overflow via a bool instead of panicking).
func (fe *FieldElement) setB32(b []byte) bool {
	x := new(big.Int).SetBytes(b)
	overflow := x.Cmp(fieldPrime) >= 0
	fe.v.Mod(x, fieldPrime)
	return !overflow
}

// getB32 writes the canonical 32-byte big-endian encoding into b.
func (fe *FieldElement) getB32(b []byte) {
	for i := range b {
		b[i] = 0
	}
	fe.v.FillBytes(b)
}

func (fe *FieldElement) setInt(v uint64) {
	fe.v.SetUint64(v)
}

func (fe *FieldElement) normalize() { fe.v.Mod(&fe.v, fieldPrime) }
func (fe *FieldElement) normalizeWeak() {}

func (fe *FieldElement) isZero() bool {
	return fe.v.Sign() == 0
}

func (fe *FieldElement) isOdd() bool {
	return fe.v.Bit(0) == 1
}

// equal performs a constant-time comparison of the canonical encodings.
func (fe *FieldElement) equal(other *FieldElement) bool {
	var a, b [32]byte
	fe.getB32(a[:])
	other.getB32(b[:])
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}

func (r *FieldElement) add(a, b *FieldElement) *FieldElement {
	r.v.Add(&a.v, &b.v)
	r.v.Mod(&r.v, fieldPrime)
	return r
}

func (r *FieldElement) sub(a, b *FieldElement) *FieldElement {
	r.v.Sub(&a.v, &b.v)
	r.v.Mod(&r.v, fieldPrime)
	return r
}

func (r *FieldElement) mul(a, b *FieldElement) *FieldElement {
	r.v.Mul(&a.v, &b.v)
	r.v.Mod(&r.v, fieldPrime)
	return r
}

func (r *FieldElement) sqr(a *FieldElement) *FieldElement {
	return r.mul(a, a)
}

func (r *FieldElement) mulInt(a *FieldElement, m uint64) *FieldElement {
	r.v.Mul(&a.v, new(big.Int).SetUint64(m))
	r.v.Mod(&r.v, fieldPrime)
	return r
}

// negate computes r = -a mod p. The magnitude parameter m is accepted
// for API compatibility with the teacher's lazy-magnitude scheme but is
// unused since this representation is always normalized.
func (r *FieldElement) negate(a *FieldElement, m int) *FieldElement {
	r.v.Sub(fieldPrime, &a.v)
	r.v.Mod(&r.v, fieldPrime)
	return r
}

// inv computes the modular inverse of a via Fermat's little theorem,
// a^(p-2) mod p. math/big.Int.Exp is used rather than porting the
// teacher's truncated addition chain (see field_mul.go::inv), which
// never completed the full ladder to p-2.
func (r *FieldElement) inv(a *FieldElement) *FieldElement {
	exp := new(big.Int).Sub(fieldPrime, big.NewInt(2))
	r.v.Exp(&a.v, exp, fieldPrime)
	return r
}

// sqrt computes a square root of a, using the p ≡ 3 (mod 4) shortcut
// a^((p+1)/4). Returns false if a is not a quadratic residue (result
// is then undefined, matching the teacher's setXOVar contract).
func (r *FieldElement) sqrt(a *FieldElement) bool {
	exp := new(big.Int).Add(fieldPrime, big.NewInt(1))
	exp.Rsh(exp, 2)
	r.v.Exp(&a.v, exp, fieldPrime)

	var check FieldElement
	check.sqr(r)
	return check.equal(a)
}

func (r *FieldElement) cmov(a *FieldElement, flag bool) {
	if flag {
		r.v.Set(&a.v)
	}
}

func (fe *FieldElement) clear() {
	fe.v.SetInt64(0)
}

// half computes r = a/2 mod p.
func (r *FieldElement) half(a *FieldElement) *FieldElement {
	inv2 := new(big.Int).ModInverse(big.NewInt(2), fieldPrime)
	r.v.Mul(&a.v, inv2)
	r.v.Mod(&r.v, fieldPrime)
	return r
}

// FieldElementOne and FieldElementZero mirror the teacher's package
// level singletons for the multiplicative/additive identities.
var (
	FieldElementZero = NewFieldElement()
	FieldElementOne  = func() *FieldElement { fe := NewFieldElement(); fe.setInt(1); return fe }()
)
