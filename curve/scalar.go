package curve

import "math/big"

// curveOrder is n, the order of the secp256k1 generator.
var curveOrder, _ = new(big.Int).SetString(
	"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141", 16)

// Scalar is an element of Z/nZ, always held fully reduced.
//
// As with FieldElement, this replaces the teacher's 4x64-limb Scalar
// (scalar.go, whose mul/reduceWide carried the same unverified-reduction
// risk as the field type) with a math/big.Int held mod n.
type Scalar struct {
	v big.Int
}

func NewScalar() *Scalar { return &Scalar{} }

// setB32 reduces a 32-byte big-endian value mod n. Returns false if the
// input was >= n before reduction.
func (s *Scalar) setB32(b []byte) bool {
	x := new(big.Int).SetBytes(b)
	overflow := x.Cmp(curveOrder) >= 0
	s.v.Mod(x, curveOrder)
	return !overflow
}

// setB32Seckey behaves like setB32 but additionally rejects zero, since
// a zero scalar is never a valid private key.
func (s *Scalar) setB32Seckey(b []byte) bool {
	if !s.setB32(b) {
		return false
	}
	return s.v.Sign() != 0
}

func (s *Scalar) getB32(b []byte) {
	for i := range b {
		b[i] = 0
	}
	s.v.FillBytes(b)
}

func (s *Scalar) setInt(v uint64) { s.v.SetUint64(v) }

func (s *Scalar) isZero() bool { return s.v.Sign() == 0 }
func (s *Scalar) isOne() bool  { return s.v.Cmp(big.NewInt(1)) == 0 }
func (s *Scalar) isEven() bool { return s.v.Bit(0) == 0 }

func (s *Scalar) equal(other *Scalar) bool { return s.v.Cmp(&other.v) == 0 }

func (r *Scalar) add(a, b *Scalar) *Scalar {
	r.v.Add(&a.v, &b.v)
	r.v.Mod(&r.v, curveOrder)
	return r
}

func (r *Scalar) sub(a, b *Scalar) *Scalar {
	r.v.Sub(&a.v, &b.v)
	r.v.Mod(&r.v, curveOrder)
	return r
}

func (r *Scalar) mul(a, b *Scalar) *Scalar {
	r.v.Mul(&a.v, &b.v)
	r.v.Mod(&r.v, curveOrder)
	return r
}

func (r *Scalar) negate(a *Scalar) *Scalar {
	r.v.Sub(curveOrder, &a.v)
	r.v.Mod(&r.v, curveOrder)
	return r
}

func (r *Scalar) inverse(a *Scalar) *Scalar {
	r.v.ModInverse(&a.v, curveOrder)
	return r
}

// getBits returns count bits starting at bit offset, where offset 0 is
// the least significant bit; ec_mul_g walks it from offset 255 down.
func (s *Scalar) getBits(offset, count uint) uint32 {
	var out uint32
	for i := uint(0); i < count; i++ {
		if s.v.Bit(int(offset + i)) == 1 {
			out |= 1 << i
		}
	}
	return out
}

func (s *Scalar) cmov(a *Scalar, flag bool) {
	if flag {
		s.v.Set(&a.v)
	}
}

func (s *Scalar) clear() { s.v.SetInt64(0) }

var (
	ScalarZero = NewScalar()
	ScalarOne  = func() *Scalar { s := NewScalar(); s.setInt(1); return s }()
)
