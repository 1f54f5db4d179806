package curve

import "encoding/hex"

// GroupElementAffine is a point on secp256k1 in affine coordinates.
type GroupElementAffine struct {
	x, y     FieldElement
	infinity bool
}

// GroupElementJacobian is a point on secp256k1 in Jacobian coordinates.
type GroupElementJacobian struct {
	x, y, z  FieldElement
	infinity bool
}

// Point is the exported affine point type used at package boundaries
// (parse_pubkey / verify_key / ec_mul_g results).
type Point struct {
	X, Y     [32]byte
	Infinity bool
}

func (p *GroupElementAffine) toPoint() Point {
	var out Point
	out.Infinity = p.infinity
	p.x.getB32(out.X[:])
	p.y.getB32(out.Y[:])
	return out
}

func pointToAffine(p Point) *GroupElementAffine {
	ge := &GroupElementAffine{infinity: p.Infinity}
	ge.x.setB32(p.X[:])
	ge.y.setB32(p.Y[:])
	return ge
}

// curveB is the secp256k1 curve constant b in y^2 = x^3 + b.
var curveB = func() *FieldElement { fe := NewFieldElement(); fe.setInt(7); return fe }()

// Generator is secp256k1's base point G.
var (
	GeneratorX *FieldElement
	GeneratorY *FieldElement
	Generator  GroupElementAffine
)

func init() {
	GeneratorX = NewFieldElement()
	GeneratorX.setB32(mustHex("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798"))
	GeneratorY = NewFieldElement()
	GeneratorY.setB32(mustHex("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8"))
	Generator.x = *GeneratorX
	Generator.y = *GeneratorY
	Generator.infinity = false
}

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("curve: invalid hex constant: " + err.Error())
	}
	return b
}

func (a *GroupElementAffine) isInfinity() bool { return a.infinity }

func (a *GroupElementAffine) setInfinity() {
	a.infinity = true
	a.x.clear()
	a.y.clear()
}

// setXY sets the affine point to the given coordinates.
func (a *GroupElementAffine) setXY(x, y *FieldElement) {
	a.x = *x
	a.y = *y
	a.infinity = false
}

// setXOVar recovers y from x and the desired oddness, using the curve
// equation y^2 = x^3 + 7 and the field square root.
func (a *GroupElementAffine) setXOVar(x *FieldElement, odd bool) bool {
	var x2, x3, rhs FieldElement
	x2.sqr(x)
	x3.mul(&x2, x)
	rhs.add(&x3, curveB)

	var y FieldElement
	if !y.sqrt(&rhs) {
		return false
	}
	if y.isOdd() != odd {
		y.negate(&y, 1)
	}
	a.x = *x
	a.y = y
	a.infinity = false
	return true
}

// isValid checks the curve equation y^2 = x^3 + 7.
func (a *GroupElementAffine) isValid() bool {
	if a.infinity {
		return false
	}
	var y2, x2, x3, rhs FieldElement
	y2.sqr(&a.y)
	x2.sqr(&a.x)
	x3.mul(&x2, &a.x)
	rhs.add(&x3, curveB)
	return y2.equal(&rhs)
}

func (a *GroupElementAffine) negate(b *GroupElementAffine) {
	a.x = b.x
	a.infinity = b.infinity
	a.y.negate(&b.y, 1)
}

func (a *GroupElementAffine) equal(b *GroupElementAffine) bool {
	if a.infinity || b.infinity {
		return a.infinity == b.infinity
	}
	return a.x.equal(&b.x) && a.y.equal(&b.y)
}

func (a *GroupElementAffine) toBytes(out []byte) {
	if a.infinity {
		for i := range out {
			out[i] = 0
		}
		return
	}
	a.x.getB32(out[0:32])
	a.y.getB32(out[32:64])
}

func (a *GroupElementAffine) fromBytes(in []byte) {
	allZero := true
	for _, b := range in[:64] {
		if b != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		a.setInfinity()
		return
	}
	a.x.setB32(in[0:32])
	a.y.setB32(in[32:64])
	a.infinity = false
}

func (a *GroupElementJacobian) setInfinity() {
	a.infinity = true
	a.x.clear()
	a.y.clear()
	a.z.clear()
}

func (a *GroupElementJacobian) isInfinity() bool { return a.infinity }

// setGE lifts an affine point into Jacobian coordinates (z=1).
func (a *GroupElementJacobian) setGE(ge *GroupElementAffine) {
	a.infinity = ge.infinity
	a.x = ge.x
	a.y = ge.y
	a.z = *FieldElementOne
}

// setGEJ projects a Jacobian point back to affine, performing exactly
// one field inversion. Faithful to secp256k1_ge_set_gej_var.
func (r *GroupElementAffine) setGEJ(a *GroupElementJacobian) {
	if a.infinity {
		r.setInfinity()
		return
	}
	var zInv, zInv2, zInv3 FieldElement
	zInv.inv(&a.z)
	zInv2.sqr(&zInv)
	zInv3.mul(&zInv2, &zInv)

	r.x.mul(&a.x, &zInv2)
	r.y.mul(&a.y, &zInv3)
	r.infinity = false
}

func (a *GroupElementJacobian) negate(b *GroupElementJacobian) {
	a.x = b.x
	a.z = b.z
	a.infinity = b.infinity
	a.y.negate(&b.y, 1)
}

// double computes r = 2*a, a faithful port of secp256k1_gej_double.
func (r *GroupElementJacobian) double(a *GroupElementJacobian) *GroupElementJacobian {
	if a.infinity {
		r.setInfinity()
		return r
	}

	var l, s, t FieldElement

	// l = 3/2 * x1^2
	l.sqr(&a.x)
	l.mulInt(&l, 3)
	var half FieldElement
	half.half(&l)
	l = half

	// s = y1^2
	s.sqr(&a.y)
	// t = -x1*s
	t.mul(&a.x, &s)
	t.negate(&t, 1)

	// x3 = l^2 + 2t
	var x3 FieldElement
	x3.sqr(&l)
	var twoT FieldElement
	twoT.mulInt(&t, 2)
	x3.add(&x3, &twoT)

	// y3 = -(l*(x3+t) + s^2)
	var y3, sum, s2 FieldElement
	sum.add(&x3, &t)
	y3.mul(&l, &sum)
	s2.sqr(&s)
	y3.add(&y3, &s2)
	y3.negate(&y3, 1)

	// z3 = y1*z1
	var z3 FieldElement
	z3.mul(&a.y, &a.z)

	r.x = x3
	r.y = y3
	r.z = z3
	r.infinity = false
	return r
}

// addVar computes r = a+b for two Jacobian points, a faithful port of
// secp256k1_gej_add_var.
func (r *GroupElementJacobian) addVar(a, b *GroupElementJacobian) *GroupElementJacobian {
	if a.infinity {
		*r = *b
		return r
	}
	if b.infinity {
		*r = *a
		return r
	}

	var z22, z12, u1, u2, s1, s2 FieldElement
	z22.sqr(&b.z)
	z12.sqr(&a.z)
	u1.mul(&a.x, &z22)
	u2.mul(&b.x, &z12)

	var z23, z13 FieldElement
	z23.mul(&z22, &b.z)
	z13.mul(&z12, &a.z)
	s1.mul(&a.y, &z23)
	s2.mul(&b.y, &z13)

	if u1.equal(&u2) {
		if !s1.equal(&s2) {
			r.setInfinity()
			return r
		}
		r.double(a)
		return r
	}

	var h, i FieldElement
	h.sub(&u2, &u1)
	i.sub(&s2, &s1)

	var h2, h3, t FieldElement
	h2.sqr(&h)
	h3.mul(&h2, &h)
	t.mul(&u1, &h2)

	var x3 FieldElement
	x3.sqr(&i)
	x3.sub(&x3, &h3)
	var twoT FieldElement
	twoT.mulInt(&t, 2)
	x3.sub(&x3, &twoT)

	var y3, tMinusX3, s1h3 FieldElement
	tMinusX3.sub(&t, &x3)
	y3.mul(&i, &tMinusX3)
	s1h3.mul(&s1, &h3)
	y3.sub(&y3, &s1h3)

	var z3 FieldElement
	z3.mul(&a.z, &b.z)
	z3.mul(&z3, &h)

	r.x = x3
	r.y = y3
	r.z = z3
	r.infinity = false
	return r
}

// addGE computes r = a+b where b is affine, a faithful port of
// secp256k1_gej_add_ge_var.
func (r *GroupElementJacobian) addGE(a *GroupElementJacobian, b *GroupElementAffine) *GroupElementJacobian {
	if b.infinity {
		*r = *a
		return r
	}
	if a.infinity {
		r.setGE(b)
		return r
	}

	var z12, u2, s2 FieldElement
	z12.sqr(&a.z)
	u2.mul(&b.x, &z12)
	var z13 FieldElement
	z13.mul(&z12, &a.z)
	s2.mul(&b.y, &z13)

	if a.x.equal(&u2) {
		if !a.y.equal(&s2) {
			r.setInfinity()
			return r
		}
		r.double(a)
		return r
	}

	var h, i FieldElement
	h.sub(&u2, &a.x)
	i.sub(&s2, &a.y)

	var h2, h3, t FieldElement
	h2.sqr(&h)
	h3.mul(&h2, &h)
	t.mul(&a.x, &h2)

	var x3 FieldElement
	x3.sqr(&i)
	x3.sub(&x3, &h3)
	var twoT FieldElement
	twoT.mulInt(&t, 2)
	x3.sub(&x3, &twoT)

	var y3, tMinusX3, s1h3 FieldElement
	tMinusX3.sub(&t, &x3)
	y3.mul(&i, &tMinusX3)
	s1h3.mul(&a.y, &h3)
	y3.sub(&y3, &s1h3)

	var z3 FieldElement
	z3.mul(&a.z, &h)

	r.x = x3
	r.y = y3
	r.z = z3
	r.infinity = false
	return r
}
