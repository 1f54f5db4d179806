package curve

// ecmultGen computes r = n*G using simple double-and-add. The spec
// allows this path to be non-constant-time and non-optimal since it
// is only ever called to seed kangaroos and verify the final key, not
// in the per-step hot loop.
func ecmultGen(r *GroupElementJacobian, n *Scalar) {
	r.setInfinity()
	var base GroupElementJacobian
	base.setGE(&Generator)

	for i := 0; i < 256; i++ {
		if i > 0 {
			r.double(r)
		}
		if n.getBits(uint(255-i), 1) != 0 {
			if r.isInfinity() {
				*r = base
			} else {
				r.addVar(r, &base)
			}
		}
	}
}

// MulG computes n*G and returns the affine result (ec_mul_g).
func MulG(n *Scalar) Point {
	var j GroupElementJacobian
	ecmultGen(&j, n)
	var aff GroupElementAffine
	aff.setGEJ(&j)
	return aff.toPoint()
}

// AddJacobianAffine adds an affine point onto a Jacobian accumulator
// in place, used by the kangaroo walk step (ec_add_jac_affine).
func AddJacobianAffine(acc *GroupElementJacobian, p Point) {
	ge := pointToAffine(p)
	acc.addGE(acc, ge)
}

// DoubleJacobian doubles a Jacobian point in place (ec_double_jac).
func DoubleJacobian(acc *GroupElementJacobian) {
	acc.double(acc)
}

// JacobianToAffine normalizes a Jacobian accumulator to affine
// (ec_jac_to_affine).
func JacobianToAffine(acc *GroupElementJacobian) Point {
	var aff GroupElementAffine
	aff.setGEJ(acc)
	return aff.toPoint()
}

// NewJacobianFromPoint lifts an affine point into a fresh Jacobian
// accumulator, e.g. to seed a kangaroo walk at P or at start*G.
func NewJacobianFromPoint(p Point) GroupElementJacobian {
	var j GroupElementJacobian
	j.setGE(pointToAffine(p))
	return j
}

// AddPoints adds two affine points and returns the affine sum. Used by
// the initializer to compute P + distance*G.
func AddPoints(a, b Point) Point {
	j := NewJacobianFromPoint(a)
	AddJacobianAffine(&j, b)
	return JacobianToAffine(&j)
}
