package curve

const (
	tagPubkeyEven = 0x02
	tagPubkeyOdd  = 0x03
)

// ParsePubkey parses a 33-byte compressed SEC1 public key, the only
// wire form the spec requires this module to accept. Grounded in the
// teacher's ecKeyPubkeyParse (p256k1/secp256k1.go), trimmed to the
// compressed-only branch.
func ParsePubkey(compressed []byte) (Point, error) {
	if len(compressed) != 33 {
		return Point{}, ErrParse
	}
	tag := compressed[0]
	if tag != tagPubkeyEven && tag != tagPubkeyOdd {
		return Point{}, ErrParse
	}

	var x FieldElement
	if !x.setB32(compressed[1:33]) {
		return Point{}, ErrParse
	}

	var ge GroupElementAffine
	if !ge.setXOVar(&x, tag == tagPubkeyOdd) {
		return Point{}, ErrParse
	}
	if !ge.isValid() {
		return Point{}, ErrParse
	}
	return ge.toPoint(), nil
}

// VerifyKey reports whether k*G == p, i.e. whether the candidate
// scalar k is the discrete log of the public key point p.
func VerifyKey(k Scalar, p Point) bool {
	candidate := MulG(&k)
	return candidate.Infinity == p.Infinity &&
		candidate.X == p.X && candidate.Y == p.Y
}
