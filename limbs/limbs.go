// Package limbs converts between the 32-byte big-endian exchange
// format used by the curve package and the little-endian [8]uint32
// limb format the GPU walk kernels operate on, and implements the
// distinguished-point mask and two's-complement negation helpers that
// operate directly on that limb format.
//
// Ported from the reference implementation's src/convert.rs and
// src/math.rs: limb 0 holds the least-significant 32 bits, and byte 0
// of the big-endian form is the most significant byte, so limb i
// occupies bytes [(7-i)*4, (7-i)*4+4).
package limbs

// BEBytesToLimbs converts a 32-byte big-endian value into 8 u32 limbs,
// limb 0 least significant.
func BEBytesToLimbs(b [32]byte) [8]uint32 {
	var limbs [8]uint32
	for i := 0; i < 8; i++ {
		off := (7 - i) * 4
		limbs[i] = uint32(b[off])<<24 | uint32(b[off+1])<<16 | uint32(b[off+2])<<8 | uint32(b[off+3])
	}
	return limbs
}

// LimbsToBEBytes is the inverse of BEBytesToLimbs.
func LimbsToBEBytes(limbs [8]uint32) [32]byte {
	var b [32]byte
	for i := 0; i < 8; i++ {
		off := (7 - i) * 4
		v := limbs[i]
		b[off] = byte(v >> 24)
		b[off+1] = byte(v >> 16)
		b[off+2] = byte(v >> 8)
		b[off+3] = byte(v)
	}
	return b
}

// LimbsToLEBytes packs limbs (limb 0 least significant) into a flat
// little-endian byte buffer, the layout used for GPU uniform/storage
// buffers.
func LimbsToLEBytes(limbs [8]uint32) [32]byte {
	var b [32]byte
	for i := 0; i < 8; i++ {
		off := i * 4
		v := limbs[i]
		b[off] = byte(v)
		b[off+1] = byte(v >> 8)
		b[off+2] = byte(v >> 16)
		b[off+3] = byte(v >> 24)
	}
	return b
}

// LEBytesToLimbs is the inverse of LimbsToLEBytes.
func LEBytesToLimbs(b [32]byte) [8]uint32 {
	var limbs [8]uint32
	for i := 0; i < 8; i++ {
		off := i * 4
		limbs[i] = uint32(b[off]) | uint32(b[off+1])<<8 | uint32(b[off+2])<<16 | uint32(b[off+3])<<24
	}
	return limbs
}

// ScalarBEToLimbs is an alias for BEBytesToLimbs kept for parity with
// the original source's naming (scalars and field elements share the
// same 32-byte big-endian wire form).
func ScalarBEToLimbs(b [32]byte) [8]uint32 { return BEBytesToLimbs(b) }

// NegateBE computes the two's complement of a 256-bit big-endian value:
// invert every byte and add one, propagating carry from the least
// significant byte. The result is -b mod 2^256.
func NegateBE(b [32]byte) [32]byte {
	var out [32]byte
	carry := 1
	for i := 0; i < 32; i++ {
		idx := 31 - i
		inverted := int(^b[idx]) & 0xFF
		sum := inverted + carry
		out[idx] = byte(sum & 0xFF)
		carry = sum >> 8
	}
	return out
}

// DPMask builds the little-endian limb mask selecting the low dpBits
// bits of a point's x-coordinate, used to test the distinguished-point
// predicate x & mask == 0.
func DPMask(dpBits uint32) [8]uint32 {
	var mask [8]uint32
	fullLimbs := dpBits / 32
	remaining := dpBits % 32

	for limb := uint32(0); limb < fullLimbs && limb < 8; limb++ {
		mask[limb] = 0xFFFFFFFF
	}
	if remaining > 0 && fullLimbs < 8 {
		mask[fullLimbs] = (uint32(1) << remaining) - 1
	}
	return mask
}

// IsDistinguished reports whether x, expressed as little-endian limbs
// with limb 0 least significant, satisfies the distinguished-point
// predicate under mask.
func IsDistinguished(x [8]uint32, mask [8]uint32) bool {
	for i := range x {
		if x[i]&mask[i] != 0 {
			return false
		}
	}
	return true
}
