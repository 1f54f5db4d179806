package kangaroo

import (
	"encoding/binary"
	"sync/atomic"

	"secp256kangaroo.dev/curve"
	"secp256kangaroo.dev/limbs"
)

// ToKangarooState snapshots a kangaroo's affine position and distance
// into the flat limb layout a GPU storage buffer holds per-walker. This
// costs one field inversion (via Position); callers stepping a whole
// batch should snapshot once per dispatch rather than once per jump.
func ToKangarooState(k *Kangaroo) KangarooState {
	pos := k.Position()
	return KangarooState{
		X:        limbs.BEBytesToLimbs(pos.X),
		Y:        limbs.BEBytesToLimbs(pos.Y),
		Distance: limbs.BEBytesToLimbs(k.Distance.Bytes()),
		Herd:     uint32(k.Herd),
	}
}

// LoadKangarooState writes a KangarooState back into a kangaroo's
// Jacobian position and distance, the inverse of ToKangarooState. The
// ID and Herd fields of k are left untouched (Herd in the state is
// carried for the GPU's own bookkeeping, not used as the source of
// truth on readback).
func LoadKangarooState(k *Kangaroo, st KangarooState) {
	pos := curve.Point{
		X: limbs.LimbsToBEBytes(st.X),
		Y: limbs.LimbsToBEBytes(st.Y),
	}
	k.pos = curve.NewJacobianFromPoint(pos)
	k.Distance = curve.ScalarFromBytes(limbs.LimbsToBEBytes(st.Distance))
}

// ToJumpEntries converts a JumpTable into its wire form: one JumpEntry
// per precomputed jump, J and s each as big-endian-derived limbs.
func (jt *JumpTable) ToJumpEntries() [NJumps]JumpEntry {
	var out [NJumps]JumpEntry
	for i := 0; i < NJumps; i++ {
		out[i] = JumpEntry{
			Jx: limbs.BEBytesToLimbs(jt.Points[i].X),
			Jy: limbs.BEBytesToLimbs(jt.Points[i].Y),
			S:  limbs.BEBytesToLimbs(jt.Exponents[i].Bytes()),
		}
	}
	return out
}

// JumpEntryPoint recovers the affine jump point J from a JumpEntry.
func JumpEntryPoint(e JumpEntry) curve.Point {
	return curve.Point{
		X: limbs.LimbsToBEBytes(e.Jx),
		Y: limbs.LimbsToBEBytes(e.Jy),
	}
}

// JumpEntryScalar recovers the jump exponent s from a JumpEntry.
func JumpEntryScalar(e JumpEntry) curve.Scalar {
	return curve.ScalarFromBytes(limbs.LimbsToBEBytes(e.S))
}

// kangarooStateWireLen is the byte length of the flat little-endian
// buffer layout a GPU storage buffer uses for one KangarooState: three
// 32-byte limb fields plus two trailing u32 words.
const kangarooStateWireLen = 32*3 + 4 + 4

// MarshalKangarooState packs a KangarooState into the flat
// little-endian byte layout a GPU storage buffer holds it in: X, Y,
// Distance each as 32 LE bytes, then Herd and Pad as LE u32 words.
func MarshalKangarooState(st KangarooState) [kangarooStateWireLen]byte {
	var out [kangarooStateWireLen]byte
	off := 0
	for _, l := range [3][8]uint32{st.X, st.Y, st.Distance} {
		b := limbs.LimbsToLEBytes(l)
		copy(out[off:off+32], b[:])
		off += 32
	}
	binary.LittleEndian.PutUint32(out[off:off+4], st.Herd)
	binary.LittleEndian.PutUint32(out[off+4:off+8], st.Pad)
	return out
}

// UnmarshalKangarooState is the inverse of MarshalKangarooState.
func UnmarshalKangarooState(b [kangarooStateWireLen]byte) KangarooState {
	var st KangarooState
	fields := [3]*[8]uint32{&st.X, &st.Y, &st.Distance}
	off := 0
	for _, f := range fields {
		var lb [32]byte
		copy(lb[:], b[off:off+32])
		*f = limbs.LEBytesToLimbs(lb)
		off += 32
	}
	st.Herd = binary.LittleEndian.Uint32(b[off : off+4])
	st.Pad = binary.LittleEndian.Uint32(b[off+4 : off+8])
	return st
}

// jumpEntryWireLen is the byte length of the flat little-endian buffer
// layout a GPU storage buffer holds one JumpEntry in.
const jumpEntryWireLen = 32 * 3

// MarshalJumpEntry packs a JumpEntry into its flat little-endian byte
// layout: Jx, Jy, S each as 32 LE bytes.
func MarshalJumpEntry(e JumpEntry) [jumpEntryWireLen]byte {
	var out [jumpEntryWireLen]byte
	off := 0
	for _, l := range [3][8]uint32{e.Jx, e.Jy, e.S} {
		b := limbs.LimbsToLEBytes(l)
		copy(out[off:off+32], b[:])
		off += 32
	}
	return out
}

// UnmarshalJumpEntry is the inverse of MarshalJumpEntry.
func UnmarshalJumpEntry(b [jumpEntryWireLen]byte) JumpEntry {
	var e JumpEntry
	fields := [3]*[8]uint32{&e.Jx, &e.Jy, &e.S}
	off := 0
	for _, f := range fields {
		var lb [32]byte
		copy(lb[:], b[off:off+32])
		*f = limbs.LEBytesToLimbs(lb)
		off += 32
	}
	return e
}

// NewDPOutputBuffer allocates a landing area with room for size
// distinguished points, the GPU-side fixed-capacity output buffer one
// walk dispatch writes into.
func NewDPOutputBuffer(size int) *DPOutputBuffer {
	if size < 1 {
		size = 1
	}
	return &DPOutputBuffer{Records: make([]DPOutputRecord, size)}
}

// Push reserves the next slot via an atomic increment (mirroring the
// GPU kernel's atomic output-counter) and writes rec into it. Once the
// buffer fills, further pushes are silently dropped (Count still
// advances past len(Records) so Harvested can report the overflow was
// clamped), matching the GPU's one-dispatch-at-a-time semantics: no
// distinguished point is lost across dispatch boundaries since the
// walk resumes cleanly on the next batch.
func (b *DPOutputBuffer) Push(rec DPOutputRecord) {
	slot := atomic.AddUint32(&b.Count, 1) - 1
	if int(slot) < len(b.Records) {
		b.Records[slot] = rec
	}
}

// Harvested returns the records actually written this dispatch,
// clamped to the buffer's capacity.
func (b *DPOutputBuffer) Harvested() []DPOutputRecord {
	n := b.Count
	if int(n) > len(b.Records) {
		n = uint32(len(b.Records))
	}
	return b.Records[:n]
}
