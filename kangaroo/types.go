// Package kangaroo implements Pollard's Kangaroo algorithm for solving
// the elliptic-curve discrete log problem on secp256k1 within a bounded
// interval, dispatching the per-step walk to a pluggable WalkEngine
// (a CPU reference engine or a GPU-accelerated one).
package kangaroo

import (
	"context"
	"errors"
	"fmt"

	"secp256kangaroo.dev/curve"
)

// Herd distinguishes the two kangaroo populations: tame kangaroos start
// near a known point (start*G) and wild kangaroos start near the
// unknown target P.
type Herd uint8

const (
	Tame Herd = iota
	Wild
)

func (h Herd) String() string {
	if h == Tame {
		return "tame"
	}
	return "wild"
}

// Kangaroo is one walker: its current position (kept in Jacobian form
// to avoid a field inversion on every step) and its accumulated
// distance from its seed point.
type Kangaroo struct {
	ID       uint32
	Herd     Herd
	Distance curve.Scalar
	pos      curve.GroupElementJacobian
}

// Position returns the kangaroo's current affine position. This
// performs one field inversion; callers on a hot path should prefer
// operating through the WalkEngine instead of calling this per step.
func (k *Kangaroo) Position() curve.Point {
	j := k.pos
	return curve.JacobianToAffine(&j)
}

// AddJump adds an affine jump point onto the kangaroo's Jacobian
// position in place (mixed Jacobian-affine add, ec_add_jac_affine).
// Exported so walk engines in other packages can step a kangaroo
// without the solver package exposing its internal Jacobian field.
func (k *Kangaroo) AddJump(p curve.Point) {
	curve.AddJacobianAffine(&k.pos, p)
}

// KangarooState is the GPU-facing snapshot of one kangaroo's walk
// state: x, y are the current affine position's coordinates, each as
// 8 little-endian u32 limbs (see package limbs), Distance likewise.
type KangarooState struct {
	X, Y, Distance [8]uint32
	Herd           uint32
	Pad            uint32
}

// JumpEntry is one precomputed jump: J = s*G, stored as affine limbs
// alongside the exponent s itself (also as limbs, for the host-side
// distance accumulation the GPU kernel performs in parallel).
type JumpEntry struct {
	Jx, Jy, S [8]uint32
}

// DPOutputRecord is one distinguished point harvested from a walk
// batch: the kangaroo's x-coordinate and accumulated distance at the
// moment it became distinguished, its herd, and its kangaroo ID (so
// the host can resume that kangaroo from a fresh seed afterward).
type DPOutputRecord struct {
	X, Distance [8]uint32
	Herd, ID    uint32
}

// DPOutputBuffer is a fixed-capacity landing area a walk engine writes
// distinguished points into during one batch; Count may be less than
// len(Records) if the batch produced fewer DPs than the buffer holds,
// and keeps counting past len(Records) if more hit, while Harvested
// clamps to the capacity (overflow DPs
// within a batch are silently dropped, matching the GPU's one-slot-
// per-overflow semantics from the interface spec: no DP is ever lost
// across dispatch boundaries because stepping resumes cleanly next
// batch).
type DPOutputBuffer struct {
	Count   uint32
	Records []DPOutputRecord
}

// WalkUniforms are the per-dispatch parameters a walk engine needs:
// the distinguished-point mask and how many steps to advance before
// returning control to the host.
type WalkUniforms struct {
	DPMask           [8]uint32
	StepsPerDispatch uint32
	NJumps           uint32
}

// WalkEngine steps a batch of kangaroos forward and reports any
// distinguished points produced. Implementations live in the cpuwalk
// and gpuwalk subpackages; the solver only depends on this interface.
type WalkEngine interface {
	// Step advances every kangaroo in ks by uniforms.StepsPerDispatch
	// steps (fewer at the tail of a walk if ctx is cancelled), using
	// table for jump selection, and returns any distinguished points
	// produced plus the number of individual kangaroo-steps performed.
	Step(ctx context.Context, ks []*Kangaroo, table *JumpTable, uniforms WalkUniforms) ([]DPOutputRecord, uint64, error)
	// Close releases any engine-owned resources (e.g. a GPU device
	// context). Safe to call on an engine that was never used.
	Close() error
}

// StepObserver is the seam external progress/logging collaborators
// attach to; the solver core has no logging or UI dependency of its
// own.
type StepObserver interface {
	OnBatch(totalOps uint64, dpsHarvested int)
	OnVerificationFailure(candidate curve.Scalar)
}

// NopObserver implements StepObserver with no-ops, for callers that
// don't need progress reporting.
type NopObserver struct{}

func (NopObserver) OnBatch(uint64, int)                {}
func (NopObserver) OnVerificationFailure(curve.Scalar) {}

// Error kinds from the external interface contract.
var (
	ErrDeviceInit          = errors.New("kangaroo: device initialization failed")
	ErrDispatch            = errors.New("kangaroo: walk dispatch failed")
	ErrTimeout             = errors.New("kangaroo: solver deadline exceeded")
	ErrVerificationFailure = errors.New("kangaroo: candidate key failed verification")
)

// ErrLimitReached is returned when total_operations reaches the
// configured budget without finding a solution; it carries the op
// count so a caller can decide whether to resume with a larger budget.
type ErrLimitReached struct {
	TotalOps uint64
}

func (e *ErrLimitReached) Error() string {
	return fmt.Sprintf("kangaroo: operation limit reached after %d ops", e.TotalOps)
}
