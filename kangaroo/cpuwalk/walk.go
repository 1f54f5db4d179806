// Package cpuwalk implements the pure-Go reference walk engine: it
// splits the kangaroos round-robin across up to Engine.Workers
// goroutines (never more goroutines than kangaroos), each owning a
// disjoint subset, so no locking is required. It serves both as the correctness
// oracle for the GPU engine and as the default/fallback backend.
package cpuwalk

import (
	"context"
	"runtime"
	"sync"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"

	"secp256kangaroo.dev/kangaroo"
	"secp256kangaroo.dev/limbs"
)

// ctxCheckInterval picks how many steps a worker advances between
// ctx.Err() polls. Vector-capable hosts (AVX2 on x86, ASIMD on arm64 —
// checked via golang.org/x/sys/cpu, the same feature-detection package
// the teacher's dependency graph already pulls in transitively) step
// field/curve arithmetic cheaply enough that polling every 256 steps is
// pure overhead; widen the interval there and keep it tight elsewhere
// so cancellation still lands promptly on older hardware.
func ctxCheckInterval() uint32 {
	if cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD {
		return 512
	}
	return 128
}

// Engine is the CPU walk engine.
type Engine struct {
	// Workers bounds the number of goroutines used to shard kangaroo
	// batches. New sets it to the larger of GOMAXPROCS and cpuid's
	// logical core count (replacing a bare runtime.NumCPU()
	// heuristic); Step treats a value below one as one.
	Workers int
}

// New constructs a CPU walk engine.
func New() *Engine {
	workers := runtime.GOMAXPROCS(0)
	if cpuid.CPU.LogicalCores > workers {
		workers = cpuid.CPU.LogicalCores
	}
	if workers < 1 {
		workers = 1
	}
	return &Engine{Workers: workers}
}

func (e *Engine) Close() error { return nil }

// IsCPUWalkEngine identifies this engine to kangaroo.NewSolver so it
// can select the CPU dp_bits auto-tune formula (§3) instead of the GPU
// one, without kangaroo importing this package (cpuwalk already
// imports kangaroo).
func (e *Engine) IsCPUWalkEngine() bool { return true }

// Step advances every kangaroo by uniforms.StepsPerDispatch steps. The
// jump table is marshalled once per dispatch into its host⇄device wire
// form (JumpEntry) and every harvested distinguished point is written
// through a shared DPOutputBuffer, the same landing area a GPU kernel's
// atomic output counter writes into, sized here for the worst case
// (every step of every kangaroo harvests) since the CPU reference
// engine can afford that allocation, unlike a GPU's fixed device
// buffer, which instead sizes to the expected DP rate (§3 dp_bits
// auto-tune).
func (e *Engine) Step(ctx context.Context, ks []*kangaroo.Kangaroo, table *kangaroo.JumpTable, uniforms kangaroo.WalkUniforms) ([]kangaroo.DPOutputRecord, uint64, error) {
	workers := e.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(ks) {
		workers = len(ks)
	}
	if workers < 1 {
		return nil, 0, nil
	}

	entries := table.ToJumpEntries()
	bufCap := len(ks) * int(uniforms.StepsPerDispatch)
	buf := kangaroo.NewDPOutputBuffer(bufCap)

	chunks := make([][]*kangaroo.Kangaroo, workers)
	for i, k := range ks {
		w := i % workers
		chunks[w] = append(chunks[w], k)
	}

	ops := make([]uint64, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		w := w
		wg.Add(1)
		go func() {
			defer wg.Done()
			ops[w] = stepRange(ctx, chunks[w], &entries, uniforms, buf)
		}()
	}
	wg.Wait()

	var total uint64
	for w := 0; w < workers; w++ {
		total += ops[w]
	}
	return buf.Harvested(), total, nil
}

func stepRange(ctx context.Context, ks []*kangaroo.Kangaroo, entries *[kangaroo.NJumps]kangaroo.JumpEntry, uniforms kangaroo.WalkUniforms, buf *kangaroo.DPOutputBuffer) uint64 {
	var ops uint64
	checkEvery := ctxCheckInterval()

	for _, k := range ks {
		for step := uint32(0); step < uniforms.StepsPerDispatch; step++ {
			if step%checkEvery == 0 && ctx.Err() != nil {
				return ops
			}
			stepOne(k, entries, uniforms.DPMask, buf)
			ops++
		}
	}
	return ops
}

// stepOne advances k by exactly one jump: look up its current affine
// x-coordinate, pick jump i = x mod NJumps, add J_i to the position and
// s_i to the distance, and test the distinguished-point predicate on
// the new x. A hit is pushed into buf as a KangarooState snapshot
// reduced to its DPOutputRecord projection (x, distance, herd, id).
func stepOne(k *kangaroo.Kangaroo, entries *[kangaroo.NJumps]kangaroo.JumpEntry, dpMask [8]uint32, buf *kangaroo.DPOutputBuffer) {
	pos := k.Position()
	xLimbs := limbs.BEBytesToLimbs(pos.X)
	idx := kangaroo.Select(xLimbs[0])

	entry := entries[idx]
	k.AddJump(kangaroo.JumpEntryPoint(entry))
	k.Distance = k.Distance.Add(kangaroo.JumpEntryScalar(entry))

	newPos := k.Position()
	newXLimbs := limbs.BEBytesToLimbs(newPos.X)

	if !limbs.IsDistinguished(newXLimbs, dpMask) {
		return
	}

	st := kangaroo.KangarooState{
		X:        newXLimbs,
		Y:        limbs.BEBytesToLimbs(newPos.Y),
		Distance: limbs.BEBytesToLimbs(k.Distance.Bytes()),
		Herd:     uint32(k.Herd),
	}
	buf.Push(kangaroo.DPOutputRecord{
		X:        st.X,
		Distance: st.Distance,
		Herd:     st.Herd,
		ID:       k.ID,
	})
}
