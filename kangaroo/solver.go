package kangaroo

import (
	"context"
	"crypto/rand"
	"io"
	"math/bits"

	"secp256kangaroo.dev/curve"
	"secp256kangaroo.dev/limbs"
)

// Config holds the solver's construction inputs (§6 "Solver
// construction inputs").
type Config struct {
	Start      curve.Scalar
	Target     curve.Point
	RangeBits  uint32
	NKangaroos int
	// DPBits is the distinguished-point bit threshold. Zero means
	// auto-tune using the formula below.
	DPBits uint32
	// ReseedSlack is c in the reseed threshold 2^(rangeBits+c) (§4.G
	// Open Question, decided default).
	ReseedSlack      uint32
	MaxOps           uint64
	StepsPerDispatch uint32
	// Rand supplies entropy for kangaroo seeding; defaults to
	// crypto/rand.Reader when nil.
	Rand io.Reader
}

// AutoDPBits implements the GPU auto-tuning formula from §3:
// dp_bits = clamp(range_bits/2 - log2(n_kangaroos)/2, 8, 40).
func AutoDPBits(rangeBits uint32, nKangaroos int) uint32 {
	half := rangeBits / 2
	logK := uint32(0)
	if nKangaroos > 1 {
		logK = uint32(bits.Len(uint(nKangaroos-1)))
	}
	v := int64(half) - int64(logK/2)
	return clampDPBits(v, 8, 40)
}

// AutoDPBitsCPU implements the CPU auto-tuning formula from §3:
// dp_bits = clamp(range_bits/2 - 2, 8, 20). The CPU path targets far
// fewer parallel walkers than a GPU dispatch, so it can afford a higher
// DP density (a lower dp_bits ceiling) without the DP table growing
// unmanageably large relative to the walk's useful collision rate.
func AutoDPBitsCPU(rangeBits uint32) uint32 {
	half := int64(rangeBits / 2)
	return clampDPBits(half-2, 8, 20)
}

func clampDPBits(v int64, lo, hi int64) uint32 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return uint32(v)
}

// cpuEngineHint is implemented by kangaroo/cpuwalk.Engine so the solver
// can pick the CPU dp_bits formula without importing cpuwalk (which
// itself imports kangaroo, so kangaroo cannot import it back).
type cpuEngineHint interface {
	IsCPUWalkEngine() bool
}

// Result is the output of a successful solve.
type Result struct {
	Key      curve.Scalar
	TotalOps uint64
}

// Solver drives the kangaroo search loop (§4.G).
type Solver struct {
	cfg     Config
	engine  WalkEngine
	table   *JumpTable
	dpTable *DPTable
	rng     io.Reader
	tame    []*Kangaroo
	wild    []*Kangaroo
	all     []*Kangaroo
	dpMask  [8]uint32
}

// NewSolver constructs a solver, seeding all kangaroos immediately.
func NewSolver(cfg Config, engine WalkEngine) (*Solver, error) {
	if cfg.NKangaroos <= 0 {
		cfg.NKangaroos = 16
	}
	if cfg.ReseedSlack == 0 {
		cfg.ReseedSlack = 4
	}
	if cfg.DPBits == 0 {
		if hint, ok := engine.(cpuEngineHint); ok && hint.IsCPUWalkEngine() {
			cfg.DPBits = AutoDPBitsCPU(cfg.RangeBits)
		} else {
			cfg.DPBits = AutoDPBits(cfg.RangeBits, cfg.NKangaroos)
		}
	}
	if cfg.StepsPerDispatch == 0 {
		cfg.StepsPerDispatch = 1024
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.Reader
	}

	s := &Solver{
		cfg:     cfg,
		engine:  engine,
		table:   NewJumpTable(cfg.RangeBits),
		dpTable: NewDPTable(),
		rng:     cfg.Rand,
		dpMask:  limbs.DPMask(cfg.DPBits),
	}

	half := cfg.NKangaroos / 2
	if half == 0 {
		half = 1
	}
	for i := 0; i < half; i++ {
		k, err := SeedTame(uint32(i), s.rng, cfg.Start, cfg.RangeBits)
		if err != nil {
			return nil, err
		}
		s.tame = append(s.tame, k)
	}
	for i := 0; i < cfg.NKangaroos-half; i++ {
		k, err := SeedWild(uint32(half+i), uint32(i), s.rng, cfg.Target, s.table, cfg.RangeBits)
		if err != nil {
			return nil, err
		}
		s.wild = append(s.wild, k)
	}
	s.all = append(append([]*Kangaroo{}, s.tame...), s.wild...)
	return s, nil
}

// Run drives the solve loop until a verified key is found, ctx is
// cancelled, or MaxOps is exhausted.
func (s *Solver) Run(ctx context.Context, obs StepObserver) (Result, error) {
	if obs == nil {
		obs = NopObserver{}
	}
	uniforms := WalkUniforms{DPMask: s.dpMask, StepsPerDispatch: s.cfg.StepsPerDispatch, NJumps: NJumps}

	var totalOps uint64
	reseedThreshold := uint(s.cfg.RangeBits + s.cfg.ReseedSlack)

	for {
		if err := ctx.Err(); err != nil {
			return Result{}, ErrTimeout
		}
		if s.cfg.MaxOps != 0 && totalOps >= s.cfg.MaxOps {
			return Result{}, &ErrLimitReached{TotalOps: totalOps}
		}

		dps, opsThisBatch, err := s.engine.Step(ctx, s.all, s.table, uniforms)
		totalOps += opsThisBatch
		if err != nil {
			return Result{}, err
		}
		obs.OnBatch(totalOps, len(dps))

		for _, rec := range dps {
			xBytes := limbs.LimbsToBEBytes(rec.X)
			distBytes := limbs.LimbsToBEBytes(rec.Distance)
			distance := curve.ScalarFromBytes(distBytes)
			herd := Herd(rec.Herd)

			collision, sameHerd := s.dpTable.Insert(xBytes, herd, distance)
			if collision != nil {
				candidate := s.cfg.Start.Add(collision.TameDistance).Sub(collision.WildDistance)
				if curve.VerifyKey(candidate, s.cfg.Target) {
					return Result{Key: candidate, TotalOps: totalOps}, nil
				}
				obs.OnVerificationFailure(candidate)
				continue
			}
			if sameHerd && s.dpTable.Reseed {
				s.reseedByID(rec.ID)
			}
		}

		for _, k := range s.all {
			if uint(k.Distance.BitLen()) > reseedThreshold {
				s.reseedKangaroo(k)
			}
		}
	}
}

func (s *Solver) reseedByID(id uint32) {
	for _, k := range s.all {
		if k.ID == id {
			s.reseedKangaroo(k)
			return
		}
	}
}

func (s *Solver) reseedKangaroo(k *Kangaroo) {
	wildIndex := uint32(0)
	for i, w := range s.wild {
		if w.ID == k.ID {
			wildIndex = uint32(i)
			break
		}
	}
	_ = Reseed(k, s.rng, s.cfg.Start, s.cfg.Target, s.table, s.cfg.RangeBits, wildIndex)
}
