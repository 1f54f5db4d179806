package cpuwalk

import (
	"bytes"
	"context"
	"testing"

	"secp256kangaroo.dev/curve"
	"secp256kangaroo.dev/kangaroo"
)

func TestStepAdvancesDistance(t *testing.T) {
	jt := kangaroo.NewJumpTable(24)
	start := curve.ScalarFromUint64(1 << 20)
	r := bytes.NewReader(bytes.Repeat([]byte{0x07}, 64))
	k, err := kangaroo.SeedTame(0, r, start, 24)
	if err != nil {
		t.Fatalf("SeedTame: %v", err)
	}
	before := k.Distance

	engine := New()
	defer engine.Close()

	uniforms := kangaroo.WalkUniforms{
		DPMask:           [8]uint32{0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF},
		StepsPerDispatch: 4,
		NJumps:           kangaroo.NJumps,
	}
	_, ops, err := engine.Step(context.Background(), []*kangaroo.Kangaroo{k}, jt, uniforms)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if ops != 4 {
		t.Fatalf("expected 4 ops, got %d", ops)
	}
	if k.Distance.Cmp(before) == 0 {
		t.Fatalf("distance should advance after stepping")
	}
}

func TestStepHarvestsDistinguishedPoints(t *testing.T) {
	jt := kangaroo.NewJumpTable(16)
	start := curve.ScalarFromUint64(1)
	r := bytes.NewReader(bytes.Repeat([]byte{0x09}, 64))
	k, err := kangaroo.SeedTame(0, r, start, 16)
	if err != nil {
		t.Fatalf("SeedTame: %v", err)
	}

	engine := New()
	defer engine.Close()

	// An all-zero mask makes every step distinguished (x & 0 == 0
	// always), isolating the harvest path from DP-rarity timing.
	uniforms := kangaroo.WalkUniforms{StepsPerDispatch: 8, NJumps: kangaroo.NJumps}
	dps, ops, err := engine.Step(context.Background(), []*kangaroo.Kangaroo{k}, jt, uniforms)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if ops != 8 {
		t.Fatalf("expected 8 ops, got %d", ops)
	}
	if len(dps) != 8 {
		t.Fatalf("expected every step to be harvested under a zero mask, got %d", len(dps))
	}
}
