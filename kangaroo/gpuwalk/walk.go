//go:build !cgo

// Package gpuwalk provides the GPU-accelerated walk engine. Without
// cgo (or on a platform where the native compute backend cannot link),
// New always reports a DeviceInitError so callers fall back to
// cpuwalk.Engine, per the error-handling contract in the external
// interface design: device absence is a documented outcome, not a
// build failure.
package gpuwalk

import (
	"context"
	"fmt"

	"secp256kangaroo.dev/kangaroo"
)

// New attempts to construct a GPU walk engine bound to the given
// device index. This build has no compute backend linked in.
func New(deviceIndex int) (*Engine, error) {
	return nil, fmt.Errorf("%w: built without cgo, no compute backend available", kangaroo.ErrDeviceInit)
}

// Engine is the GPU walk engine (unusable in this build).
type Engine struct{}

func (e *Engine) Close() error { return nil }

func (e *Engine) Step(ctx context.Context, ks []*kangaroo.Kangaroo, table *kangaroo.JumpTable, uniforms kangaroo.WalkUniforms) ([]kangaroo.DPOutputRecord, uint64, error) {
	return nil, 0, fmt.Errorf("%w: no compute backend in this build", kangaroo.ErrDispatch)
}
