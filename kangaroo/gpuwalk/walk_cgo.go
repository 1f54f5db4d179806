//go:build cgo

package gpuwalk

/*
#cgo LDFLAGS: -ldl
#include <stddef.h>

// A real build links against a native compute backend (Metal, CUDA, or
// Vulkan depending on platform). The only entry point declared here is
// the stub probe below. No such library is vendored in this repository; probe()
// always reports unavailable until one is linked in, so Engine.Step is
// unreachable and the solver falls back to cpuwalk.Engine.
static int kangaroo_gpu_probe(void) { return 0; }
*/
import "C"

import (
	"context"
	"fmt"
	"sync"

	"secp256kangaroo.dev/kangaroo"
)

var (
	once      sync.Once
	available bool
)

func probe() bool {
	once.Do(func() {
		available = C.kangaroo_gpu_probe() != 0
	})
	return available
}

// Engine is the GPU walk engine, backed by a native compute device.
type Engine struct {
	deviceIndex int
}

// New probes for a usable compute device and, if found, binds an
// Engine to it. When no device/backend is available it returns
// kangaroo.ErrDeviceInit, the documented fallback signal (§7, error
// kind 2) rather than panicking or silently degrading.
func New(deviceIndex int) (*Engine, error) {
	if !probe() {
		return nil, fmt.Errorf("%w: no compute device detected for index %d", kangaroo.ErrDeviceInit, deviceIndex)
	}
	return &Engine{deviceIndex: deviceIndex}, nil
}

func (e *Engine) Close() error { return nil }

// Step is unreachable while probe() reports unavailable; a real
// backend would marshal ks/table/uniforms into the buffer layout from
// types.go, dispatch the compute kernel, and read back DP records.
func (e *Engine) Step(ctx context.Context, ks []*kangaroo.Kangaroo, table *kangaroo.JumpTable, uniforms kangaroo.WalkUniforms) ([]kangaroo.DPOutputRecord, uint64, error) {
	return nil, 0, fmt.Errorf("%w: no compute backend linked", kangaroo.ErrDispatch)
}
