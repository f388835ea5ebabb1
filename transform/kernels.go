package transform

import (
	"sync"

	"github.com/cwbudde/algo-altvec/internal/kernel/registry"
	"github.com/cwbudde/algo-vecmath/cpu"

	// SIMD kernels from algo-vecmath, then the pure Go fallback.
	_ "github.com/cwbudde/algo-altvec/internal/kernel/accel"
	_ "github.com/cwbudde/algo-altvec/internal/kernel/generic"
)

var (
	kernelTable    registry.OpEntry
	kernelInitOnce sync.Once
)

func kernels() *registry.OpEntry {
	kernelInitOnce.Do(initKernels)
	return &kernelTable
}

func initKernels() {
	entry, ok := registry.Global.Resolve(cpu.DetectFeatures())
	if !ok {
		panic("transform: no block kernels registered (missing generic fallback?)")
	}
	if entry.MapBlock == nil {
		panic("transform: selected kernels missing MapBlock")
	}
	kernelTable = entry
}

// KernelName returns the name of the kernel set selected for this process.
func KernelName() string {
	return kernels().Name
}
