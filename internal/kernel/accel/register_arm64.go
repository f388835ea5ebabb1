//go:build arm64 && !purego

package accel

import (
	"github.com/cwbudde/algo-altvec/internal/kernel/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:        "vecmath",
		SIMDLevel:   cpu.SIMDNEON,
		Priority:    20,
		OffsetBlock: OffsetBlock,
	})
}
