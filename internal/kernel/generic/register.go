package generic

import (
	"github.com/cwbudde/algo-altvec/internal/kernel/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the pure Go kernels. They are the baseline fallback when
// no SIMD variant is available or when ForceGeneric is set.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		AbsBlock:    AbsBlock,
		NegateBlock: NegateBlock,
		SqrtBlock:   SqrtBlock,
		OffsetBlock: OffsetBlock,
		ClampBlock:  ClampBlock,
		MapBlock:    MapBlock,
	})
}
