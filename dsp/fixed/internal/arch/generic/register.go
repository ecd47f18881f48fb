package generic

import (
	"github.com/cwbudde/algo-fixedpoint/dsp/fixed/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the scalar kernels. They are the fallback whenever no
// packed strategy is compatible or ForceGeneric is set.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Negate:    Negate,
	})
}
