//go:build amd64 && !purego

package swar

import (
	"github.com/cwbudde/algo-fixedpoint/dsp/fixed/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// SSE2 is part of the amd64 baseline, so this entry wins on every amd64
// CPU unless generic is forced.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      Name,
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,
		Negate:    Negate,
	})
}
