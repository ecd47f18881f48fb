//go:build arm64 && !purego

package swar

import (
	"github.com/cwbudde/algo-fixedpoint/dsp/fixed/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      Name,
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,
		Negate:    Negate,
	})
}
