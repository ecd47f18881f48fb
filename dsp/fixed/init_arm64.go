//go:build arm64 && !purego

package fixed

import (
	_ "github.com/cwbudde/algo-fixedpoint/dsp/fixed/internal/arch/generic"
	_ "github.com/cwbudde/algo-fixedpoint/dsp/fixed/internal/arch/registry"
	_ "github.com/cwbudde/algo-fixedpoint/dsp/fixed/internal/arch/swar"
)
