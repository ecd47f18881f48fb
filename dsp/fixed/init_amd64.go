//go:build amd64 && !purego

package fixed

import (
	_ "github.com/cwbudde/algo-fixedpoint/dsp/fixed/internal/arch/generic"  // register generic backend
	_ "github.com/cwbudde/algo-fixedpoint/dsp/fixed/internal/arch/registry" // initialize backend registry
	_ "github.com/cwbudde/algo-fixedpoint/dsp/fixed/internal/arch/swar"     // register packed 4-lane backend
)
