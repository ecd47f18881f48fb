//go:build purego || !(amd64 || arm64)

package fixed

import (
	_ "github.com/cwbudde/algo-fixedpoint/dsp/fixed/internal/arch/generic"
	_ "github.com/cwbudde/algo-fixedpoint/dsp/fixed/internal/arch/registry"
)
