//go:build arm64 && !purego

package fixed

import (
	"sync"
	"testing"

	archregistry "github.com/cwbudde/algo-fixedpoint/dsp/fixed/internal/arch/registry"
	"github.com/cwbudde/algo-fixedpoint/internal/testutil"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func resetNegateDispatchForTest() {
	negateImpl = nil
	negateName = ""
	negateInitOnce = sync.Once{}
}

func TestNegateDispatch_ARM64Modes(t *testing.T) {
	tests := []struct {
		name     string
		features cpu.Features
		wantImpl string
	}{
		{
			name: "generic-forced",
			features: cpu.Features{
				ForceGeneric: true,
				Architecture: "arm64",
			},
			wantImpl: "generic",
		},
		{
			name: "neon",
			features: cpu.Features{
				HasNEON:      true,
				Architecture: "arm64",
			},
			wantImpl: "swar4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu.SetForcedFeatures(tt.features)
			defer cpu.ResetDetection()
			resetNegateDispatchForTest()
			defer resetNegateDispatchForTest()

			entry := archregistry.Global.Lookup(cpu.DetectFeatures())
			if entry == nil {
				t.Fatal("Lookup returned nil")
			}
			if entry.Name != tt.wantImpl {
				t.Fatalf("expected %q, got %q", tt.wantImpl, entry.Name)
			}

			src := []Q7{5, -128, -1, 0, 127, -5, -128, 64, 1}
			want := []Q7{-5, 127, 1, 0, -127, 5, 127, -64, -1}

			got := make([]Q7, len(src))
			Negate(got, src)
			testutil.RequireSliceEqual(t, got, want)
		})
	}
}
