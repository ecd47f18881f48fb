//go:build purego || !(amd64 || arm64)

package fixed

import (
	"testing"

	archregistry "github.com/cwbudde/algo-fixedpoint/dsp/fixed/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func TestNegateDispatch_PuregoUsesGeneric(t *testing.T) {
	entry := archregistry.Global.Lookup(cpu.Features{
		HasSSE2:      true,
		HasNEON:      true,
		Architecture: "amd64",
	})
	if entry == nil {
		t.Fatal("Lookup returned nil")
	}
	if entry.Name != "generic" {
		t.Fatalf("expected generic implementation in purego, got %q", entry.Name)
	}
	if Implementation() != "generic" {
		t.Fatalf("Implementation() = %q, want generic", Implementation())
	}
}
