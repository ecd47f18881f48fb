package fixed

import (
	"testing"

	archregistry "github.com/cwbudde/algo-fixedpoint/dsp/fixed/internal/arch/registry"
	"github.com/cwbudde/algo-fixedpoint/internal/testutil"
)

// Every registered strategy must agree with the scalar kernel on all
// inputs, for block lengths covering empty, partial and whole groups.
func TestRegisteredStrategiesAgree(t *testing.T) {
	ref := archregistry.Global.Find("generic")
	if ref == nil {
		t.Fatal("generic kernel not registered")
	}

	all := testutil.AllInt8[int8]()

	for _, entry := range archregistry.Global.ListEntries() {
		t.Run(entry.Name, func(t *testing.T) {
			for n := 0; n <= 8; n++ {
				for off := 0; off+n <= len(all); off++ {
					src := all[off : off+n]
					want := make([]int8, n)
					got := make([]int8, n)

					ref.Negate(want, src)
					entry.Negate(got, src)

					if idx, _ := testutil.FirstMismatch(got, want); idx != -1 {
						t.Fatalf("n=%d off=%d index %d: got %d, want %d", n, off, idx, got[idx], want[idx])
					}
				}
			}

			src := testutil.DeterministicInt8[int8](99, 4099)
			want := make([]int8, len(src))
			got := make([]int8, len(src))
			ref.Negate(want, src)
			entry.Negate(got, src)
			testutil.RequireSliceEqual(t, got, want)
		})
	}
}
