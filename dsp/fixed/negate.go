package fixed

import (
	"sort"
	"sync"
	"unsafe"

	"github.com/cwbudde/algo-fixedpoint/dsp/fixed/internal/arch/generic"
	archregistry "github.com/cwbudde/algo-fixedpoint/dsp/fixed/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

var (
	negateImpl     archregistry.NegateFn
	negateName     string
	negateInitOnce sync.Once
)

func initNegateKernel() {
	entry := archregistry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("fixed: no negate kernel registered (missing generic fallback?)")
	}
	if entry.Negate == nil {
		panic("fixed: selected kernel missing Negate")
	}

	negateImpl = entry.Negate
	negateName = entry.Name
}

// NegateSample returns the saturating negation of x: 127 for -128,
// -x otherwise.
func NegateSample(x Q7) Q7 {
	return Q7(generic.NegateSample(int8(x)))
}

// Negate writes the saturating negation of src into dst.
// Slices must have equal length. Panics if lengths differ.
// dst may alias src exactly; each output depends only on the input at the
// same index.
func Negate(dst, src []Q7) {
	if len(dst) != len(src) {
		panic("fixed: slice length mismatch")
	}
	if len(src) == 0 {
		return
	}
	negateInitOnce.Do(initNegateKernel)
	negateImpl(int8s(dst), int8s(src))
}

// NegateInPlace negates buf in place with saturation.
func NegateInPlace(buf []Q7) {
	Negate(buf, buf)
}

// Implementation reports the name of the negate kernel selected for this
// process, e.g. "generic" or "swar4".
func Implementation() string {
	negateInitOnce.Do(initNegateKernel)
	return negateName
}

// Kernels returns the names of all negate kernels registered in this build,
// highest priority first. Not every kernel is usable on every CPU.
func Kernels() []string {
	entries := archregistry.Global.ListEntries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Priority > entries[j].Priority
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// int8s reinterprets a Q7 slice as its underlying int8 storage.
func int8s(s []Q7) []int8 {
	return unsafe.Slice((*int8)(unsafe.SliceData(s)), len(s))
}
