// Package generic contains the pure Go scalar Q7 kernels.
package generic

// NegateSample returns -x, saturating the single overflowing input
// (-128) to 127.
func NegateSample(x int8) int8 {
	if x == -128 {
		return 127
	}
	return -x
}

// Negate writes the saturating negation of src into dst one sample at a time.
// dst and src may be the same slice.
func Negate(dst, src []int8) {
	if len(dst) != len(src) {
		panic("fixed: slice length mismatch")
	}
	for i, x := range src {
		dst[i] = NegateSample(x)
	}
}
