package fixed

import vecmath "github.com/cwbudde/algo-vecmath"

// FloatToQ7 converts src into dst with rounding and saturation.
// Slices must have equal length. Panics if lengths differ.
func FloatToQ7(dst []Q7, src []float64) {
	if len(dst) != len(src) {
		panic("fixed: slice length mismatch")
	}
	for i, x := range src {
		dst[i] = FromFloat(x)
	}
}

// Q7ToFloat converts src into dst as fractions in [-1, 1).
// Slices must have equal length. Panics if lengths differ.
func Q7ToFloat(dst []float64, src []Q7) {
	if len(dst) != len(src) {
		panic("fixed: slice length mismatch")
	}
	if len(src) == 0 {
		return
	}
	for i, q := range src {
		dst[i] = float64(q)
	}
	vecmath.ScaleBlockInPlace(dst, 1.0/Q7Scale)
}
