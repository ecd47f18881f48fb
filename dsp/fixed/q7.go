package fixed

import (
	"math"
	"strconv"
)

// Q7 is a signed fixed-point sample with 7 fractional bits.
type Q7 int8

const (
	// Q7Min is the most negative Q7 value (-1.0).
	Q7Min Q7 = -128

	// Q7Max is the most positive Q7 value (127/128).
	Q7Max Q7 = 127

	// Q7Scale is the number of integer steps per 1.0.
	Q7Scale = 128
)

// SatQ7 clamps x to the Q7 range.
func SatQ7(x int32) Q7 {
	if x > int32(Q7Max) {
		return Q7Max
	}
	if x < int32(Q7Min) {
		return Q7Min
	}
	return Q7(x)
}

// FromFloat converts x to the nearest Q7 value, saturating outside
// [-1, 127/128]. NaN converts to 0.
func FromFloat(x float64) Q7 {
	if math.IsNaN(x) {
		return 0
	}
	v := math.Round(x * Q7Scale)
	if v >= float64(Q7Max) {
		return Q7Max
	}
	if v <= float64(Q7Min) {
		return Q7Min
	}
	return Q7(v)
}

// Float returns the fractional value of q.
func (q Q7) Float() float64 {
	return float64(q) / Q7Scale
}

// String formats q as its integer value followed by the fraction,
// e.g. "-64(-0.5000)".
func (q Q7) String() string {
	return strconv.Itoa(int(q)) + "(" + strconv.FormatFloat(q.Float(), 'f', 4, 64) + ")"
}
