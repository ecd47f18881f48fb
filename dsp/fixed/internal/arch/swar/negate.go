// Package swar implements the packed 4-lane Q7 kernels.
//
// Four int8 lanes are packed into one uint32 and processed with
// lane-isolated integer arithmetic ("SIMD within a register"). The packed
// primitives perform raw two's-complement arithmetic per lane; saturation
// is applied to each lane after unpacking.
package swar

import "github.com/cwbudde/algo-fixedpoint/dsp/fixed/internal/arch/generic"

// Name is the registry name of this strategy.
const Name = "swar4"

// Lanes is the number of Q7 samples processed per packed group.
const Lanes = 4

const (
	lowBits  uint32 = 0x7f7f7f7f
	highBits uint32 = 0x80808080
	laneOnes uint32 = 0x01010101
)

func pack(l [Lanes]int8) uint32 {
	return uint32(uint8(l[0])) |
		uint32(uint8(l[1]))<<8 |
		uint32(uint8(l[2]))<<16 |
		uint32(uint8(l[3]))<<24
}

func unpack(v uint32) [Lanes]int8 {
	return [Lanes]int8{
		int8(uint8(v)),
		int8(uint8(v >> 8)),
		int8(uint8(v >> 16)),
		int8(uint8(v >> 24)),
	}
}

// neg4 negates each byte lane of v as ^x + 1 without carries crossing
// lane boundaries. A lane holding 0x80 stays 0x80, exactly like int8
// negation in Go.
func neg4(v uint32) uint32 {
	x := ^v
	return ((x & lowBits) + laneOnes) ^ (x & highBits)
}

// Negate writes the saturating negation of src into dst, four samples per
// iteration, with the 0-3 trailing samples handled by the scalar rule.
// dst and src may be the same slice.
func Negate(dst, src []int8) {
	if len(dst) != len(src) {
		panic("fixed: slice length mismatch")
	}

	n := len(src)
	whole := n / Lanes

	i := 0
	for g := 0; g < whole; g++ {
		in := [Lanes]int8{src[i], src[i+1], src[i+2], src[i+3]}
		out := unpack(neg4(pack(in)))
		for k, lane := range out {
			if lane == -128 {
				lane = 127
			}
			dst[i+k] = lane
		}
		i += Lanes
	}

	for ; i < n; i++ {
		dst[i] = generic.NegateSample(src[i])
	}
}
