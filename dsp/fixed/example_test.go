package fixed_test

import (
	"fmt"

	"github.com/cwbudde/algo-fixedpoint/dsp/fixed"
)

func ExampleNegate() {
	src := []fixed.Q7{5, -128, -1, 0, 127}
	dst := make([]fixed.Q7, len(src))

	fixed.Negate(dst, src)

	fmt.Println(dst)
	// Output: [-5(-0.0391) 127(0.9922) 1(0.0078) 0(0.0000) -127(-0.9922)]
}

func ExampleNegateSample() {
	fmt.Println(int8(fixed.NegateSample(-128)), int8(fixed.NegateSample(-127)))
	// Output: 127 127
}

func ExampleFromFloat() {
	q := fixed.FromFloat(-0.25)
	fmt.Println(int8(q), q.Float())
	// Output: -32 -0.25
}
