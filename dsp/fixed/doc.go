// Package fixed provides saturating Q7 fixed-point primitives.
//
// A [Q7] is a signed 8-bit fraction in [-1, 1): the integer range
// [-128, 127] scaled by 1/128. Arithmetic on Q7 saturates instead of
// wrapping. Negation is the canonical case: -128 has no positive
// counterpart and is mapped to 127, every other value negates exactly.
//
// Block operations take caller-owned slices and never allocate. The
// kernel used by [Negate] is chosen once per process from the registered
// strategies (a scalar loop, and a packed 4-lane loop on amd64 and arm64)
// based on CPU features reported by algo-vecmath/cpu. Building with the
// purego tag restricts selection to the scalar kernel. All strategies
// produce identical output.
package fixed
