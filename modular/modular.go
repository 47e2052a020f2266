// SPDX-License-Identifier: MIT

package modular

import "math/bits"

// ExtendedGCD returns g = gcd(a, b) together with Bézout coefficients x, y
// such that a·x + b·y = g.
//
// Implementation:
//   - Base case b == 0 returns (a, 1, 0).
//   - Otherwise recurse on (b, a mod b) and back-substitute.
//
// Inputs:
//   - a ≥ 0 (callers reduce into [0, m) first), b ≥ 0.
//
// Complexity:
//   - Time O(log min(a, b)), recursion depth O(log min(a, b)).
func ExtendedGCD(a, b int) (g, x, y int) {
	if b == 0 {
		return a, 1, 0
	}
	g, x1, y1 := ExtendedGCD(b, a%b)

	return g, y1, x1 - (a/b)*y1
}

// Inverse returns x in [0, m) such that a·x ≡ 1 (mod m).
//
// Errors:
//   - ErrInvalidModulus if m ≤ 0.
//   - *NotInvertibleError (matches ErrNotInvertible) when gcd(a mod m, m) ≠ 1.
func Inverse(a, m int) (int, error) {
	if m <= 0 {
		return 0, ErrInvalidModulus
	}
	g, x, _ := ExtendedGCD(Mod(a, m), m)
	if g != 1 {
		return 0, &NotInvertibleError{A: a, M: m, GCD: g}
	}

	return Mod(x, m), nil
}

// Mod returns x mod m normalised into [0, m). m must be positive.
func Mod(x, m int) int {
	r := x % m
	if r < 0 {
		r += m
	}

	return r
}

// AddMod returns (a + b) mod m for a, b already in [0, m).
// The sum never leaves int range, whatever the size of m.
func AddMod(a, b, m int) int {
	if a >= m-b {
		return a - (m - b)
	}

	return a + b
}

// SubMod returns (a - b) mod m for a, b already in [0, m).
func SubMod(a, b, m int) int {
	if a >= b {
		return a - b
	}

	return a + (m - b)
}

// MulMod returns (a · b) mod m for a, b already in [0, m).
// The full 128-bit product is reduced, so no intermediate wraps.
func MulMod(a, b, m int) int {
	hi, lo := bits.Mul64(uint64(a), uint64(b))

	return int(bits.Rem64(hi, lo, uint64(m)))
}
