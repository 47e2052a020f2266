// SPDX-License-Identifier: MIT

// Package modular provides scalar arithmetic over the integers modulo m.
//
// What & Why:
//
//	Every modular matrix routine in this module eventually needs two scalar
//	primitives: a normalised remainder (Go's % keeps the dividend's sign) and
//	a multiplicative inverse. Both live here so the matrix and cipher layers
//	never re-derive them.
//
// Contents:
//   - ExtendedGCD — recursive extended Euclid, returns (g, x, y) with a·x + b·y = g.
//   - Inverse     — a⁻¹ mod m, or *NotInvertibleError when gcd(a, m) ≠ 1.
//   - Mod         — x mod m normalised into [0, m).
//   - AddMod, SubMod, MulMod — overflow-free arithmetic on reduced operands.
//
// Complexity:
//
//	ExtendedGCD and Inverse run in O(log min(a, b)); Mod is O(1).
package modular
