// SPDX-License-Identifier: MIT

// Package matrix offers exact-integer matrix algebra and matrix inversion
// modulo m, the arithmetic core of the Hill cipher.
//
// The matrix package provides:
//
//   - Dense: a row-major integer matrix with bounds-checked At/Set.
//   - Kernels: Minor, Determinant (recursive cofactor expansion), Cofactor,
//     Transpose, Adjugate, Mul.
//   - Modular kernels: ReduceMod, MulMod and InverseMod (adjugate method),
//     plus the cheap IsInvertibleMod gate.
//   - Builders: FromRows, FromFlat (n² values → n×n), ParseRows ("3,3;2,5").
//
// Determinism & Policy:
//
//	Every kernel validates its inputs, never mutates them, and returns a
//	freshly allocated result. Failures are sentinel errors (errors.Is) or
//	*KeyNotInvertibleError; nothing panics on user input.
//
// Complexity:
//
//	Determinant, Cofactor and InverseMod are factorial in n. They are meant
//	for teaching-scale keys (n ≤ ~8), not for large matrices.
package matrix
