// SPDX-License-Identifier: MIT

// Package codec converts between text and the numeric vectors the Hill
// cipher multiplies, and splits those vectors into fixed-size blocks.
//
// The alphabet is the 26 uppercase Latin letters, A=0 … Z=25, and the
// modulus is 26. Both are wire-format constants: another implementation of
// the cipher interoperates only if they match exactly.
//
// Pipeline:
//
//	Clean → TextToNumbers → Chunk → (matrix step) → NumbersToText
package codec
