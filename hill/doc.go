// SPDX-License-Identifier: MIT

// Package hill implements the Hill cipher on top of the codec and matrix
// packages.
//
// What & Why:
//
//	Encrypt cleans the plaintext to A-Z, splits it into blocks of n letters
//	(n = key dimension), multiplies each block by the n×n key modulo 26 and
//	maps the result back to letters. Decrypt does the same with the modular
//	inverse of the key.
//
// Padding:
//
//	Encrypt pads a short final block with the pad letter (default 'X').
//	Decrypt pads with 0 ('A'). The two values are different on purpose.
//
// Cleaning:
//
//	Both directions always strip non-letters and fold case, so
//	Encrypt("He1Lo!!", k) == Encrypt("HELO", k). Punctuation and spacing
//	are not preserved.
//
// Errors:
//
//	Decrypt inverts the key before touching any block: a key whose
//	determinant is not invertible modulo 26 fails with
//	matrix.ErrKeyNotInvertible and produces no output at all.
//
// Concurrency:
//
//	All functions are pure. A key may be shared by concurrent calls; it is
//	never written. EncryptBatch/DecryptBatch fan messages out over a bounded
//	worker group.
//
// Security:
//
//	The Hill cipher falls to known-plaintext attacks. This package is for
//	teaching and legacy compatibility only.
package hill
