// Package hillcipher is a small, exact-integer Hill cipher toolkit: modular
// matrix algebra over Z/26 plus the text pipeline that turns letters into
// blocks and back.
//
// 🚀 What is hillcipher?
//
//	A zero-float library that brings together:
//		• Modular arithmetic: extended Euclid, scalar inverse mod m
//		• Matrices: exact determinant, cofactor, adjugate, inverse mod m
//		• Text codec: clean, letter↔number mapping, block chunking
//		• Cipher: Encrypt / Decrypt / ValidateKey, plus concurrent batches
//		• CLI: cmd/hill with --key or YAML/TOML key files
//
// Under the hood, everything is organized under four subpackages:
//
//	modular/ — ExtendedGCD, Inverse, Mod
//	matrix/  — Dense, Determinant, Adjugate, MulMod, InverseMod
//	codec/   — Clean, TextToNumbers, NumbersToText, Chunk
//	hill/    — Encrypt, Decrypt, ValidateKey, EncryptBatch, DecryptBatch
//
// Quick start:
//
//	key, _ := matrix.FromSquareRows([][]int{{3, 3}, {2, 5}})
//	ct, _ := hill.Encrypt("HELLO", key) // "HIOZHN"
//	pt, _ := hill.Decrypt(ct, key)      // "HELLOX"
//
// Install:
//
//	go get github.com/katalvlaran/hillcipher
package hillcipher
