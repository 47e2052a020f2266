// SPDX-License-Identifier: MIT

package hill

import (
	"fmt"

	"github.com/katalvlaran/hillcipher/codec"
	"github.com/katalvlaran/hillcipher/matrix"
)

const (
	opEncrypt     = "hill.Encrypt"
	opDecrypt     = "hill.Decrypt"
	opValidateKey = "hill.ValidateKey"
)

func hillErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Encrypt enciphers plaintext with key.
//
// Implementation:
//   - Stage 1: validate key (non-nil, square) and resolve the pad letter.
//   - Stage 2: Clean → TextToNumbers → Chunk(n, pad).
//   - Stage 3: per block, MulMod(key, column, 26); concatenate row values.
//   - Stage 4: NumbersToText.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (key not square).
//   - codec.ErrInvalidCharacter (pad letter not in A-Z).
//
// Notes:
//   - Encryption does not require an invertible key; use ValidateKey first
//     if the ciphertext must be decryptable.
func Encrypt(plaintext string, key *matrix.Dense, opts ...Option) (string, error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateSquareNonNil(key); err != nil {
		return "", hillErrorf(opEncrypt, err)
	}
	pad, err := codec.LetterIndex(o.padChar)
	if err != nil {
		return "", hillErrorf(opEncrypt, fmt.Errorf("pad: %w", err))
	}

	out, err := transform(plaintext, key, pad)
	if err != nil {
		return "", hillErrorf(opEncrypt, err)
	}

	return out, nil
}

// Decrypt deciphers ciphertext with key.
//
// The key is inverted modulo 26 before any block is processed; on failure
// nothing is decrypted and the *matrix.KeyNotInvertibleError is returned.
// A ciphertext whose cleaned length is not a multiple of n is padded with 0.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
//   - matrix.ErrKeyNotInvertible.
func Decrypt(ciphertext string, key *matrix.Dense) (string, error) {
	inv, err := matrix.InverseMod(key, codec.Modulus)
	if err != nil {
		return "", hillErrorf(opDecrypt, err)
	}

	out, err := transform(ciphertext, inv, DecryptPadValue)
	if err != nil {
		return "", hillErrorf(opDecrypt, err)
	}

	return out, nil
}

// ValidateKey reports whether key can be used for both directions:
// non-nil, square and invertible modulo 26.
func ValidateKey(key *matrix.Dense) error {
	if _, err := matrix.InverseMod(key, codec.Modulus); err != nil {
		return hillErrorf(opValidateKey, err)
	}

	return nil
}

// transform runs the shared block pipeline with an already-validated square
// matrix m and pad value.
func transform(text string, m *matrix.Dense, pad int) (string, error) {
	nums, err := codec.TextToNumbers(codec.Clean(text))
	if err != nil {
		return "", err
	}
	blocks, err := codec.Chunk(nums, m.Rows(), pad)
	if err != nil {
		return "", err
	}

	out := make([]int, 0, len(blocks)*m.Rows())
	for _, block := range blocks {
		col, err := matrix.ColumnVector(block)
		if err != nil {
			return "", err
		}
		res, err := matrix.MulMod(m, col, codec.Modulus)
		if err != nil {
			return "", err
		}
		vals, err := res.Col(0)
		if err != nil {
			return "", err
		}
		out = append(out, vals...)
	}

	return codec.NumbersToText(out), nil
}
