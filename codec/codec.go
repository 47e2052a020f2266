// SPDX-License-Identifier: MIT

package codec

import (
	"strings"

	"github.com/katalvlaran/hillcipher/modular"
)

const (
	// Alphabet defines the letter↔index bijection: Alphabet[i] has index i.
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// Modulus is the size of Alphabet; all cipher arithmetic wraps modulo it.
	Modulus = len(Alphabet)
)

// toUpperASCII folds 'a'..'z' to 'A'..'Z' and leaves everything else alone.
func toUpperASCII(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}

	return r
}

// Clean uppercases every letter and drops every character outside A-Z.
// Letters outside the Latin alphabet (é, ß, Ω…) are dropped as well, so the
// result always satisfies TextToNumbers.
//
//	Clean("He1Lo!!") == "HELO"
func Clean(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		r = toUpperASCII(r)
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// CleanPreserve returns text unchanged. It is the "preserve non-letters"
// mode of the cleaning step; the cipher never uses it.
func CleanPreserve(text string) string { return text }

// LetterIndex returns the alphabet index of a single letter, case-folded.
//
// Errors:
//   - *InvalidCharacterError (Pos = -1) when r is not a Latin letter.
func LetterIndex(r rune) (int, error) {
	u := toUpperASCII(r)
	if u < 'A' || u > 'Z' {
		return 0, &InvalidCharacterError{Char: r, Pos: -1}
	}

	return int(u - 'A'), nil
}

// TextToNumbers maps each letter of text to its index (A=0 … Z=25).
// The input must already be uppercase A-Z; no cleaning is done here.
//
// Errors:
//   - *InvalidCharacterError for the first character outside Alphabet.
func TextToNumbers(text string) ([]int, error) {
	out := make([]int, 0, len(text))
	for pos, r := range text {
		if r < 'A' || r > 'Z' {
			return nil, &InvalidCharacterError{Char: r, Pos: pos}
		}
		out = append(out, int(r-'A'))
	}

	return out, nil
}

// NumbersToText maps each number n to Alphabet[n mod 26]. The wrap is
// applied to every value, normalised or not; negative values wrap too.
func NumbersToText(nums []int) string {
	b := make([]byte, len(nums))
	for i, n := range nums {
		b[i] = Alphabet[modular.Mod(n, Modulus)]
	}

	return string(b)
}
