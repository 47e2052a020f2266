// SPDX-License-Identifier: MIT

package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCharacter is matched by every *InvalidCharacterError.
	ErrInvalidCharacter = errors.New("codec: character not in alphabet")

	// ErrInvalidBlockSize indicates a block size < 1.
	ErrInvalidBlockSize = errors.New("codec: block size must be >= 1")
)

// InvalidCharacterError reports the first character outside the alphabet.
type InvalidCharacterError struct {
	Char rune // offending character
	Pos  int  // byte offset in the input, -1 for a standalone character
}

// Error implements error.
func (e *InvalidCharacterError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("codec: character %q not in alphabet %s", e.Char, Alphabet)
	}

	return fmt.Sprintf("codec: character %q at offset %d not in alphabet %s", e.Char, e.Pos, Alphabet)
}

// Unwrap lets errors.Is(err, ErrInvalidCharacter) succeed.
func (e *InvalidCharacterError) Unwrap() error { return ErrInvalidCharacter }
