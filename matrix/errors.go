// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines the package-level sentinel errors and the one typed error
// (KeyNotInvertibleError) used across the matrix package. All algorithms MUST
// return these sentinels and tests MUST check them via errors.Is. No algorithm
// panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/hillcipher/modular"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with an operation tag via
// matrixErrorf; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> dimension mismatch -> modulus -> invertibility.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows, or a key matrix that is not square.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidModulus indicates a modulus m ≤ 0 passed to a modular kernel.
	ErrInvalidModulus = errors.New("matrix: modulus must be > 0")

	// ErrKeyNotInvertible is matched by every *KeyNotInvertibleError: the
	// determinant has no inverse modulo m, so the matrix cannot decrypt.
	ErrKeyNotInvertible = errors.New("matrix: key not invertible")

	// ErrInvalidKeyShape is returned when a flat key of length L cannot be
	// shaped into an n×n matrix (L is not a perfect square n² with n ≥ 1).
	ErrInvalidKeyShape = errors.New("matrix: key length is not a perfect square")

	// ErrParse indicates a malformed textual matrix (e.g. "3,x;2,5").
	ErrParse = errors.New("matrix: cannot parse matrix")

	// ErrOverflow indicates an exact integer result that does not fit in int.
	ErrOverflow = errors.New("matrix: integer overflow")
)

// KeyNotInvertibleError reports a square matrix whose determinant has no
// inverse modulo Modulus.
//
// errors.Is(err, ErrKeyNotInvertible) and errors.Is(err, modular.ErrNotInvertible)
// both hold; errors.As reaches the scalar *modular.NotInvertibleError.
type KeyNotInvertibleError struct {
	Det         int      // exact integer determinant; 0 when DetOverflow
	DetOverflow bool     // the exact determinant does not fit in int
	DetMod      int      // determinant mod Modulus, in [0, Modulus)
	Modulus     int      // modulus used for inversion
	exact       *big.Int // exact determinant, always set
	cause       error    // scalar failure from modular.Inverse
}

// newKeyNotInvertibleError fills Det from the exact determinant.
func newKeyNotInvertibleError(exact *big.Int, detMod, m int, cause error) *KeyNotInvertibleError {
	det, ok := toInt(exact)

	return &KeyNotInvertibleError{
		Det:         det,
		DetOverflow: !ok,
		DetMod:      detMod,
		Modulus:     m,
		exact:       exact,
		cause:       cause,
	}
}

// Error implements error.
func (e *KeyNotInvertibleError) Error() string {
	return fmt.Sprintf("matrix: determinant %s (mod %d = %d) has no inverse: key not invertible",
		e.ExactDet(), e.Modulus, e.DetMod)
}

// ExactDet returns a copy of the exact determinant, whatever its size.
func (e *KeyNotInvertibleError) ExactDet() *big.Int {
	if e.exact == nil {
		return big.NewInt(int64(e.Det))
	}

	return new(big.Int).Set(e.exact)
}

// Is reports a match against ErrKeyNotInvertible.
func (e *KeyNotInvertibleError) Is(target error) bool { return target == ErrKeyNotInvertible }

// Unwrap exposes the scalar cause.
func (e *KeyNotInvertibleError) Unwrap() error { return e.cause }

// GCD returns gcd(DetMod, Modulus) as reported by the scalar inversion.
func (e *KeyNotInvertibleError) GCD() int {
	var nie *modular.NotInvertibleError
	if errors.As(e.cause, &nie) {
		return nie.GCD
	}

	return 0
}
