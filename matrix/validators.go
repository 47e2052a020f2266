// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/modulus checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Square).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is non-nil. Errors: ErrDimensionMismatch.
func ValidateSquare(m *Dense) error {
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d: %w", m.r, m.c, ErrDimensionMismatch))
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSquareNonNil(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateMulCompatible – Composite: NotNil(a) → NotNil(b) → a.Cols == b.Rows.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (message carries both shapes).
// Complexity: O(1).
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("%dx%d × %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}

	return nil
}

// ValidateModulus ensures m > 0.
func ValidateModulus(m int) error {
	if m <= 0 {
		return validatorErrorf("ValidateModulus", fmt.Errorf("m=%d: %w", m, ErrInvalidModulus))
	}

	return nil
}

// ValidateIndex ensures 0 ≤ i < m.Rows() and 0 ≤ j < m.Cols().
// Assumes m is non-nil. Errors: ErrOutOfRange.
func ValidateIndex(m *Dense, i, j int) error {
	if _, err := m.indexOf(i, j); err != nil {
		return validatorErrorf("ValidateIndex", fmt.Errorf("(%d,%d): %w", i, j, err))
	}

	return nil
}
