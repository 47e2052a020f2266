// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1
	}

	return I, nil
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m *Dense) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.r)
}

// Equal reports whether a and b have the same shape and entries.
// Two nil matrices are equal.
func Equal(a, b *Dense) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for k := range a.data {
		if a.data[k] != b.data[k] {
			return false
		}
	}

	return true
}

// IsIdentity reports whether m is a square identity matrix.
func IsIdentity(m *Dense) bool {
	if m == nil || !m.IsSquare() {
		return false
	}
	I, err := NewIdentity(m.r)
	if err != nil {
		return false
	}

	return Equal(m, I)
}

// Product is an alias for Mul: matrix product a × b.
func Product(a, b *Dense) (*Dense, error) { return Mul(a, b) }

// T is an alias for Transpose: returns mᵀ.
func T(m *Dense) (*Dense, error) { return Transpose(m) }

// Det is an alias for Determinant.
func Det(m *Dense) (int, error) { return Determinant(m) }
