// SPDX-License-Identifier: MIT
// Package matrix provides exact-integer linear algebra on *Dense:
// minors, recursive determinant, cofactor/adjugate, transpose and matrix
// multiplication. All functions perform strict fail-fast validation, never
// mutate their inputs and return freshly allocated results.
//
// Purpose:
//   - Declare canonical integer kernels used by the modular inversion layer.
//   - Define operation tags for uniform error reporting.
//
// Notes:
//   - No floating point and no modular reduction happen in this file; the
//     sign and magnitude of the true determinant matter before reducing.
//   - Sums and products are accumulated in math/big. A result that does not
//     fit in int is reported as ErrOverflow, never wrapped.

package matrix

import (
	"fmt"
	"math"
	"math/big"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMinor       = "Minor"
	opDeterminant = "Determinant"
	opCofactor    = "Cofactor"
	opTranspose   = "Transpose"
	opAdjugate    = "Adjugate"
	opMul         = "Mul"
	opMulMod      = "MulMod"
	opReduceMod   = "ReduceMod"
	opInverseMod  = "InverseMod"
)

var (
	bigMaxInt = big.NewInt(math.MaxInt)
	bigMinInt = big.NewInt(math.MinInt)
)

// toInt narrows an exact value to int, or reports false when it does not fit.
func toInt(x *big.Int) (int, bool) {
	if x.Cmp(bigMaxInt) > 0 || x.Cmp(bigMinInt) < 0 {
		return 0, false
	}

	return int(x.Int64()), true
}

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// cofactorSign returns (-1)^(i+j).
func cofactorSign(i, j int) int {
	if (i+j)%2 == 0 {
		return 1
	}

	return -1
}

// skipIndex returns [0..n) without k, in ascending order.
func skipIndex(n, k int) []int {
	idx := make([]int, 0, n-1)
	for t := 0; t < n; t++ {
		if t != k {
			idx = append(idx, t)
		}
	}

	return idx
}

// Minor returns the (n-1)×(n-1) matrix formed by deleting row i and column j.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m), ValidateIndex(m, i, j).
//   - Stage 2: Induced(rows≠i, cols≠j) copies the remaining cells.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrOutOfRange.
//
// Complexity:
//   - Time O(n²), Space O(n²).
//
// Notes:
//   - The minor of a 1×1 matrix is the 0×0 matrix.
func Minor(m *Dense, i, j int) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if err := ValidateIndex(m, i, j); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	return minor(m, i, j), nil
}

// minor is the unchecked kernel behind Minor; i, j are in range.
func minor(m *Dense, i, j int) *Dense {
	res, _ := m.Induced(skipIndex(m.r, i), skipIndex(m.c, j)) // indices valid by construction

	return res
}

// Determinant computes the exact integer determinant by cofactor expansion
// along row 0.
//
// Implementation:
//   - n == 0 → 1 (empty product; makes the 1×1 adjugate equal [[1]]).
//   - n == 1 → the single element.
//   - n == 2 → ad − bc in closed form.
//   - n > 2  → Σ_j (-1)^j · m[0][j] · det(minor(m, 0, j)).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//   - ErrOverflow when the determinant does not fit in int.
//
// Complexity:
//   - Time O(n!). Intended for teaching-scale keys (n ≤ ~8); the cost grows
//     factorially and this path must not be used for large matrices.
func Determinant(m *Dense) (int, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	det, ok := toInt(determinant(m))
	if !ok {
		return 0, matrixErrorf(opDeterminant, ErrOverflow)
	}

	return det, nil
}

// determinant is the unchecked recursive kernel; m is square.
func determinant(m *Dense) *big.Int {
	switch m.r {
	case 0:
		return big.NewInt(1)
	case 1:
		return big.NewInt(int64(m.data[0]))
	case 2:
		ad := new(big.Int).Mul(big.NewInt(int64(m.data[0])), big.NewInt(int64(m.data[3])))
		bc := new(big.Int).Mul(big.NewInt(int64(m.data[1])), big.NewInt(int64(m.data[2])))

		return ad.Sub(ad, bc)
	}

	det := new(big.Int)
	term := new(big.Int)
	for j := 0; j < m.c; j++ {
		a := m.data[j]
		if a == 0 {
			continue // term vanishes; skip the recursive minor
		}
		term.Mul(big.NewInt(int64(a)), determinant(minor(m, 0, j)))
		if cofactorSign(0, j) < 0 {
			det.Sub(det, term)
		} else {
			det.Add(det, term)
		}
	}

	return det
}

// Cofactor returns C with C[i][j] = (-1)^(i+j) · det(minor(m, i, j)).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//   - ErrOverflow when an entry does not fit in int.
//
// Complexity:
//   - Time O(n² · (n-1)!), Space O(n²).
func Cofactor(m *Dense) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}

	n := m.r
	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			d := determinant(minor(m, i, j))
			if cofactorSign(i, j) < 0 {
				d.Neg(d)
			}
			v, ok := toInt(d)
			if !ok {
				return nil, matrixErrorf(opCofactor, fmt.Errorf("(%d,%d): %w", i, j, ErrOverflow))
			}
			res.data[i*n+j] = v
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.r, m.c
	res, err := newDenseZeroOK(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return res, nil
}

// Adjugate returns adj(m) = Cofactor(m)ᵀ, so that m · adj(m) = det(m) · I.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrOverflow.
func Adjugate(m *Dense) (*Dense, error) {
	cof, err := Cofactor(m)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	adj, err := Transpose(cof)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return adj, nil
}

// Mul returns the matrix product a × b (a: r×n, b: n×c → r×c).
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b). Allocate result r×c.
//   - Stage 2: per cell, accumulate Σ_k a[i,k]·b[k,j] exactly, then narrow.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
//   - ErrOverflow when an entry of the product does not fit in int.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Zero a[i,k] are skipped.
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.r, a.c, b.c
	res, err := newDenseZeroOK(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k    int
		av         int
		rowOffsetA int
		ok         bool
	)
	acc, term := new(big.Int), new(big.Int)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		for j = 0; j < bCols; j++ {
			acc.SetInt64(0)
			for k = 0; k < aCols; k++ {
				av = a.data[rowOffsetA+k]
				if av == 0 {
					continue
				}
				term.SetInt64(int64(av))
				acc.Add(acc, term.Mul(term, big.NewInt(int64(b.data[k*bCols+j]))))
			}
			if res.data[i*bCols+j], ok = toInt(acc); !ok {
				return nil, matrixErrorf(opMul, fmt.Errorf("(%d,%d): %w", i, j, ErrOverflow))
			}
		}
	}

	return res, nil
}
