// SPDX-License-Identifier: MIT

// Package matrix - modular kernels over Z/m.
//
// Purpose:
//   - ReduceMod / MulMod normalise every entry into [0, m).
//   - InverseMod combines the determinant, the scalar modular inverse and
//     the adjugate into a matrix inverse modulo m.
//   - Every kernel reduces its operands first and stays in Z/m, so no
//     intermediate value can overflow.
//
// Guarantee:
//   - When InverseMod succeeds, MulMod(mat, inv, m) and MulMod(inv, mat, m)
//     are both the identity.

package matrix

import (
	"errors"

	"github.com/katalvlaran/hillcipher/modular"
)

// ReduceMod returns a copy of mat with every entry reduced into [0, m).
//
// Errors:
//   - ErrNilMatrix, ErrInvalidModulus.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ReduceMod(mat *Dense, m int) (*Dense, error) {
	if err := ValidateNotNil(mat); err != nil {
		return nil, matrixErrorf(opReduceMod, err)
	}
	if err := ValidateModulus(m); err != nil {
		return nil, matrixErrorf(opReduceMod, err)
	}

	res := mat.Clone()
	res.Apply(func(_, _ int, v int) int { return modular.Mod(v, m) })

	return res, nil
}

// MulMod returns (a × b) mod m with entries in [0, m).
//
// Both operands are reduced into [0, m) first and every step is taken modulo
// m, so arbitrarily large entries give the exact residue.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrInvalidModulus.
func MulMod(a, b *Dense, m int) (*Dense, error) {
	if err := ValidateModulus(m); err != nil {
		return nil, matrixErrorf(opMulMod, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulMod, err)
	}
	ra, _ := ReduceMod(a, m) // validated above
	rb, _ := ReduceMod(b, m)

	return mulModReduced(ra, rb, m), nil
}

// mulModReduced multiplies operands already in [0, m).
func mulModReduced(a, b *Dense, m int) *Dense {
	res, _ := newDenseZeroOK(a.r, b.c) // shape valid by construction
	var i, j, k, av, acc int
	for i = 0; i < a.r; i++ {
		for j = 0; j < b.c; j++ {
			acc = 0
			for k = 0; k < a.c; k++ {
				if av = a.data[i*a.c+k]; av == 0 {
					continue
				}
				acc = modular.AddMod(acc, modular.MulMod(av, b.data[k*b.c+j], m), m)
			}
			res.data[i*b.c+j] = acc
		}
	}

	return res
}

// determinantMod is the recursive cofactor expansion carried out in Z/m;
// mat is square with entries in [0, m).
func determinantMod(mat *Dense, m int) int {
	switch mat.r {
	case 0:
		return modular.Mod(1, m)
	case 1:
		return mat.data[0]
	case 2:
		return modular.SubMod(
			modular.MulMod(mat.data[0], mat.data[3], m),
			modular.MulMod(mat.data[1], mat.data[2], m), m)
	}

	det := 0
	for j := 0; j < mat.c; j++ {
		a := mat.data[j]
		if a == 0 {
			continue
		}
		term := modular.MulMod(a, determinantMod(minor(mat, 0, j), m), m)
		if cofactorSign(0, j) < 0 {
			det = modular.SubMod(det, term, m)
		} else {
			det = modular.AddMod(det, term, m)
		}
	}

	return det
}

// InverseMod returns the inverse of the square matrix mat modulo m.
//
// Implementation:
//   - Stage 1: r = ReduceMod(mat, m); detMod = det(r) computed in Z/m.
//   - Stage 2: detInv = modular.Inverse(detMod, m); failure →
//     *KeyNotInvertibleError carrying the exact det, detMod and m.
//   - Stage 3: inv[i][j] = detInv · (-1)^(i+j) · det(minor(r, j, i)) mod m.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrInvalidModulus.
//   - *KeyNotInvertibleError (matches ErrKeyNotInvertible) when
//     gcd(det mod m, m) ≠ 1. Never substituted with a default key.
//
// Complexity:
//   - Dominated by the adjugate: O(n² · (n-1)!).
func InverseMod(mat *Dense, m int) (*Dense, error) {
	if err := ValidateSquareNonNil(mat); err != nil {
		return nil, matrixErrorf(opInverseMod, err)
	}
	if err := ValidateModulus(m); err != nil {
		return nil, matrixErrorf(opInverseMod, err)
	}

	r, _ := ReduceMod(mat, m) // validated above
	detMod := determinantMod(r, m)
	detInv, err := modular.Inverse(detMod, m)
	if err != nil {
		if errors.Is(err, modular.ErrNotInvertible) {
			return nil, newKeyNotInvertibleError(determinant(mat), detMod, m, err)
		}

		return nil, matrixErrorf(opInverseMod, err)
	}

	n := r.r
	inv, _ := NewDense(n, n) // n ≥ 1 after ValidateSquareNonNil
	var i, j, c int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			// adj[i][j] is the (j,i) cofactor
			c = determinantMod(minor(r, j, i), m)
			if cofactorSign(i, j) < 0 {
				c = modular.SubMod(0, c, m)
			}
			inv.data[i*n+j] = modular.MulMod(detInv, c, m)
		}
	}

	return inv, nil
}

// IsInvertibleMod reports whether InverseMod(mat, m) would succeed.
// Cheaper than InverseMod: only the determinant is computed.
func IsInvertibleMod(mat *Dense, m int) bool {
	if ValidateSquareNonNil(mat) != nil || ValidateModulus(m) != nil {
		return false
	}
	r, _ := ReduceMod(mat, m)
	g, _, _ := modular.ExtendedGCD(determinantMod(r, m), m)

	return g == 1
}
