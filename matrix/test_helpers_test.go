// SPDX-License-Identifier: MIT

// Test helpers shared by the matrix tests.
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Keep fixtures literal so expected values can be checked by hand.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/hillcipher/matrix"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// hillModulus mirrors codec.Modulus without importing the upper layer.
const hillModulus = 26

// Classic keys used across tests.
var (
	key2x2       = [][]int{{3, 3}, {2, 5}}
	key2x2Inv    = [][]int{{15, 17}, {20, 9}}
	key3x3       = [][]int{{6, 24, 1}, {13, 16, 10}, {20, 17, 15}}
	key3x3Inv    = [][]int{{8, 5, 10}, {21, 8, 21}, {21, 12, 8}}
	keySingular  = [][]int{{2, 4}, {9, 15}}
	keyScalar    = [][]int{{7}}
	keyScalarInv = [][]int{{15}}
)

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustRows builds a *Dense from literal rows or fails the test.
func MustRows(t *testing.T, rows [][]int) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m *matrix.Dense, i, j int) int {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// CompareExact asserts m equals want cell by cell.
func CompareExact(t *testing.T, want [][]int, m *matrix.Dense) {
	t.Helper()
	require.Equal(t, want, m.ToRows())
}

// RandomFill writes deterministic pseudo-random values in [lo, hi] into m.
func RandomFill(t *testing.T, m *matrix.Dense, seed int64, lo, hi int) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			require.NoError(t, m.Set(i, j, lo+rng.Intn(hi-lo+1)))
		}
	}
}

// squareGen draws an n×n matrix with n in [minN, maxN] and entries in [lo, hi].
func squareGen(minN, maxN, lo, hi int) *rapid.Generator[*matrix.Dense] {
	return rapid.Custom(func(t *rapid.T) *matrix.Dense {
		n := rapid.IntRange(minN, maxN).Draw(t, "n")
		flat := rapid.SliceOfN(rapid.IntRange(lo, hi), n*n, n*n).Draw(t, "entries")
		m, err := matrix.FromFlat(flat)
		if err != nil {
			t.Fatalf("FromFlat(%v): %v", flat, err)
		}

		return m
	})
}
