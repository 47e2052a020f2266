// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/hillcipher/matrix"
	"github.com/stretchr/testify/require"
)

func TestFromRows(t *testing.T) {
	src := [][]int{{1, 2, 3}, {4, 5, 6}}
	m, err := matrix.FromRows(src)
	require.NoError(t, err)
	src[0][0] = 100 // caller mutation must not leak into the matrix
	CompareExact(t, [][]int{{1, 2, 3}, {4, 5, 6}}, m)

	_, err = matrix.FromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.FromRows([][]int{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.FromRows([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.FromSquareRows(src)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	sq, err := matrix.FromSquareRows(key2x2)
	require.NoError(t, err)
	require.True(t, sq.IsSquare())
}

func TestFromFlat(t *testing.T) {
	for _, tc := range []struct {
		name string
		flat []int
		want [][]int
	}{
		{"1", []int{7}, [][]int{{7}}},
		{"4", []int{3, 3, 2, 5}, key2x2},
		{"9", []int{6, 24, 1, 13, 16, 10, 20, 17, 15}, key3x3},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.FromFlat(tc.flat)
			require.NoError(t, err)
			CompareExact(t, tc.want, m)
		})
	}
}

func TestFromFlat_InvalidKeyShape(t *testing.T) {
	for _, l := range []int{0, 2, 3, 5, 8, 10, 15, 17} {
		_, err := matrix.FromFlat(make([]int, l))
		require.ErrorIs(t, err, matrix.ErrInvalidKeyShape, "len=%d", l)
	}
}

func TestParseRows(t *testing.T) {
	m, err := matrix.ParseRows("3,3;2,5")
	require.NoError(t, err)
	CompareExact(t, key2x2, m)

	m, err = matrix.ParseRows(" 6, 24, 1 ; 13,16,10;20,17,15; ")
	require.NoError(t, err)
	CompareExact(t, key3x3, m)

	m, err = matrix.ParseRows("-1")
	require.NoError(t, err)
	CompareExact(t, [][]int{{-1}}, m)
}

func TestParseRows_Errors(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want error
	}{
		{"", matrix.ErrParse},
		{" ; ", matrix.ErrParse},
		{"3,x;2,5", matrix.ErrParse},
		{"3,3;2", matrix.ErrDimensionMismatch},
		{"1,2,3;4,5,6", matrix.ErrDimensionMismatch},
	} {
		_, err := matrix.ParseRows(tc.in)
		require.ErrorIs(t, err, tc.want, "input %q", tc.in)
	}
}

func TestFormatRows_RoundTrip(t *testing.T) {
	m := MustRows(t, [][]int{{6, -24, 1}, {13, 16, 10}, {20, 17, 15}})
	s := matrix.FormatRows(m)
	require.Equal(t, "6,-24,1;13,16,10;20,17,15", s)
	back, err := matrix.ParseRows(s)
	require.NoError(t, err)
	require.True(t, matrix.Equal(m, back))
}

func TestIdentityHelpers(t *testing.T) {
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	require.True(t, matrix.IsIdentity(I))
	require.False(t, matrix.IsIdentity(MustRows(t, key2x2)))
	require.False(t, matrix.IsIdentity(MustDense(t, 1, 2)))

	like, err := matrix.IdentityLike(MustRows(t, key2x2))
	require.NoError(t, err)
	CompareExact(t, [][]int{{1, 0}, {0, 1}}, like)
	_, err = matrix.IdentityLike(MustDense(t, 1, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	require.True(t, matrix.Equal(nil, nil))
	require.False(t, matrix.Equal(I, nil))
}
