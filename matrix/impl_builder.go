// SPDX-License-Identifier: MIT

// Package matrix - boundary builders.
//
// Purpose:
//   - Shape caller data ([][]int, flat []int, "3,3;2,5" text) into *Dense.
//   - Validate shape at the boundary so kernels can assume well-formed input.
//   - Always copy: the caller's slices are never aliased by the result.

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	opFromRows  = "FromRows"
	opFromFlat  = "FromFlat"
	opParseRows = "ParseRows"

	// RowSeparator separates rows in the textual matrix format.
	RowSeparator = ";"
	// ValueSeparator separates values inside a row.
	ValueSeparator = ","
)

// FromRows copies a rectangular [][]int into a new Dense.
//
// Errors:
//   - ErrInvalidDimensions for zero rows or an empty first row.
//   - ErrDimensionMismatch for ragged input.
func FromRows(rows [][]int) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	res, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(opFromRows,
				fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), c, ErrDimensionMismatch))
		}
		copy(res.data[i*c:(i+1)*c], row)
	}

	return res, nil
}

// FromSquareRows is FromRows followed by a squareness check; use it for keys.
func FromSquareRows(rows [][]int) (*Dense, error) {
	m, err := FromRows(rows)
	if err != nil {
		return nil, err
	}
	if err = ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}

	return m, nil
}

// FromFlat shapes a flat list of n² integers into an n×n matrix, row-major.
// n is the integer square root of len(flat).
//
// Errors:
//   - ErrInvalidKeyShape when len(flat) is not n² for some n ≥ 1.
func FromFlat(flat []int) (*Dense, error) {
	l := len(flat)
	n := isqrt(l)
	if n < 1 || n*n != l {
		return nil, matrixErrorf(opFromFlat, fmt.Errorf("length %d: %w", l, ErrInvalidKeyShape))
	}
	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opFromFlat, err)
	}
	copy(res.data, flat)

	return res, nil
}

// isqrt returns ⌊√l⌋ for l ≥ 0, corrected for float rounding.
func isqrt(l int) int {
	n := int(math.Sqrt(float64(l)))
	for n*n > l {
		n--
	}
	for (n+1)*(n+1) <= l {
		n++
	}

	return n
}

// ParseRows parses the textual key format "3,3;2,5" into a square matrix:
// rows separated by ';', values by ','. Blank rows and blank values are
// ignored and surrounding spaces are trimmed.
//
// Errors:
//   - ErrParse for a non-integer token or empty input.
//   - ErrDimensionMismatch for ragged or non-square input.
func ParseRows(s string) (*Dense, error) {
	var rows [][]int
	for _, rawRow := range strings.Split(s, RowSeparator) {
		if strings.TrimSpace(rawRow) == "" {
			continue
		}
		var row []int
		for _, tok := range strings.Split(rawRow, ValueSeparator) {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, matrixErrorf(opParseRows, fmt.Errorf("%q: %w", tok, ErrParse))
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, matrixErrorf(opParseRows, fmt.Errorf("empty input: %w", ErrParse))
	}
	for i, row := range rows {
		if len(row) != len(rows) {
			return nil, matrixErrorf(opParseRows,
				fmt.Errorf("row %d has %d values, want %d (square): %w", i, len(row), len(rows), ErrDimensionMismatch))
		}
	}

	return FromRows(rows)
}

// FormatRows renders m in the textual key format accepted by ParseRows.
func FormatRows(m *Dense) string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		if i > 0 {
			b.WriteString(RowSeparator)
		}
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(ValueSeparator)
			}
			b.WriteString(strconv.Itoa(m.data[i*m.c+j]))
		}
	}

	return b.String()
}

// ColumnVector returns the n×1 matrix holding values (copied).
func ColumnVector(values []int) (*Dense, error) {
	res, err := NewDense(len(values), 1)
	if err != nil {
		return nil, err
	}
	copy(res.data, values)

	return res, nil
}
