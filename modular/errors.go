// SPDX-License-Identifier: MIT

package modular

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInvertible is returned when a scalar has no inverse modulo m,
	// i.e. gcd(a mod m, m) ≠ 1. Match it with errors.Is; the concrete error
	// is a *NotInvertibleError carrying the offending values.
	ErrNotInvertible = errors.New("modular: value is not invertible")

	// ErrInvalidModulus indicates a modulus m ≤ 0.
	ErrInvalidModulus = errors.New("modular: modulus must be > 0")
)

// NotInvertibleError reports a scalar that has no inverse modulo M.
type NotInvertibleError struct {
	A   int // value as supplied by the caller (before reduction)
	M   int // modulus
	GCD int // gcd(A mod M, M), always ≠ 1
}

// Error implements error.
func (e *NotInvertibleError) Error() string {
	return fmt.Sprintf("modular: no inverse for %d modulo %d (gcd=%d)", e.A, e.M, e.GCD)
}

// Unwrap lets errors.Is(err, ErrNotInvertible) succeed.
func (e *NotInvertibleError) Unwrap() error { return ErrNotInvertible }
