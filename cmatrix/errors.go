// SPDX-License-Identifier: MIT
// Package cmatrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// cmatrix package. All kernels MUST return these sentinels and tests MUST
// check them via errors.Is. No kernel panics on user-triggered conditions.

package cmatrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "cmatrix: ..." for consistency and to allow
// easy grepping across logs. Do not %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("Op: %w", ErrX)
// at the facade so callers still match via errors.Is.

var (
	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("cmatrix: nil matrix")

	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0),
	// or when a literal row set is ragged or empty.
	ErrBadShape = errors.New("cmatrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("cmatrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub on different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("cmatrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but not given.
	ErrNonSquare = errors.New("cmatrix: matrix is not square")

	// ErrNotPowerOfTwo signals that a dimension was required to be 2^k
	// (endianness reversal, density matrices) but was not.
	ErrNotPowerOfTwo = errors.New("cmatrix: dimension is not a power of two")

	// ErrNotHermitian signals that a matrix expected to be Hermitian violated
	// conjugate symmetry beyond the configured epsilon.
	ErrNotHermitian = errors.New("cmatrix: matrix is not Hermitian within eps")

	// ErrEmptyOperands is returned by n-ary facades given a zero-length list.
	ErrEmptyOperands = errors.New("cmatrix: empty operand list")
)
