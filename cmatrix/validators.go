// SPDX-License-Identifier: MIT
// Package cmatrix: centralized pure validators.
//
// Purpose:
//   - Provide a single, canonical source of truth for common checks.
//   - Keep kernels minimal by delegating shape/nil/Hermitian checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly via the op-tagged facade.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - The Hermitian check runs O(n²) on the upper triangle only.

package cmatrix

import "math/cmplx"

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil with equal dimensions.
func ValidateSameShape(a, b *Dense) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.r != b.r || a.c != b.c {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows for matrix multiply.
func ValidateMulCompatible(a, b *Dense) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.c != b.r {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateSquare ensures m is non-nil and square.
func ValidateSquare(m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.r != m.c {
		return ErrNonSquare
	}

	return nil
}

// ValidatePowerOfTwo ensures d = 2^k for some k ≥ 0 and returns k.
// Used by ReverseEndianness and every density-matrix consumer.
func ValidatePowerOfTwo(d int) (int, error) {
	if d <= 0 || d&(d-1) != 0 {
		return 0, ErrNotPowerOfTwo
	}
	k := 0
	for 1<<k < d {
		k++
	}

	return k, nil
}

// ValidateHermitian ensures m is square and conjugate-symmetric within eps.
// Upper-triangle scan only; fails fast on the first violation.
func ValidateHermitian(m *Dense, eps float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	n := m.r
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			d := m.data[i*n+j] - cmplx.Conj(m.data[j*n+i])
			if cmplx.Abs(d) > eps {
				return ErrNotHermitian
			}
		}
	}

	return nil
}
