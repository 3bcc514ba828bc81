// SPDX-License-Identifier: MIT
// Package qstats: shared density-matrix validation and spectrum helpers.
//
// Purpose:
//   - validateDensity is the single gate every statistic passes through:
//     power-of-two dimension, Hermitian within ε, unit trace within ε.
//   - clampSpectrum applies the eigenvalue policy: values in [−1e-7, 0)
//     are rounded to 0; anything lower is ErrNegativeEigenvalue.
//   - entropyOf turns a clamped spectrum into −Σ λ log₂ λ with the
//     0·log₂0 ≡ 0 convention.

package qstats

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/quirq/cmatrix"
)

// validateDensity checks that rho is a 2^m × 2^m density matrix and
// returns m. Violations are numerical failures of the statistic.
func validateDensity(rho *cmatrix.Dense, eps float64) (int, error) {
	if err := cmatrix.ValidateHermitian(rho, eps); err != nil {
		return 0, err
	}
	m, err := cmatrix.ValidatePowerOfTwo(rho.Rows())
	if err != nil {
		return 0, err
	}
	tr, err := cmatrix.Trace(rho)
	if err != nil {
		return 0, err
	}
	if !scalar.EqualWithinAbs(real(tr), 1, eps) || math.Abs(imag(tr)) > eps {
		return 0, ErrBadTrace
	}

	return m, nil
}

// clampSpectrum zeroes eigenvalues in [−tol, 0) in place and rejects
// anything below −tol. tol is the eigenvalue tolerance (1e-7 policy).
func clampSpectrum(values []float64, tol float64) error {
	for i, v := range values {
		if v < -tol {
			return ErrNegativeEigenvalue
		}
		if v < 0 {
			values[i] = 0
		}
	}

	return nil
}

// entropyOf returns −Σ λ log₂ λ over a clamped spectrum, in bits.
// Eigenvalues below tol contribute 0 (the 0·log₂0 convention).
func entropyOf(values []float64, tol float64) float64 {
	var h float64
	for _, v := range values {
		if v < tol {
			continue
		}
		h -= v * math.Log2(v)
	}

	return h
}

// clamp01 confines a provably-real probability to [0, 1].
func clamp01(p float64) float64 {
	return math.Min(1, math.Max(0, p))
}
