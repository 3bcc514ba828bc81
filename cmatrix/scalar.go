// SPDX-License-Identifier: MIT
// Package cmatrix: complex-scalar helpers shared across the simulator.
// These are free functions over complex128; they carry the numeric policy
// (tolerances, chopping) that the statistics layer relies on.

package cmatrix

import (
	"math"
	"math/cmplx"
)

// DefaultEpsilon is the module-wide tolerance for "equal up to noise"
// magnitude comparisons (norms, Hermitian symmetry, amplitude equality).
const DefaultEpsilon = 1e-9

// DefaultEigenEpsilon is the looser tolerance used when clamping
// eigenvalues that are provably nonnegative but numerically noisy.
const DefaultEigenEpsilon = 1e-7

// Abs2 returns |z|^2 without the square root of cmplx.Abs.
func Abs2(z complex128) float64 {
	return real(z)*real(z) + imag(z)*imag(z)
}

// Phase returns arg(z) in (-π, π] via atan2(im, re).
// By convention Phase(0) = 0.
func Phase(z complex128) float64 {
	return cmplx.Phase(z)
}

// IsApproxReal reports whether the imaginary part of z is within eps of 0.
func IsApproxReal(z complex128, eps float64) bool {
	return math.Abs(imag(z)) <= eps
}

// Chop zeroes each component of z whose magnitude is at most eps.
// Applied before reporting provably-real quantities; never an error.
func Chop(z complex128, eps float64) complex128 {
	re, im := real(z), imag(z)
	if math.Abs(re) <= eps {
		re = 0
	}
	if math.Abs(im) <= eps {
		im = 0
	}

	return complex(re, im)
}
