// SPDX-License-Identifier: MIT
// Package qstats: single-qubit descriptors over a 2×2 reduced ρ.
//
// All functions validate the input as a density matrix first and derive
// their value from the entries a = ρ[0,0], b = ρ[0,1], d = ρ[1,1] of
// ρ = [[a, b], [b*, d]].

package qstats

import (
	"math"

	"github.com/katalvlaran/quirq/cmatrix"
)

// entries2x2 validates ρ as a 2×2 density matrix and unpacks (a, b, d).
func entries2x2(rho *cmatrix.Dense) (a float64, b complex128, d float64, err error) {
	m, err := validateDensity(rho, cmatrix.DefaultEpsilon)
	if err != nil {
		return 0, 0, 0, err
	}
	if m != 1 {
		return 0, 0, 0, ErrBadDimension
	}
	data := rho.Data()

	return real(data[0]), data[1], real(data[3]), nil
}

// ProbOne returns the probability of measuring 1 on the qubit: the d
// entry, clamped to [0, 1].
func ProbOne(rho *cmatrix.Dense) (float64, error) {
	_, _, d, err := entries2x2(rho)
	if err != nil {
		return 0, err
	}

	return clamp01(d), nil
}

// RelativePhase returns arg(b) in radians when |b| > ε, else 0 by
// convention (the phase of a diagonal ρ is undefined).
func RelativePhase(rho *cmatrix.Dense) (float64, error) {
	_, b, _, err := entries2x2(rho)
	if err != nil {
		return 0, err
	}
	if cmatrix.Abs2(b) <= cmatrix.DefaultEpsilon*cmatrix.DefaultEpsilon {
		return 0, nil
	}

	return cmatrix.Phase(b), nil
}

// Bloch returns the Bloch coordinates (x, y, z) of the qubit:
// x = 2·Re b, y = −2·Im b, z = a − d, so that ρ = (I + xX + yY + zZ)/2.
// The vector length is ≤ 1 and equals √(2·purity − 1).
func Bloch(rho *cmatrix.Dense) (x, y, z float64, err error) {
	a, b, d, err := entries2x2(rho)
	if err != nil {
		return 0, 0, 0, err
	}

	return 2 * real(b), -2 * imag(b), a - d, nil
}

// Purity returns tr(ρ²) for a density matrix of any power-of-two size.
// For Hermitian ρ this is Σ|ρ_ij|², evaluated without forming ρ².
// Range: [2^−M, 1] on M qubits; 1 iff ρ is pure.
func Purity(rho *cmatrix.Dense) (float64, error) {
	if _, err := validateDensity(rho, cmatrix.DefaultEpsilon); err != nil {
		return 0, err
	}
	var sum float64
	for _, v := range rho.Data() {
		sum += cmatrix.Abs2(v)
	}

	return sum, nil
}

// LinearEntropy returns 1 − tr(ρ²).
func LinearEntropy(rho *cmatrix.Dense) (float64, error) {
	p, err := Purity(rho)
	if err != nil {
		return 0, err
	}

	return 1 - p, nil
}

// spectrum2x2 returns the closed-form eigenvalues of a 2×2 density
// matrix: ((a+d) ± √((a−d)² + 4|b|²)) / 2.
func spectrum2x2(a float64, b complex128, d float64) [2]float64 {
	disc := math.Sqrt((a-d)*(a-d) + 4*cmatrix.Abs2(b))

	return [2]float64{(a + d - disc) / 2, (a + d + disc) / 2}
}

// VonNeumannEntropy2 returns −Σ λ log₂ λ for a 2×2 ρ from its closed-form
// spectrum; no oracle involved. Eigenvalues below ε contribute 0.
func VonNeumannEntropy2(rho *cmatrix.Dense) (float64, error) {
	a, b, d, err := entries2x2(rho)
	if err != nil {
		return 0, err
	}
	lam := spectrum2x2(a, b, d)
	if err := clampSpectrum(lam[:], cmatrix.DefaultEigenEpsilon); err != nil {
		return 0, err
	}

	return entropyOf(lam[:], cmatrix.DefaultEpsilon), nil
}
