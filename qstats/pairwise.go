// SPDX-License-Identifier: MIT
// Package qstats: pairwise (4×4) descriptors and the general von Neumann
// entropy.
//
// Purpose:
//   - VonNeumannEntropy covers any 2^M × 2^M ρ through the injected
//     oracle (the 2×2 case short-circuits to the closed form).
//   - Correlation reads ⟨Z_i Z_j⟩ − ⟨Z_i⟩⟨Z_j⟩ from the diagonal of the
//     pair ρ and its marginals; no spectra needed.
//   - Concurrence implements Wootters' formula with only Hermitian
//     decompositions: the spectrum of ρ·ρ̃ equals that of the Hermitian
//     sandwich √ρ·ρ̃·√ρ, so the non-normal product never meets the
//     oracle directly.

package qstats

import (
	"math"
	"math/cmplx"
	"sort"

	"github.com/katalvlaran/quirq/cmatrix"
	"github.com/katalvlaran/quirq/eigen"
	"github.com/katalvlaran/quirq/gates"
	"github.com/katalvlaran/quirq/ptrace"
)

// VonNeumannEntropy returns −Σ λ log₂ λ for a density matrix of any
// power-of-two size, in bits. The 2×2 case uses the closed-form spectrum;
// larger inputs require a non-nil oracle.
// Errors: ErrNilOracle, ErrNegativeEigenvalue, eigen.ErrEigenFailed,
// plus the density validations.
func VonNeumannEntropy(rho *cmatrix.Dense, o eigen.Oracle) (float64, error) {
	m, err := validateDensity(rho, cmatrix.DefaultEpsilon)
	if err != nil {
		return 0, err
	}
	if m == 1 {
		return VonNeumannEntropy2(rho)
	}
	if o == nil {
		return 0, ErrNilOracle
	}
	values, _, err := o.Decompose(rho)
	if err != nil {
		return 0, err
	}
	if err := clampSpectrum(values, cmatrix.DefaultEigenEpsilon); err != nil {
		return 0, err
	}

	return entropyOf(values, cmatrix.DefaultEpsilon), nil
}

// zExpectation returns ⟨Z⟩ = p₀ − p₁ from a 2×2 density matrix diagonal.
func zExpectation(rho *cmatrix.Dense) float64 {
	data := rho.Data()

	return real(data[0]) - real(data[3])
}

// Correlation returns ⟨Z_i Z_j⟩ − ⟨Z_i⟩⟨Z_j⟩ for a 4×4 pair ρ, where bit 0
// of the pair index is qubit i (the lower kept wire) and bit 1 is qubit j.
// All three expectations come from diagonals; Z values are +1 for bit 0.
func Correlation(rho *cmatrix.Dense) (float64, error) {
	m, err := validateDensity(rho, cmatrix.DefaultEpsilon)
	if err != nil {
		return 0, err
	}
	if m != 2 {
		return 0, ErrBadDimension
	}

	// ⟨Z_i Z_j⟩ over the four diagonal entries of the pair state.
	var zz float64
	data := rho.Data()
	for k := 0; k < 4; k++ {
		sign := 1.0
		if k&1 != 0 {
			sign = -sign
		}
		if k&2 != 0 {
			sign = -sign
		}
		zz += sign * real(data[k*4+k])
	}

	// Marginals via the density-matrix partial-trace path.
	mi, err := ptrace.FromDensity(2, rho, []int{0}, true)
	if err != nil {
		return 0, err
	}
	mj, err := ptrace.FromDensity(2, rho, []int{1}, true)
	if err != nil {
		return 0, err
	}

	return zz - zExpectation(mi)*zExpectation(mj), nil
}

// sqrtPSD returns the PSD square root V·diag(√λ)·V† of a Hermitian ρ.
func sqrtPSD(rho *cmatrix.Dense, o eigen.Oracle) (*cmatrix.Dense, error) {
	values, vectors, err := o.Decompose(rho)
	if err != nil {
		return nil, err
	}
	if err := clampSpectrum(values, cmatrix.DefaultEigenEpsilon); err != nil {
		return nil, err
	}
	n := rho.Rows()
	scaled, err := cmatrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	// scaled = V·diag(√λ): scale the columns of V.
	vd := vectors.Data()
	sd := scaled.Data()
	for k := 0; k < n; k++ {
		root := complex(sqrtClamped(values[k]), 0)
		for i := 0; i < n; i++ {
			sd[i*n+k] = vd[i*n+k] * root
		}
	}
	vh, err := cmatrix.ConjTranspose(vectors)
	if err != nil {
		return nil, err
	}

	return cmatrix.Mul(scaled, vh)
}

// sqrtClamped is √max(v, 0); the spectrum is already clamped, the max
// only guards the exact-zero rounding.
func sqrtClamped(v float64) float64 {
	if v <= 0 {
		return 0
	}

	return math.Sqrt(v)
}

// Concurrence returns Wootters' entanglement monotone for a 4×4 pair ρ:
// with ρ̃ = (Y⊗Y)·ρ*·(Y⊗Y) and μ₁ ≥ … ≥ μ₄ the square roots of the
// spectrum of ρ·ρ̃, C = max(0, μ₁ − μ₂ − μ₃ − μ₄).
// The spectrum is obtained from the Hermitian sandwich √ρ·ρ̃·√ρ, which is
// similar to ρ·ρ̃, so a Hermitian-only oracle suffices.
func Concurrence(rho *cmatrix.Dense, o eigen.Oracle) (float64, error) {
	m, err := validateDensity(rho, cmatrix.DefaultEpsilon)
	if err != nil {
		return 0, err
	}
	if m != 2 {
		return 0, ErrBadDimension
	}
	if o == nil {
		return 0, ErrNilOracle
	}

	// ρ̃ = (Y⊗Y)·conj(ρ)·(Y⊗Y).
	yy, err := cmatrix.Tensor(gates.Y(), gates.Y())
	if err != nil {
		return 0, err
	}
	conjRho := rho.Clone()
	cd := conjRho.Data()
	for i := range cd {
		cd[i] = cmplx.Conj(cd[i])
	}
	tilde, err := cmatrix.NaryMul(yy, conjRho, yy)
	if err != nil {
		return 0, err
	}

	root, err := sqrtPSD(rho, o)
	if err != nil {
		return 0, err
	}
	sandwich, err := cmatrix.NaryMul(root, tilde, root)
	if err != nil {
		return 0, err
	}

	// Hermitianize: (M + M†)/2 chops the anti-Hermitian numerical noise.
	sandwichH, err := cmatrix.ConjTranspose(sandwich)
	if err != nil {
		return 0, err
	}
	sym, err := cmatrix.Add(sandwich, sandwichH)
	if err != nil {
		return 0, err
	}
	sym, err = cmatrix.Scale(sym, 0.5)
	if err != nil {
		return 0, err
	}

	values, _, err := o.Decompose(sym)
	if err != nil {
		return 0, err
	}
	if err := clampSpectrum(values, cmatrix.DefaultEigenEpsilon); err != nil {
		return 0, err
	}
	roots := make([]float64, len(values))
	for i, v := range values {
		roots[i] = sqrtClamped(v)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(roots)))

	c := roots[0] - roots[1] - roots[2] - roots[3]
	if c < 0 {
		c = 0
	}

	return c, nil
}
