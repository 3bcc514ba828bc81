// SPDX-License-Identifier: MIT
// Package evolve: state-vector constructors and the normalization audit.

package evolve

import (
	"math"

	"github.com/katalvlaran/quirq/cmatrix"
)

// ZeroKet returns |0…0⟩ on n qubits: a 2^n × 1 column with amplitude 1 at
// index 0. Errors: ErrInvalidQubits.
func ZeroKet(n int) (*cmatrix.Dense, error) {
	return NewKet(n, 0)
}

// NewKet returns the computational basis state |basis⟩ on n qubits. Bit 0
// of basis is wire 0 (top wire). Errors: ErrInvalidQubits, ErrBadBasis.
func NewKet(n, basis int) (*cmatrix.Dense, error) {
	if n < 1 {
		return nil, ErrInvalidQubits
	}
	dim := 1 << n
	if basis < 0 || basis >= dim {
		return nil, ErrBadBasis
	}
	psi, err := cmatrix.NewDense(dim, 1)
	if err != nil {
		return nil, err
	}
	psi.Data()[basis] = 1

	return psi, nil
}

// KetFromAmplitudes wraps a copy of amps as a state vector. The length
// must be a power of two; normalization is the caller's concern (use
// ValidateNormalized to audit). Errors: ErrStateLength.
func KetFromAmplitudes(amps []complex128) (*cmatrix.Dense, error) {
	if _, err := cmatrix.ValidatePowerOfTwo(len(amps)); err != nil {
		return nil, ErrStateLength
	}

	return cmatrix.NewColumn(amps)
}

// KetPow returns |φ⟩^⊗n, the n-fold tensor power of a single-qubit ket.
// Errors: ErrInvalidQubits, ErrStateLength (φ must be 2×1).
func KetPow(phi *cmatrix.Dense, n int) (*cmatrix.Dense, error) {
	if n < 1 {
		return nil, ErrInvalidQubits
	}
	if phi == nil || phi.Rows() != 2 || phi.Cols() != 1 {
		return nil, ErrStateLength
	}
	factors := make([]*cmatrix.Dense, n)
	for i := range factors {
		factors[i] = phi
	}

	return cmatrix.NaryTensor(factors...)
}

// Norm2 returns Σ|ψ_r|², the squared Euclidean norm of the amplitudes.
// Complexity: O(len).
func Norm2(psi *cmatrix.Dense) (float64, error) {
	if psi == nil {
		return 0, cmatrix.ErrNilMatrix
	}
	var sum float64
	for _, a := range psi.Data() {
		sum += cmatrix.Abs2(a)
	}

	return sum, nil
}

// ValidateNormalized returns ErrNotNormalized when |Norm2(ψ) − 1| > eps.
// The recommended tolerance is cmatrix.DefaultEpsilon.
func ValidateNormalized(psi *cmatrix.Dense, eps float64) error {
	n2, err := Norm2(psi)
	if err != nil {
		return err
	}
	if math.Abs(n2-1) > eps {
		return ErrNotNormalized
	}

	return nil
}
