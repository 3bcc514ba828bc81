// SPDX-License-Identifier: MIT
// Package qstats: batch helpers over a raw state vector.
//
// Each subsystem is reduced by its own partial trace directly from ψ, so
// the full density matrix is never formed; N single-qubit reductions cost
// O(N·2^(n+1)) and the N(N−1)/2 pair reductions O(N²·2^(n+2)).

package qstats

import (
	"github.com/katalvlaran/quirq/cmatrix"
	"github.com/katalvlaran/quirq/eigen"
	"github.com/katalvlaran/quirq/ptrace"
)

// QubitStats bundles every single-qubit descriptor of one wire.
type QubitStats struct {
	Wire          int
	ProbOne       float64
	Phase         float64 // radians; 0 when the off-diagonal vanishes
	BlochX        float64
	BlochY        float64
	BlochZ        float64
	Purity        float64
	LinearEntropy float64
	VonNeumann    float64 // bits
}

// PairStats bundles every pairwise descriptor of one wire pair (A < B).
type PairStats struct {
	WireA, WireB int
	Purity       float64
	VonNeumann   float64 // bits
	Correlation  float64 // ⟨Z_A Z_B⟩ − ⟨Z_A⟩⟨Z_B⟩
	Concurrence  float64
}

// BaseStateProbabilities returns |ψ_r|² for every basis index r.
// Errors: ErrBadDimension on a non-column input, cmatrix.ErrNotPowerOfTwo
// on a bad length.
func BaseStateProbabilities(psi *cmatrix.Dense) ([]float64, error) {
	if psi == nil {
		return nil, cmatrix.ErrNilMatrix
	}
	if psi.Cols() != 1 {
		return nil, ErrBadDimension
	}
	if _, err := cmatrix.ValidatePowerOfTwo(psi.Rows()); err != nil {
		return nil, err
	}
	probs := make([]float64, psi.Rows())
	for r, a := range psi.Data() {
		probs[r] = cmatrix.Abs2(a)
	}

	return probs, nil
}

// qubitStatsOf assembles a QubitStats from a validated 2×2 reduction.
func qubitStatsOf(wire int, rho *cmatrix.Dense) (QubitStats, error) {
	out := QubitStats{Wire: wire}
	var err error
	if out.ProbOne, err = ProbOne(rho); err != nil {
		return out, err
	}
	if out.Phase, err = RelativePhase(rho); err != nil {
		return out, err
	}
	if out.BlochX, out.BlochY, out.BlochZ, err = Bloch(rho); err != nil {
		return out, err
	}
	if out.Purity, err = Purity(rho); err != nil {
		return out, err
	}
	out.LinearEntropy = 1 - out.Purity
	if out.VonNeumann, err = VonNeumannEntropy2(rho); err != nil {
		return out, err
	}

	return out, nil
}

// AllQubits reduces every wire of an n-qubit ψ and derives the full
// single-qubit descriptor set per wire, in wire order.
func AllQubits(n int, psi *cmatrix.Dense) ([]QubitStats, error) {
	out := make([]QubitStats, 0, n)
	for wire := 0; wire < n; wire++ {
		rho, err := ptrace.FromState(n, psi, []int{wire}, true)
		if err != nil {
			return nil, err
		}
		qs, err := qubitStatsOf(wire, rho)
		if err != nil {
			return nil, err
		}
		out = append(out, qs)
	}

	return out, nil
}

// AllPairs reduces every wire pair (a < b) of an n-qubit ψ and derives
// the pairwise descriptor set, ordered lexicographically by (a, b).
// The oracle feeds the entropy and concurrence spectra.
func AllPairs(n int, psi *cmatrix.Dense, o eigen.Oracle) ([]PairStats, error) {
	if o == nil {
		return nil, ErrNilOracle
	}
	out := make([]PairStats, 0, n*(n-1)/2)
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			rho, err := ptrace.FromState(n, psi, []int{a, b}, true)
			if err != nil {
				return nil, err
			}
			ps := PairStats{WireA: a, WireB: b}
			if ps.Purity, err = Purity(rho); err != nil {
				return nil, err
			}
			if ps.VonNeumann, err = VonNeumannEntropy(rho, o); err != nil {
				return nil, err
			}
			if ps.Correlation, err = Correlation(rho); err != nil {
				return nil, err
			}
			if ps.Concurrence, err = Concurrence(rho, o); err != nil {
				return nil, err
			}
			out = append(out, ps)
		}
	}

	return out, nil
}
