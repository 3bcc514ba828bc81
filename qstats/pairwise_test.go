// Package qstats_test: pairwise descriptor tests (entropy, correlation,
// concurrence) against literal entangled and product states.
package qstats_test

import (
	"testing"

	"github.com/katalvlaran/quirq/cmatrix"
	"github.com/katalvlaran/quirq/eigen"
	"github.com/katalvlaran/quirq/evolve"
	"github.com/katalvlaran/quirq/ptrace"
	"github.com/katalvlaran/quirq/qstats"
	"github.com/stretchr/testify/require"
)

// reducePair traces ψ down to a wire pair.
func reducePair(t *testing.T, n int, psi *cmatrix.Dense, a, b int) *cmatrix.Dense {
	t.Helper()
	rho, err := ptrace.FromState(n, psi, []int{a, b}, true)
	require.NoError(t, err)

	return rho
}

// TestBellPairDescriptors: concurrence 1, correlation 1, pure pair state.
func TestBellPairDescriptors(t *testing.T) {
	bell := mustKet(t, []complex128{invSqrt2, 0, 0, invSqrt2})
	rho := reducePair(t, 2, bell, 0, 1)
	oracle := eigen.Gonum{}

	purity, err := qstats.Purity(rho)
	require.NoError(t, err)
	require.InDelta(t, 1, purity, 1e-6) // the pair itself is pure

	vn, err := qstats.VonNeumannEntropy(rho, oracle)
	require.NoError(t, err)
	require.InDelta(t, 0, vn, 1e-6)

	conc, err := qstats.Concurrence(rho, oracle)
	require.NoError(t, err)
	require.InDelta(t, 1, conc, 1e-6)

	corr, err := qstats.Correlation(rho)
	require.NoError(t, err)
	require.InDelta(t, 1, corr, 1e-6) // ⟨ZZ⟩ = 1, ⟨Z⟩⟨Z⟩ = 0
}

// TestWeightedConcurrence: a|00⟩ + b|11⟩ has concurrence 2ab = 0.96.
func TestWeightedConcurrence(t *testing.T) {
	psi := mustKet(t, []complex128{0.6, 0, 0, 0.8})
	rho := reducePair(t, 2, psi, 0, 1)

	conc, err := qstats.Concurrence(rho, eigen.Gonum{})
	require.NoError(t, err)
	require.InDelta(t, 0.96, conc, 1e-6)
}

// TestProductPair: a product state has zero concurrence and correlation.
func TestProductPair(t *testing.T) {
	plus := mustKet(t, []complex128{invSqrt2, invSqrt2})
	psi, err := evolve.KetPow(plus, 2)
	require.NoError(t, err)
	rho := reducePair(t, 2, psi, 0, 1)
	oracle := eigen.Gonum{}

	conc, err := qstats.Concurrence(rho, oracle)
	require.NoError(t, err)
	require.InDelta(t, 0, conc, 1e-6)

	corr, err := qstats.Correlation(rho)
	require.NoError(t, err)
	require.InDelta(t, 0, corr, 1e-6)

	purity, err := qstats.Purity(rho)
	require.NoError(t, err)
	require.InDelta(t, 1, purity, 1e-6)
}

// TestGHZPairs: every 2-qubit marginal of GHZ is separable (concurrence
// 0) yet classically correlated (correlation 1), entropy 1 bit.
func TestGHZPairs(t *testing.T) {
	ghz := mustKet(t, []complex128{invSqrt2, 0, 0, 0, 0, 0, 0, invSqrt2})
	oracle := eigen.Gonum{}

	for _, pair := range [][2]int{{0, 1}, {0, 2}, {1, 2}} {
		rho := reducePair(t, 3, ghz, pair[0], pair[1])

		conc, err := qstats.Concurrence(rho, oracle)
		require.NoError(t, err)
		require.InDelta(t, 0, conc, 1e-6, "pair %v", pair)

		corr, err := qstats.Correlation(rho)
		require.NoError(t, err)
		require.InDelta(t, 1, corr, 1e-6, "pair %v", pair)

		vn, err := qstats.VonNeumannEntropy(rho, oracle)
		require.NoError(t, err)
		require.InDelta(t, 1, vn, 1e-6, "pair %v", pair)
	}
}

// TestPurityRange: the M-qubit purity floor 2^−M is reached by the
// maximally mixed pair marginal of a 4-qubit state made of two Bell pairs.
func TestPurityRange(t *testing.T) {
	// Two Bell pairs side by side: wires (0,1) and (2,3).
	bell := mustKet(t, []complex128{invSqrt2, 0, 0, invSqrt2})
	psi, err := cmatrix.Tensor(bell, bell)
	require.NoError(t, err)

	// Wires 0 and 2 belong to different pairs: their joint marginal is
	// the maximally mixed 4×4 state with purity 1/4.
	rho := reducePair(t, 4, psi, 0, 2)
	purity, err := qstats.Purity(rho)
	require.NoError(t, err)
	require.InDelta(t, 0.25, purity, 1e-6)
}

// TestPairwiseValidation covers dimension and oracle guards.
func TestPairwiseValidation(t *testing.T) {
	single := mustRows(t, [][]complex128{{0.5, 0}, {0, 0.5}})
	_, err := qstats.Correlation(single)
	require.ErrorIs(t, err, qstats.ErrBadDimension)

	_, err = qstats.Concurrence(single, eigen.Gonum{})
	require.ErrorIs(t, err, qstats.ErrBadDimension)

	bell := mustKet(t, []complex128{invSqrt2, 0, 0, invSqrt2})
	rho := reducePair(t, 2, bell, 0, 1)
	_, err = qstats.Concurrence(rho, nil)
	require.ErrorIs(t, err, qstats.ErrNilOracle)

	_, err = qstats.VonNeumannEntropy(rho, nil)
	require.ErrorIs(t, err, qstats.ErrNilOracle)
}
