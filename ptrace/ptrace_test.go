// Package ptrace_test verifies the contraction kernels against literal
// reduced states, the Hermitian/trace-1 invariants, path consistency and
// the transitivity law.
package ptrace_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/quirq/cmatrix"
	"github.com/katalvlaran/quirq/evolve"
	"github.com/katalvlaran/quirq/gates"
	"github.com/katalvlaran/quirq/ptrace"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

var invSqrt2 = complex(1/math.Sqrt2, 0)

// mustKet builds a literal state vector.
func mustKet(t *testing.T, amps []complex128) *cmatrix.Dense {
	t.Helper()
	psi, err := evolve.KetFromAmplitudes(amps)
	require.NoError(t, err)

	return psi
}

// bell returns (|00⟩ + |11⟩)/√2.
func bell(t *testing.T) *cmatrix.Dense {
	t.Helper()

	return mustKet(t, []complex128{invSqrt2, 0, 0, invSqrt2})
}

// densityOf forms ψψ† for the full-matrix path tests.
func densityOf(t *testing.T, psi *cmatrix.Dense) *cmatrix.Dense {
	t.Helper()
	bra, err := cmatrix.ConjTranspose(psi)
	require.NoError(t, err)
	rho, err := cmatrix.Mul(psi, bra)
	require.NoError(t, err)

	return rho
}

// TestBellReducedIsMaximallyMixed checks both single-qubit reductions of
// the Bell pair: diag(0.5, 0.5) with zero off-diagonals.
func TestBellReducedIsMaximallyMixed(t *testing.T) {
	psi := bell(t)
	want := mustRows(t, [][]complex128{{0.5, 0}, {0, 0.5}})

	for wire := 0; wire < 2; wire++ {
		red, err := ptrace.FromState(2, psi, []int{wire}, true)
		require.NoError(t, err)
		require.True(t, red.Equal(want, eps), "wire %d", wire)
	}
}

// mustRows builds a Dense from literal rows.
func mustRows(t *testing.T, rows [][]complex128) *cmatrix.Dense {
	t.Helper()
	m, err := cmatrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// TestWeightedPair reduces a|00⟩ + b|11⟩ with a=0.6, b=0.8: the marginal
// is diag(a², b²) on either wire.
func TestWeightedPair(t *testing.T) {
	psi := mustKet(t, []complex128{0.6, 0, 0, 0.8})
	want := mustRows(t, [][]complex128{{0.36, 0}, {0, 0.64}})

	red, err := ptrace.FromState(2, psi, []int{1}, false) // trace out wire 1
	require.NoError(t, err)
	require.True(t, red.Equal(want, eps))
}

// TestKeepComplementEquivalence pins keep=true to the complementary
// keep=false call.
func TestKeepComplementEquivalence(t *testing.T) {
	psi := mustKet(t, []complex128{0.5, 0.5i, -0.5, 0, 0, 0, 0, 0.5})

	kept, err := ptrace.FromState(3, psi, []int{0, 2}, true)
	require.NoError(t, err)
	traced, err := ptrace.FromState(3, psi, []int{1}, false)
	require.NoError(t, err)
	require.True(t, kept.Equal(traced, eps))
}

// TestInvariants audits Hermiticity, trace 1 and real diagonal on the
// reduction of a non-trivial evolved state.
func TestInvariants(t *testing.T) {
	psi, err := evolve.ZeroKet(3)
	require.NoError(t, err)
	psi, err = evolve.ApplyGate(gates.RY(67), 0, 3, psi)
	require.NoError(t, err)
	psi, err = evolve.ApplyGate(gates.RX(31), 2, 3, psi, evolve.Control{Wire: 0, On: true})
	require.NoError(t, err)
	psi, err = evolve.ApplyGate(gates.Phase(45), 1, 3, psi)
	require.NoError(t, err)

	for _, keepSet := range [][]int{{0}, {1}, {2}, {0, 1}, {0, 2}, {1, 2}} {
		red, err := ptrace.FromState(3, psi, keepSet, true)
		require.NoError(t, err)
		require.NoError(t, cmatrix.ValidateHermitian(red, eps))

		tr, err := cmatrix.Trace(red)
		require.NoError(t, err)
		require.InDelta(t, 1, real(tr), eps)
		require.InDelta(t, 0, imag(tr), eps)
	}
}

// TestFromDensityMatchesFromState cross-checks the two input modes.
func TestFromDensityMatchesFromState(t *testing.T) {
	psi := mustKet(t, []complex128{0.5, 0.5i, 0.5, -0.5})
	rho := densityOf(t, psi)

	viaState, err := ptrace.FromState(2, psi, []int{0}, true)
	require.NoError(t, err)
	viaDensity, err := ptrace.FromDensity(2, rho, []int{0}, true)
	require.NoError(t, err)
	require.True(t, viaState.Equal(viaDensity, eps))
}

// TestTransitivity verifies tracing out A then B equals tracing out A∪B.
func TestTransitivity(t *testing.T) {
	psi, err := evolve.ZeroKet(3)
	require.NoError(t, err)
	psi, err = evolve.ApplyGate(gates.H(), 0, 3, psi)
	require.NoError(t, err)
	psi, err = evolve.ApplyGate(gates.X(), 1, 3, psi, evolve.Control{Wire: 0, On: true})
	require.NoError(t, err)
	psi, err = evolve.ApplyGate(gates.RY(30), 2, 3, psi)
	require.NoError(t, err)

	// Step 1: trace out wire 0; kept wires {1, 2} renumber to {0, 1}.
	step1, err := ptrace.FromState(3, psi, []int{0}, false)
	require.NoError(t, err)
	// Step 2: trace out renumbered wire 0 (original wire 1).
	step2, err := ptrace.FromDensity(2, step1, []int{0}, false)
	require.NoError(t, err)

	// Direct: trace out {0, 1} in one call.
	direct, err := ptrace.FromState(3, psi, []int{0, 1}, false)
	require.NoError(t, err)
	require.True(t, step2.Equal(direct, eps))
}

// TestProductStateIsPure reduces a product state to a rank-1 marginal.
func TestProductStateIsPure(t *testing.T) {
	plus := mustKet(t, []complex128{invSqrt2, invSqrt2})
	psi, err := evolve.KetPow(plus, 3)
	require.NoError(t, err)

	red, err := ptrace.FromState(3, psi, []int{1}, true)
	require.NoError(t, err)
	// ρ² = ρ for a pure marginal; purity via trace of the square.
	sq, err := cmatrix.Mul(red, red)
	require.NoError(t, err)
	tr, err := cmatrix.Trace(sq)
	require.NoError(t, err)
	require.InDelta(t, 1, real(tr), eps)
}

// TestValidation sweeps the sentinel conditions of both entry points.
func TestValidation(t *testing.T) {
	psi := bell(t)

	_, err := ptrace.FromState(0, psi, []int{0}, true)
	require.ErrorIs(t, err, ptrace.ErrInvalidQubits)

	_, err = ptrace.FromState(2, psi, []int{2}, true)
	require.ErrorIs(t, err, ptrace.ErrWireOutOfRange)

	_, err = ptrace.FromState(2, psi, []int{0, 0}, true)
	require.ErrorIs(t, err, ptrace.ErrDuplicateWire)

	_, err = ptrace.FromState(2, psi, []int{0, 1}, false) // nothing kept
	require.ErrorIs(t, err, ptrace.ErrNoQubits)

	_, err = ptrace.FromState(3, psi, []int{0}, true) // ψ too short for n=3
	require.ErrorIs(t, err, ptrace.ErrStateLength)

	rect, err := cmatrix.NewDense(4, 2)
	require.NoError(t, err)
	_, err = ptrace.FromDensity(2, rect, []int{0}, true)
	require.ErrorIs(t, err, ptrace.ErrDensityShape)
}
