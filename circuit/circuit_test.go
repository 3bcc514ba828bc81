// Package circuit_test verifies the fluent builder: literal circuits,
// stepping, error collection, the norm audit, and the debug logging hook.
package circuit_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quirq/circuit"
	"github.com/katalvlaran/quirq/cmatrix"
	"github.com/katalvlaran/quirq/evolve"
	"github.com/katalvlaran/quirq/gates"
)

var invSqrt2 = complex(1/math.Sqrt2, 0)

// mustKet builds a literal state vector.
func mustKet(t *testing.T, amps []complex128) *cmatrix.Dense {
	t.Helper()
	psi, err := evolve.KetFromAmplitudes(amps)
	require.NoError(t, err)

	return psi
}

// TestBellCircuit scripts the Bell pair through the fluent surface.
func TestBellCircuit(t *testing.T) {
	psi, err := circuit.New(2).H(0).CX(0, 1).Run()
	require.NoError(t, err)
	require.True(t, psi.Equal(mustKet(t, []complex128{invSqrt2, 0, 0, invSqrt2}), 1e-6))
}

// TestReadmeCircuit scripts the 3-qubit README example and checks the
// final amplitudes at indices 3 and 4.
func TestReadmeCircuit(t *testing.T) {
	psi, err := circuit.New(3).
		H(1).
		X(2).
		CX(1, 0).
		Z(0).
		CX(1, 2).
		Run()
	require.NoError(t, err)

	want := mustKet(t, []complex128{0, 0, 0, -invSqrt2, invSqrt2, 0, 0, 0})
	require.True(t, psi.Equal(want, 1e-6))
}

// TestSteps returns every prefix state, initial ket included.
func TestSteps(t *testing.T) {
	c := circuit.New(2).H(0).CX(0, 1)
	require.Equal(t, 2, c.Size())

	states, err := c.Steps()
	require.NoError(t, err)
	require.Len(t, states, 3)

	// Initial ket, post-H, post-CX.
	require.True(t, states[0].Equal(mustKet(t, []complex128{1, 0, 0, 0}), 1e-9))
	require.True(t, states[1].Equal(mustKet(t, []complex128{invSqrt2, invSqrt2, 0, 0}), 1e-6))
	require.True(t, states[2].Equal(mustKet(t, []complex128{invSqrt2, 0, 0, invSqrt2}), 1e-6))
}

// TestGenericOps covers Gate2, Controlled and Swap through the builder.
func TestGenericOps(t *testing.T) {
	// Fredkin-less sanity: X(0), then swap 0↔2, then a Toffoli-style
	// doubly controlled X onto wire 0 (controls on wires 1 and 2).
	psi, err := circuit.New(3).
		X(0).
		Swap(0, 2).
		Gate2("SWAP", gates.Swap(), 0, 1).
		Controlled("CCX", gates.X(), 0, 1, 2).
		Run()
	require.NoError(t, err)

	// |001⟩ → |100⟩ → swap(0,1) no-op on wire 0/1 bits (both 0? wire2=1)
	// Trace by hand: after X(0): index 1. Swap(0,2): index 4. SWAP(0,1)
	// on bits 0,1 of 4 = no change. CCX needs wires 1 and 2 set: wire 1
	// is 0, so no flip. Final: |100⟩.
	want, err := evolve.NewKet(3, 4)
	require.NoError(t, err)
	require.True(t, psi.Equal(want, 1e-9))
}

// TestConstructionErrors: the first violation is recorded and surfaced.
func TestConstructionErrors(t *testing.T) {
	_, err := circuit.New(0).Run()
	require.ErrorIs(t, err, circuit.ErrInvalidQubits)

	c := circuit.New(2).H(5).X(0) // H(5) out of range; X(0) still chained
	require.ErrorIs(t, c.Err(), circuit.ErrWireOutOfRange)
	_, err = c.Run()
	require.ErrorIs(t, err, circuit.ErrWireOutOfRange)

	_, err = circuit.New(1).Gate("nil", nil, 0).Run()
	require.ErrorIs(t, err, circuit.ErrNilGate)

	_, err = circuit.New(2).CX(0, 0).Run() // control equals target
	require.ErrorIs(t, err, evolve.ErrControlOnTarget)
}

// TestNormAudit aborts on a non-unitary custom gate.
func TestNormAudit(t *testing.T) {
	shrink, err := cmatrix.FromRows([][]complex128{{0.5, 0}, {0, 0.5}})
	require.NoError(t, err)

	_, err = circuit.New(1).Gate("shrink", shrink, 0).Run()
	require.ErrorIs(t, err, circuit.ErrNormDrift)
}

// TestDebugLogging verifies the zerolog hook reports applied ops.
func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)

	_, err := circuit.New(2, circuit.WithLogger(log)).H(0).CX(0, 1).Run()
	require.NoError(t, err)

	out := buf.String()
	require.Equal(t, 2, strings.Count(out, "applied gate"))
	require.Contains(t, out, `"op":"H"`)
	require.Contains(t, out, `"op":"CX"`)
}
