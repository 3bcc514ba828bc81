// SPDX-License-Identifier: MIT
// Package gates: the fixed gate table.
//
// The table is built once at init from literal entries; accessors return
// clones so the shared constants can never be mutated by callers. The
// square and fourth roots are derived through the involution-power helper
// in factories.go, which keeps the whole family on one formula:
//
//	G^t = e^{iπt/2} (cos(πt/2)·I − i·sin(πt/2)·G)   for G² = I.

package gates

import (
	"math"

	"github.com/katalvlaran/quirq/cmatrix"
)

// invSqrt2 is 1/√2, the Hadamard normalization.
var invSqrt2 = complex(1/math.Sqrt2, 0)

// mustRows wraps cmatrix.FromRows for the literal table below; the shapes
// are fixed at compile time, so a failure is a programmer error.
func mustRows(rows [][]complex128) *cmatrix.Dense {
	m, err := cmatrix.FromRows(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// The unexported master copies. Never handed out directly.
var (
	matI = mustRows([][]complex128{{1, 0}, {0, 1}})
	matX = mustRows([][]complex128{{0, 1}, {1, 0}})
	matY = mustRows([][]complex128{{0, -1i}, {1i, 0}})
	matZ = mustRows([][]complex128{{1, 0}, {0, -1}})
	matH = mustRows([][]complex128{
		{invSqrt2, invSqrt2},
		{invSqrt2, -invSqrt2},
	})

	// Roots of the Paulis, derived once via the involution power.
	matSX  = involutionPower(matX, 0.5)
	matSY  = involutionPower(matY, 0.5)
	matSZ  = involutionPower(matZ, 0.5) // diag(1, i)
	matSSX = involutionPower(matX, 0.25)
	matSSY = involutionPower(matY, 0.25)
	matSSZ = involutionPower(matZ, 0.25) // diag(1, e^{iπ/4})

	matSXDag  = involutionPower(matX, -0.5)
	matSYDag  = involutionPower(matY, -0.5)
	matSZDag  = involutionPower(matZ, -0.5)
	matSSXDag = involutionPower(matX, -0.25)
	matSSYDag = involutionPower(matY, -0.25)
	matSSZDag = involutionPower(matZ, -0.25)

	// CX as stored: wire 0 (bit 0) controls wire 1 (bit 1).
	matCX = mustRows([][]complex128{
		{1, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
	})

	// SWAP exchanges the two wires; symmetric under endianness reversal.
	matSwap = mustRows([][]complex128{
		{1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
	})
)

// I returns the 2×2 identity.
func I() *cmatrix.Dense { return matI.Clone() }

// X returns the Pauli X (NOT) gate.
func X() *cmatrix.Dense { return matX.Clone() }

// Y returns the Pauli Y gate.
func Y() *cmatrix.Dense { return matY.Clone() }

// Z returns the Pauli Z gate.
func Z() *cmatrix.Dense { return matZ.Clone() }

// H returns the Hadamard gate.
func H() *cmatrix.Dense { return matH.Clone() }

// SX returns √X; SXDag its inverse.
func SX() *cmatrix.Dense    { return matSX.Clone() }
func SXDag() *cmatrix.Dense { return matSXDag.Clone() }

// SY returns √Y; SYDag its inverse.
func SY() *cmatrix.Dense    { return matSY.Clone() }
func SYDag() *cmatrix.Dense { return matSYDag.Clone() }

// SZ returns √Z, the phase gate S; SZDag its inverse.
func SZ() *cmatrix.Dense    { return matSZ.Clone() }
func SZDag() *cmatrix.Dense { return matSZDag.Clone() }

// SSX returns X^(1/4); SSXDag its inverse.
func SSX() *cmatrix.Dense    { return matSSX.Clone() }
func SSXDag() *cmatrix.Dense { return matSSXDag.Clone() }

// SSY returns Y^(1/4); SSYDag its inverse.
func SSY() *cmatrix.Dense    { return matSSY.Clone() }
func SSYDag() *cmatrix.Dense { return matSSYDag.Clone() }

// SSZ returns Z^(1/4), the T gate; SSZDag its inverse.
func SSZ() *cmatrix.Dense    { return matSSZ.Clone() }
func SSZDag() *cmatrix.Dense { return matSSZDag.Clone() }

// serve4x4 applies the process-wide convention to a stored 4×4 constant.
func serve4x4(m *cmatrix.Dense) *cmatrix.Dense {
	if !cfg.textbook {
		return m.Clone()
	}
	rev, err := cmatrix.ReverseEndianness(m)
	if err != nil {
		panic(err) // table shapes are fixed; cannot happen
	}

	return rev
}

// CX returns the controlled-NOT under the active convention: native
// ordering has wire 0 as control and wire 1 as target.
func CX() *cmatrix.Dense { return serve4x4(matCX) }

// Swap returns the two-wire SWAP operator.
func Swap() *cmatrix.Dense { return serve4x4(matSwap) }
