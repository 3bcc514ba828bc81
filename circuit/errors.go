// SPDX-License-Identifier: MIT
// Package circuit: sentinel error set.

package circuit

import "errors"

var (
	// ErrInvalidQubits is returned when the wire count n is < 1.
	ErrInvalidQubits = errors.New("circuit: qubit count must be >= 1")

	// ErrWireOutOfRange indicates an op referencing a wire outside [0, n).
	ErrWireOutOfRange = errors.New("circuit: wire index out of range")

	// ErrNilGate indicates a generic op constructed from a nil matrix.
	ErrNilGate = errors.New("circuit: gate matrix is nil")

	// ErrNormDrift indicates the normalization audit failed after an op:
	// Σ|ψ_r|² left 1 ± eps. Points at a non-unitary custom gate.
	ErrNormDrift = errors.New("circuit: state norm drifted from 1")
)
