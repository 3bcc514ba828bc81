// SPDX-License-Identifier: MIT
// Package evolve: sentinel error set.

package evolve

import "errors"

var (
	// ErrInvalidQubits is returned when the qubit count n is < 1.
	ErrInvalidQubits = errors.New("evolve: qubit count must be >= 1")

	// ErrWireOutOfRange indicates a target or control wire outside [0, n).
	ErrWireOutOfRange = errors.New("evolve: wire index out of range")

	// ErrControlOnTarget indicates a control wire colliding with a target.
	ErrControlOnTarget = errors.New("evolve: control wire equals target wire")

	// ErrDuplicateControl indicates the control list names a wire twice.
	ErrDuplicateControl = errors.New("evolve: duplicate control wire")

	// ErrSameWire is returned by two-wire operations given t0 == t1.
	ErrSameWire = errors.New("evolve: target wires must differ")

	// ErrBadGateShape indicates the gate matrix is not 2×2 (or 4×4 where
	// a two-wire gate is required).
	ErrBadGateShape = errors.New("evolve: gate must be 2x2 or 4x4")

	// ErrStateLength indicates ψ is not a 2^n × 1 column.
	ErrStateLength = errors.New("evolve: state length does not match qubit count")

	// ErrBadBasis indicates a basis index outside [0, 2^n).
	ErrBadBasis = errors.New("evolve: basis index out of range")

	// ErrNotNormalized is returned by the normalization audit when
	// Σ|ψ_r|² deviates from 1 beyond the given tolerance.
	ErrNotNormalized = errors.New("evolve: state vector is not normalized within eps")
)
