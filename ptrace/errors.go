// SPDX-License-Identifier: MIT
// Package ptrace: sentinel error set.

package ptrace

import "errors"

var (
	// ErrInvalidQubits is returned when the qubit count n is < 1.
	ErrInvalidQubits = errors.New("ptrace: qubit count must be >= 1")

	// ErrWireOutOfRange indicates a listed wire outside [0, n).
	ErrWireOutOfRange = errors.New("ptrace: wire index out of range")

	// ErrDuplicateWire indicates the wire list names an index twice.
	ErrDuplicateWire = errors.New("ptrace: duplicate wire index")

	// ErrNoQubits indicates the kept set would be empty; the reduced
	// state must live on at least one qubit.
	ErrNoQubits = errors.New("ptrace: kept qubit set is empty")

	// ErrStateLength indicates ψ is not a 2^n × 1 column.
	ErrStateLength = errors.New("ptrace: state length does not match qubit count")

	// ErrDensityShape indicates D is not a 2^n × 2^n square.
	ErrDensityShape = errors.New("ptrace: density matrix shape does not match qubit count")
)
