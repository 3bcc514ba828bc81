// Package quirq is a pure-state quantum circuit simulator core for up to
// roughly 20 qubits on commodity hardware.
//
// 🚀 What is quirq?
//
//	A programmable numerical engine that brings together:
//		• State evolution: single- and two-qubit gates with arbitrary
//		  positive/negative control masks, applied qubit-wise in O(2^n)
//		• Gate library: the full catalog of 2×2 constants, parameterized
//		  rotations, fractional Pauli powers, plus CX and SWAP
//		• Partial trace: reduced density matrices computed directly from
//		  the state vector in O(2^(n+M)) time and O(4^M) memory
//		• Statistics: phase, Bloch coordinates, purity, linear and von
//		  Neumann entropy, Wootters concurrence, stabilizer Rényi entropy
//
// ✨ Why choose quirq?
//
//   - Never materializes the 2^N × 2^N operator: evolution and partial
//     trace both work qubit-wise on the length-2^N amplitude buffer
//   - Rock-solid numeric policy: sentinel errors, explicit tolerances,
//     deterministic loop orders, inputs never mutated
//   - Narrow collaborator seams: the Hermitian eigendecomposition is an
//     injected oracle (gonum-backed by default)
//
// Everything is organized under small single-purpose subpackages:
//
//	cmatrix/ — complex scalars and dense row-major complex matrices
//	gates/   — immutable gate constants and parameterized gate factories
//	evolve/  — the qubit-wise evolver, SWAP, kets, and expansion helpers
//	ptrace/  — the partial-trace engine (state-vector and density paths)
//	qstats/  — single-qubit, pairwise and multi-qubit state descriptors
//	eigen/   — the Hermitian eigendecomposition oracle
//	circuit/ — a fluent builder for scripting and stepping circuits
//
// Bit convention (normative): for a state vector of length 2^n, bit 0 of
// the basis index is wire 0, the top wire of the drawn circuit. See the
// gates package for the process-wide textbook-convention switch.
//
// Quick ASCII example, a Bell pair:
//
//	|0⟩ ──H──●──     c := circuit.New(2)
//	         │       c.H(0).CX(0, 1)
//	|0⟩ ─────X──     psi, err := c.Run()
//
// Dive into the per-package docs for contracts, complexity and tolerances.
package quirq
