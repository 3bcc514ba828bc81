// Package ptrace computes reduced density matrices by partial trace,
// directly from a state vector or from a full density matrix.
//
// What
//
//   - FromState: R on the kept qubits from ψ alone, in O(2^(n+M)) time
//     and O(4^M) memory. The preferred path: it never forms the full
//     2^n × 2^n density matrix (which already costs ≈ 1 GiB at n = 13).
//   - FromDensity: the fallback contraction over a supplied full matrix.
//
// Contract
//
//	partialTrace(n, ψ|D, qubits, keep): when keep is true, qubits is the
//	kept set; otherwise qubits lists the wires to trace out. The kept set
//	K is sorted ascending, |K| = M, and bit j of a reduced index is the
//	j-th smallest kept wire. The result is Hermitian with trace 1 and
//	eigenvalues in [0, 1] up to numerical noise.
//
// Algorithm
//
//	Both paths share one fixed bit permutation: scatter the bits of the
//	reduced indices (a, b) into the K positions and the bits of the
//	summation index t into the T positions, then accumulate
//	ψ[r_a]·conj(ψ[r_b]) (or D[r_a, r_b]). FromState exploits conjugate
//	symmetry: only the upper triangle is accumulated and the lower is
//	mirrored. FromDensity accumulates every entry from D.
//
// Determinism: fixed a→b→t loop order; no randomness.
package ptrace
