// Package evolve applies gates qubit-wise to a 2^n-length state vector,
// with optional positive/negative control masks, without ever building
// the 2^n × 2^n operator.
//
// What
//
//   - ApplyGate: a 2×2 gate on one target wire.
//   - ApplyGate2: a 4×4 gate on an ordered wire pair (t0, t1), where bit 0
//     of the gate's own 2-bit index is wire t0.
//   - Swap: amplitude permutation exchanging two wires.
//   - InPlace variants sharing the same kernels (semantically identical,
//     verified against each other in tests).
//   - Expand4x4: the explicit 2^n × 2^n operator for callers who prefer
//     the matrix picture; a convenience, not the evolution path.
//   - Ket constructors (ZeroKet, NewKet, KetFromAmplitudes, KetPow) and
//     the Norm2 / ValidateNormalized audit helpers.
//
// Control masks
//
//	A Control pairs a wire index with a polarity: On=true applies the gate
//	when that wire's bit is 1, On=false when it is 0. Controls must be
//	distinct and disjoint from the targets; an empty mask means
//	unconditional. On the subspace where any control contradicts its
//	polarity the gate acts as identity.
//
// Algorithm
//
//	For a 2×2 gate on wire t, iterate only over basis indices r with bit t
//	clear; the pair (r, r|1<<t) is read and written exactly once:
//
//	  ψ'[r0] = G[0,0]·ψ[r0] + G[0,1]·ψ[r1]
//	  ψ'[r1] = G[1,0]·ψ[r0] + G[1,1]·ψ[r1]
//
//	The 4×4 kernel updates the four indices spanning the target pair from
//	the 4×4 block in the same single-pass fashion.
//
// Determinism & Policy
//
//   - Input ψ is never mutated by the allocating entry points.
//   - O(2^n) time per call, O(1) scratch beyond the output buffer.
//   - All failures are package sentinels; see errors.go.
package evolve
