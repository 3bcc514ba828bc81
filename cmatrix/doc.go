// Package cmatrix provides the complex-number and dense complex-matrix
// primitives underlying the quirq simulator core.
//
// What
//
//   - Dense: a row-major matrix of complex128 values backed by a flat
//     contiguous buffer (index i*cols + j), with bounds-checked At/Set,
//     deep Clone, and tolerance-aware comparison.
//   - Elementwise algebra: Add, Sub, Scale, Hadamard-free by design.
//   - Products: Mul (BLAS-backed fast path), NaryMul (association order
//     planned to minimize scalar multiplications; right-to-left for an
//     operator chain ending in a column vector), Tensor and NaryTensor
//     (Kronecker products).
//   - Structure ops: ConjTranspose, Trace, ReverseEndianness.
//   - Scalar helpers: Phase, Abs2, Chop, IsApproxReal.
//
// Why
//
//	State vectors are (2^n)×1 Dense columns and reduced density matrices
//	are (2^M)×(2^M) Dense squares; every higher layer (gates, evolve,
//	ptrace, qstats) is a deterministic composition over these kernels.
//
// Determinism & Policy
//
//   - All operations allocate fresh results; operands are never mutated.
//   - Fixed i→j traversal orders; the only data-dependent branch is
//     Tensor skipping all-zero blocks, which leaves the result unchanged.
//   - All user-triggered failures return package sentinels matched with
//     errors.Is; panics are reserved for programmer errors.
//
// Complexity
//
//	At/Set are O(1); elementwise ops are O(r·c); Mul is O(a·b·c);
//	Tensor of (a×b)⊗(c×d) is O(a·b·c·d).
package cmatrix
