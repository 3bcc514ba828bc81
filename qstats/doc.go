// Package qstats derives scalar and vector descriptors from reduced
// density matrices and from raw state vectors.
//
// What
//
//   - Single-qubit (2×2 ρ): outcome probability, relative phase, Bloch
//     coordinates, purity, linear entropy, von Neumann entropy (closed
//     2×2 spectrum, no oracle needed).
//   - Pairwise (4×4 ρ): purity, von Neumann entropy, ⟨ZZ⟩ correlation,
//     Wootters concurrence.
//   - Multi-qubit (2^M × 2^M ρ): purity, von Neumann entropy, and the
//     second stabilizer Rényi entropy (SSRE, "magic").
//   - Raw ψ: base-state probabilities, plus the AllQubits / AllPairs
//     batch helpers that reduce each subsystem with its own partial
//     trace directly from ψ.
//
// Conventions
//
//	For ρ = [[a, b], [b*, d]] with the wire-0-is-LSB bit order: the
//	probability of outcome 1 is d (clamped to [0, 1]); the phase is
//	arg(b) when |b| > ε and 0 by convention otherwise; the Bloch vector
//	is (2·Re b, −2·Im b, a − d), i.e. ρ = (I + x·X + y·Y + z·Z)/2.
//	Entropies are in bits (log base 2) with 0·log₂0 ≡ 0.
//
// Numeric policy
//
//	Every entry point validates its input as a density matrix (power-of-
//	two dimension, Hermitian within ε, unit trace within ε) and rejects
//	violations as a numerical failure of that statistic only; the process
//	continues. Eigenvalues in [−1e-7, 0) are clamped to 0 before use;
//	anything below is an inconsistency error. Spectra come from the
//	injected eigen.Oracle wherever a closed form is unavailable.
package qstats
