// Package eigen defines the Hermitian eigendecomposition oracle consumed
// by the statistics layer, and its default gonum-backed implementation.
//
// What
//
//   - Oracle: Hermitian in → (ascending real eigenvalues, orthonormal
//     eigenvector columns) out. The core never assumes a particular
//     linear-algebra backend; inject your own to swap it.
//   - Gonum: the default backend. A Hermitian H = A + iB is embedded into
//     the 2n × 2n real symmetric matrix [[A, −B], [B, A]], factorized with
//     mat.EigenSym, and the doubled spectrum is folded back: each complex
//     eigenpair (λ, u+iv) of H appears in the embedding as the pair of
//     real eigenvectors (u; v) and (−v; u) with the same λ.
//
// Why the embedding
//
//	gonum's EigenSym covers real symmetric matrices only; the embedding
//	turns the complex Hermitian problem into exactly that, at the cost of
//	doubling the dimension, which is immaterial for the 2^M × 2^M sizes
//	(M ≤ 6) the statistics layer produces.
//
// Guarantees: values ascend; vectors are orthonormal within 1e-9;
// H·v_k = λ_k·v_k within 1e-9 for well-conditioned inputs.
package eigen
