// SPDX-License-Identifier: MIT
// Package eigen: the gonum-backed default oracle.

package eigen

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/quirq/cmatrix"
)

// Oracle decomposes a Hermitian matrix into real eigenvalues (ascending)
// and orthonormal eigenvector columns. Implementations must reject
// non-Hermitian input with cmatrix.ErrNotHermitian and report
// non-convergence with ErrEigenFailed.
type Oracle interface {
	Decompose(h *cmatrix.Dense) (values []float64, vectors *cmatrix.Dense, err error)
}

// Gonum is the default Oracle, backed by mat.EigenSym over the real
// symmetric embedding of the Hermitian input. The zero value is ready to
// use; Eps overrides the Hermitian-validation tolerance (default
// cmatrix.DefaultEpsilon).
type Gonum struct {
	Eps float64
}

// Decompose implements Oracle.
// Stage 1 (Validate): Hermitian within eps.
// Stage 2 (Embed): H = A + iB → [[A, −B], [B, A]], real symmetric 2n×2n.
// Stage 3 (Factorize): mat.EigenSym; !ok ⇒ ErrEigenFailed.
// Stage 4 (Fold): pick n of the 2n doubled eigenpairs, reconstructing
// complex eigenvectors z = u + iv and re-orthonormalizing greedily so
// degenerate subspaces cannot contribute the same direction twice.
// Complexity: O(n³) in the factorization.
func (g Gonum) Decompose(h *cmatrix.Dense) ([]float64, *cmatrix.Dense, error) {
	eps := g.Eps
	if eps <= 0 {
		eps = cmatrix.DefaultEpsilon
	}
	if err := cmatrix.ValidateHermitian(h, eps); err != nil {
		return nil, nil, err
	}

	n := h.Rows()
	hd := h.Data()

	// Real symmetric embedding, row-major 2n×2n.
	big := make([]float64, 4*n*n)
	stride := 2 * n
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			re, im := real(hd[i*n+j]), imag(hd[i*n+j])
			big[i*stride+j] = re            // A
			big[i*stride+n+j] = -im         // −B
			big[(n+i)*stride+j] = im        // B
			big[(n+i)*stride+n+j] = re      // A
		}
	}

	var es mat.EigenSym
	if ok := es.Factorize(mat.NewSymDense(stride, big), true); !ok {
		return nil, nil, ErrEigenFailed
	}
	raw := es.Values(nil) // ascending, each eigenvalue of H doubled
	var rawVecs mat.Dense
	es.VectorsTo(&rawVecs)

	values := make([]float64, 0, n)
	vectors, err := cmatrix.NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}
	accepted := make([][]complex128, 0, n)

	for k := 0; k < stride && len(accepted) < n; k++ {
		// Candidate complex eigenvector from the embedded column.
		z := make([]complex128, n)
		for i := 0; i < n; i++ {
			z[i] = complex(rawVecs.At(i, k), rawVecs.At(n+i, k))
		}
		// Greedy Gram-Schmidt against everything accepted so far; only a
		// degenerate partner (the iz copy of an accepted vector) loses
		// most of its norm and is skipped.
		for _, prev := range accepted {
			var dot complex128 // ⟨prev, z⟩
			for i := 0; i < n; i++ {
				dot += cmplx.Conj(prev[i]) * z[i]
			}
			for i := 0; i < n; i++ {
				z[i] -= dot * prev[i]
			}
		}
		var norm2 float64
		for i := 0; i < n; i++ {
			norm2 += cmatrix.Abs2(z[i])
		}
		if norm2 < 0.5 { // the doubled partner of an accepted pair
			continue
		}
		inv := complex(1/math.Sqrt(norm2), 0)
		for i := 0; i < n; i++ {
			z[i] *= inv
		}
		accepted = append(accepted, z)
		values = append(values, raw[k])
	}
	if len(accepted) != n { // should be unreachable for Hermitian input
		return nil, nil, ErrEigenFailed
	}

	vd := vectors.Data()
	for col, z := range accepted {
		for i := 0; i < n; i++ {
			vd[i*n+col] = z[i]
		}
	}

	return values, vectors, nil
}
