// Package eigen_test verifies the gonum-backed oracle on known spectra
// and on the orthonormality/reconstruction contracts.
package eigen_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/quirq/cmatrix"
	"github.com/katalvlaran/quirq/eigen"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

// mustRows builds a Dense from literal rows.
func mustRows(t *testing.T, rows [][]complex128) *cmatrix.Dense {
	t.Helper()
	m, err := cmatrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// requireEigenContract asserts H·v_k = λ_k·v_k and V†V = I.
func requireEigenContract(t *testing.T, h *cmatrix.Dense, values []float64, vectors *cmatrix.Dense) {
	t.Helper()
	n := h.Rows()
	require.Len(t, values, n)

	// Ascending order.
	for k := 1; k < n; k++ {
		require.LessOrEqual(t, values[k-1], values[k]+eps)
	}

	// Orthonormal columns: V†V = I.
	vd, err := cmatrix.ConjTranspose(vectors)
	require.NoError(t, err)
	gram, err := cmatrix.Mul(vd, vectors)
	require.NoError(t, err)
	id, err := cmatrix.NewIdentity(n)
	require.NoError(t, err)
	require.True(t, gram.Equal(id, 1e-7))

	// Reconstruction per column.
	hv, err := cmatrix.Mul(h, vectors)
	require.NoError(t, err)
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			got, err := hv.At(i, k)
			require.NoError(t, err)
			vik, err := vectors.At(i, k)
			require.NoError(t, err)
			require.InDelta(t, 0, cmplx.Abs(got-complex(values[k], 0)*vik), 1e-7)
		}
	}
}

// TestPauliY decomposes Y: spectrum {−1, +1} with complex eigenvectors.
func TestPauliY(t *testing.T) {
	y := mustRows(t, [][]complex128{{0, -1i}, {1i, 0}})

	values, vectors, err := eigen.Gonum{}.Decompose(y)
	require.NoError(t, err)
	require.InDelta(t, -1, values[0], eps)
	require.InDelta(t, 1, values[1], eps)
	requireEigenContract(t, y, values, vectors)
}

// TestPureProjector decomposes ρ = |+⟩⟨+|: spectrum {0, 1}.
func TestPureProjector(t *testing.T) {
	rho := mustRows(t, [][]complex128{{0.5, 0.5}, {0.5, 0.5}})

	values, vectors, err := eigen.Gonum{}.Decompose(rho)
	require.NoError(t, err)
	require.InDelta(t, 0, values[0], eps)
	require.InDelta(t, 1, values[1], eps)
	requireEigenContract(t, rho, values, vectors)
}

// TestDegenerateIdentity handles the fully degenerate spectrum.
func TestDegenerateIdentity(t *testing.T) {
	id, err := cmatrix.NewIdentity(4)
	require.NoError(t, err)
	half, err := cmatrix.Scale(id, 0.25)
	require.NoError(t, err)

	values, vectors, err := eigen.Gonum{}.Decompose(half)
	require.NoError(t, err)
	for _, v := range values {
		require.InDelta(t, 0.25, v, eps)
	}
	requireEigenContract(t, half, values, vectors)
}

// TestHermitian4x4 exercises a dense Hermitian with complex off-diagonals.
func TestHermitian4x4(t *testing.T) {
	h := mustRows(t, [][]complex128{
		{2, 1 - 1i, 0, 0.5i},
		{1 + 1i, 3, -1i, 0},
		{0, 1i, 1, 0.25},
		{-0.5i, 0, 0.25, 0.5},
	})
	require.NoError(t, cmatrix.ValidateHermitian(h, eps))

	values, vectors, err := eigen.Gonum{}.Decompose(h)
	require.NoError(t, err)
	requireEigenContract(t, h, values, vectors)

	// The eigenvalue sum matches the trace.
	var sum float64
	for _, v := range values {
		sum += v
	}
	tr, err := cmatrix.Trace(h)
	require.NoError(t, err)
	require.InDelta(t, real(tr), sum, 1e-7)
	require.True(t, math.Abs(imag(tr)) < eps)
}

// TestRejectsNonHermitian verifies the validation gate.
func TestRejectsNonHermitian(t *testing.T) {
	bad := mustRows(t, [][]complex128{{1, 2}, {3, 4}})
	_, _, err := eigen.Gonum{}.Decompose(bad)
	require.ErrorIs(t, err, cmatrix.ErrNotHermitian)
}
