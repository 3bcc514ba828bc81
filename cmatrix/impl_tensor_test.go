// Package cmatrix_test: Kronecker product and endianness-reversal tests.
package cmatrix_test

import (
	"testing"

	"github.com/katalvlaran/quirq/cmatrix"
	"github.com/stretchr/testify/require"
)

// TestTensorBlockLaw verifies out[i*c+k, j*d+l] = A[i,j]*B[k,l] on a 2x2 ⊗ 2x2.
func TestTensorBlockLaw(t *testing.T) {
	x := mustRows(t, [][]complex128{{0, 1}, {1, 0}})
	z := mustRows(t, [][]complex128{{1, 0}, {0, -1}})

	xz, err := cmatrix.Tensor(x, z)
	require.NoError(t, err)
	want := mustRows(t, [][]complex128{
		{0, 0, 1, 0},
		{0, 0, 0, -1},
		{1, 0, 0, 0},
		{0, -1, 0, 0},
	})
	require.True(t, xz.Equal(want, eps))
}

// TestTensorShapes verifies the (ac × bd) shape law on rectangular factors.
func TestTensorShapes(t *testing.T) {
	a := mustRows(t, [][]complex128{{1, 2, 3}})    // 1×3
	b := mustRows(t, [][]complex128{{1}, {1i}})    // 2×1
	ab, err := cmatrix.Tensor(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, ab.Rows())
	require.Equal(t, 3, ab.Cols())
	v, err := ab.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 3i, v)
}

// TestNaryTensorOrder checks the visual top-to-bottom factor order:
// NaryTensor(q1, q0) puts q0 on bit 0 of the composite index.
func TestNaryTensorOrder(t *testing.T) {
	ket0 := mustRows(t, [][]complex128{{1}, {0}})
	ket1 := mustRows(t, [][]complex128{{0}, {1}})

	// |q1=0, q0=1⟩ should place the amplitude at index 1 (bit 0 set).
	psi, err := cmatrix.NaryTensor(ket0, ket1)
	require.NoError(t, err)
	require.Equal(t, 4, psi.Rows())
	v, err := psi.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, complex128(1), v)

	_, err = cmatrix.NaryTensor()
	require.ErrorIs(t, err, cmatrix.ErrEmptyOperands)
}

// TestReverseEndiannessColumn verifies bit reversal of column indices.
func TestReverseEndiannessColumn(t *testing.T) {
	// Length 4: indices 01 and 10 swap, 00 and 11 stay.
	col := mustRows(t, [][]complex128{{1}, {2}, {3}, {4}})
	rev, err := cmatrix.ReverseEndianness(col)
	require.NoError(t, err)
	require.True(t, rev.Equal(mustRows(t, [][]complex128{{1}, {3}, {2}, {4}}), eps))

	// Involution: reversing twice restores the original.
	back, err := cmatrix.ReverseEndianness(rev)
	require.NoError(t, err)
	require.True(t, back.Equal(col, eps))
}

// TestReverseEndiannessSquare verifies the CX convention swap: reversing
// the stored CX (wire 0 control) yields the textbook CX (wire 1 control).
func TestReverseEndiannessSquare(t *testing.T) {
	cx := mustRows(t, [][]complex128{
		{1, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
	})
	rev, err := cmatrix.ReverseEndianness(cx)
	require.NoError(t, err)
	want := mustRows(t, [][]complex128{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	})
	require.True(t, rev.Equal(want, eps))

	back, err := cmatrix.ReverseEndianness(rev)
	require.NoError(t, err)
	require.True(t, back.Equal(cx, eps)) // involution on squares
}

// TestReverseEndiannessRejects covers non-power-of-two and non-column shapes.
func TestReverseEndiannessRejects(t *testing.T) {
	m3, err := cmatrix.NewDense(3, 1)
	require.NoError(t, err)
	_, err = cmatrix.ReverseEndianness(m3)
	require.ErrorIs(t, err, cmatrix.ErrNotPowerOfTwo)

	rect, err := cmatrix.NewDense(4, 2)
	require.NoError(t, err)
	_, err = cmatrix.ReverseEndianness(rect)
	require.ErrorIs(t, err, cmatrix.ErrBadShape)
}

// TestValidateHermitian exercises the shared Hermitian validator.
func TestValidateHermitian(t *testing.T) {
	h := mustRows(t, [][]complex128{{0.5, 0.1 + 0.2i}, {0.1 - 0.2i, 0.5}})
	require.NoError(t, cmatrix.ValidateHermitian(h, eps))

	bad := mustRows(t, [][]complex128{{0.5, 0.1}, {0.3, 0.5}})
	require.ErrorIs(t, cmatrix.ValidateHermitian(bad, eps), cmatrix.ErrNotHermitian)

	// Non-real diagonal violates conjugate symmetry with itself.
	diag := mustRows(t, [][]complex128{{0.5 + 1i, 0}, {0, 0.5}})
	require.ErrorIs(t, cmatrix.ValidateHermitian(diag, eps), cmatrix.ErrNotHermitian)
}
