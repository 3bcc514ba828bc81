// SPDX-License-Identifier: MIT
// Package cmatrix: canonical linear-algebra kernels over Dense.
//
// Purpose:
//   - Declare the algebraic kernels (Add/Sub/Scale/Mul/NaryMul/
//     ConjTranspose/Trace) used across the simulator.
//   - Define operation tags and uniform error wrapping.
//
// Determinism & Performance:
//   - Fixed flat traversal 0..r*c-1 for elementwise kernels.
//   - Mul delegates the inner triple loop to cblas128.Gemm on the flat
//     row-major buffers; shapes up to 2^M×2^M density matrices benefit
//     directly from the BLAS backend.
//   - NaryMul plans the association order by matrix-chain DP; for the
//     dominant call pattern (operator chain applied to a ket) the plan
//     is the right-to-left fold and no intermediate operator is built.

package cmatrix

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
)

// Operation name constants for unified error wrapping.
const (
	opAdd               = "Add"
	opSub               = "Sub"
	opScale             = "Scale"
	opMul               = "Mul"
	opNaryMul           = "NaryMul"
	opConjTranspose     = "ConjTranspose"
	opTrace             = "Trace"
	opTensor            = "Tensor"
	opNaryTensor        = "NaryTensor"
	opReverseEndianness = "ReverseEndianness"
)

// cmatrixErrorf wraps err with an operation tag, preserving the sentinel
// for errors.Is. Call only with err != nil.
func cmatrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes; a fresh Dense is allocated.
// Complexity: O(r*c).
func addSub(a, b *Dense, sign complex128, opTag string) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, cmatrixErrorf(opTag, err)
	}
	res := &Dense{r: a.r, c: a.c, data: make([]complex128, len(a.data))}
	for i := range a.data { // deterministic 0..n-1
		res.data[i] = a.data[i] + sign*b.data[i]
	}

	return res, nil
}

// Add returns a + b elementwise. Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, 1, opAdd) }

// Sub returns a - b elementwise. Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns alpha*m elementwise into a fresh Dense.
// Complexity: O(r*c).
func Scale(m *Dense, alpha complex128) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, cmatrixErrorf(opScale, err)
	}
	res := &Dense{r: m.r, c: m.c, data: make([]complex128, len(m.data))}
	for i := range m.data {
		res.data[i] = alpha * m.data[i]
	}

	return res, nil
}

// Mul returns the matrix product a·b.
// The inner kernel is cblas128.Gemm over the flat row-major buffers;
// no transposition or copying is required since Dense is already the
// General layout expected by the BLAS interface.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(a.r * a.c * b.c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, cmatrixErrorf(opMul, err)
	}
	res := &Dense{r: a.r, c: b.c, data: make([]complex128, a.r*b.c)}
	cblas128.Gemm(blas.NoTrans, blas.NoTrans, 1,
		cblas128.General{Rows: a.r, Cols: a.c, Stride: a.c, Data: a.data},
		cblas128.General{Rows: b.r, Cols: b.c, Stride: b.c, Data: b.data},
		0,
		cblas128.General{Rows: res.r, Cols: res.c, Stride: res.c, Data: res.data})

	return res, nil
}

// NaryMul multiplies the factors in the association order that minimizes
// cumulative scalar multiplications for the given shapes (the classic
// matrix-chain plan). When the final factor is a column vector the plan
// degenerates to the right-to-left fold, so operator chains applied to a
// ket never build an intermediate operator.
// Consecutive shapes must be compatible.
// Errors: ErrEmptyOperands plus anything Mul returns.
// Complexity: O(k³) planning + the cost of the chosen products.
func NaryMul(ms ...*Dense) (*Dense, error) {
	k := len(ms)
	if k == 0 {
		return nil, cmatrixErrorf(opNaryMul, ErrEmptyOperands)
	}
	for _, m := range ms {
		if err := ValidateNotNil(m); err != nil {
			return nil, cmatrixErrorf(opNaryMul, err)
		}
	}
	if k == 1 {
		return ms[0].Clone(), nil
	}
	for i := 1; i < k; i++ {
		if ms[i-1].c != ms[i].r {
			return nil, cmatrixErrorf(opNaryMul, ErrDimensionMismatch)
		}
	}

	// dims[i]×dims[i+1] is the shape of factor i.
	dims := make([]int, k+1)
	for i, m := range ms {
		dims[i] = m.r
	}
	dims[k] = ms[k-1].c

	// Matrix-chain DP: cost[i][j] is the cheapest multiplication count
	// for the sub-chain [i, j]; split[i][j] records the winning cut.
	cost := make([][]int, k)
	split := make([][]int, k)
	for i := range cost {
		cost[i] = make([]int, k)
		split[i] = make([]int, k)
	}
	for span := 1; span < k; span++ {
		for i := 0; i+span < k; i++ {
			j := i + span
			cost[i][j] = -1
			for cut := i; cut < j; cut++ {
				c := cost[i][cut] + cost[cut+1][j] + dims[i]*dims[cut+1]*dims[j+1]
				if cost[i][j] < 0 || c < cost[i][j] {
					cost[i][j] = c
					split[i][j] = cut
				}
			}
		}
	}

	var multiply func(i, j int) (*Dense, error)
	multiply = func(i, j int) (*Dense, error) {
		if i == j {
			return ms[i], nil
		}
		cut := split[i][j]
		left, err := multiply(i, cut)
		if err != nil {
			return nil, err
		}
		right, err := multiply(cut+1, j)
		if err != nil {
			return nil, err
		}

		return Mul(left, right)
	}

	out, err := multiply(0, k-1)
	if err != nil {
		return nil, cmatrixErrorf(opNaryMul, err)
	}
	if out == ms[0] { // unreachable for k > 1; guard aliasing anyway
		out = out.Clone()
	}

	return out, nil
}

// ConjTranspose returns the conjugate transpose: out[j,i] = conj(m[i,j]).
// Complexity: O(r*c).
func ConjTranspose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, cmatrixErrorf(opConjTranspose, err)
	}
	res := &Dense{r: m.c, c: m.r, data: make([]complex128, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			res.data[j*res.c+i] = cmplx.Conj(m.data[i*m.c+j])
		}
	}

	return res, nil
}

// Trace returns Σ m[i,i] for square m.
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(n).
func Trace(m *Dense) (complex128, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, cmatrixErrorf(opTrace, err)
	}
	var t complex128
	for i := 0; i < m.r; i++ {
		t += m.data[i*m.c+i]
	}

	return t, nil
}
