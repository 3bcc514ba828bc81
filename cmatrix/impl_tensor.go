// SPDX-License-Identifier: MIT
// Package cmatrix: Kronecker products and bit-order transforms.
//
// Purpose:
//   - Tensor/NaryTensor build composite operators and kets from per-wire
//     factors; the block-structured index law is
//     out[i*c + k, j*d + l] = A[i,j] * B[k,l] for A (a×b) and B (c×d).
//   - ReverseEndianness reorders a 2^k-indexed matrix or column by
//     reversing the bit positions of every index. It converts between the
//     library's wire-0-is-LSB convention and the textbook ordering, and is
//     an involution.
//
// Determinism:
//   - Fixed row-major loops over the left factor, then the right factor.

package cmatrix

// Tensor returns the Kronecker product a ⊗ b.
// For a of shape (p×q) and b of shape (r×s), the result has shape (pr×qs).
// Complexity: O(p*q*r*s).
func Tensor(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, cmatrixErrorf(opTensor, ErrNilMatrix)
	}
	res := &Dense{r: a.r * b.r, c: a.c * b.c, data: make([]complex128, a.r*b.r*a.c*b.c)}
	for i := 0; i < a.r; i++ {
		for j := 0; j < a.c; j++ {
			av := a.data[i*a.c+j]
			if av == 0 { // whole block is zero; skip the inner scan
				continue
			}
			for k := 0; k < b.r; k++ {
				dstBase := (i*b.r+k)*res.c + j*b.c
				srcBase := k * b.c
				for l := 0; l < b.c; l++ {
					res.data[dstBase+l] = av * b.data[srcBase+l]
				}
			}
		}
	}

	return res, nil
}

// NaryTensor folds Tensor left-to-right over the factors.
// Callers list factors in visual top-to-bottom wire order [q_{n-1} … q_0],
// so that bit 0 of the composite index is the last factor (wire 0).
// Errors: ErrEmptyOperands plus anything Tensor returns.
func NaryTensor(ms ...*Dense) (*Dense, error) {
	if len(ms) == 0 {
		return nil, cmatrixErrorf(opNaryTensor, ErrEmptyOperands)
	}
	if err := ValidateNotNil(ms[0]); err != nil {
		return nil, cmatrixErrorf(opNaryTensor, err)
	}
	acc := ms[0]
	if len(ms) == 1 {
		return acc.Clone(), nil
	}
	var err error
	for i := 1; i < len(ms); i++ {
		acc, err = Tensor(acc, ms[i])
		if err != nil {
			return nil, cmatrixErrorf(opNaryTensor, err)
		}
	}

	return acc, nil
}

// reverseBits reverses the lowest k bits of x.
func reverseBits(x, k int) int {
	out := 0
	for b := 0; b < k; b++ {
		out = out<<1 | (x>>b)&1
	}

	return out
}

// ReverseEndianness reorders indices by reversing their bit positions.
// Accepted shapes: square 2^k × 2^k (both indices reversed) and column
// 2^k × 1 (row index reversed). The transform is an involution.
// Errors: ErrNilMatrix, ErrNotPowerOfTwo, ErrBadShape.
// Complexity: O(4^k) for squares, O(2^k) for columns.
func ReverseEndianness(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, cmatrixErrorf(opReverseEndianness, err)
	}
	k, err := ValidatePowerOfTwo(m.r)
	if err != nil {
		return nil, cmatrixErrorf(opReverseEndianness, err)
	}

	switch {
	case m.c == 1: // column vector: reverse the row index only
		res := &Dense{r: m.r, c: 1, data: make([]complex128, m.r)}
		for i := 0; i < m.r; i++ {
			res.data[i] = m.data[reverseBits(i, k)]
		}

		return res, nil
	case m.c == m.r: // square operator: reverse both indices
		res := &Dense{r: m.r, c: m.c, data: make([]complex128, len(m.data))}
		for i := 0; i < m.r; i++ {
			ri := reverseBits(i, k)
			for j := 0; j < m.c; j++ {
				res.data[i*m.c+j] = m.data[ri*m.c+reverseBits(j, k)]
			}
		}

		return res, nil
	default:
		return nil, cmatrixErrorf(opReverseEndianness, ErrBadShape)
	}
}
