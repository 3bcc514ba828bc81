// SPDX-License-Identifier: MIT
// Package evolve: explicit-operator expansion utility.
//
// Expand4x4 exists for callers who prefer the explicit-matrix picture
// (e.g. to multiply operator chains symbolically); the evolver itself
// never materializes a 2^n × 2^n matrix.

package evolve

import "github.com/katalvlaran/quirq/cmatrix"

// Expand4x4 lifts a 4×4 gate on wires (t0, t1) to the full 2^n × 2^n
// operator. Bit 0 of the gate's 2-bit index is wire t0. The block law:
// for every base r with both target bits clear and every (i, j) in
// [0,4)², O[r⊕bits(i), r⊕bits(j)] = g[i, j].
// Errors: ErrBadGateShape plus the shared wire validations.
// Complexity: O(16·2^n) time, O(4^n) memory for the result.
func Expand4x4(g *cmatrix.Dense, t0, t1, n int) (*cmatrix.Dense, error) {
	if g == nil {
		return nil, cmatrix.ErrNilMatrix
	}
	if g.Rows() != 4 || g.Cols() != 4 {
		return nil, ErrBadGateShape
	}
	if n < 1 {
		return nil, ErrInvalidQubits
	}
	if t0 < 0 || t0 >= n || t1 < 0 || t1 >= n {
		return nil, ErrWireOutOfRange
	}
	if t0 == t1 {
		return nil, ErrSameWire
	}

	dim := 1 << n
	out, err := cmatrix.NewDense(dim, dim)
	if err != nil {
		return nil, err
	}
	b0 := 1 << t0
	b1 := 1 << t1
	gd := g.Data()
	od := out.Data()
	var sub [4]int
	for r := 0; r < dim; r++ {
		if r&b0 != 0 || r&b1 != 0 {
			continue
		}
		sub[0] = r
		sub[1] = r | b0
		sub[2] = r | b1
		sub[3] = r | b0 | b1
		for i := 0; i < 4; i++ {
			row := sub[i] * dim
			for j := 0; j < 4; j++ {
				od[row+sub[j]] = gd[i*4+j]
			}
		}
	}

	return out, nil
}
