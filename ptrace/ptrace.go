// SPDX-License-Identifier: MIT
// Package ptrace: the contraction kernels.
//
// Purpose:
//   - keptSet resolves (qubits, keep) into the sorted kept wire list.
//   - scatterTable precomputes the fixed bit permutation r = scatter(x)
//     for every value of a reduced or summation index, so the inner loop
//     is a table lookup plus an OR.
//   - FromState and FromDensity share the tables and differ only in the
//     accumulation source.
//
// Complexity:
//   - FromState:   O(4^M · 2^(n−M)) time = O(2^(n+M)), O(4^M) memory.
//   - FromDensity: same loop structure over the supplied D.

package ptrace

import (
	"math/cmplx"
	"sort"

	"github.com/katalvlaran/quirq/cmatrix"
)

// keptSet validates the call and returns the kept wires sorted ascending.
// When keep is false, the complement of qubits within [0, n) is kept.
func keptSet(n int, qubits []int, keep bool) ([]int, error) {
	if n < 1 {
		return nil, ErrInvalidQubits
	}
	var mask int
	for _, q := range qubits {
		if q < 0 || q >= n {
			return nil, ErrWireOutOfRange
		}
		bit := 1 << q
		if mask&bit != 0 {
			return nil, ErrDuplicateWire
		}
		mask |= bit
	}
	if !keep {
		mask = ^mask & (1<<n - 1) // keep the complement
	}

	kept := make([]int, 0, n)
	for q := 0; q < n; q++ { // ascending by construction
		if mask&(1<<q) != 0 {
			kept = append(kept, q)
		}
	}
	if len(kept) == 0 {
		return nil, ErrNoQubits
	}
	sort.Ints(kept) // already sorted; kept for explicitness

	return kept, nil
}

// complement returns the wires of [0, n) not present in kept, ascending.
func complement(n int, kept []int) []int {
	var mask int
	for _, q := range kept {
		mask |= 1 << q
	}
	out := make([]int, 0, n-len(kept))
	for q := 0; q < n; q++ {
		if mask&(1<<q) == 0 {
			out = append(out, q)
		}
	}

	return out
}

// scatterTable returns t[x] = Σ_j bit_j(x) << positions[j] for every
// x in [0, 2^len(positions)): the fixed permutation scattering the bits
// of a compact index into the given wire positions.
func scatterTable(positions []int) []int {
	size := 1 << len(positions)
	table := make([]int, size)
	for x := 0; x < size; x++ {
		r := 0
		for j, p := range positions {
			r |= (x >> j & 1) << p
		}
		table[x] = r
	}

	return table
}

// FromState computes the reduced density matrix directly from ψ.
// qubits/keep select the kept set (see package doc); ψ must be a 2^n
// column. The result is 2^M × 2^M, Hermitian by construction.
// Errors: ErrInvalidQubits, ErrWireOutOfRange, ErrDuplicateWire,
// ErrNoQubits, ErrStateLength, cmatrix.ErrNilMatrix.
func FromState(n int, psi *cmatrix.Dense, qubits []int, keep bool) (*cmatrix.Dense, error) {
	kept, err := keptSet(n, qubits, keep)
	if err != nil {
		return nil, err
	}
	if psi == nil {
		return nil, cmatrix.ErrNilMatrix
	}
	if psi.Cols() != 1 || psi.Rows() != 1<<n {
		return nil, ErrStateLength
	}

	keptTab := scatterTable(kept)
	fillTab := scatterTable(complement(n, kept))
	dim := len(keptTab)

	red, err := cmatrix.NewDense(dim, dim)
	if err != nil {
		return nil, err
	}
	amps := psi.Data()
	out := red.Data()
	for a := 0; a < dim; a++ {
		ra := keptTab[a]
		for b := a; b < dim; b++ { // upper triangle; mirror below
			rb := keptTab[b]
			var acc complex128
			for _, fill := range fillTab {
				acc += amps[ra|fill] * cmplx.Conj(amps[rb|fill])
			}
			out[a*dim+b] = acc
			if a != b {
				out[b*dim+a] = cmplx.Conj(acc)
			}
		}
	}

	return red, nil
}

// FromDensity computes the reduced density matrix from a full 2^n × 2^n
// density matrix: R[a, b] = Σ_t D[scatter(a, t), scatter(b, t)].
// Errors: as FromState, with ErrDensityShape replacing ErrStateLength.
func FromDensity(n int, rho *cmatrix.Dense, qubits []int, keep bool) (*cmatrix.Dense, error) {
	kept, err := keptSet(n, qubits, keep)
	if err != nil {
		return nil, err
	}
	if rho == nil {
		return nil, cmatrix.ErrNilMatrix
	}
	full := 1 << n
	if rho.Rows() != full || rho.Cols() != full {
		return nil, ErrDensityShape
	}

	keptTab := scatterTable(kept)
	fillTab := scatterTable(complement(n, kept))
	dim := len(keptTab)

	red, err := cmatrix.NewDense(dim, dim)
	if err != nil {
		return nil, err
	}
	src := rho.Data()
	out := red.Data()
	for a := 0; a < dim; a++ {
		ra := keptTab[a]
		for b := 0; b < dim; b++ {
			rb := keptTab[b]
			var acc complex128
			for _, fill := range fillTab {
				acc += src[(ra|fill)*full+(rb|fill)]
			}
			out[a*dim+b] = acc
		}
	}

	return red, nil
}
