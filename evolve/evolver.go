// SPDX-License-Identifier: MIT
// Package evolve: the qubit-wise application kernels.
//
// Purpose:
//   - Validate once, then run a single deterministic pass over the
//     amplitude buffer; pairs (2×2) or quads (4×4) are read and written
//     exactly once.
//   - The allocating entry points and the InPlace variants share these
//     kernels; the kernels tolerate dst aliasing src because every group
//     is staged through scalar temporaries before writing.
//
// Complexity: every call is O(2^n) time, O(1) scratch beyond dst.

package evolve

import (
	"github.com/katalvlaran/quirq/cmatrix"
)

// Control gates a gate application on one wire: the gate applies on the
// subspace where the wire's bit equals 1 (On) or 0 (!On), and acts as
// identity elsewhere. Controls must be disjoint from targets.
type Control struct {
	Wire int
	On   bool
}

// controlMasks folds the control list into bit masks: onMask bits must be
// set and offMask bits must be clear for the gate to apply.
func controlMasks(controls []Control) (onMask, offMask int) {
	for _, c := range controls {
		if c.On {
			onMask |= 1 << c.Wire
		} else {
			offMask |= 1 << c.Wire
		}
	}

	return onMask, offMask
}

// validateCall checks the shared preconditions of every evolver entry.
// Targets must be in range and pairwise distinct; controls must be in
// range, distinct, and disjoint from targets; ψ must be a 2^n column.
func validateCall(n int, targets []int, psi *cmatrix.Dense, controls []Control) error {
	if n < 1 {
		return ErrInvalidQubits
	}
	if psi == nil {
		return cmatrix.ErrNilMatrix
	}
	if psi.Cols() != 1 || psi.Rows() != 1<<n {
		return ErrStateLength
	}
	targetMask := 0
	for _, t := range targets {
		if t < 0 || t >= n {
			return ErrWireOutOfRange
		}
		if targetMask&(1<<t) != 0 {
			return ErrSameWire
		}
		targetMask |= 1 << t
	}
	seen := 0
	for _, c := range controls {
		if c.Wire < 0 || c.Wire >= n {
			return ErrWireOutOfRange
		}
		bit := 1 << c.Wire
		if bit&targetMask != 0 {
			return ErrControlOnTarget
		}
		if seen&bit != 0 {
			return ErrDuplicateControl
		}
		seen |= bit
	}

	return nil
}

// kernel2x2 applies g (2×2, flat row-major) to wire t of src, writing dst.
// dst may alias src. Pairs whose controls are unsatisfied are copied.
func kernel2x2(g []complex128, t, n int, src, dst []complex128, onMask, offMask int) {
	dim := 1 << n
	bit := 1 << t
	g00, g01, g10, g11 := g[0], g[1], g[2], g[3]
	for r0 := 0; r0 < dim; r0++ {
		if r0&bit != 0 { // iterate only over pair bases (target bit clear)
			continue
		}
		r1 := r0 | bit
		if r0&onMask != onMask || r0&offMask != 0 {
			dst[r0] = src[r0] // identity action on the unsatisfied subspace
			dst[r1] = src[r1]
			continue
		}
		a0, a1 := src[r0], src[r1]
		dst[r0] = g00*a0 + g01*a1
		dst[r1] = g10*a0 + g11*a1
	}
}

// kernel4x4 applies g (4×4, flat row-major) to wires (t0, t1) of src.
// Bit 0 of the gate's 2-bit index is wire t0. dst may alias src.
func kernel4x4(g []complex128, t0, t1, n int, src, dst []complex128, onMask, offMask int) {
	dim := 1 << n
	b0 := 1 << t0
	b1 := 1 << t1
	var idx [4]int
	var amp [4]complex128
	for r := 0; r < dim; r++ {
		if r&b0 != 0 || r&b1 != 0 { // base index: both target bits clear
			continue
		}
		idx[0] = r
		idx[1] = r | b0
		idx[2] = r | b1
		idx[3] = r | b0 | b1
		if r&onMask != onMask || r&offMask != 0 {
			for s := 0; s < 4; s++ {
				dst[idx[s]] = src[idx[s]]
			}
			continue
		}
		for s := 0; s < 4; s++ { // stage through temps; dst may alias src
			amp[s] = src[idx[s]]
		}
		for i := 0; i < 4; i++ {
			dst[idx[i]] = g[i*4]*amp[0] + g[i*4+1]*amp[1] + g[i*4+2]*amp[2] + g[i*4+3]*amp[3]
		}
	}
}

// ApplyGate applies a 2×2 gate to wire target of an n-qubit state ψ,
// gated by the control mask, and returns a fresh state vector; ψ is not
// mutated. Errors: ErrInvalidQubits, ErrWireOutOfRange, ErrControlOnTarget,
// ErrDuplicateControl, ErrBadGateShape, ErrStateLength, cmatrix.ErrNilMatrix.
func ApplyGate(g *cmatrix.Dense, target, n int, psi *cmatrix.Dense, controls ...Control) (*cmatrix.Dense, error) {
	if g == nil {
		return nil, cmatrix.ErrNilMatrix
	}
	if g.Rows() != 2 || g.Cols() != 2 {
		return nil, ErrBadGateShape
	}
	if err := validateCall(n, []int{target}, psi, controls); err != nil {
		return nil, err
	}
	out, err := cmatrix.NewDense(1<<n, 1)
	if err != nil {
		return nil, err
	}
	onMask, offMask := controlMasks(controls)
	kernel2x2(g.Data(), target, n, psi.Data(), out.Data(), onMask, offMask)

	return out, nil
}

// ApplyGateInPlace is the in-place variant of ApplyGate: ψ is updated
// directly. Semantically identical to ApplyGate.
func ApplyGateInPlace(g *cmatrix.Dense, target, n int, psi *cmatrix.Dense, controls ...Control) error {
	if g == nil {
		return cmatrix.ErrNilMatrix
	}
	if g.Rows() != 2 || g.Cols() != 2 {
		return ErrBadGateShape
	}
	if err := validateCall(n, []int{target}, psi, controls); err != nil {
		return err
	}
	onMask, offMask := controlMasks(controls)
	buf := psi.Data()
	kernel2x2(g.Data(), target, n, buf, buf, onMask, offMask)

	return nil
}

// ApplyGate2 applies a 4×4 gate to the ordered wire pair (t0, t1) of an
// n-qubit state ψ and returns a fresh state vector. Bit 0 of the gate's
// index is wire t0, matching the library's stored CX convention.
func ApplyGate2(g *cmatrix.Dense, t0, t1, n int, psi *cmatrix.Dense, controls ...Control) (*cmatrix.Dense, error) {
	if g == nil {
		return nil, cmatrix.ErrNilMatrix
	}
	if g.Rows() != 4 || g.Cols() != 4 {
		return nil, ErrBadGateShape
	}
	if err := validateCall(n, []int{t0, t1}, psi, controls); err != nil {
		return nil, err
	}
	out, err := cmatrix.NewDense(1<<n, 1)
	if err != nil {
		return nil, err
	}
	onMask, offMask := controlMasks(controls)
	kernel4x4(g.Data(), t0, t1, n, psi.Data(), out.Data(), onMask, offMask)

	return out, nil
}

// ApplyGate2InPlace is the in-place variant of ApplyGate2.
func ApplyGate2InPlace(g *cmatrix.Dense, t0, t1, n int, psi *cmatrix.Dense, controls ...Control) error {
	if g == nil {
		return cmatrix.ErrNilMatrix
	}
	if g.Rows() != 4 || g.Cols() != 4 {
		return ErrBadGateShape
	}
	if err := validateCall(n, []int{t0, t1}, psi, controls); err != nil {
		return err
	}
	onMask, offMask := controlMasks(controls)
	buf := psi.Data()
	kernel4x4(g.Data(), t0, t1, n, buf, buf, onMask, offMask)

	return nil
}
