// Package cmatrix: Dense is the concrete row-major implementation used by
// every layer of the simulator, storing complex128 elements in a flat slice
// for performance and cache friendliness.

package cmatrix

import (
	"fmt"
	"math/cmplx"
	"strings"
)

// Dense is a row-major matrix of complex128 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int          // number of rows and columns
	data []complex128 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Returns ErrBadShape when rows or cols is non-positive.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{r: rows, c: cols, data: make([]complex128, rows*cols)}, nil
}

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal).
// Complexity: O(n^2) zeroing (constructor) + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		m.data[i*n+i] = 1
	}

	return m, nil
}

// FromRows builds a Dense from a literal row slice. Every row must have the
// same non-zero length; otherwise ErrBadShape. The input is copied.
func FromRows(rows [][]complex128) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	c := len(rows[0])
	m := &Dense{r: len(rows), c: c, data: make([]complex128, len(rows)*c)}
	for i, row := range rows {
		if len(row) != c { // ragged literal
			return nil, ErrBadShape
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// NewColumn wraps a copy of amps as a len(amps)×1 column vector.
// State vectors are columns; see evolve for normalized constructors.
func NewColumn(amps []complex128) (*Dense, error) {
	if len(amps) == 0 {
		return nil, ErrBadShape
	}
	data := make([]complex128, len(amps))
	copy(data, amps)

	return &Dense{r: len(amps), c: 1, data: data}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Dense.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col), bounds-checked.
func (m *Dense) At(row, col int) (complex128, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col), bounds-checked.
func (m *Dense) Set(row, col int, v complex128) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy sharing no storage with the receiver.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	data := make([]complex128, len(m.data))
	copy(data, m.data)

	return &Dense{r: m.r, c: m.c, data: data}
}

// Data exposes the backing slice without copying. The returned slice aliases
// the matrix; callers that mutate it bypass bounds checking. Hot kernels
// (evolve, ptrace) use it to avoid per-element indirection.
func (m *Dense) Data() []complex128 { return m.data }

// Equal reports elementwise equality within eps, measured as the modulus
// |m[i,j] − o[i,j]|. Shapes must match exactly; eps < 0 is treated as 0.
func (m *Dense) Equal(o *Dense, eps float64) bool {
	if o == nil || m.r != o.r || m.c != o.c {
		return false
	}
	if eps < 0 {
		eps = 0
	}
	for i, v := range m.data {
		d := v - o.data[i]
		if cmplx.Abs(d) > eps {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for debugging; entries are printed with
// %g on both components in row-major order.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString("[")
		for j := 0; j < m.c; j++ {
			v := m.data[i*m.c+j]
			fmt.Fprintf(&b, "%g%+gi", real(v), imag(v))
			if j < m.c-1 {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
