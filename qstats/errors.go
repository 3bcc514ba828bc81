// SPDX-License-Identifier: MIT
// Package qstats: sentinel error set.

package qstats

import "errors"

var (
	// ErrBadDimension indicates a matrix whose size does not fit the
	// statistic (e.g. a pairwise descriptor on a non-4×4 input).
	ErrBadDimension = errors.New("qstats: matrix dimension does not fit the statistic")

	// ErrBadTrace indicates a density matrix whose trace deviates from 1
	// beyond the tolerance; a numerical failure of the statistic.
	ErrBadTrace = errors.New("qstats: density matrix trace deviates from 1")

	// ErrNegativeEigenvalue indicates an eigenvalue below the clamping
	// floor −1e-7; the matrix is not positive semidefinite up to noise.
	ErrNegativeEigenvalue = errors.New("qstats: eigenvalue below clamping tolerance")

	// ErrNilOracle is returned by spectrum-dependent statistics invoked
	// without an eigendecomposition oracle.
	ErrNilOracle = errors.New("qstats: eigendecomposition oracle is nil")
)
