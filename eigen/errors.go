// SPDX-License-Identifier: MIT
// Package eigen: sentinel error set.

package eigen

import "errors"

var (
	// ErrEigenFailed indicates the backend did not converge; it is
	// propagated to the caller of the affected statistic.
	ErrEigenFailed = errors.New("eigen: eigendecomposition failed to converge")
)
