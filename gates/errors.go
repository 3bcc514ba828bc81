// SPDX-License-Identifier: MIT
// Package gates: sentinel error set.

package gates

import "errors"

var (
	// ErrZeroAxis is returned by the free-axis rotation factories when the
	// supplied axis vector has (near-)zero length and cannot be normalized.
	ErrZeroAxis = errors.New("gates: rotation axis has zero length")
)
