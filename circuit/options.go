// SPDX-License-Identifier: MIT
// Package circuit: functional configuration.

package circuit

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/quirq/cmatrix"
)

// DefaultNormTolerance bounds the per-op normalization audit in Run.
const DefaultNormTolerance = cmatrix.DefaultEpsilon

// Options holds the circuit configuration; fields are unexported and
// public APIs consume ...Option.
type Options struct {
	log     zerolog.Logger
	normTol float64
}

// Option mutates Options during New.
type Option func(*Options)

// WithLogger injects a zerolog.Logger; each applied op is reported at
// debug level. The default is zerolog.Nop().
func WithLogger(log zerolog.Logger) Option {
	return func(o *Options) { o.log = log }
}

// WithNormTolerance overrides the per-op normalization audit tolerance.
// Non-positive values are ignored in favor of the default.
func WithNormTolerance(eps float64) Option {
	return func(o *Options) {
		if eps > 0 {
			o.normTol = eps
		}
	}
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{log: zerolog.Nop(), normTol: DefaultNormTolerance}
}
