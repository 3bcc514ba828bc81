// SPDX-License-Identifier: MIT
// Package gates: process-wide library configuration.
//
// Design goals:
//   - The endianness convention is initialization state, not a per-call
//     argument: a run that mixed conventions would silently corrupt
//     results, so the switch lives at the library level and is read once
//     per accessor call.
//   - Functional options with documented defaults, as everywhere else in
//     the module.

package gates

// DefaultTextbookConvention controls the ordering of the served 4×4
// constants. false ⇒ the library's native ordering (wire 0 is the CX
// control); true ⇒ textbook ordering (wire 1 is the CX control),
// obtained by conjugating with the endianness reversal.
const DefaultTextbookConvention = false

// Options holds the library configuration. Fields are unexported; public
// APIs consume ...Option.
type Options struct {
	textbook bool
}

// Option mutates Options during Configure.
type Option func(*Options)

// WithTextbookConvention selects the textbook bit ordering for the 4×4
// constants when on is true.
func WithTextbookConvention(on bool) Option {
	return func(o *Options) { o.textbook = on }
}

// cfg is the process-wide configuration. The scheduling model of the core
// is single-threaded cooperative, so plain reads/writes suffice.
var cfg = Options{textbook: DefaultTextbookConvention}

// Configure applies opts to the process-wide configuration. Call once
// during initialization, before any circuit runs.
func Configure(opts ...Option) {
	next := Options{textbook: DefaultTextbookConvention}
	for _, opt := range opts {
		opt(&next)
	}
	cfg = next
}

// UsingTextbookConvention reports the active 4×4 ordering convention.
func UsingTextbookConvention() bool { return cfg.textbook }
