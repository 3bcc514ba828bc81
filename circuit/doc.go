// Package circuit provides a fluent builder and runner for scripting
// gate sequences over n wires and stepping through the evolved states.
//
// What
//
//   - New(n) starts an empty circuit on n wires; chainable ops append
//     gates: named constants (H, X, Y, Z), parameterized rotations
//     (RX/RY/RZ/Phase), generic Gate/Gate2/Controlled with arbitrary
//     control masks, CX and Swap.
//   - Run() evolves |0…0⟩ through the recorded ops via the qubit-wise
//     evolver and returns the final state.
//   - Steps() returns every intermediate state (index 0 is the initial
//     ket), the stepping surface of the simulator.
//
// Error handling
//
//	Construction never fails mid-chain: the first violation (wire out of
//	range, nil gate) is recorded and surfaced by Run/Steps/Err, so long
//	chains stay readable. After every applied op, Run audits
//	Σ|ψ_r|² = 1 within the configured tolerance and aborts with
//	ErrNormDrift on violation.
//
// Observability
//
//	An optional zerolog.Logger (WithLogger) reports each applied op at
//	debug level: op name, wires, qubit count. The default is a no-op
//	logger; the hot kernels themselves never log.
package circuit
