// Package gates publishes the immutable gate library of the simulator:
// fixed 2×2 constants, parameterized 2×2 factories, and the 4×4 CX and
// SWAP operators.
//
// What
//
//   - Constants: I, X, Y, Z, H; square roots SX, SY, SZ; fourth roots
//     SSX, SSY, SSZ; and their inverses (…Dag).
//   - Factories: GlobalPhase, Phase, RX, RY, RZ, RotFreeAxis,
//     RotFreeAxisAngle, the phased fractional powers ZG/YG/HG, and the
//     real-exponent Pauli powers XE/YE/ZE.
//   - Two-qubit: CX (as stored: wire 0 control, wire 1 target) and SWAP.
//
// Angle units
//
//	All public angle arguments are DEGREES; trigonometry is internal.
//
// Conventions
//
//	Bit 0 of a basis index is wire 0 (top wire). The stored CX is
//	[[1,0,0,0],[0,0,0,1],[0,0,1,0],[0,1,0,0]]: wire 0 controls wire 1.
//	Configure(WithTextbookConvention(true)) switches the served 4×4
//	constants to the textbook ordering (conjugation by endianness
//	reversal). The flag is process-wide initialization state; do not mix
//	conventions within a run.
//
// Immutability
//
//	Every accessor and factory returns a freshly allocated matrix, so no
//	caller can corrupt the shared table. Every gate G in the library
//	satisfies G·G† = I within 1e-9 (see the round-trip tests).
package gates
