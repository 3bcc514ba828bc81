// SPDX-License-Identifier: MIT
// Package circuit: the builder and runner.
//
// Purpose:
//   - Record ops as closures over the evolve kernels; construction is
//     validation-light (wire ranges, nil gates) and collects the first
//     error instead of panicking mid-chain.
//   - Run/Steps replay the recording against |0…0⟩, auditing the norm
//     after every op.

package circuit

import (
	"fmt"

	"github.com/katalvlaran/quirq/cmatrix"
	"github.com/katalvlaran/quirq/evolve"
	"github.com/katalvlaran/quirq/gates"
)

// op is one recorded gate application.
type op struct {
	name  string
	wires []int
	apply func(psi *cmatrix.Dense) (*cmatrix.Dense, error)
}

// Circuit accumulates ops over n wires. Zero value is not usable; New.
type Circuit struct {
	n    int
	ops  []op
	opts Options
	err  error // first construction error; surfaced by Run/Steps/Err
}

// New returns an empty circuit on n wires.
func New(n int, options ...Option) *Circuit {
	c := &Circuit{n: n, opts: defaultOptions()}
	for _, o := range options {
		o(&c.opts)
	}
	if n < 1 {
		c.err = ErrInvalidQubits
	}

	return c
}

// Qubits returns the wire count.
func (c *Circuit) Qubits() int { return c.n }

// Size returns the number of recorded ops.
func (c *Circuit) Size() int { return len(c.ops) }

// Err returns the first construction error, if any.
func (c *Circuit) Err() error { return c.err }

// fail records the first construction error with op context.
func (c *Circuit) fail(name string, err error) *Circuit {
	if c.err == nil {
		c.err = fmt.Errorf("%s: %w", name, err)
	}

	return c
}

// checkWires validates wire ranges at construction time; deeper checks
// (duplicate controls, control-on-target) stay with the evolver.
func (c *Circuit) checkWires(name string, wires ...int) bool {
	for _, w := range wires {
		if w < 0 || w >= c.n {
			c.fail(name, ErrWireOutOfRange)

			return false
		}
	}

	return true
}

// controlWires flattens a control mask for range checking and logging.
func controlWires(controls []evolve.Control) []int {
	out := make([]int, len(controls))
	for i, ctl := range controls {
		out[i] = ctl.Wire
	}

	return out
}

// Gate appends a generic 2×2 gate on target, gated by controls.
func (c *Circuit) Gate(name string, g *cmatrix.Dense, target int, controls ...evolve.Control) *Circuit {
	if c.err != nil {
		return c
	}
	if g == nil {
		return c.fail(name, ErrNilGate)
	}
	if !c.checkWires(name, append([]int{target}, controlWires(controls)...)...) {
		return c
	}
	c.ops = append(c.ops, op{
		name:  name,
		wires: append([]int{target}, controlWires(controls)...),
		apply: func(psi *cmatrix.Dense) (*cmatrix.Dense, error) {
			return evolve.ApplyGate(g, target, c.n, psi, controls...)
		},
	})

	return c
}

// Gate2 appends a generic 4×4 gate on the ordered pair (t0, t1).
func (c *Circuit) Gate2(name string, g *cmatrix.Dense, t0, t1 int, controls ...evolve.Control) *Circuit {
	if c.err != nil {
		return c
	}
	if g == nil {
		return c.fail(name, ErrNilGate)
	}
	if !c.checkWires(name, append([]int{t0, t1}, controlWires(controls)...)...) {
		return c
	}
	c.ops = append(c.ops, op{
		name:  name,
		wires: append([]int{t0, t1}, controlWires(controls)...),
		apply: func(psi *cmatrix.Dense) (*cmatrix.Dense, error) {
			return evolve.ApplyGate2(g, t0, t1, c.n, psi, controls...)
		},
	})

	return c
}

// Controlled appends a 2×2 gate with positive controls on the given wires.
func (c *Circuit) Controlled(name string, g *cmatrix.Dense, target int, controlOn ...int) *Circuit {
	controls := make([]evolve.Control, len(controlOn))
	for i, w := range controlOn {
		controls[i] = evolve.Control{Wire: w, On: true}
	}

	return c.Gate(name, g, target, controls...)
}

// H appends a Hadamard on target.
func (c *Circuit) H(target int) *Circuit { return c.Gate("H", gates.H(), target) }

// X appends a Pauli X on target.
func (c *Circuit) X(target int) *Circuit { return c.Gate("X", gates.X(), target) }

// Y appends a Pauli Y on target.
func (c *Circuit) Y(target int) *Circuit { return c.Gate("Y", gates.Y(), target) }

// Z appends a Pauli Z on target.
func (c *Circuit) Z(target int) *Circuit { return c.Gate("Z", gates.Z(), target) }

// RX appends a rotation about x by deg degrees.
func (c *Circuit) RX(target int, deg float64) *Circuit {
	return c.Gate(fmt.Sprintf("RX(%g)", deg), gates.RX(deg), target)
}

// RY appends a rotation about y by deg degrees.
func (c *Circuit) RY(target int, deg float64) *Circuit {
	return c.Gate(fmt.Sprintf("RY(%g)", deg), gates.RY(deg), target)
}

// RZ appends a rotation about z by deg degrees.
func (c *Circuit) RZ(target int, deg float64) *Circuit {
	return c.Gate(fmt.Sprintf("RZ(%g)", deg), gates.RZ(deg), target)
}

// Phase appends diag(1, e^{iθ}) on target, θ in degrees.
func (c *Circuit) Phase(target int, deg float64) *Circuit {
	return c.Gate(fmt.Sprintf("Phase(%g)", deg), gates.Phase(deg), target)
}

// CX appends a controlled-NOT with the given control and target wires.
func (c *Circuit) CX(control, target int) *Circuit {
	return c.Gate("CX", gates.X(), target, evolve.Control{Wire: control, On: true})
}

// Swap appends a SWAP of wires i and j.
func (c *Circuit) Swap(i, j int) *Circuit {
	if c.err != nil {
		return c
	}
	if !c.checkWires("SWAP", i, j) {
		return c
	}
	c.ops = append(c.ops, op{
		name:  "SWAP",
		wires: []int{i, j},
		apply: func(psi *cmatrix.Dense) (*cmatrix.Dense, error) {
			return evolve.Swap(i, j, c.n, psi)
		},
	})

	return c
}

// Run evolves |0…0⟩ through the recorded ops and returns the final
// state. The norm is audited after every op (ErrNormDrift).
func (c *Circuit) Run() (*cmatrix.Dense, error) {
	states, err := c.replay(false)
	if err != nil {
		return nil, err
	}

	return states[len(states)-1], nil
}

// Steps evolves |0…0⟩ and returns every intermediate state; index 0 is
// the initial ket and index i the state after op i.
func (c *Circuit) Steps() ([]*cmatrix.Dense, error) {
	return c.replay(true)
}

// replay drives the evolution; keepAll retains every prefix state.
func (c *Circuit) replay(keepAll bool) ([]*cmatrix.Dense, error) {
	if c.err != nil {
		return nil, c.err
	}
	psi, err := evolve.ZeroKet(c.n)
	if err != nil {
		return nil, err
	}
	states := make([]*cmatrix.Dense, 0, len(c.ops)+1)
	states = append(states, psi)

	for i, o := range c.ops {
		next, err := o.apply(psi)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", o.name, err)
		}
		if err := evolve.ValidateNormalized(next, c.opts.normTol); err != nil {
			return nil, fmt.Errorf("%s: %w", o.name, ErrNormDrift)
		}
		c.opts.log.Debug().
			Str("op", o.name).
			Ints("wires", o.wires).
			Int("qubits", c.n).
			Int("step", i).
			Msg("applied gate")

		if keepAll {
			states = append(states, next)
		} else {
			states[len(states)-1] = next
		}
		psi = next
	}

	return states, nil
}
