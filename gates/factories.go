// SPDX-License-Identifier: MIT
// Package gates: parameterized gate factories.
//
// Every factory accepts angles in degrees at the public boundary and
// converts to radians internally. All returned matrices are unitary
// within 1e-9 and freshly allocated per call.

package gates

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/quirq/cmatrix"
)

// degToRad converts a public degree argument to radians.
func degToRad(deg float64) float64 { return deg * math.Pi / 180 }

// involutionPower raises an involutory 2×2 gate (G² = I) to a real power:
//
//	G^t = e^{iπt/2} (cos(πt/2)·I − i·sin(πt/2)·G)
//
// This single formula produces the whole root family (SX = X^½, SSZ = Z^¼)
// as well as the XE/YE/ZE exponent gates and the fractional parts of
// ZG/YG/HG. The principal branch is used throughout.
func involutionPower(g *cmatrix.Dense, t float64) *cmatrix.Dense {
	phase := cmplx.Exp(complex(0, math.Pi*t/2))
	c := complex(math.Cos(math.Pi*t/2), 0)
	s := complex(0, -math.Sin(math.Pi*t/2)) // the −i·sin factor

	out := make([]complex128, 4)
	gd := g.Data()
	// out = phase * (c*I + s*G), unrolled over the four entries.
	out[0] = phase * (c + s*gd[0])
	out[1] = phase * (s * gd[1])
	out[2] = phase * (s * gd[2])
	out[3] = phase * (c + s*gd[3])

	m, err := cmatrix.FromRows([][]complex128{{out[0], out[1]}, {out[2], out[3]}})
	if err != nil {
		panic(err) // fixed 2×2 literal; cannot happen
	}

	return m
}

// GlobalPhase returns e^{iθ}·I for θ given in degrees.
func GlobalPhase(deg float64) *cmatrix.Dense {
	p := cmplx.Exp(complex(0, degToRad(deg)))

	return mustRows([][]complex128{{p, 0}, {0, p}})
}

// Phase returns diag(1, e^{iθ}) for θ in degrees.
func Phase(deg float64) *cmatrix.Dense {
	p := cmplx.Exp(complex(0, degToRad(deg)))

	return mustRows([][]complex128{{1, 0}, {0, p}})
}

// RX returns the rotation about the x axis by θ degrees:
// [[cos(θ/2), −i·sin(θ/2)], [−i·sin(θ/2), cos(θ/2)]].
func RX(deg float64) *cmatrix.Dense {
	half := degToRad(deg) / 2
	c := complex(math.Cos(half), 0)
	s := complex(0, -math.Sin(half))

	return mustRows([][]complex128{{c, s}, {s, c}})
}

// RY returns the rotation about the y axis by θ degrees:
// [[cos(θ/2), −sin(θ/2)], [sin(θ/2), cos(θ/2)]].
func RY(deg float64) *cmatrix.Dense {
	half := degToRad(deg) / 2
	c := complex(math.Cos(half), 0)
	s := complex(math.Sin(half), 0)

	return mustRows([][]complex128{{c, -s}, {s, c}})
}

// RZ returns the rotation about the z axis by θ degrees:
// diag(e^{−iθ/2}, e^{iθ/2}).
func RZ(deg float64) *cmatrix.Dense {
	half := degToRad(deg) / 2
	p := cmplx.Exp(complex(0, half))

	return mustRows([][]complex128{{cmplx.Conj(p), 0}, {0, p}})
}

// RotFreeAxisAngle returns the rotation by θ degrees about the free axis
// (ax, ay, az): cos(θ/2)·I − i·sin(θ/2)·(ax·X + ay·Y + az·Z).
// The axis is normalized internally; a zero axis yields ErrZeroAxis.
func RotFreeAxisAngle(ax, ay, az, deg float64) (*cmatrix.Dense, error) {
	norm := math.Sqrt(ax*ax + ay*ay + az*az)
	if norm <= cmatrix.DefaultEpsilon {
		return nil, ErrZeroAxis
	}
	ax, ay, az = ax/norm, ay/norm, az/norm

	half := degToRad(deg) / 2
	c := complex(math.Cos(half), 0)
	is := complex(0, -math.Sin(half)) // −i·sin(θ/2)

	// a·σ = [[az, ax−i·ay], [ax+i·ay, −az]]
	return mustRows([][]complex128{
		{c + is*complex(az, 0), is * complex(ax, -ay)},
		{is * complex(ax, ay), c - is*complex(az, 0)},
	}), nil
}

// RotFreeAxis returns the half-turn (180°) rotation about (ax, ay, az),
// i.e. −i·(a·σ) for the normalized axis.
func RotFreeAxis(ax, ay, az float64) (*cmatrix.Dense, error) {
	return RotFreeAxisAngle(ax, ay, az, 180)
}

// phasedPower returns e^{i·b}·G^(a/180) for an involutory G, with a and b
// in degrees. a = 180 recovers G itself; b adds a global phase.
func phasedPower(g *cmatrix.Dense, a, b float64) *cmatrix.Dense {
	m := involutionPower(g, a/180)
	p := cmplx.Exp(complex(0, degToRad(b)))
	d := m.Data()
	for i := range d {
		d[i] *= p
	}

	return m
}

// ZG returns the phased fractional Z power e^{ib}·Z^(a/180); a and b in
// degrees. ZG(180, 0) = Z and ZG(a, 0) coincides with Phase(a) on the
// principal branch.
func ZG(a, b float64) *cmatrix.Dense { return phasedPower(matZ, a, b) }

// YG returns the phased fractional Y power e^{ib}·Y^(a/180).
func YG(a, b float64) *cmatrix.Dense { return phasedPower(matY, a, b) }

// HG returns the phased fractional Hadamard power e^{ib}·H^(a/180);
// HG(180, 0) = H.
func HG(a, b float64) *cmatrix.Dense { return phasedPower(matH, a, b) }

// XE returns X^k for real exponent k (XE(0.5) = SX, XE(-0.5) = SXDag).
func XE(k float64) *cmatrix.Dense { return involutionPower(matX, k) }

// YE returns Y^k for real exponent k.
func YE(k float64) *cmatrix.Dense { return involutionPower(matY, k) }

// ZE returns Z^k = diag(1, e^{iπk}) up to the principal branch.
func ZE(k float64) *cmatrix.Dense { return involutionPower(matZ, k) }
