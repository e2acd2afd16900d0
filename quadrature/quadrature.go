// Package quadrature evaluates the regularized radial integrals entering
// the two-body chiral magnetic-dipole corrections.
//
// All integrals run over the dimensionless radial coordinate x = r/b of the
// relevant Jacobi coordinate. The pion-range functions are evaluated at
// u = (m_π b)·x, so callers pass the pion mass and the regulator already
// scaled by the oscillator length. Integration uses a fixed Gauss–Legendre
// rule (gonum integrate/quad) with a constant node count and interval:
// identical inputs therefore produce bit-identical values run to run.
//
// Except where noted, the two-body integrals pair *unnormalized* oscillator
// radial functions; callers multiply by the ho.CoordinateSpaceNorm product,
// matching how the norms enter the matrix-element formulas.
package quadrature

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"

	"github.com/lenpic/chiralme/ho"
)

const (
	// rMax bounds the dimensionless radial domain. Oscillator functions of
	// the truncations in use (Nmax ≲ 40) are negligible beyond it.
	rMax = 14.0

	// nodes is the fixed Gauss–Legendre node count. Fixed, not adaptive, so
	// that repeated runs are bit-identical.
	nodes = 300

	// regulatorPower is the exponent of the coordinate-space regulator
	// (1 − exp(−(r/R)²))^n suppressing the short-range pion singularities.
	regulatorPower = 6
)

// Params2N collects the quantum numbers and scales of a two-body radial
// integral: bra (Np, Lp), ket (N, L), the regulator switch, the regulator
// length over the oscillator length, and the pion mass times the oscillator
// length.
type Params2N struct {
	Np, Lp     int
	N, L       int
	Regularize bool
	Regulator  float64
	PionMass   float64
}

// NewParams2N is the positional constructor used by the matrix-element
// formulas; the argument order mirrors the evaluation call sites.
func NewParams2N(np, lp, n, l int, regularize bool, regulator, pionMass float64) Params2N {
	return Params2N{Np: np, Lp: lp, N: n, L: l,
		Regularize: regularize, Regulator: regulator, PionMass: pionMass}
}

// pairDensity is the unnormalized two-body radial density x² R'(x) R(x).
func (p Params2N) pairDensity(x float64) float64 {
	return x * x *
		ho.RadialUnnormalized(p.Np, p.Lp, x) *
		ho.RadialUnnormalized(p.N, p.L, x)
}

// regulatorFactor is (1 − exp(−(x/R)²))^regulatorPower, or 1 when the
// regulator is disabled.
func (p Params2N) regulatorFactor(x float64) float64 {
	if !p.Regularize {
		return 1
	}
	u := x / p.Regulator
	f := 1 - math.Exp(-u*u)
	out := 1.0
	for i := 0; i < regulatorPower; i++ {
		out *= f
	}
	return out
}

// Pion-range profiles as functions of u = m_π r.
func yukawa(u float64) float64 { return math.Exp(-u) / u }
func zPi(u float64) float64    { return 1 + u }
func tPi(u float64) float64    { return 1 + 3/u + 3/(u*u) }
func wPi(u float64) float64    { return 1 + 2/u + 2/(u*u) }

// integrate applies the shared fixed rule to the profile g(u) against the
// pair density and the regulator.
func (p Params2N) integrate(g func(u float64) float64) float64 {
	return quad.Fixed(func(x float64) float64 {
		return p.pairDensity(x) * p.regulatorFactor(x) * g(p.PionMass*x)
	}, 0, rMax, nodes, nil, 0)
}

// IntegralYPiR returns ∫ x² R' R f_R Y_π(m_π b x) dx.
func IntegralYPiR(p Params2N) float64 { return p.integrate(yukawa) }

// IntegralZPiYPiR returns the z-component × pion-Yukawa integral
// ∫ x² R' R f_R (1 + u) Y_π(u) dx.
func IntegralZPiYPiR(p Params2N) float64 {
	return p.integrate(func(u float64) float64 { return zPi(u) * yukawa(u) })
}

// IntegralTPiYPiR returns the tensor × pion-Yukawa integral
// ∫ x² R' R f_R (1 + 3/u + 3/u²) Y_π(u) dx.
func IntegralTPiYPiR(p Params2N) float64 {
	return p.integrate(func(u float64) float64 { return tPi(u) * yukawa(u) })
}

// IntegralWPiRYPiR returns ∫ x² R' R f_R (1 + 2/u + 2/u²) Y_π(u) dx.
func IntegralWPiRYPiR(p Params2N) float64 {
	return p.integrate(func(u float64) float64 { return wPi(u) * yukawa(u) })
}

// IntegralMPiRWPiRYPiR returns ∫ x² R' R f_R u (1 + 2/u + 2/u²) Y_π(u) dx.
func IntegralMPiRWPiRYPiR(p Params2N) float64 {
	return p.integrate(func(u float64) float64 { return u * wPi(u) * yukawa(u) })
}

// IntegralMPiR returns the dimensionless first radial moment
// ∫ x³ R̂_{n'l'}(x) R̂_{nl}(x) dx between *normalized* oscillator functions;
// the caller supplies the m_π b scale.
func IntegralMPiR(np, n, lp, l int) float64 {
	return quad.Fixed(func(x float64) float64 {
		return x * x * x * ho.Radial(np, lp, x) * ho.Radial(n, l, x)
	}, 0, rMax, nodes, nil, 0)
}

// IntegralRegularizedDelta returns the matrix element of the
// regulator-smeared contact density between *normalized* S-wave oscillator
// functions, δ_R(x) = exp(−(x/R)²)/(π^{3/2} R³). With the regulator
// disabled it reduces to the pointlike value R̂'(0) R̂(0)/4π.
func IntegralRegularizedDelta(p Params2N) float64 {
	if !p.Regularize {
		return ho.Radial(p.Np, p.Lp, 0) * ho.Radial(p.N, p.L, 0) / (4 * math.Pi)
	}
	r := p.Regulator
	norm := 1 / (math.Pow(math.Pi, 1.5) * r * r * r)
	return quad.Fixed(func(x float64) float64 {
		u := x / r
		return x * x * ho.Radial(p.Np, p.Lp, x) * ho.Radial(p.N, p.L, x) *
			norm * math.Exp(-u*u)
	}, 0, rMax, nodes, nil, 0)
}
