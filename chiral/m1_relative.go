package chiral

import (
	"math"

	"github.com/lenpic/chiralme/am"
	"github.com/lenpic/chiralme/basis"
	"github.com/lenpic/chiralme/ho"
	"github.com/lenpic/chiralme/quadrature"
)

// Magnetic dipole formulas in the relative basis.
//
// The NLO one-body term is the impulse approximation: unregularized,
// diagonal in (n, L), combining the nucleon magnetic moments with the spin
// and orbital angular-momentum recoupling coefficients.
//
// The NLO two-body term is the isovector one-pion-exchange current,
// proportional to g_A d̄18 m_π³ / (12π F_π² μ_N).
//
// The N3LO two-body term is the isoscalar d̄9 + contact (L2) correction,
// scaled by twice the nucleon mass.

func nloOneBody(bra, ket basis.RelativeState, p EvalParams) float64 {
	if bra.N != ket.N || bra.L != ket.L {
		return 0
	}

	symmSpin := am.RelativeSpinSymmetricRME(bra.L, ket.L, bra.S, ket.S, bra.J, ket.J, 0, 1)
	symmIso := am.SpinSymmetricRME(bra.T, ket.T)
	asymmSpin := am.RelativeSpinAntisymmetricRME(bra.L, ket.L, bra.S, ket.S, bra.J, ket.J, 0, 1)
	asymmIso := am.SpinAntisymmetricRME(bra.T, ket.T)
	oam := 0.5 * am.RelativeLrelRME(bra.L, ket.L, bra.S, ket.S, bra.J, ket.J)

	var deltaT float64
	if bra.T == ket.T {
		deltaT = 1
	}

	c := p.Constants
	switch p.T0 {
	case 0:
		return finite(c.IsoscalarNucleonMagneticMoment()*symmSpin*deltaT + oam*deltaT)
	case 1:
		spin := c.IsovectorNucleonMagneticMoment() * (symmSpin*symmIso + asymmSpin*asymmIso)
		return finite(spin + oam*symmIso)
	default:
		return 0
	}
}

func nloTwoBody(bra, ket basis.RelativeState, p EvalParams) float64 {
	if p.T0 != 1 {
		return 0
	}

	c := p.Constants
	brel := p.B.Relative()
	scaledRegulator := p.Regulator / brel
	scaledPionMass := c.PionMassFm() * brel
	prel := quadrature.NewParams2N(bra.N, bra.L, ket.N, ket.L,
		p.Regularize, scaledRegulator, scaledPionMass)

	normProduct := ho.CoordinateSpaceNorm(ket.N, ket.L, 1) *
		ho.CoordinateSpaceNorm(bra.N, bra.L, 1)
	zpi := normProduct * quadrature.IntegralZPiYPiR(prel)
	tpi := normProduct * quadrature.IntegralTPiYPiR(prel)

	a6s1 := math.Sqrt(10) *
		am.RelativePauliProductRME(bra.L, ket.L, bra.S, ket.S, bra.J, ket.J, 2, 1, 1)
	s1 := am.RelativePauliProductRME(bra.L, ket.L, bra.S, ket.S, bra.J, ket.J, 0, 1, 1)
	t1 := am.PauliProductRME(bra.T, ket.T, 1)

	// g_A m_π³ d̄18 / (12 π F_π² μ_N)
	mpi := c.PionMassFm()
	lec := c.GA * c.D18 * mpi * mpi * mpi /
		(12 * math.Pi * c.NuclearMagnetonFm() * sq(c.PionDecayConstantFm()))

	return finite(lec * t1 * (a6s1*zpi + s1*tpi))
}

func n3loTwoBodyIsoscalar(bra, ket basis.RelativeState, p EvalParams) float64 {
	// Only the isoscalar correction is known; the isovector part of the
	// N3LO current is left out until the corresponding result exists.
	if p.T0 != 0 {
		return 0
	}

	c := p.Constants
	sRME := am.RelativeSpinSymmetricRME(bra.L, ket.L, bra.S, ket.S, bra.J, ket.J, 0, 1)

	brel := p.B.Relative()
	scaledRegulator := p.Regulator / brel
	scaledPionMass := c.PionMassFm() * brel
	// TODO: confirm the scale argument order against the published N3LO
	// radial integrals; it is transposed relative to the NLO call above.
	prel := quadrature.NewParams2N(bra.N, bra.L, ket.N, ket.L,
		p.Regularize, scaledPionMass, scaledRegulator)

	t0RME := am.PauliProductRME(bra.T, ket.T, 0)
	normProduct := ho.CoordinateSpaceNorm(ket.N, ket.L, 1) *
		ho.CoordinateSpaceNorm(bra.N, bra.L, 1)
	ypi := normProduct * quadrature.IntegralYPiR(prel)
	wpi := normProduct * quadrature.IntegralWPiRYPiR(prel)

	a6s := math.Sqrt(10) *
		am.RelativeSpinSymmetricRME(bra.L, ket.L, bra.S, ket.S, bra.J, ket.J, 2, 1)

	// g_A d̄9 m_π³ / (√3 π F_π²)
	mpi := c.PionMassFm()
	d9Prefactor := c.GA * c.D9 * mpi * mpi * mpi /
		(math.Sqrt(3) * math.Pi * sq(c.PionDecayConstantFm()))
	d9Term := d9Prefactor * t0RME * (wpi*a6s - ypi*sRME)

	var l2Term float64
	if bra.L == 0 && ket.L == 0 && bra.T == ket.T {
		delta := quadrature.IntegralRegularizedDelta(prel) / (brel * brel * brel)
		l2Term = 2 * c.L2 * sRME * delta
	}

	return finite((d9Term + l2Term) * 2 * c.NucleonMassFm())
}

func sq(x float64) float64 { return x * x }
