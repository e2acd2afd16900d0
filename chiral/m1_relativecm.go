package chiral

import (
	"math"

	"github.com/lenpic/chiralme/am"
	"github.com/lenpic/chiralme/basis"
	"github.com/lenpic/chiralme/ho"
	"github.com/lenpic/chiralme/quadrature"
)

// Magnetic dipole formulas in the relative–center-of-mass basis. The
// one-body impulse term gains center-of-mass cross terms (r_cm × p_rel and
// r_rel × p_cm) absent from the pure relative treatment; the two-body
// isovector current splits into a center-of-mass pion moment piece and a
// relative piece diagonal in the CM quanta.

func nloOneBodyCM(bra, ket basis.RelativeCMState, p EvalParams) float64 {
	symmSpin := am.RelativeCMSpinSymmetricRME(
		bra.Lr, ket.Lr, bra.Lc, ket.Lc, bra.L, ket.L,
		bra.S, ket.S, bra.J, ket.J, 0, 0, 0, 1)
	symmIso := am.SpinSymmetricRME(bra.T, ket.T)
	asymmSpin := am.RelativeCMSpinAntisymmetricRME(
		bra.Lr, ket.Lr, bra.Lc, ket.Lc, bra.L, ket.L,
		bra.S, ket.S, bra.J, ket.J, 0, 0, 0, 1)
	asymmIso := am.SpinAntisymmetricRME(bra.T, ket.T)

	var deltaT float64
	if bra.T == ket.T {
		deltaT = 1
	}

	var lsum float64
	if bra.Nr == ket.Nr && bra.Nc == ket.Nc {
		lsum = am.RelativeCMLsumRME(
			bra.Lr, ket.Lr, bra.Lc, ket.Lc, bra.L, ket.L,
			bra.S, ket.S, bra.J, ket.J)
	}

	// √(μ / 2M) for equal-mass nucleons.
	const massRatioSqrt = 0.5
	rcmPrel := massRatioSqrt *
		am.GradientME(bra.Nr, ket.Nr, bra.Lr, ket.Lr) *
		am.RadiusME(bra.Nc, ket.Nc, bra.Lc, ket.Lc)
	rrelPcm := am.RadiusME(bra.Nr, ket.Nr, bra.Lr, ket.Lr) *
		am.GradientME(bra.Nc, ket.Nc, bra.Lc, ket.Lc) / massRatioSqrt

	c := p.Constants
	switch p.T0 {
	case 0:
		oam := 0.5 * am.RelativeLrelRME(bra.L, ket.L, bra.S, ket.S, bra.J, ket.J)
		return finite(c.IsoscalarNucleonMagneticMoment()*symmSpin*deltaT + oam*deltaT)
	case 1:
		spin := c.IsovectorNucleonMagneticMoment() * (symmSpin*symmIso + asymmSpin*asymmIso)
		oamDiagonal := 0.5 * lsum * symmIso
		oamCross := 0.5 * (2*rcmPrel + 0.5*rrelPcm) * asymmIso
		return finite(spin + oamDiagonal + oamCross)
	default:
		return 0
	}
}

func nloTwoBodyCM(bra, ket basis.RelativeCMState, p EvalParams) float64 {
	if p.T0 != 1 {
		return 0
	}

	c := p.Constants
	bcm := p.B.CM()
	brel := p.B.Relative()
	scaledRegulator := p.Regulator / brel
	scaledPionMass := c.PionMassFm() * brel
	prel := quadrature.NewParams2N(bra.Nr, bra.Lr, ket.Nr, ket.Lr,
		p.Regularize, scaledRegulator, scaledPionMass)

	// Center-of-mass pion moment.
	mpirIntegral := c.PionMassFm() * bcm *
		quadrature.IntegralMPiR(bra.Nc, ket.Nc, bra.Lc, ket.Lc)

	normProduct := ho.CoordinateSpaceNorm(ket.Nr, ket.Lr, 1) *
		ho.CoordinateSpaceNorm(bra.Nr, bra.Lr, 1)
	mpirWpi := normProduct * quadrature.IntegralMPiRWPiRYPiR(prel)

	pauli := func(ar, ac, aL, b int) float64 {
		return am.RelativeCMPauliProductRME(
			bra.Lr, ket.Lr, bra.Lc, ket.Lc, bra.L, ket.L,
			bra.S, ket.S, bra.J, ket.J, ar, ac, aL, b, 1)
	}
	a1 := -math.Sqrt(3) * pauli(1, 1, 1, 0)
	a2 := math.Sqrt(3.0/5.0) * pauli(1, 1, 1, 2)
	a3 := math.Sqrt(9.0/5.0) * pauli(1, 1, 2, 2)
	a4 := math.Sqrt(14.0/5.0) * pauli(3, 1, 2, 2)
	a5 := math.Sqrt(28.0/5.0) * pauli(3, 1, 3, 2)
	// TODO: verify the a6s1 rank placement against the published
	// pion-exchange current; the rank-2 harmonic sits on the center-of-mass
	// coordinate here, transposed relative to the a6s1 coefficient of the
	// pure relative treatment, even though this term is diagonal in the CM
	// quanta.
	a6s1 := math.Sqrt(10) * pauli(0, 2, 2, 1)
	s1 := pauli(0, 0, 0, 1)

	t1 := am.PauliProductRME(bra.T, ket.T, 1)

	// g_A m_π³ d̄18 / (12 π F_π² μ_N)
	mpi := c.PionMassFm()
	lec := c.GA * mpi * mpi * mpi * c.D18 /
		(12 * math.Pi * sq(c.PionDecayConstantFm())) / c.NuclearMagnetonFm()

	apiR := a1 + mpirWpi*(a2+a3+a4+a5)
	relativeCM := mpirIntegral * apiR

	var relative float64
	if bra.Nc == ket.Nc && bra.Lc == ket.Lc {
		zpi := normProduct * quadrature.IntegralZPiYPiR(prel)
		tpi := normProduct * quadrature.IntegralTPiYPiR(prel)
		relative = zpi*a6s1 + tpi*s1
	}

	return finite(lec * t1 * (relativeCM + relative))
}
