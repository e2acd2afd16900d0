// Package constants carries the physical-constant table used by the chiral
// matrix-element formulas.
//
// All values are grouped into a single immutable Constants value which is
// passed by value into every evaluation. There is no mutable package state:
// a run is a pure function of its inputs plus one Constants snapshot.
//
// Units:
//   - masses and energies in MeV,
//   - magnetic moments in nuclear magnetons,
//   - low-energy constants already converted to fm powers,
//   - derived quantities (XxxFm methods) in inverse fm / fm.
package constants

import "math"

// Constants is the read-only table of physical inputs to the chiral
// expansion. Construct it with Default and treat it as a value; formulas
// receive it by copy and never mutate it.
type Constants struct {
	// HBarC is ħc in MeV·fm, the conversion between MeV and fm⁻¹.
	HBarC float64

	// PionMass is the isospin-averaged pion mass in MeV.
	PionMass float64

	// PionDecayConstant is F_π in MeV.
	PionDecayConstant float64

	// NucleonMass is the isospin-averaged nucleon mass in MeV.
	NucleonMass float64

	// ReducedNucleonMass is the two-nucleon reduced mass in MeV.
	ReducedNucleonMass float64

	// GA is the axial coupling constant (dimensionless).
	GA float64

	// ProtonMagneticMoment and NeutronMagneticMoment are in units of the
	// nuclear magneton.
	ProtonMagneticMoment  float64
	NeutronMagneticMoment float64

	// D9 and D18 are the πN low-energy constants d̄9 and d̄18 in fm².
	D9  float64
	D18 float64

	// L2 is the isoscalar M1 contact low-energy constant in fm⁴.
	L2 float64
}

// Default returns the constant table used for production runs.
// Mass and coupling values follow the PDG; the low-energy constants are
// the fit values adopted for the deuteron magnetic-moment study.
func Default() Constants {
	return Constants{
		HBarC:                 197.3269804,
		PionMass:              138.03898,
		PionDecayConstant:     92.4,
		NucleonMass:           938.9187,
		ReducedNucleonMass:    469.45935,
		GA:                    1.29,
		ProtonMagneticMoment:  2.79284734,
		NeutronMagneticMoment: -1.91304276,
		D9:                    0.0051,
		D18:                   -0.0326,
		L2:                    0.149,
	}
}

// PionMassFm returns m_π in fm⁻¹.
func (c Constants) PionMassFm() float64 { return c.PionMass / c.HBarC }

// PionDecayConstantFm returns F_π in fm⁻¹.
func (c Constants) PionDecayConstantFm() float64 { return c.PionDecayConstant / c.HBarC }

// NucleonMassFm returns the nucleon mass in fm⁻¹.
func (c Constants) NucleonMassFm() float64 { return c.NucleonMass / c.HBarC }

// NuclearMagnetonFm returns μ_N = 1/(2 M_N) in fm.
func (c Constants) NuclearMagnetonFm() float64 { return 1 / (2 * c.NucleonMassFm()) }

// IsoscalarNucleonMagneticMoment returns (μ_p + μ_n)/2.
func (c Constants) IsoscalarNucleonMagneticMoment() float64 {
	return (c.ProtonMagneticMoment + c.NeutronMagneticMoment) / 2
}

// IsovectorNucleonMagneticMoment returns (μ_p − μ_n)/2.
func (c Constants) IsovectorNucleonMagneticMoment() float64 {
	return (c.ProtonMagneticMoment - c.NeutronMagneticMoment) / 2
}

// OscillatorLength returns the single-particle oscillator length
// b = √(ħ²c² / (μ ħω)) in fm for oscillator energy hw in MeV.
func (c Constants) OscillatorLength(hw float64) float64 {
	return math.Sqrt(c.HBarC * c.HBarC / (c.ReducedNucleonMass * hw))
}
