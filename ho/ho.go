// Package ho provides three-dimensional harmonic-oscillator radial
// machinery: generalized Laguerre polynomials, coordinate-space radial
// wavefunctions and their norms, and the oscillator length bookkeeping for
// the relative / center-of-mass coordinate split.
package ho

import "math"

// OscillatorParameter carries the single-particle oscillator length b (fm)
// and exposes the lengths of the Jacobi coordinates built from it.
type OscillatorParameter struct {
	b float64
}

// NewOscillatorParameter wraps a single-particle oscillator length in fm.
func NewOscillatorParameter(b float64) OscillatorParameter {
	return OscillatorParameter{b: b}
}

// Relative returns the oscillator length of the two-body relative
// coordinate r = r1 − r2, which is √2 times the single-particle length.
func (p OscillatorParameter) Relative() float64 { return p.b * math.Sqrt2 }

// CM returns the oscillator length of the two-body center-of-mass
// coordinate, 1/√2 times the single-particle length.
func (p OscillatorParameter) CM() float64 { return p.b / math.Sqrt2 }

// Laguerre evaluates the generalized Laguerre polynomial L_n^(α)(x) by the
// three-term recurrence; stable for the small n of oscillator bases.
func Laguerre(n int, alpha, x float64) float64 {
	if n == 0 {
		return 1
	}
	prev, cur := 1.0, 1+alpha-x
	for k := 1; k < n; k++ {
		fk := float64(k)
		prev, cur = cur, ((2*fk+1+alpha-x)*cur-(fk+alpha)*prev)/(fk+1)
	}
	return cur
}

// CoordinateSpaceNorm returns the normalization constant N_{nl} of the
// coordinate-space oscillator radial function
//
//	R_{nl}(r) = N_{nl} (r/b)^l exp(−r²/2b²) L_n^{l+1/2}(r²/b²),
//
// such that ∫ R² r² dr = 1:
//
//	N_{nl} = √(2 n! / (b³ Γ(n+l+3/2))).
func CoordinateSpaceNorm(n, l int, b float64) float64 {
	lnNum := math.Ln2 + lnGamma(float64(n)+1)
	lnDen := 3*math.Log(b) + lnGamma(float64(n)+float64(l)+1.5)
	return math.Exp(0.5 * (lnNum - lnDen))
}

// RadialUnnormalized evaluates the dimensionless radial function
// x^l exp(−x²/2) L_n^{l+1/2}(x²) with x = r/b. Multiply by
// CoordinateSpaceNorm to normalize.
func RadialUnnormalized(n, l int, x float64) float64 {
	return math.Pow(x, float64(l)) * math.Exp(-x*x/2) * Laguerre(n, float64(l)+0.5, x*x)
}

// Radial evaluates the normalized dimensionless radial function, i.e.
// R_{nl} with b = 1.
func Radial(n, l int, x float64) float64 {
	return CoordinateSpaceNorm(n, l, 1) * RadialUnnormalized(n, l, x)
}

func lnGamma(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}
