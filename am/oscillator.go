package am

import "math"

// Harmonic-oscillator ladder matrix elements of the radius and gradient
// vectors, in dimensionless oscillator units (lengths in b, gradients in
// 1/b). Both operators change l by ±1 and n by at most one step; all other
// combinations vanish.

// radiusRadial returns ⟨n' l'|r|n l⟩ for the dimensionless radial
// oscillator functions, with the phase convention R_{nl}(0⁺) > 0.
func radiusRadial(np, n, lp, l int) float64 {
	fn, fl := float64(n), float64(l)
	switch {
	case lp == l+1 && np == n:
		return math.Sqrt(fn + fl + 1.5)
	case lp == l+1 && np == n-1:
		return math.Sqrt(fn)
	case lp == l-1 && np == n:
		return math.Sqrt(fn + fl + 0.5)
	case lp == l-1 && np == n+1:
		return math.Sqrt(fn + 1)
	default:
		return 0
	}
}

// gradientRadial returns the radial part of ⟨n' l'|∇|n l⟩; it reaches the
// same (n', l') pairs as the radius but with the ladder signs flipped on the
// n-changing branches.
func gradientRadial(np, n, lp, l int) float64 {
	fn, fl := float64(n), float64(l)
	switch {
	case lp == l+1 && np == n:
		return -math.Sqrt(fn + fl + 1.5)
	case lp == l+1 && np == n-1:
		return math.Sqrt(fn)
	case lp == l-1 && np == n:
		return math.Sqrt(fn + fl + 0.5)
	case lp == l-1 && np == n+1:
		return -math.Sqrt(fn + 1)
	default:
		return 0
	}
}

// RadiusME returns the reduced matrix element ⟨n' l'‖r⃗‖n l⟩ in units of the
// oscillator length.
func RadiusME(np, n, lp, l int) float64 {
	radial := radiusRadial(np, n, lp, l)
	if radial == 0 {
		return 0
	}
	return CRME(lp, 1, l) * radial
}

// GradientME returns the reduced matrix element ⟨n' l'‖∇⃗‖n l⟩ in units of
// the inverse oscillator length.
func GradientME(np, n, lp, l int) float64 {
	radial := gradientRadial(np, n, lp, l)
	if radial == 0 {
		return 0
	}
	return CRME(lp, 1, l) * radial
}
