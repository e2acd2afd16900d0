package am

import "math"

// Reduced matrix elements in the two-nucleon relative basis |nr (L S) J T⟩.
// Spin and isospin share the same SU(2) algebra, so the two-body spin RMEs
// below are used for both; argument names follow the spin case.

// CRME returns ⟨l'‖C^k‖l⟩ for the unnormalized spherical harmonic
// C^k = √(4π/(2k+1)) Y^k:
//
//	⟨l'‖C^k‖l⟩ = (−1)^l' √((2l'+1)(2l+1)) (l' k l; 0 0 0).
//
// Vanishes unless l' + k + l is even (parity) and the triangle rule holds.
func CRME(lp, k, l int) float64 {
	phase := 1.0
	if lp%2 != 0 {
		phase = -1
	}
	return phase * Hat(lp) * Hat(l) * Wigner3J(lp, k, l, 0, 0, 0)
}

// SpinSymmetricRME returns ⟨S'‖(σ1+σ2)/2‖S⟩ for two spin-1/2 nucleons:
// diagonal, √(S(S+1)(2S+1)).
func SpinSymmetricRME(sp, s int) float64 {
	if sp != s {
		return 0
	}
	fs := float64(s)
	return math.Sqrt(fs * (fs + 1) * (2*fs + 1))
}

// SpinAntisymmetricRME returns ⟨S'‖(σ1−σ2)/2‖S⟩ for two spin-1/2 nucleons.
// The antisymmetric combination connects only S=0 and S=1.
func SpinAntisymmetricRME(sp, s int) float64 {
	switch {
	case sp == 1 && s == 0:
		return math.Sqrt(3)
	case sp == 0 && s == 1:
		return -math.Sqrt(3)
	default:
		return 0
	}
}

// PauliProductRME returns ⟨S'‖[σ1 ⊗ σ2]^c‖S⟩, the coupled product of the two
// nucleon Pauli vectors at rank c ∈ {0, 1, 2}:
//
//	hat(S') hat(c) hat(S) {½ ½ S; 1 1 c; ½ ½ S'} ⟨½‖σ‖½⟩²,  ⟨½‖σ‖½⟩ = √6.
func PauliProductRME(sp, s, c int) float64 {
	ninej := nineJ(1, 1, 2*s, 2, 2, 2*c, 1, 1, 2*sp)
	return Hat(sp) * Hat(c) * Hat(s) * ninej * 6
}

// RelativeLrelRME returns ⟨(L' S') J'‖L⃗‖(L S) J⟩, the RME of the relative
// orbital angular momentum in the coupled (L S) J scheme. Diagonal in L and S.
func RelativeLrelRME(lp, l, sp, s, jp, j int) float64 {
	if lp != l || sp != s {
		return 0
	}
	fl := float64(l)
	phase := 1.0
	if (l+s+j+1)%2 != 0 {
		phase = -1
	}
	return phase * Hat(jp) * Hat(j) *
		Wigner6J(l, jp, s, j, l, 1) *
		math.Sqrt(fl*(fl+1)*(2*fl+1))
}

// coupledRME assembles ⟨(L' S') J'‖[X^a ⊗ Y^b]^c‖(L S) J⟩ from the orbital
// and spin reduced matrix elements:
//
//	hat(J') hat(c) hat(J) {L S J; a b c; L' S' J'} ⟨L'‖X^a‖L⟩ ⟨S'‖Y^b‖S⟩.
func coupledRME(lp, l, sp, s, jp, j, a, b, c int, orbital, spin float64) float64 {
	if orbital == 0 || spin == 0 {
		return 0
	}
	ninej := Wigner9J(l, s, j, a, b, c, lp, sp, jp)
	return Hat(jp) * Hat(c) * Hat(j) * ninej * orbital * spin
}

// RelativeSpinSymmetricRME returns the RME of [C^a(r̂) ⊗ (σ1+σ2)/2]^c in the
// relative (L S) J scheme.
func RelativeSpinSymmetricRME(lp, l, sp, s, jp, j, a, c int) float64 {
	return coupledRME(lp, l, sp, s, jp, j, a, 1, c,
		CRME(lp, a, l), SpinSymmetricRME(sp, s))
}

// RelativeSpinAntisymmetricRME returns the RME of [C^a(r̂) ⊗ (σ1−σ2)/2]^c in
// the relative (L S) J scheme.
func RelativeSpinAntisymmetricRME(lp, l, sp, s, jp, j, a, c int) float64 {
	return coupledRME(lp, l, sp, s, jp, j, a, 1, c,
		CRME(lp, a, l), SpinAntisymmetricRME(sp, s))
}

// RelativePauliProductRME returns the RME of [C^a(r̂) ⊗ [σ1 ⊗ σ2]^b]^c in
// the relative (L S) J scheme.
func RelativePauliProductRME(lp, l, sp, s, jp, j, a, b, c int) float64 {
	return coupledRME(lp, l, sp, s, jp, j, a, b, c,
		CRME(lp, a, l), PauliProductRME(sp, s, b))
}
