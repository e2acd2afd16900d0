package am

import "math"

// Reduced matrix elements in the relative–center-of-mass basis
// |Nr lr, Nc lc; (lr lc) L, S; J T⟩. The orbital part first recouples the
// relative and center-of-mass tensors to a total orbital rank aL, then the
// coupled (L S) J machinery of rme.go takes over.

// relativeCMOrbitalRME returns
// ⟨(lr' lc') L'‖[C^ar(r̂) ⊗ C^ac(R̂)]^aL‖(lr lc) L⟩:
//
//	hat(L') hat(aL) hat(L) {lr lc L; ar ac aL; lr' lc' L'}
//	  × ⟨lr'‖C^ar‖lr⟩ ⟨lc'‖C^ac‖lc⟩.
func relativeCMOrbitalRME(lrp, lr, lcp, lc, llp, ll, ar, ac, aL int) float64 {
	crel := CRME(lrp, ar, lr)
	ccm := CRME(lcp, ac, lc)
	if crel == 0 || ccm == 0 {
		return 0
	}
	ninej := Wigner9J(lr, lc, ll, ar, ac, aL, lrp, lcp, llp)
	return Hat(llp) * Hat(aL) * Hat(ll) * ninej * crel * ccm
}

// relativeCMCoupledRME assembles the full RME of
// [[C^ar(r̂) ⊗ C^ac(R̂)]^aL ⊗ Y^b]^c between relative-CM states, where Y^b is
// a two-body spin tensor with reduced matrix element spin.
func relativeCMCoupledRME(lrp, lr, lcp, lc, llp, ll, sp, s, jp, j,
	ar, ac, aL, b, c int, spin float64) float64 {
	orbital := relativeCMOrbitalRME(lrp, lr, lcp, lc, llp, ll, ar, ac, aL)
	return coupledRME(llp, ll, sp, s, jp, j, aL, b, c, orbital, spin)
}

// RelativeCMSpinSymmetricRME returns the RME of
// [[C^ar(r̂) ⊗ C^ac(R̂)]^aL ⊗ (σ1+σ2)/2]^c in the relative-CM scheme.
func RelativeCMSpinSymmetricRME(lrp, lr, lcp, lc, llp, ll, sp, s, jp, j,
	ar, ac, aL, c int) float64 {
	return relativeCMCoupledRME(lrp, lr, lcp, lc, llp, ll, sp, s, jp, j,
		ar, ac, aL, 1, c, SpinSymmetricRME(sp, s))
}

// RelativeCMSpinAntisymmetricRME returns the RME of
// [[C^ar(r̂) ⊗ C^ac(R̂)]^aL ⊗ (σ1−σ2)/2]^c in the relative-CM scheme.
func RelativeCMSpinAntisymmetricRME(lrp, lr, lcp, lc, llp, ll, sp, s, jp, j,
	ar, ac, aL, c int) float64 {
	return relativeCMCoupledRME(lrp, lr, lcp, lc, llp, ll, sp, s, jp, j,
		ar, ac, aL, 1, c, SpinAntisymmetricRME(sp, s))
}

// RelativeCMPauliProductRME returns the RME of
// [[C^ar(r̂) ⊗ C^ac(R̂)]^aL ⊗ [σ1 ⊗ σ2]^b]^c in the relative-CM scheme.
func RelativeCMPauliProductRME(lrp, lr, lcp, lc, llp, ll, sp, s, jp, j,
	ar, ac, aL, b, c int) float64 {
	return relativeCMCoupledRME(lrp, lr, lcp, lc, llp, ll, sp, s, jp, j,
		ar, ac, aL, b, c, PauliProductRME(sp, s, b))
}

// RelativeCMLsumRME returns ⟨(L' S') J'‖l⃗r + l⃗c‖(L S) J⟩, the RME of the
// total orbital angular momentum; diagonal in every orbital quantum number.
func RelativeCMLsumRME(lrp, lr, lcp, lc, llp, ll, sp, s, jp, j int) float64 {
	if lrp != lr || lcp != lc || llp != ll || sp != s {
		return 0
	}
	fll := float64(ll)
	phase := 1.0
	if (ll+s+j+1)%2 != 0 {
		phase = -1
	}
	return phase * Hat(jp) * Hat(j) *
		Wigner6J(ll, jp, s, j, ll, 1) *
		math.Sqrt(fll*(fll+1)*(2*fll+1))
}
