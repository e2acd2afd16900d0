package chiral

import "github.com/lenpic/chiralme/basis"

// M1 is the magnetic dipole operator of the chiral expansion: tensor rank 1,
// positive parity, isoscalar and isovector components. Under the adopted
// power counting the expansion starts at NLO; N2LO and N4LO carry no
// correction, and only the isoscalar part of the N3LO correction is
// implemented (the piece relevant for the deuteron).
type M1 struct {
	order Order
}

func (op *M1) Name() string { return "m1" }
func (op *M1) J0() int      { return 1 }
func (op *M1) G0() int      { return 0 }
func (op *M1) Order() Order { return op.order }

// RelativeRME dispatches over the closed order set for relative basis
// states. Orders with no known correction contribute exactly 0.
func (op *M1) RelativeRME(order Order, bra, ket basis.RelativeState, p EvalParams) float64 {
	switch order {
	case NLO:
		return finite(nloOneBody(bra, ket, p) + nloTwoBody(bra, ket, p))
	case N3LO:
		return finite(n3loTwoBodyIsoscalar(bra, ket, p))
	default:
		// LO: no leading M1 contribution under the adopted power counting.
		// N2LO: no correction at this order.
		// N4LO: no published result yet.
		return 0
	}
}

// RelativeCMRME dispatches over the closed order set for relative–CM basis
// states. The N3LO two-body correction has no relative-CM implementation
// and deliberately contributes 0; the N3LO one-body piece is 0 by
// construction.
func (op *M1) RelativeCMRME(order Order, bra, ket basis.RelativeCMState, p EvalParams) float64 {
	switch order {
	case NLO:
		return finite(nloOneBodyCM(bra, ket, p) + nloTwoBodyCM(bra, ket, p))
	default:
		return 0
	}
}
