// Package chiral implements the chiral effective-field-theory operator
// family: a name-keyed factory over a shared reduced-matrix-element
// evaluation contract, with the per-order closed-form formulas of the
// magnetic dipole operator.
//
// Every operator evaluates at any order independently of its stored
// truncation, so a driver can decompose a matrix order by order. Order
// dispatch is a switch over the closed Order enumeration; the formulas are
// pure functions of (order, state pair, evaluation parameters).
package chiral

import (
	"errors"
	"fmt"
	"math"

	"github.com/lenpic/chiralme/basis"
	"github.com/lenpic/chiralme/constants"
	"github.com/lenpic/chiralme/ho"
)

// ErrUnknownOperator is returned by New for names outside the family.
var ErrUnknownOperator = errors.New("chiral: unknown operator")

// EvalParams bundles the run-constant inputs of a matrix-element
// evaluation: the oscillator length split, the short-range regulator, the
// isotensor component being filled, and the physical-constant table.
type EvalParams struct {
	B          ho.OscillatorParameter
	Regularize bool
	Regulator  float64 // regulator length in fm
	T0         int
	Constants  constants.Constants
}

// Operator is one member of the chiral operator family. J0 and G0 declare
// its tensor rank and parity for sector construction; Order is the
// requested truncation and is metadata only — evaluation works at any
// order.
type Operator interface {
	Name() string
	J0() int
	G0() int
	Order() Order

	// RelativeRME returns the reduced matrix element at one chiral order
	// between relative basis states, all body counts summed.
	RelativeRME(order Order, bra, ket basis.RelativeState, p EvalParams) float64

	// RelativeCMRME is the relative–center-of-mass counterpart.
	RelativeCMRME(order Order, bra, ket basis.RelativeCMState, p EvalParams) float64
}

// New builds the operator registered under name with the requested
// truncation order. Unknown names fail before any state is created.
func New(name string, order Order) (Operator, error) {
	switch name {
	case "m1":
		return &M1{order: order}, nil
	case "identity":
		return &stub{name: "identity", j0: 0, g0: 0, order: order}, nil
	case "charge_radius":
		return &stub{name: "charge_radius", j0: 0, g0: 0, order: order}, nil
	case "gamow_teller":
		return &stub{name: "gamow_teller", j0: 1, g0: 0, order: order}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperator, name)
	}
}

// finite is the centralized not-a-number clamp: degenerate quantum-number
// combinations may produce 0·∞ or 0/0 inside a formula, and the contract is
// that such elements are exactly 0, never an error, and never reach the
// accumulating sums. Every formula returns through it.
func finite(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}

// stub is a named operator whose formulas are not implemented yet; it
// contributes 0 at every order instead of failing.
type stub struct {
	name   string
	j0, g0 int
	order  Order
}

func (s *stub) Name() string { return s.name }
func (s *stub) J0() int      { return s.j0 }
func (s *stub) G0() int      { return s.g0 }
func (s *stub) Order() Order { return s.order }

func (s *stub) RelativeRME(Order, basis.RelativeState, basis.RelativeState, EvalParams) float64 {
	return 0
}

func (s *stub) RelativeCMRME(Order, basis.RelativeCMState, basis.RelativeCMState, EvalParams) float64 {
	return 0
}
