package chiral_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lenpic/chiralme/basis"
	"github.com/lenpic/chiralme/chiral"
	"github.com/lenpic/chiralme/constants"
	"github.com/lenpic/chiralme/ho"
)

func evalParams(t0 int) chiral.EvalParams {
	c := constants.Default()
	return chiral.EvalParams{
		B:          ho.NewOscillatorParameter(c.OscillatorLength(20)),
		Regularize: true,
		Regulator:  0.9,
		T0:         t0,
		Constants:  c,
	}
}

func newM1(t *testing.T) chiral.Operator {
	t.Helper()
	op, err := chiral.New("m1", chiral.N4LO)
	require.NoError(t, err)
	return op
}

// someRelativeStates spans diagonal and off-diagonal pairs across the low
// partial waves.
func someRelativeStates() []basis.RelativeState {
	return []basis.RelativeState{
		{N: 0, L: 0, S: 0, J: 0, T: 1}, // 1S0
		{N: 1, L: 0, S: 0, J: 0, T: 1},
		{N: 0, L: 0, S: 1, J: 1, T: 0}, // 3S1
		{N: 0, L: 2, S: 1, J: 1, T: 0}, // 3D1
		{N: 0, L: 1, S: 1, J: 1, T: 1}, // 3P1
	}
}

// TestNew_UnknownOperator checks the factory fails fast with the sentinel.
func TestNew_UnknownOperator(t *testing.T) {
	_, err := chiral.New("quadrupole", chiral.NLO)
	assert.ErrorIs(t, err, chiral.ErrUnknownOperator)
}

// TestNew_FamilyMembers checks the registered names and the M1 tensorial
// character.
func TestNew_FamilyMembers(t *testing.T) {
	op := newM1(t)
	assert.Equal(t, 1, op.J0())
	assert.Equal(t, 0, op.G0())
	assert.Equal(t, chiral.N4LO, op.Order())

	for _, name := range []string{"identity", "charge_radius", "gamow_teller"} {
		stub, err := chiral.New(name, chiral.LO)
		require.NoError(t, err)
		assert.Equal(t, name, stub.Name())
	}
}

// TestM1_SilentOrdersAreZero checks LO, N2LO and N4LO vanish identically in
// both representations for every sampled state pair.
func TestM1_SilentOrdersAreZero(t *testing.T) {
	op := newM1(t)
	states := someRelativeStates()

	for _, order := range []chiral.Order{chiral.LO, chiral.N2LO, chiral.N4LO} {
		for t0 := 0; t0 <= 1; t0++ {
			p := evalParams(t0)
			for _, bra := range states {
				for _, ket := range states {
					assert.Zero(t, op.RelativeRME(order, bra, ket, p),
						"%v T0=%d %+v %+v", order, t0, bra, ket)
				}
			}

			cm := basis.RelativeCMState{Nr: 0, Lr: 1, Nc: 0, Lc: 0, L: 1, S: 1, J: 1, T: 1}
			assert.Zero(t, op.RelativeCMRME(order, cm, cm, p))
		}
	}
}

// TestM1_NLOOneBodyDiagonality checks the impulse term vanishes whenever
// the radial or orbital quantum numbers differ; at T0=0 the two-body piece
// is also gated off, so the full NLO element must vanish.
func TestM1_NLOOneBodyDiagonality(t *testing.T) {
	op := newM1(t)
	p := evalParams(0)

	bra := basis.RelativeState{N: 0, L: 0, S: 0, J: 0, T: 1}
	ketN := basis.RelativeState{N: 1, L: 0, S: 0, J: 0, T: 1}
	assert.Zero(t, op.RelativeRME(chiral.NLO, bra, ketN, p), "n mismatch")

	braL := basis.RelativeState{N: 0, L: 0, S: 1, J: 1, T: 0}
	ketL := basis.RelativeState{N: 0, L: 2, S: 1, J: 1, T: 0}
	assert.Zero(t, op.RelativeRME(chiral.NLO, braL, ketL, p), "L mismatch")
}

// TestM1_NLOImpulseDeuteronChannel checks the 3S1 diagonal impulse value
// μ_S √6 (pure spin: L=0 kills the orbital term).
func TestM1_NLOImpulseDeuteronChannel(t *testing.T) {
	op := newM1(t)
	p := evalParams(0)

	s := basis.RelativeState{N: 0, L: 0, S: 1, J: 1, T: 0}
	want := p.Constants.IsoscalarNucleonMagneticMoment() * math.Sqrt(6)
	assert.InDelta(t, want, op.RelativeRME(chiral.NLO, s, s, p), 1e-10)
}

// TestM1_NLOTwoBodyIsovectorOnly checks the pion-exchange current needs
// T0=1. The pair is off-diagonal in n so the one-body piece is gated off;
// the 3P1 channel keeps the spin-rank-1 recoupling coefficients alive.
func TestM1_NLOTwoBodyIsovectorOnly(t *testing.T) {
	op := newM1(t)

	bra := basis.RelativeState{N: 0, L: 1, S: 1, J: 1, T: 1}
	ket := basis.RelativeState{N: 1, L: 1, S: 1, J: 1, T: 1}

	assert.Zero(t, op.RelativeRME(chiral.NLO, bra, ket, evalParams(0)))
	assert.NotZero(t, op.RelativeRME(chiral.NLO, bra, ket, evalParams(1)))
}

// TestM1_N3LOIsoscalarOnly checks the N3LO correction contributes only on
// the T0=0 path and is finite on the S-wave contact channel.
func TestM1_N3LOIsoscalarOnly(t *testing.T) {
	op := newM1(t)

	s := basis.RelativeState{N: 0, L: 0, S: 1, J: 1, T: 0}
	assert.Zero(t, op.RelativeRME(chiral.N3LO, s, s, evalParams(1)), "isovector unimplemented")

	got := op.RelativeRME(chiral.N3LO, s, s, evalParams(0))
	assert.NotZero(t, got)
	assert.False(t, math.IsNaN(got))
}

// TestM1_N3LORelativeCMUnimplemented checks the relative-CM N3LO two-body
// correction is identically 0.
func TestM1_N3LORelativeCMUnimplemented(t *testing.T) {
	op := newM1(t)

	states := []basis.RelativeCMState{
		{Nr: 0, Lr: 0, Nc: 0, Lc: 0, L: 0, S: 1, J: 1, T: 0},
		{Nr: 1, Lr: 1, Nc: 0, Lc: 1, L: 1, S: 1, J: 1, T: 1},
		{Nr: 0, Lr: 2, Nc: 1, Lc: 0, L: 2, S: 0, J: 2, T: 1},
	}
	for t0 := 0; t0 <= 1; t0++ {
		p := evalParams(t0)
		for _, bra := range states {
			for _, ket := range states {
				assert.Zero(t, op.RelativeCMRME(chiral.N3LO, bra, ket, p))
			}
		}
	}
}

// TestM1_NLOImpulseCMSpectator checks the impulse value survives the move
// to the relative-CM scheme: with an s-wave CM spectator the 3S1 diagonal
// element is again μ_S √6.
func TestM1_NLOImpulseCMSpectator(t *testing.T) {
	op := newM1(t)
	p := evalParams(0)

	cm := basis.RelativeCMState{Nr: 0, Lr: 0, Nc: 0, Lc: 0, L: 0, S: 1, J: 1, T: 0}
	want := p.Constants.IsoscalarNucleonMagneticMoment() * math.Sqrt(6)
	assert.InDelta(t, want, op.RelativeCMRME(chiral.NLO, cm, cm, p), 1e-10)
}

// TestM1_NLOCMOrbitalReach checks a pair two units apart in relative
// orbital angular momentum is out of reach of every NLO structure, at
// every isotensor rank.
func TestM1_NLOCMOrbitalReach(t *testing.T) {
	op := newM1(t)

	bra := basis.RelativeCMState{Nr: 0, Lr: 2, Nc: 0, Lc: 0, L: 2, S: 1, J: 1, T: 0}
	ket := basis.RelativeCMState{Nr: 0, Lr: 0, Nc: 0, Lc: 0, L: 0, S: 1, J: 1, T: 0}

	for t0 := 0; t0 <= 2; t0++ {
		assert.Zero(t, op.RelativeCMRME(chiral.NLO, bra, ket, evalParams(t0)), "T0=%d", t0)
	}
}

// TestM1_NLOTwoBodyCMIsovectorOnly checks the relative-CM pion-exchange
// current needs T0=1. The pair is chosen so every one-body structure is
// out of orbital reach and only the rank-3 relative harmonic of the CM
// moment piece connects the states.
func TestM1_NLOTwoBodyCMIsovectorOnly(t *testing.T) {
	op := newM1(t)

	bra := basis.RelativeCMState{Nr: 0, Lr: 3, Nc: 0, Lc: 1, L: 2, S: 1, J: 2, T: 1}
	ket := basis.RelativeCMState{Nr: 0, Lr: 0, Nc: 0, Lc: 0, L: 0, S: 1, J: 1, T: 1}

	assert.Zero(t, op.RelativeCMRME(chiral.NLO, bra, ket, evalParams(0)))
	assert.Zero(t, op.RelativeCMRME(chiral.NLO, bra, ket, evalParams(2)))
	assert.NotZero(t, op.RelativeCMRME(chiral.NLO, bra, ket, evalParams(1)))
}

// TestM1_NLOOneBodyCMIsotensorGate checks isotensor ranks past 1 contribute
// nothing even on a fully diagonal pair.
func TestM1_NLOOneBodyCMIsotensorGate(t *testing.T) {
	op := newM1(t)

	cm := basis.RelativeCMState{Nr: 0, Lr: 1, Nc: 0, Lc: 1, L: 1, S: 1, J: 1, T: 1}
	assert.Zero(t, op.RelativeCMRME(chiral.NLO, cm, cm, evalParams(2)))
	assert.NotZero(t, op.RelativeCMRME(chiral.NLO, cm, cm, evalParams(0)))
}

// TestM1_NoNaNLeaks sweeps every pair of a small basis at every order and
// asserts no evaluated element is NaN: degenerate combinations must clamp
// to 0 instead.
func TestM1_NoNaNLeaks(t *testing.T) {
	op := newM1(t)
	space := basis.NewRelativeSpace(4, 2)

	for _, order := range chiral.Orders() {
		for t0 := 0; t0 <= 1; t0++ {
			p := evalParams(t0)
			for _, bsub := range space.Subspaces {
				for _, ksub := range space.Subspaces {
					for bi := 0; bi < bsub.Size(); bi++ {
						for ki := 0; ki < ksub.Size(); ki++ {
							v := op.RelativeRME(order, bsub.State(bi), ksub.State(ki), p)
							assert.False(t, math.IsNaN(v),
								"%v T0=%d %+v %+v", order, t0, bsub.State(bi), ksub.State(ki))
						}
					}
				}
			}
		}
	}
}

// TestM1_Stubs checks the unimplemented family members contribute nothing.
func TestM1_Stubs(t *testing.T) {
	stub, err := chiral.New("identity", chiral.NLO)
	require.NoError(t, err)

	s := basis.RelativeState{N: 0, L: 0, S: 1, J: 1, T: 0}
	for _, order := range chiral.Orders() {
		assert.Zero(t, stub.RelativeRME(order, s, s, evalParams(0)))
	}
}
