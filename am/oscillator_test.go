package am_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lenpic/chiralme/am"
)

// TestRadiusME_SelectionRules verifies Δl = ±1 with Δn ∈ {0, ∓1} reach.
func TestRadiusME_SelectionRules(t *testing.T) {
	assert.Zero(t, am.RadiusME(0, 0, 0, 0), "Δl = 0 forbidden")
	assert.Zero(t, am.RadiusME(0, 0, 2, 0), "Δl = 2 forbidden")
	assert.Zero(t, am.RadiusME(2, 0, 1, 0), "n jump of two forbidden")

	assert.NotZero(t, am.RadiusME(0, 0, 1, 0))
	assert.NotZero(t, am.RadiusME(0, 1, 1, 0), "n-lowering branch")
	assert.NotZero(t, am.RadiusME(1, 0, 0, 1), "n-raising branch")
}

// TestRadiusME_GroundStateValue checks ⟨0 1‖r‖0 0⟩ = √(3/2) in oscillator
// units.
func TestRadiusME_GroundStateValue(t *testing.T) {
	assert.InDelta(t, math.Sqrt(1.5), am.RadiusME(0, 0, 1, 0), 1e-12)
}

// TestGradientME_MirrorsRadiusReach checks the gradient reaches exactly the
// same (n', l') pairs as the radius, with flipped ladder signs.
func TestGradientME_MirrorsRadiusReach(t *testing.T) {
	for np := 0; np <= 2; np++ {
		for lp := 0; lp <= 3; lp++ {
			r := am.RadiusME(np, 1, lp, 1)
			g := am.GradientME(np, 1, lp, 1)
			if r == 0 {
				assert.Zero(t, g, "np=%d lp=%d", np, lp)
			} else {
				assert.NotZero(t, g, "np=%d lp=%d", np, lp)
			}
		}
	}

	assert.InDelta(t, -am.RadiusME(0, 0, 1, 0), am.GradientME(0, 0, 1, 0), 1e-12,
		"l-raising, n-conserving branch flips sign")
}
