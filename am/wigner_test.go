package am_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lenpic/chiralme/am"
)

// TestWigner3J_ClosedForms checks tabulated 3j values.
func TestWigner3J_ClosedForms(t *testing.T) {
	// (j j 0; m −m 0) = (−1)^(j−m)/√(2j+1)
	assert.InDelta(t, -1/math.Sqrt(5), am.Wigner3J(2, 2, 0, 1, -1, 0), 1e-12)
	assert.InDelta(t, 1/math.Sqrt(5), am.Wigner3J(2, 2, 0, 2, -2, 0), 1e-12)

	// (1 1 2; 0 0 0) = √(2/15)
	assert.InDelta(t, math.Sqrt(2.0/15.0), am.Wigner3J(1, 1, 2, 0, 0, 0), 1e-12)

	// (1 1 1; 1 −1 0) = 1/√6
	assert.InDelta(t, 1/math.Sqrt(6), am.Wigner3J(1, 1, 1, 1, -1, 0), 1e-12)

	// (1 1 0; 0 0 0) = −1/√3
	assert.InDelta(t, -1/math.Sqrt(3), am.Wigner3J(1, 1, 0, 0, 0, 0), 1e-12)
}

// TestWigner3J_SelectionRules verifies projection, triangle and parity zeros.
func TestWigner3J_SelectionRules(t *testing.T) {
	assert.Zero(t, am.Wigner3J(1, 1, 3, 0, 0, 0), "triangle violation")
	assert.Zero(t, am.Wigner3J(1, 1, 2, 1, 0, 0), "m1+m2+m3 ≠ 0")
	assert.Zero(t, am.Wigner3J(1, 1, 1, 0, 0, 0), "odd perimeter with zero projections")
	assert.Zero(t, am.Wigner3J(1, 2, 2, 2, 0, -2), "|m| > j")
}

// TestWigner3J_Orthogonality checks Σ_{m1 m2} (3j)² = 1/(2j3+1) at fixed m3.
func TestWigner3J_Orthogonality(t *testing.T) {
	j1, j2, j3, m3 := 2, 1, 2, 0
	var sum float64
	for m1 := -j1; m1 <= j1; m1++ {
		for m2 := -j2; m2 <= j2; m2++ {
			v := am.Wigner3J(j1, j2, j3, m1, m2, m3)
			sum += v * v
		}
	}
	assert.InDelta(t, 1.0/float64(2*j3+1), sum, 1e-12)
}

// TestWigner6J_ClosedForms checks tabulated 6j values and the
// {a b c; 0 c b} reduction.
func TestWigner6J_ClosedForms(t *testing.T) {
	assert.InDelta(t, 1.0/6.0, am.Wigner6J(1, 1, 1, 1, 1, 1), 1e-12)

	// {a b c; 0 c b} = (−1)^(a+b+c)/√((2b+1)(2c+1))
	a, b, c := 2, 1, 2
	want := -1 / math.Sqrt(float64((2*b+1)*(2*c+1)))
	assert.InDelta(t, want, am.Wigner6J(a, b, c, 0, c, b), 1e-12)

	assert.Zero(t, am.Wigner6J(1, 2, 4, 1, 1, 1), "triangle violation")
}

// TestWigner9J_ZeroCornerReduction verifies the i=0 reduction of the 9j to a
// single 6j; the two sides go through independent code paths.
func TestWigner9J_ZeroCornerReduction(t *testing.T) {
	a, b, c := 1, 2, 2
	d, e, f := 2, 1, 2
	g, h := 1, 1

	got := am.Wigner9J(a, b, c, d, e, f, g, h, 0)

	phase := 1.0
	if (b+c+d+g)%2 != 0 {
		phase = -1
	}
	want := phase / math.Sqrt(float64((2*c+1)*(2*g+1))) * am.Wigner6J(a, b, c, e, d, g)
	assert.InDelta(t, want, got, 1e-12)
}

// TestWigner9J_TriangleZero checks that any violated coupling row or column
// yields exactly 0.
func TestWigner9J_TriangleZero(t *testing.T) {
	assert.Zero(t, am.Wigner9J(1, 1, 3, 1, 1, 2, 2, 2, 1), "row triangle violation")
	assert.Zero(t, am.Wigner9J(1, 1, 2, 1, 1, 2, 3, 2, 1), "column triangle violation")
}
