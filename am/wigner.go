package am

import "math"

// The doubled-j core: every dj/dm argument below is twice the physical
// quantum number, so half-integer spins stay in exact integer arithmetic.
// Factorial arguments produced by the Racah formulas are then guaranteed to
// be integers, evaluated in log space to postpone overflow.

// lnFact returns ln(n!) or NaN for negative n. The NaN never escapes: every
// caller gates on the domain checks below before exponentiating.
func lnFact(n int) float64 {
	if n < 0 {
		return math.NaN()
	}
	v, _ := math.Lgamma(float64(n) + 1)
	return v
}

// halved converts a doubled quantum-number combination to its physical
// integer value. ok is false when the combination is negative or would be
// half-integer, i.e. when the corresponding factorial is undefined.
func halved(d int) (int, bool) {
	if d < 0 || d%2 != 0 {
		return 0, false
	}
	return d / 2, true
}

// triangleOK reports whether (dj1, dj2, dj3) satisfy the triangle rule with
// integer perimeter.
func triangleOK(dj1, dj2, dj3 int) bool {
	if dj1 < 0 || dj2 < 0 || dj3 < 0 {
		return false
	}
	if (dj1+dj2+dj3)%2 != 0 {
		return false
	}
	return dj3 >= abs(dj1-dj2) && dj3 <= dj1+dj2
}

// lnTriangle returns the log of the triangle coefficient
// Δ(j1 j2 j3) = (j1+j2−j3)!(j1−j2+j3)!(−j1+j2+j3)!/(j1+j2+j3+1)!.
// Caller must have verified triangleOK.
func lnTriangle(dj1, dj2, dj3 int) float64 {
	a, _ := halved(dj1 + dj2 - dj3)
	b, _ := halved(dj1 - dj2 + dj3)
	c, _ := halved(-dj1 + dj2 + dj3)
	s, _ := halved(dj1 + dj2 + dj3)
	return lnFact(a) + lnFact(b) + lnFact(c) - lnFact(s+1)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// parityPhase returns (−1)^(d/2) for an even doubled value d.
func parityPhase(d int) float64 {
	if (d/2)%2 != 0 {
		return -1
	}
	return 1
}

// threeJ evaluates the Wigner 3j symbol with doubled arguments using the
// Racah single-sum formula in log space.
func threeJ(dj1, dj2, dj3, dm1, dm2, dm3 int) float64 {
	if dm1+dm2+dm3 != 0 {
		return 0
	}
	if abs(dm1) > dj1 || abs(dm2) > dj2 || abs(dm3) > dj3 {
		return 0
	}
	if (dj1+dm1)%2 != 0 || (dj2+dm2)%2 != 0 || (dj3+dm3)%2 != 0 {
		return 0
	}
	if !triangleOK(dj1, dj2, dj3) {
		return 0
	}

	j1pm1, _ := halved(dj1 + dm1)
	j1mm1, _ := halved(dj1 - dm1)
	j2pm2, _ := halved(dj2 + dm2)
	j2mm2, _ := halved(dj2 - dm2)
	j3pm3, _ := halved(dj3 + dm3)
	j3mm3, _ := halved(dj3 - dm3)

	pref := 0.5 * (lnTriangle(dj1, dj2, dj3) +
		lnFact(j1pm1) + lnFact(j1mm1) +
		lnFact(j2pm2) + lnFact(j2mm2) +
		lnFact(j3pm3) + lnFact(j3mm3))

	// Racah series: the parity checks above guarantee every combination
	// below is an integer; t1 and t2 may still be negative, which only
	// tightens the lower summation bound.
	t1 := (dj3 - dj2 + dm1) / 2 // j3−j2+m1
	t2 := (dj3 - dj1 - dm2) / 2 // j3−j1−m2
	t3 := (dj1 + dj2 - dj3) / 2 // j1+j2−j3
	t4 := j1mm1                 // j1−m1
	t5 := j2pm2                 // j2+m2

	kmin := max(0, max(-t1, -t2))
	kmax := min(t3, min(t4, t5))

	var sum float64
	for k := kmin; k <= kmax; k++ {
		den := lnFact(k) + lnFact(k+t1) + lnFact(k+t2) +
			lnFact(t3-k) + lnFact(t4-k) + lnFact(t5-k)
		term := math.Exp(pref - den)
		if k%2 != 0 {
			term = -term
		}
		sum += term
	}

	return parityPhase(dj1-dj2-dm3) * sum
}

// sixJ evaluates the Wigner 6j symbol {a b c; d e f} with doubled arguments
// via the Racah sum.
func sixJ(da, db, dc, dd, de, df int) float64 {
	if !triangleOK(da, db, dc) || !triangleOK(da, de, df) ||
		!triangleOK(dd, db, df) || !triangleOK(dd, de, dc) {
		return 0
	}

	pref := 0.5 * (lnTriangle(da, db, dc) + lnTriangle(da, de, df) +
		lnTriangle(dd, db, df) + lnTriangle(dd, de, dc))

	abc, _ := halved(da + db + dc)
	aef, _ := halved(da + de + df)
	dbf, _ := halved(dd + db + df)
	dec, _ := halved(dd + de + dc)
	abde, _ := halved(da + db + dd + de)
	bcef, _ := halved(db + dc + de + df)
	acdf, _ := halved(da + dc + dd + df)

	kmin := max(abc, max(aef, max(dbf, dec)))
	kmax := min(abde, min(bcef, acdf))

	var sum float64
	for k := kmin; k <= kmax; k++ {
		num := lnFact(k + 1)
		den := lnFact(k-abc) + lnFact(k-aef) + lnFact(k-dbf) + lnFact(k-dec) +
			lnFact(abde-k) + lnFact(bcef-k) + lnFact(acdf-k)
		term := math.Exp(pref + num - den)
		if k%2 != 0 {
			term = -term
		}
		sum += term
	}

	return sum
}

// nineJ evaluates the Wigner 9j symbol
//
//	{a b c}
//	{d e f}
//	{g h i}
//
// with doubled arguments, as a sum over products of three 6j symbols.
func nineJ(da, db, dc, dd, de, df, dg, dh, di int) float64 {
	if !triangleOK(da, db, dc) || !triangleOK(dd, de, df) || !triangleOK(dg, dh, di) ||
		!triangleOK(da, dd, dg) || !triangleOK(db, de, dh) || !triangleOK(dc, df, di) {
		return 0
	}

	kmin := max(abs(da-di), max(abs(db-df), abs(dd-dh)))
	kmax := min(da+di, min(db+df, dd+dh))

	var sum float64
	for dk := kmin; dk <= kmax; dk += 2 {
		term := float64(dk+1) *
			sixJ(da, db, dc, df, di, dk) *
			sixJ(dd, de, df, db, dk, dh) *
			sixJ(dg, dh, di, dk, da, dd)
		// (−1)^{2k} with doubled dk.
		if dk%2 != 0 {
			term = -term
		}
		sum += term
	}

	return sum
}

// Wigner3J returns the 3j symbol for integer angular momenta and projections.
func Wigner3J(j1, j2, j3, m1, m2, m3 int) float64 {
	return threeJ(2*j1, 2*j2, 2*j3, 2*m1, 2*m2, 2*m3)
}

// Wigner6J returns the 6j symbol {j1 j2 j3; j4 j5 j6} for integer arguments.
func Wigner6J(j1, j2, j3, j4, j5, j6 int) float64 {
	return sixJ(2*j1, 2*j2, 2*j3, 2*j4, 2*j5, 2*j6)
}

// Wigner9J returns the 9j symbol for integer arguments, rows
// (j1 j2 j3), (j4 j5 j6), (j7 j8 j9).
func Wigner9J(j1, j2, j3, j4, j5, j6, j7, j8, j9 int) float64 {
	return nineJ(2*j1, 2*j2, 2*j3, 2*j4, 2*j5, 2*j6, 2*j7, 2*j8, 2*j9)
}

// Hat returns √(2j+1).
func Hat(j int) float64 { return math.Sqrt(float64(2*j + 1)) }

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
