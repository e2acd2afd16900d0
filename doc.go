// Package chiralme generates reduced matrix elements of chiral
// effective-field-theory electroweak operators in a relative
// harmonic-oscillator LSJT basis, order by order in the chiral expansion.
//
// The pipeline is organized as small, composable packages:
//
//	constants/  — physical constants, low-energy constants, derived scales
//	am/         — Wigner 3j/6j/9j symbols and reduced-matrix-element algebra
//	ho/         — harmonic-oscillator radial functions and normalizations
//	quadrature/ — regularized radial integrals over pion-range profiles
//	basis/      — LSJT subspaces, operator sectors, dense blocks, file output
//	chiral/     — the operator family and its per-order closed-form formulas
//	driver/     — the order-by-order run loop and artifact writing
//	cmd/        — the chiralme command-line front end
//
// A run picks an operator and a truncation order, walks the expansion
// lowest order first, writes one artifact per order, and accumulates the
// sum into a cumulative artifact. Matrix elements that a selection rule
// forbids are exactly zero, and degenerate quantum-number combinations
// clamp to zero rather than propagating NaN into the output.
package chiralme
