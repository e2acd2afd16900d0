// Package am provides angular-momentum algebra for two-nucleon matrix
// elements: Wigner 3j/6j/9j symbols and the reduced matrix elements (RMEs)
// of the spin, isospin, orbital and coupled spherical-tensor operators that
// appear in the chiral magnetic-dipole formulas.
//
// Conventions:
//
//   - Reduced matrix elements follow the Wigner–Eckart convention
//     ⟨j'm'|T^k_q|jm⟩ = ⟨jm; kq|j'm'⟩ ⟨j'‖T^k‖j⟩ / √(2j'+1).
//   - All public entry points take plain ints because every quantum number
//     of the two-body LSJT basis (n, L, S, J, T) is integer. Half-integer
//     single-nucleon spins appear only inside closed two-body formulas and
//     are handled by the internal doubled-j core.
//   - A symbol or RME whose arguments violate a triangle, projection or
//     parity rule evaluates to exactly 0 — never an error.
//
// All functions are pure and deterministic; the package holds no state.
package am
