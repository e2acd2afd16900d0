// Package basis constructs the truncated harmonic-oscillator partial-wave
// bases used by the chiral operator generator: relative and
// relative–center-of-mass LSJT states, subspaces sharing coupling quantum
// numbers under an (Nmax, Jmax) truncation, operator sectors filtered by
// angular-momentum / parity / isospin selection rules, the dense per-sector
// matrix blocks the driver fills with reduced matrix elements, and the
// flat-file serialization of a filled operator.
//
// Layout invariants:
//
//   - Subspaces are enumerated in a fixed deterministic order (L ascending,
//     then S, J, T), so sector indexing and file output are reproducible.
//   - Sectors are stored upper-triangular (bra subspace index ≤ ket subspace
//     index) under the Hermitian symmetry convention.
//   - A sector exists only if the operator's tensor rank, parity and
//     isotensor rank connect its two subspaces.
package basis
