package basis

// SymmetryPhaseMode fixes the convention relating a lower-triangular sector
// to its stored upper-triangular partner.
type SymmetryPhaseMode int

const (
	// Hermitian stores ⟨bra‖O‖ket⟩ for bra ≤ ket; the transpose block
	// follows from Hermiticity of the operator.
	Hermitian SymmetryPhaseMode = iota
)

// OperatorLabels carries the tensorial character of an operator: angular
// tensor rank J0, parity G0 ∈ {0, 1}, the isotensor rank range
// [T0Min, T0Max], and the symmetry storage convention.
type OperatorLabels struct {
	J0, G0       int
	T0Min, T0Max int
	Symmetry     SymmetryPhaseMode
}

// Sector is one allowed (bra subspace, ket subspace) pair for a given
// isotensor rank. BraIndex ≤ KetIndex (upper triangular storage).
type Sector struct {
	BraIndex, KetIndex int
	Bra, Ket           RelativeSubspace
}

// IsDiagonal reports whether the sector couples a subspace to itself.
func (s Sector) IsDiagonal() bool { return s.BraIndex == s.KetIndex }

// RelativeSectors is the ordered list of allowed sectors of one isotensor
// rank T0 over a relative space.
type RelativeSectors struct {
	T0      int
	Sectors []Sector
}

// allowed reports whether an operator with rank J0, parity G0 and isotensor
// rank T0 connects the bra and ket subspaces: the angular-momentum triangle
// |ΔJ| ≤ J0 ≤ J+J', the parity difference matching G0, and the isospin
// triangle on T0.
func allowed(bra, ket RelativeSubspace, j0, g0, t0 int) bool {
	if !triangle(bra.J, j0, ket.J) {
		return false
	}
	if (bra.Parity()+ket.Parity())%2 != g0%2 {
		return false
	}
	return triangle(bra.T, t0, ket.T)
}

func triangle(a, b, c int) bool {
	return c >= absInt(a-b) && c <= a+b
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// NewRelativeSectors enumerates, upper-triangular in subspace index, the
// sectors of isotensor rank t0 allowed for operator labels over the space.
func NewRelativeSectors(space RelativeSpace, labels OperatorLabels, t0 int) RelativeSectors {
	out := RelativeSectors{T0: t0}
	for bi, bra := range space.Subspaces {
		for ki := bi; ki < len(space.Subspaces); ki++ {
			ket := space.Subspaces[ki]
			if !allowed(bra, ket, labels.J0, labels.G0, t0) {
				continue
			}
			out.Sectors = append(out.Sectors, Sector{
				BraIndex: bi, KetIndex: ki, Bra: bra, Ket: ket,
			})
		}
	}
	return out
}

// UpperTriangularEntries counts the independent matrix elements across the
// sectors: full blocks off the diagonal, upper triangle on it.
func UpperTriangularEntries(sectors RelativeSectors) int {
	var n int
	for _, sec := range sectors.Sectors {
		rows, cols := sec.Bra.Size(), sec.Ket.Size()
		if sec.IsDiagonal() {
			n += rows * (rows + 1) / 2
		} else {
			n += rows * cols
		}
	}
	return n
}
