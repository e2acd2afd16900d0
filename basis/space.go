package basis

// RelativeSubspace is the set of relative states sharing (L, S, J, T),
// truncated by 2N + L ≤ Nmax. States differ only in the radial quantum
// number N, enumerated ascending from zero.
type RelativeSubspace struct {
	L, S, J, T int

	// Nmax is the oscillator truncation inherited from the space.
	Nmax int
}

// Size returns the number of radial states in the subspace.
func (s RelativeSubspace) Size() int {
	if s.Nmax < s.L {
		return 0
	}
	return (s.Nmax-s.L)/2 + 1
}

// State returns the i-th state of the subspace (N = i).
func (s RelativeSubspace) State(i int) RelativeState {
	return RelativeState{N: i, L: s.L, S: s.S, J: s.J, T: s.T}
}

// Parity returns the spatial parity label g = L mod 2 shared by all states.
func (s RelativeSubspace) Parity() int { return s.L % 2 }

// RelativeSpace is the full set of relative subspaces under an
// (Nmax, Jmax) truncation, in deterministic order: L ascending, then S,
// then J, then T, keeping only antisymmetry-allowed (L+S+T odd)
// combinations with at least one state.
type RelativeSpace struct {
	Nmax, Jmax int
	Subspaces  []RelativeSubspace
}

// NewRelativeSpace enumerates the relative subspaces for the truncation.
func NewRelativeSpace(nmax, jmax int) RelativeSpace {
	space := RelativeSpace{Nmax: nmax, Jmax: jmax}
	for l := 0; l <= nmax; l++ {
		for s := 0; s <= 1; s++ {
			jmin := l - s
			if jmin < 0 {
				jmin = s - l
			}
			jmaxLS := l + s
			if jmaxLS > jmax {
				jmaxLS = jmax
			}
			for j := jmin; j <= jmaxLS; j++ {
				for t := 0; t <= 1; t++ {
					if (l+s+t)%2 != 1 {
						continue // two-nucleon antisymmetry
					}
					sub := RelativeSubspace{L: l, S: s, J: j, T: t, Nmax: nmax}
					if sub.Size() == 0 {
						continue
					}
					space.Subspaces = append(space.Subspaces, sub)
				}
			}
		}
	}
	return space
}

// Dimension returns the total number of states across all subspaces.
func (sp RelativeSpace) Dimension() int {
	var dim int
	for _, sub := range sp.Subspaces {
		dim += sub.Size()
	}
	return dim
}
