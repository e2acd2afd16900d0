package basis

// RelativeState labels one two-body relative-coordinate basis state:
// radial quantum number N, orbital L, total spin S, total angular momentum J
// and isospin T. Antisymmetry of the two-nucleon state requires L+S+T odd.
type RelativeState struct {
	N, L, S, J, T int
}

// RelativeCMState labels one relative–center-of-mass basis state: relative
// (Nr, Lr) and center-of-mass (Nc, Lc) oscillator quanta, the coupled total
// orbital angular momentum L, spin S, angular momentum J and isospin T.
type RelativeCMState struct {
	Nr, Lr int
	Nc, Lc int
	L, S   int
	J, T   int
}

// Parity returns the spatial parity label g = L mod 2 of the relative state.
func (s RelativeState) Parity() int { return s.L % 2 }

// Parity returns the spatial parity label g = (Lr+Lc) mod 2.
func (s RelativeCMState) Parity() int { return (s.Lr + s.Lc) % 2 }
