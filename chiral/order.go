package chiral

import "errors"

// ErrUnknownOrder is returned when an order label is not in the chiral
// expansion enumeration.
var ErrUnknownOrder = errors.New("chiral: unknown order")

// Order is one rung of the chiral power-counting expansion. The set is
// closed and totally ordered; Full is an alias for "through the highest
// implemented order" rather than a rung of its own.
type Order int

const (
	LO Order = iota
	NLO
	N2LO
	N3LO
	N4LO
	Full
)

var orderLabels = map[Order]string{
	LO:   "lo",
	NLO:  "nlo",
	N2LO: "n2lo",
	N3LO: "n3lo",
	N4LO: "n4lo",
	Full: "full",
}

// String returns the display label of the order.
func (o Order) String() string {
	if s, ok := orderLabels[o]; ok {
		return s
	}
	return "unknown"
}

// OrderFromLabel parses a display label back into an Order.
func OrderFromLabel(label string) (Order, error) {
	for o, s := range orderLabels {
		if s == label {
			return o, nil
		}
	}
	return 0, ErrUnknownOrder
}

// Orders returns the driving sequence of the expansion, lowest first.
// Full is not part of the sequence; it names a truncation, not a rung.
func Orders() []Order {
	return []Order{LO, NLO, N2LO, N3LO, N4LO}
}

// Truncation resolves the order at which driving stops: Full maps to the
// last enumerated rung, every concrete order maps to itself.
func (o Order) Truncation() Order {
	if o == Full {
		return N4LO
	}
	return o
}
