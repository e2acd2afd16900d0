package driver

import "github.com/lenpic/chiralme/chiral"

// phase is the processing state of one chiral order in a run.
type phase int

const (
	phasePending phase = iota
	phaseAccumulating
	phaseDone
)

// orderSchedule walks the chiral orders lowest-first up to a truncation.
// Each order moves pending → accumulating → done exactly once; orders past
// the truncation are never scheduled.
type orderSchedule struct {
	orders []chiral.Order
	phases []phase
}

func newOrderSchedule(truncation chiral.Order) *orderSchedule {
	var orders []chiral.Order
	for _, o := range chiral.Orders() {
		if o > truncation {
			break
		}
		orders = append(orders, o)
	}
	return &orderSchedule{
		orders: orders,
		phases: make([]phase, len(orders)),
	}
}

// next returns the lowest pending order and marks it accumulating. The
// second return is false once every scheduled order is done.
func (s *orderSchedule) next() (chiral.Order, bool) {
	for i, o := range s.orders {
		if s.phases[i] == phasePending {
			s.phases[i] = phaseAccumulating
			return o, true
		}
	}
	return 0, false
}

// finish marks order done. Finishing an order that is not accumulating is
// a driver bug and is ignored.
func (s *orderSchedule) finish(order chiral.Order) {
	for i, o := range s.orders {
		if o == order && s.phases[i] == phaseAccumulating {
			s.phases[i] = phaseDone
		}
	}
}

// done reports whether every scheduled order has been processed.
func (s *orderSchedule) done() bool {
	for _, p := range s.phases {
		if p != phaseDone {
			return false
		}
	}
	return true
}
