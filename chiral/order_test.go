package chiral_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lenpic/chiralme/chiral"
)

// TestOrders_SequenceAndLabels checks the driving sequence order and the
// label round-trip.
func TestOrders_SequenceAndLabels(t *testing.T) {
	seq := chiral.Orders()
	require.Equal(t, []chiral.Order{
		chiral.LO, chiral.NLO, chiral.N2LO, chiral.N3LO, chiral.N4LO,
	}, seq)

	for _, o := range seq {
		parsed, err := chiral.OrderFromLabel(o.String())
		require.NoError(t, err)
		assert.Equal(t, o, parsed)
	}

	parsed, err := chiral.OrderFromLabel("full")
	require.NoError(t, err)
	assert.Equal(t, chiral.Full, parsed)

	_, err = chiral.OrderFromLabel("n5lo")
	assert.ErrorIs(t, err, chiral.ErrUnknownOrder)
}

// TestOrder_Truncation checks Full resolves to the last enumerated rung.
func TestOrder_Truncation(t *testing.T) {
	assert.Equal(t, chiral.N4LO, chiral.Full.Truncation())
	assert.Equal(t, chiral.NLO, chiral.NLO.Truncation())
}
