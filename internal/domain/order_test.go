package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{StatusPending, StatusMet, true},
		{StatusPending, StatusDelivered, true},
		{StatusPending, StatusCancelled, true},
		{StatusMet, StatusDelivered, true},
		{StatusMet, StatusCancelled, true},
		{StatusMet, StatusPending, false},
		{StatusDelivered, StatusMet, false},
		{StatusDelivered, StatusCancelled, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusDelivered, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_"+string(tt.to), func(t *testing.T) {
			require.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatusClassification(t *testing.T) {
	require.True(t, StatusPending.IsActive())
	require.True(t, StatusMet.IsActive())
	require.False(t, StatusDelivered.IsActive())
	require.False(t, StatusCancelled.IsActive())

	require.False(t, StatusPending.IsTerminal())
	require.False(t, StatusMet.IsTerminal())
	require.True(t, StatusDelivered.IsTerminal())
	require.True(t, StatusCancelled.IsTerminal())

	require.True(t, StatusPending.IsValid())
	require.False(t, OrderStatus("shipped").IsValid())
	require.False(t, OrderStatus("").IsValid())
}

func TestOrderCanBeCancelled(t *testing.T) {
	require.True(t, (&Order{Status: StatusPending}).CanBeCancelled())
	require.True(t, (&Order{Status: StatusMet}).CanBeCancelled())
	require.False(t, (&Order{Status: StatusDelivered}).CanBeCancelled())
	require.False(t, (&Order{Status: StatusCancelled}).CanBeCancelled())
}

func TestOrderCategoryCounts(t *testing.T) {
	o := &Order{CardType1Count: 2, CardType2Count: 0, CardType3Count: 5}

	counts := o.CategoryCounts()
	require.Equal(t, 2, counts[CategoryA])
	require.Equal(t, 0, counts[CategoryB])
	require.Equal(t, 5, counts[CategoryC])
}
