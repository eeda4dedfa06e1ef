package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		name string
		from OrderStatusType
		to   OrderStatusType
		want bool
	}{
		{name: "pending to confirmed", from: OrderStatusPending, to: OrderStatusConfirmed, want: true},
		{name: "pending cannot skip to completed", from: OrderStatusPending, to: OrderStatusCompleted, want: false},
		{name: "ready to served for dine in", from: OrderStatusReady, to: OrderStatusServed, want: true},
		{name: "ready to delivered for delivery", from: OrderStatusReady, to: OrderStatusDelivered, want: true},
		{name: "served to completed", from: OrderStatusServed, to: OrderStatusCompleted, want: true},
		{name: "cancel from preparing", from: OrderStatusPreparing, to: OrderStatusCancelled, want: true},
		{name: "no revival from cancelled", from: OrderStatusCancelled, to: OrderStatusPending, want: false},
		{name: "no backward step", from: OrderStatusReady, to: OrderStatusPreparing, want: false},
		{name: "self transition is not allowed", from: OrderStatusPending, to: OrderStatusPending, want: false},
		{name: "unknown source", from: "burned", to: OrderStatusPending, want: false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.from.CanTransitionTo(c.to))
		})
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	assert.True(t, OrderStatusCompleted.Terminal())
	assert.True(t, OrderStatusCancelled.Terminal())
	assert.False(t, OrderStatusPending.Terminal())
	// неизвестное значение не считается терминальным, оно невалидно.
	assert.False(t, OrderStatusType("burned").Terminal())
	assert.False(t, OrderStatusType("burned").Valid())
}

// Из каждого нетерминального статуса заказа должен быть путь в cancelled.
func TestOrderStatusCancellableFromAnyActive(t *testing.T) {
	for from, targets := range orderTransitions {
		if len(targets) == 0 {
			continue
		}
		require.True(t, from.CanTransitionTo(OrderStatusCancelled), "from=%s", from)
	}
}

func TestPaymentStatusTransitions(t *testing.T) {
	cases := []struct {
		name string
		from PaymentStatusType
		to   PaymentStatusType
		want bool
	}{
		{name: "pending to paid", from: PaymentStatusPending, to: PaymentStatusPaid, want: true},
		{name: "pending to failed", from: PaymentStatusPending, to: PaymentStatusFailed, want: true},
		{name: "refund only after payment", from: PaymentStatusPending, to: PaymentStatusRefunded, want: false},
		{name: "paid to refunded", from: PaymentStatusPaid, to: PaymentStatusRefunded, want: true},
		{name: "no retry after failure", from: PaymentStatusFailed, to: PaymentStatusPaid, want: false},
		{name: "refunded is final", from: PaymentStatusRefunded, to: PaymentStatusPending, want: false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.from.CanTransitionTo(c.to))
		})
	}

	assert.True(t, PaymentStatusFailed.Terminal())
	assert.True(t, PaymentStatusRefunded.Terminal())
	assert.False(t, PaymentStatusPaid.Terminal())
}

func TestReservationStatusTransitions(t *testing.T) {
	cases := []struct {
		name string
		from ReservationStatusType
		to   ReservationStatusType
		want bool
	}{
		{name: "pending to confirmed", from: ReservationStatusPending, to: ReservationStatusConfirmed, want: true},
		{name: "confirmed to seated", from: ReservationStatusConfirmed, to: ReservationStatusSeated, want: true},
		{name: "seated to completed", from: ReservationStatusSeated, to: ReservationStatusCompleted, want: true},
		{name: "no seating before confirmation", from: ReservationStatusPending, to: ReservationStatusSeated, want: false},
		{name: "cancel while pending", from: ReservationStatusPending, to: ReservationStatusCancelled, want: true},
		{name: "completed is final", from: ReservationStatusCompleted, to: ReservationStatusSeated, want: false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.from.CanTransitionTo(c.to))
		})
	}
}

func TestActiveReservationStatuses(t *testing.T) {
	active := ActiveReservationStatuses()
	require.Len(t, active, 3)
	// терминальные статусы стол не занимают.
	assert.NotContains(t, active, ReservationStatusCompleted)
	assert.NotContains(t, active, ReservationStatusCancelled)
}

func TestStatusTransitionError(t *testing.T) {
	terminalErr := NewStatusTransitionError("order", "completed", "pending", true)
	require.ErrorIs(t, terminalErr, ErrTerminalState)
	require.NotErrorIs(t, terminalErr, ErrInvalidTransition)

	transitionErr := NewStatusTransitionError("order", "pending", "completed", false)
	require.ErrorIs(t, transitionErr, ErrInvalidTransition)
	assert.Contains(t, transitionErr.Error(), "pending -> completed")
}

func TestSlotConflictError(t *testing.T) {
	err := &SlotConflictError{TableID: 5, ConflictingID: 99}
	require.ErrorIs(t, err, ErrSlotConflict)
	assert.Contains(t, err.Error(), "table 5")
}
