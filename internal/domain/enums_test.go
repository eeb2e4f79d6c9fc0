package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentMethod_IsValid(t *testing.T) {
	assert.True(t, PaymentCash.IsValid())
	assert.True(t, PaymentUPI.IsValid())
	assert.True(t, PaymentCard.IsValid())
	assert.False(t, PaymentMethod("CHEQUE").IsValid())
}

func TestServiceType_IsValid(t *testing.T) {
	assert.True(t, ServiceDineIn.IsValid())
	assert.True(t, ServiceTakeaway.IsValid())
	assert.True(t, ServiceDelivery.IsValid())
	assert.False(t, ServiceType("DRIVE_THROUGH").IsValid())
}

func TestCheckoutState_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from    CheckoutState
		to      CheckoutState
		allowed bool
	}{
		{StateBuilding, StateValidating, true},
		{StateBuilding, StateBuilding, true},
		{StateBuilding, StateProcessing, false},
		{StateValidating, StateProcessing, true},
		{StateValidating, StateBuilding, true},
		{StateProcessing, StateAwaitingAction, true},
		{StateProcessing, StateBuilding, false},
		{StateAwaitingAction, StateAwaitingAction, true},
		{StateAwaitingAction, StateFinalized, true},
		{StateAwaitingAction, StateProcessing, false},
		{StateFinalized, StateBuilding, true},
		{StateFinalized, StateAwaitingAction, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestCartLine_LineTotal(t *testing.T) {
	l := CartLine{UnitPrice: 45.5, Quantity: 3}
	assert.Equal(t, 136.5, l.LineTotal())
}
