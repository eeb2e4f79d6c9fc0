package domain

// PaymentMethod represents the payment channel recorded on a bill
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "CASH"
	PaymentUPI  PaymentMethod = "UPI"
	PaymentCard PaymentMethod = "CARD"
)

// IsValid checks if the payment method is valid
func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentCash, PaymentUPI, PaymentCard:
		return true
	default:
		return false
	}
}

// ServiceType classifies how the order is served
type ServiceType string

const (
	ServiceDineIn   ServiceType = "DINE_IN"
	ServiceTakeaway ServiceType = "TAKEAWAY"
	ServiceDelivery ServiceType = "DELIVERY"
)

// IsValid checks if the service type is valid
func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceDineIn, ServiceTakeaway, ServiceDelivery:
		return true
	default:
		return false
	}
}

// CheckoutState represents the checkout lifecycle of a terminal session
type CheckoutState string

const (
	StateBuilding       CheckoutState = "BUILDING"
	StateValidating     CheckoutState = "VALIDATING"
	StateProcessing     CheckoutState = "PROCESSING"
	StateAwaitingAction CheckoutState = "AWAITING_ACTION"
	StateFinalized      CheckoutState = "FINALIZED"
)

// String representation (for logging)
func (s CheckoutState) String() string {
	return string(s)
}

// CanTransitionTo checks if a state transition is valid. Finalized is
// transient: the machine passes through it and returns to Building as part
// of dismissing a bill, it is never a resting state.
func (s CheckoutState) CanTransitionTo(next CheckoutState) bool {
	switch s {
	case StateBuilding:
		return next == StateValidating || next == StateBuilding
	case StateValidating:
		return next == StateProcessing || next == StateBuilding
	case StateProcessing:
		return next == StateAwaitingAction
	case StateAwaitingAction:
		return next == StateAwaitingAction || next == StateFinalized
	case StateFinalized:
		return next == StateBuilding
	default:
		return false
	}
}
