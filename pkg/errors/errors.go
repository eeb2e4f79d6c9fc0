package errors

import "fmt"

// ErrEmptyCart is returned when checkout is attempted with no cart lines.
type ErrEmptyCart struct{}

func (e *ErrEmptyCart) Error() string {
	return "cart is empty, nothing to check out"
}

// ErrValidation is returned when user-supplied input fails validation.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// ErrInvalidStateTransition is returned when a checkout state transition is not allowed.
type ErrInvalidStateTransition struct {
	From string
	To   string
}

func (e *ErrInvalidStateTransition) Error() string {
	return fmt.Sprintf("invalid state transition from %s to %s", e.From, e.To)
}

// ErrNotFound is returned when a resource doesn't exist
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrUnauthorized is returned when a station key is missing or invalid
type ErrUnauthorized struct {
	Message string
}

func (e *ErrUnauthorized) Error() string {
	return e.Message
}
