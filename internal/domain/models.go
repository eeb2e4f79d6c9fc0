package domain

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a purchasable catalog item
type Product struct {
	ID       uuid.UUID
	Name     string
	Price    float64
	Category string
}

// CategoryCustom is assigned to manually entered items with no catalog entry.
const CategoryCustom = "Custom"

// CartLine represents one product-quantity pairing within a cart.
// A cart holds at most one line per product ID.
type CartLine struct {
	ProductID uuid.UUID
	Name      string
	UnitPrice float64
	Quantity  int
}

// LineTotal returns the extended price of the line
func (l CartLine) LineTotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// Customer holds the optional customer details attached to an order.
// Blank fields are allowed.
type Customer struct {
	Name  string
	Phone string
}

// Order is the immutable bill snapshot produced when checkout succeeds.
// Lines are copied from the cart at snapshot time; later cart mutations
// must not be visible through an already issued order.
type Order struct {
	ID            string
	Customer      Customer
	Table         string
	PaymentMethod PaymentMethod
	ServiceType   ServiceType
	Lines         []CartLine
	Subtotal      float64
	Discount      float64
	Total         float64
	CreatedAt     time.Time
}
