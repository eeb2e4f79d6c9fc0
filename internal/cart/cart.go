package cart

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/spicetable/pos/internal/domain"
	"github.com/spicetable/pos/internal/notify"
	"github.com/spicetable/pos/pkg/errors"
)

// Cart is the in-progress, mutable set of order lines for the current
// bill. It keeps insertion order and at most one line per product ID.
// A cart belongs to a single terminal session and is not safe for
// concurrent use.
type Cart struct {
	lines    []domain.CartLine
	notifier notify.Notifier
}

// New creates an empty cart. The notifier receives an "item added"
// notification the first time a product enters the cart.
func New(notifier notify.Notifier) *Cart {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	return &Cart{notifier: notifier}
}

// Lines returns the cart lines in insertion order. The returned slice is
// the cart's own backing store; callers must treat it as read-only.
func (c *Cart) Lines() []domain.CartLine {
	return c.lines
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Add puts a product in the cart. If a line for the product already
// exists its quantity is incremented by one; otherwise a new line with
// quantity one is appended and an "item added" notification is emitted.
func (c *Cart) Add(p domain.Product) {
	for i := range c.lines {
		if c.lines[i].ProductID == p.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, domain.CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Quantity:  1,
	})
	c.notifier.Notify(notify.KindSuccess, fmt.Sprintf("%s added to order", p.Name))
}

// AddManual validates and adds an ad-hoc item that has no catalog entry.
// The item gets a fresh product ID and the "Custom" category.
func (c *Cart) AddManual(name string, price float64) error {
	if strings.TrimSpace(name) == "" {
		err := &errors.ErrValidation{Field: "name", Message: "item name is required"}
		c.notifier.Notify(notify.KindError, err.Error())
		return err
	}
	if price <= 0 {
		err := &errors.ErrValidation{Field: "price", Message: "price must be a positive number"}
		c.notifier.Notify(notify.KindError, err.Error())
		return err
	}
	c.Add(domain.Product{
		ID:       uuid.New(),
		Name:     strings.TrimSpace(name),
		Price:    price,
		Category: domain.CategoryCustom,
	})
	return nil
}

// ChangeQuantity applies a delta to a line's quantity, flooring at one.
// A delta that would take the quantity below one never removes the line;
// removal is always explicit.
func (c *Cart) ChangeQuantity(productID uuid.UUID, delta int) error {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			q := c.lines[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			c.lines[i].Quantity = q
			return nil
		}
	}
	return &errors.ErrNotFound{Resource: "cart line", ID: productID.String()}
}

// Remove deletes a line unconditionally.
func (c *Cart) Remove(productID uuid.UUID) error {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return nil
		}
	}
	return &errors.ErrNotFound{Resource: "cart line", ID: productID.String()}
}

// Clear empties the cart. Only the dismiss path of the checkout flow
// calls this.
func (c *Cart) Clear() {
	c.lines = nil
}

// Snapshot returns a structural copy of the current lines. Mutating the
// cart afterwards does not affect the copy.
func (c *Cart) Snapshot() []domain.CartLine {
	out := make([]domain.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}
