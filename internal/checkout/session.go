package checkout

import (
	"github.com/spicetable/pos/internal/cart"
	"github.com/spicetable/pos/internal/catalog"
	"github.com/spicetable/pos/internal/domain"
	"github.com/spicetable/pos/internal/notify"
	"github.com/spicetable/pos/internal/pricing"
)

// Session is the explicit per-terminal context: the cart, the checkout
// form fields, the catalog browse state, and the derived totals. One
// session belongs to one terminal; there is no sharing across terminals.
type Session struct {
	Cart     *cart.Cart
	Customer domain.Customer
	Table    string
	Payment  domain.PaymentMethod
	Service  domain.ServiceType
	Discount float64

	// Catalog browse state. Page is always within [1, TotalPages] of the
	// current filtered set and resets to 1 whenever the filter changes.
	Category string
	Search   string
	Page     int
	PageSize int

	// Derived; never set directly. Recompute refreshes them after every
	// mutating operation.
	Subtotal float64
	Total    float64

	catalog *catalog.Catalog
}

// NewSession creates a session with default context over the given catalog.
func NewSession(cat *catalog.Catalog, notifier notify.Notifier) *Session {
	s := &Session{
		Cart:     cart.New(notifier),
		catalog:  cat,
		PageSize: catalog.DefaultPageSize,
	}
	s.resetContext()
	return s
}

// Recompute refreshes the derived pricing fields from the cart and the
// current discount.
func (s *Session) Recompute() {
	s.Subtotal = pricing.Subtotal(s.Cart.Lines())
	s.Total = pricing.Total(s.Subtotal, s.Discount)
}

// SetDiscount updates the flat discount and recomputes totals. Negative
// values are accepted and act as a surcharge.
func (s *Session) SetDiscount(d float64) {
	s.Discount = d
	s.Recompute()
}

// SetFilter updates the category and search text. Any change to the
// effective filter resets the page to 1.
func (s *Session) SetFilter(category, search string) {
	if category == "" {
		category = catalog.CategoryAll
	}
	if category != s.Category || search != s.Search {
		s.Page = 1
	}
	s.Category = category
	s.Search = search
}

// SetPage moves to the given 1-based page, clamped to the page range of
// the currently filtered set.
func (s *Session) SetPage(page int) {
	total := catalog.TotalPages(len(s.Filtered()), s.PageSize)
	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}
	s.Page = page
}

// Filtered returns the catalog products matching the session's filter.
func (s *Session) Filtered() []domain.Product {
	return s.catalog.Filter(s.Category, s.Search)
}

// CurrentPage returns the visible slice of the filtered set along with
// the total page count.
func (s *Session) CurrentPage() ([]domain.Product, int) {
	filtered := s.Filtered()
	return catalog.Paginate(filtered, s.PageSize, s.Page), catalog.TotalPages(len(filtered), s.PageSize)
}

// Categories lists the catalog categories, including the "All" wildcard.
func (s *Session) Categories() []string {
	return s.catalog.Categories()
}

// FindProduct looks up a product from the session's catalog by ID.
func (s *Session) FindProduct(id string) (domain.Product, bool) {
	for _, p := range s.catalog.Products() {
		if p.ID.String() == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// resetContext restores every form and browse field to its default.
// The cart itself is cleared separately by the dismiss path.
func (s *Session) resetContext() {
	s.Customer = domain.Customer{}
	s.Table = ""
	s.Payment = domain.PaymentCash
	s.Service = domain.ServiceDineIn
	s.Discount = 0
	s.Category = catalog.CategoryAll
	s.Search = ""
	s.Page = 1
	s.Recompute()
}
