package handlers

import (
	"github.com/spicetable/pos/internal/checkout"
	"github.com/spicetable/pos/internal/domain"
)

// ProductResponse represents a catalog product
type ProductResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// CatalogResponse is one page of the filtered catalog
type CatalogResponse struct {
	Products   []ProductResponse `json:"products"`
	Categories []string          `json:"categories"`
	Category   string            `json:"category"`
	Search     string            `json:"search"`
	Page       int               `json:"page"`
	TotalPages int               `json:"total_pages"`
}

// CartLineResponse represents one cart line
type CartLineResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

// TerminalStateResponse is the terminal's full interactive state
type TerminalStateResponse struct {
	State         string             `json:"state"`
	Lines         []CartLineResponse `json:"lines"`
	Subtotal      float64            `json:"subtotal"`
	Discount      float64            `json:"discount"`
	Total         float64            `json:"total"`
	CustomerName  string             `json:"customer_name,omitempty"`
	CustomerPhone string             `json:"customer_phone,omitempty"`
	Table         string             `json:"table,omitempty"`
	PaymentMethod string             `json:"payment_method"`
	ServiceType   string             `json:"service_type"`
	OrderID       string             `json:"order_id,omitempty"`
}

func terminalState(o *checkout.Orchestrator) TerminalStateResponse {
	s := o.Session()
	lines := s.Cart.Lines()
	lineResponses := make([]CartLineResponse, len(lines))
	for i, l := range lines {
		lineResponses[i] = CartLineResponse{
			ProductID: l.ProductID.String(),
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
			LineTotal: l.LineTotal(),
		}
	}

	resp := TerminalStateResponse{
		State:         o.State().String(),
		Lines:         lineResponses,
		Subtotal:      s.Subtotal,
		Discount:      s.Discount,
		Total:         s.Total,
		CustomerName:  s.Customer.Name,
		CustomerPhone: s.Customer.Phone,
		Table:         s.Table,
		PaymentMethod: string(s.Payment),
		ServiceType:   string(s.Service),
	}
	if order := o.Order(); order != nil {
		resp.OrderID = order.ID
	}
	return resp
}

func catalogResponse(s *checkout.Session) CatalogResponse {
	page, totalPages := s.CurrentPage()
	return CatalogResponse{
		Products:   productResponses(page),
		Categories: s.Categories(),
		Category:   s.Category,
		Search:     s.Search,
		Page:       s.Page,
		TotalPages: totalPages,
	}
}

func productResponses(products []domain.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = ProductResponse{
			ID:       p.ID.String(),
			Name:     p.Name,
			Price:    p.Price,
			Category: p.Category,
		}
	}
	return out
}
