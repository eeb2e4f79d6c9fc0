package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/spicetable/pos/internal/api/terminals"
	"github.com/spicetable/pos/internal/checkout"
	"github.com/spicetable/pos/internal/domain"
	poserrors "github.com/spicetable/pos/pkg/errors"
)

// ContextRequest updates the checkout form fields for a terminal
type ContextRequest struct {
	CustomerName  *string  `json:"customer_name"`
	CustomerPhone *string  `json:"customer_phone"`
	Table         *string  `json:"table"`
	PaymentMethod *string  `json:"payment_method"`
	ServiceType   *string  `json:"service_type"`
	Discount      *float64 `json:"discount"`
}

// CheckoutResponse carries the finished bill snapshot
type CheckoutResponse struct {
	OrderID   string             `json:"order_id"`
	State     string             `json:"state"`
	Lines     []CartLineResponse `json:"lines"`
	Subtotal  float64            `json:"subtotal"`
	Discount  float64            `json:"discount"`
	Total     float64            `json:"total"`
	CreatedAt string             `json:"created_at"`
}

// HandleSetContext handles PUT /v1/terminals/:terminal/context.
// Only the fields present in the payload are changed.
func HandleSetContext(reg *terminals.Registry, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ContextRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		t := reg.Get(c.Param("terminal"))

		var resp TerminalStateResponse
		err := t.Do(func(o *checkout.Orchestrator) error {
			s := o.Session()
			if req.CustomerName != nil {
				s.Customer.Name = *req.CustomerName
			}
			if req.CustomerPhone != nil {
				s.Customer.Phone = *req.CustomerPhone
			}
			if req.Table != nil {
				s.Table = *req.Table
			}
			if req.PaymentMethod != nil {
				pm := domain.PaymentMethod(*req.PaymentMethod)
				if !pm.IsValid() {
					return &poserrors.ErrValidation{Field: "payment_method", Message: "unknown payment method"}
				}
				s.Payment = pm
			}
			if req.ServiceType != nil {
				st := domain.ServiceType(*req.ServiceType)
				if !st.IsValid() {
					return &poserrors.ErrValidation{Field: "service_type", Message: "unknown service type"}
				}
				s.Service = st
			}
			if req.Discount != nil {
				s.SetDiscount(*req.Discount)
			}
			s.Recompute()
			resp = terminalState(o)
			return nil
		})
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

// HandleCheckout handles POST /v1/terminals/:terminal/checkout
func HandleCheckout(reg *terminals.Registry, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		t := reg.Get(c.Param("terminal"))

		var resp CheckoutResponse
		err := t.Do(func(o *checkout.Orchestrator) error {
			order, err := o.Checkout(c.Request.Context())
			if err != nil {
				return err
			}
			resp = checkoutResponse(o, order)
			return nil
		})
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

// HandleGetReceipt handles GET /v1/terminals/:terminal/receipt
func HandleGetReceipt(reg *terminals.Registry, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		t := reg.Get(c.Param("terminal"))

		var doc string
		err := t.Do(func(o *checkout.Orchestrator) error {
			var err error
			doc, err = o.Receipt()
			return err
		})
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.String(http.StatusOK, doc)
	}
}

// HandlePrint handles POST /v1/terminals/:terminal/receipt/print.
// Printing is repeatable and never advances or resets state.
func HandlePrint(reg *terminals.Registry, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		t := reg.Get(c.Param("terminal"))

		var doc string
		err := t.Do(func(o *checkout.Orchestrator) error {
			var err error
			doc, err = o.Print()
			return err
		})
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.String(http.StatusOK, doc)
	}
}

// HandleDismiss handles POST /v1/terminals/:terminal/dismiss
func HandleDismiss(reg *terminals.Registry, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		t := reg.Get(c.Param("terminal"))

		var resp TerminalStateResponse
		err := t.Do(func(o *checkout.Orchestrator) error {
			if err := o.Dismiss(); err != nil {
				return err
			}
			resp = terminalState(o)
			return nil
		})
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

func checkoutResponse(o *checkout.Orchestrator, order *domain.Order) CheckoutResponse {
	lines := make([]CartLineResponse, len(order.Lines))
	for i, l := range order.Lines {
		lines[i] = CartLineResponse{
			ProductID: l.ProductID.String(),
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
			LineTotal: l.LineTotal(),
		}
	}
	return CheckoutResponse{
		OrderID:   order.ID,
		State:     o.State().String(),
		Lines:     lines,
		Subtotal:  order.Subtotal,
		Discount:  order.Discount,
		Total:     order.Total,
		CreatedAt: order.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
