package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spicetable/pos/internal/api/terminals"
	"github.com/spicetable/pos/internal/checkout"
	poserrors "github.com/spicetable/pos/pkg/errors"
)

// AddItemRequest adds a catalog product to the cart
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// AddManualItemRequest adds an ad-hoc item with no catalog entry
type AddManualItemRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// QuantityRequest applies a delta to a line's quantity
type QuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// HandleAddItem handles POST /v1/terminals/:terminal/cart/items
func HandleAddItem(reg *terminals.Registry, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddItemRequest
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
			p, ok := s.FindProduct(req.ProductID)
			if !ok {
				return &poserrors.ErrNotFound{Resource: "product", ID: req.ProductID}
			}
			s.Cart.Add(p)
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

// HandleAddManualItem handles POST /v1/terminals/:terminal/cart/manual
func HandleAddManualItem(reg *terminals.Registry, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddManualItemRequest
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
			if err := s.Cart.AddManual(req.Name, req.Price); err != nil {
				return err
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

// HandleChangeQuantity handles PATCH /v1/terminals/:terminal/cart/items/:product
func HandleChangeQuantity(reg *terminals.Registry, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req QuantityRequest
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
			id, err := uuid.Parse(c.Param("product"))
			if err != nil {
				return &poserrors.ErrNotFound{Resource: "cart line", ID: c.Param("product")}
			}
			if err := s.Cart.ChangeQuantity(id, req.Delta); err != nil {
				return err
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

// HandleRemoveItem handles DELETE /v1/terminals/:terminal/cart/items/:product
func HandleRemoveItem(reg *terminals.Registry, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		t := reg.Get(c.Param("terminal"))

		var resp TerminalStateResponse
		err := t.Do(func(o *checkout.Orchestrator) error {
			s := o.Session()
			id, err := uuid.Parse(c.Param("product"))
			if err != nil {
				return &poserrors.ErrNotFound{Resource: "cart line", ID: c.Param("product")}
			}
			if err := s.Cart.Remove(id); err != nil {
				return err
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

// HandleGetCart handles GET /v1/terminals/:terminal
func HandleGetCart(reg *terminals.Registry, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		t := reg.Get(c.Param("terminal"))

		var resp TerminalStateResponse
		t.Do(func(o *checkout.Orchestrator) error {
			resp = terminalState(o)
			return nil
		})

		c.JSON(http.StatusOK, resp)
	}
}

// respondError maps engine errors to HTTP statuses.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	var notFound *poserrors.ErrNotFound
	var validation *poserrors.ErrValidation
	var emptyCart *poserrors.ErrEmptyCart
	var transition *poserrors.ErrInvalidStateTransition

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &validation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.As(err, &emptyCart):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &transition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("Unhandled engine error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
