package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/spicetable/pos/internal/api/terminals"
	"github.com/spicetable/pos/internal/checkout"
)

// FilterRequest updates the catalog filter for a terminal
type FilterRequest struct {
	Category string `json:"category"`
	Search   string `json:"search"`
}

// PageRequest moves the catalog to a page
type PageRequest struct {
	Page int `json:"page" binding:"required,min=1"`
}

// HandleGetCatalog handles GET /v1/terminals/:terminal/catalog
func HandleGetCatalog(reg *terminals.Registry, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		t := reg.Get(c.Param("terminal"))

		var resp CatalogResponse
		t.Do(func(o *checkout.Orchestrator) error {
			resp = catalogResponse(o.Session())
			return nil
		})

		c.JSON(http.StatusOK, resp)
	}
}

// HandleSetFilter handles PUT /v1/terminals/:terminal/catalog/filter.
// Changing the filter resets the page to 1.
func HandleSetFilter(reg *terminals.Registry, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req FilterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		t := reg.Get(c.Param("terminal"))

		var resp CatalogResponse
		t.Do(func(o *checkout.Orchestrator) error {
			o.Session().SetFilter(req.Category, req.Search)
			resp = catalogResponse(o.Session())
			return nil
		})

		c.JSON(http.StatusOK, resp)
	}
}

// HandleSetPage handles PUT /v1/terminals/:terminal/catalog/page
func HandleSetPage(reg *terminals.Registry, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		t := reg.Get(c.Param("terminal"))

		var resp CatalogResponse
		t.Do(func(o *checkout.Orchestrator) error {
			o.Session().SetPage(req.Page)
			resp = catalogResponse(o.Session())
			return nil
		})

		c.JSON(http.StatusOK, resp)
	}
}
