package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spicetable/pos/internal/api/terminals"
	"github.com/spicetable/pos/internal/catalog"
	"github.com/spicetable/pos/internal/checkout"
	"github.com/spicetable/pos/internal/domain"
	"github.com/spicetable/pos/internal/notify"
	"github.com/spicetable/pos/internal/receipt"
)

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: uuid.New(), Name: "Masala Dosa", Price: 80, Category: "South Indian"},
		{ID: uuid.New(), Name: "Idli Sambar", Price: 50, Category: "South Indian"},
		{ID: uuid.New(), Name: "Masala Chai", Price: 20, Category: "Beverages"},
		{ID: uuid.New(), Name: "Filter Coffee", Price: 30, Category: "Beverages"},
	}
}

func newTestRouter(products []domain.Product) (*gin.Engine, *terminals.Registry) {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	cat := catalog.New(products)
	formatter := receipt.NewFormatter(receipt.Header{BusinessName: "Spice Table"})

	reg := terminals.NewRegistry(func() *checkout.Orchestrator {
		session := checkout.NewSession(cat, notify.Noop{})
		return checkout.NewOrchestrator(session, formatter, notify.Noop{}, logger)
	})

	router := gin.New()
	term := router.Group("/v1/terminals/:terminal")
	term.GET("", HandleGetCart(reg, logger))
	term.GET("/catalog", HandleGetCatalog(reg, logger))
	term.PUT("/catalog/filter", HandleSetFilter(reg, logger))
	term.PUT("/catalog/page", HandleSetPage(reg, logger))
	term.POST("/cart/items", HandleAddItem(reg, logger))
	term.POST("/cart/manual", HandleAddManualItem(reg, logger))
	term.PATCH("/cart/items/:product", HandleChangeQuantity(reg, logger))
	term.DELETE("/cart/items/:product", HandleRemoveItem(reg, logger))
	term.PUT("/context", HandleSetContext(reg, logger))
	term.POST("/checkout", HandleCheckout(reg, logger))
	term.GET("/receipt", HandleGetReceipt(reg, logger))
	term.POST("/receipt/print", HandlePrint(reg, logger))
	term.POST("/dismiss", HandleDismiss(reg, logger))
	return router, reg
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetCatalog_DefaultFilter(t *testing.T) {
	router, _ := newTestRouter(testProducts())

	w := doJSON(t, router, http.MethodGet, "/v1/terminals/t1/catalog", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp CatalogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Products, 4)
	assert.Equal(t, catalog.CategoryAll, resp.Category)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 1, resp.TotalPages)
}

func TestSetFilter_NarrowsAndResetsPage(t *testing.T) {
	router, _ := newTestRouter(testProducts())

	w := doJSON(t, router, http.MethodPut, "/v1/terminals/t1/catalog/filter",
		FilterRequest{Category: "Beverages"})

	require.Equal(t, http.StatusOK, w.Code)
	var resp CatalogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Products, 2)
	assert.Equal(t, 1, resp.Page)
}

func TestAddItem_MergesQuantity(t *testing.T) {
	products := testProducts()
	router, _ := newTestRouter(products)
	body := AddItemRequest{ProductID: products[0].ID.String()}

	doJSON(t, router, http.MethodPost, "/v1/terminals/t1/cart/items", body)
	w := doJSON(t, router, http.MethodPost, "/v1/terminals/t1/cart/items", body)

	require.Equal(t, http.StatusOK, w.Code)
	var resp TerminalStateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, 2, resp.Lines[0].Quantity)
	assert.Equal(t, 160.0, resp.Subtotal)
}

func TestAddItem_UnknownProduct(t *testing.T) {
	router, _ := newTestRouter(testProducts())

	w := doJSON(t, router, http.MethodPost, "/v1/terminals/t1/cart/items",
		AddItemRequest{ProductID: uuid.NewString()})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddManualItem_Validation(t *testing.T) {
	router, _ := newTestRouter(testProducts())

	w := doJSON(t, router, http.MethodPost, "/v1/terminals/t1/cart/manual",
		AddManualItemRequest{Name: "", Price: 0})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Cart unchanged.
	w = doJSON(t, router, http.MethodGet, "/v1/terminals/t1", nil)
	var resp TerminalStateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Lines)
}

func TestChangeQuantity_Floors(t *testing.T) {
	products := testProducts()
	router, _ := newTestRouter(products)
	id := products[0].ID.String()

	doJSON(t, router, http.MethodPost, "/v1/terminals/t1/cart/items", AddItemRequest{ProductID: id})
	w := doJSON(t, router, http.MethodPatch, "/v1/terminals/t1/cart/items/"+id, QuantityRequest{Delta: -5})

	require.Equal(t, http.StatusOK, w.Code)
	var resp TerminalStateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, 1, resp.Lines[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	products := testProducts()
	router, _ := newTestRouter(products)
	id := products[0].ID.String()

	doJSON(t, router, http.MethodPost, "/v1/terminals/t1/cart/items", AddItemRequest{ProductID: id})
	w := doJSON(t, router, http.MethodDelete, "/v1/terminals/t1/cart/items/"+id, nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp TerminalStateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Lines)
}

func TestCheckout_EmptyCart(t *testing.T) {
	router, _ := newTestRouter(testProducts())

	w := doJSON(t, router, http.MethodPost, "/v1/terminals/t1/checkout", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCheckoutFlow_EndToEnd(t *testing.T) {
	products := testProducts()
	router, _ := newTestRouter(products)
	id := products[1].ID.String() // Idli Sambar, 50

	doJSON(t, router, http.MethodPost, "/v1/terminals/t1/cart/items", AddItemRequest{ProductID: id})
	doJSON(t, router, http.MethodPatch, "/v1/terminals/t1/cart/items/"+id, QuantityRequest{Delta: 1})

	w := doJSON(t, router, http.MethodPost, "/v1/terminals/t1/checkout", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp CheckoutResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 100.0, resp.Total)
	assert.NotEmpty(t, resp.OrderID)

	// Printing is repeatable.
	w = doJSON(t, router, http.MethodPost, "/v1/terminals/t1/receipt/print", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, router, http.MethodPost, "/v1/terminals/t1/receipt/print", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Idli Sambar")

	// Dismiss resets the terminal.
	w = doJSON(t, router, http.MethodPost, "/v1/terminals/t1/dismiss", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var state TerminalStateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.Equal(t, "BUILDING", state.State)
	assert.Empty(t, state.Lines)
	assert.Equal(t, 0.0, state.Discount)
}

func TestSetContext_PartialUpdate(t *testing.T) {
	router, _ := newTestRouter(testProducts())
	name := "Asha"
	discount := 25.0

	w := doJSON(t, router, http.MethodPut, "/v1/terminals/t1/context",
		ContextRequest{CustomerName: &name, Discount: &discount})

	require.Equal(t, http.StatusOK, w.Code)
	var resp TerminalStateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Asha", resp.CustomerName)
	assert.Equal(t, 25.0, resp.Discount)
	assert.Equal(t, "CASH", resp.PaymentMethod)
}

func TestSetContext_InvalidPaymentMethod(t *testing.T) {
	router, _ := newTestRouter(testProducts())
	pm := "CHEQUE"

	w := doJSON(t, router, http.MethodPut, "/v1/terminals/t1/context",
		ContextRequest{PaymentMethod: &pm})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestTerminals_AreIndependent(t *testing.T) {
	products := testProducts()
	router, _ := newTestRouter(products)
	id := products[0].ID.String()

	doJSON(t, router, http.MethodPost, "/v1/terminals/t1/cart/items", AddItemRequest{ProductID: id})

	w := doJSON(t, router, http.MethodGet, "/v1/terminals/t2", nil)
	var resp TerminalStateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Lines)
}

func TestGetReceipt_BeforeCheckout(t *testing.T) {
	router, _ := newTestRouter(testProducts())

	w := doJSON(t, router, http.MethodGet, "/v1/terminals/t1/receipt", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}
