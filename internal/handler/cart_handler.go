package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/locvowork/decant_storefront/internal/service"
	"github.com/locvowork/decant_storefront/internal/service/serviceutils"
)

// CartGauge receives the cart size after every change.
type CartGauge interface {
	SetCartItems(n int)
}

type CartHandler struct {
	cart     *service.CartStore
	products *service.ProductService
	gauge    CartGauge
}

// NewCartHandler wires the cart endpoints. gauge may be nil.
func NewCartHandler(cart *service.CartStore, products *service.ProductService, gauge CartGauge) *CartHandler {
	h := &CartHandler{cart: cart, products: products, gauge: gauge}
	h.observe(cart.ItemCount())
	return h
}

// GetHandler handles GET /api/cart
func (h *CartHandler) GetHandler(c echo.Context) error {
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Cart retrieved successfully", h.snapshot())
}

// AddItemHandler handles POST /api/cart/items
func (h *CartHandler) AddItemHandler(c echo.Context) error {
	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid request body", err)
	}
	if req.ProductID == "" {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "product_id is required", nil)
	}
	if req.Quantity < 0 {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "quantity must not be negative", nil)
	}
	if req.Quantity > service.MaxLineQuantity {
		return serviceutils.ResponseError(c, http.StatusBadRequest, msgQuantityTooLarge, nil)
	}

	product, err := h.products.GetByID(req.ProductID)
	if err != nil {
		return productLookupError(c, err)
	}

	h.cart.Add(product, req.Quantity, req.Size)
	return serviceutils.ResponseSuccess(c, http.StatusCreated, "Item added to cart", h.snapshot())
}

// UpdateItemHandler handles PATCH /api/cart/items/:productId
func (h *CartHandler) UpdateItemHandler(c echo.Context) error {
	productID := c.Param("productId")

	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid request body", err)
	}
	if req.Quantity > service.MaxLineQuantity {
		return serviceutils.ResponseError(c, http.StatusBadRequest, msgQuantityTooLarge, nil)
	}
	if !h.cart.ContainsLine(productID, req.Size) {
		return serviceutils.ResponseError(c, http.StatusNotFound, "Item not in cart", nil)
	}

	h.cart.UpdateQuantity(productID, req.Quantity, req.Size)
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Cart updated successfully", h.snapshot())
}

// RemoveItemHandler handles DELETE /api/cart/items/:productId?size=
func (h *CartHandler) RemoveItemHandler(c echo.Context) error {
	h.cart.Remove(c.Param("productId"), c.QueryParam("size"))
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Item removed from cart", h.snapshot())
}

// ClearHandler handles DELETE /api/cart
func (h *CartHandler) ClearHandler(c echo.Context) error {
	h.cart.Clear()
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Cart cleared", h.snapshot())
}

// CheckoutHandler handles GET /api/checkout. There is no order pipeline.
func (h *CartHandler) CheckoutHandler(c echo.Context) error {
	return serviceutils.ResponseError(c, http.StatusNotImplemented, "Checkout is not available", nil)
}

var msgQuantityTooLarge = fmt.Sprintf("quantity must not exceed %d", service.MaxLineQuantity)

// snapshot reads the cart once and reports its size to the gauge.
func (h *CartHandler) snapshot() CartResponse {
	snap := h.cart.Snapshot()
	h.observe(snap.ItemCount)
	return CartResponse{
		Items:     snap.Items,
		ItemCount: snap.ItemCount,
		Subtotal:  snap.Subtotal.InexactFloat64(),
	}
}

func (h *CartHandler) observe(n int) {
	if h.gauge != nil {
		h.gauge.SetCartItems(n)
	}
}
