package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/locvowork/decant_storefront/internal/service"
	"github.com/locvowork/decant_storefront/internal/service/serviceutils"
)

type WishlistGauge interface {
	SetWishlistItems(n int)
}

type WishlistHandler struct {
	wishlist *service.WishlistStore
	products *service.ProductService
	gauge    WishlistGauge
}

func NewWishlistHandler(wishlist *service.WishlistStore, products *service.ProductService, gauge WishlistGauge) *WishlistHandler {
	h := &WishlistHandler{wishlist: wishlist, products: products, gauge: gauge}
	h.observe(wishlist.Count())
	return h
}

func (h *WishlistHandler) GetHandler(c echo.Context) error {
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Wishlist retrieved successfully", h.snapshot())
}

func (h *WishlistHandler) AddItemHandler(c echo.Context) error {
	var req AddWishlistItemRequest
	if err := c.Bind(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid request body", err)
	}
	if req.ProductID == "" {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "product_id is required", nil)
	}

	product, err := h.products.GetByID(req.ProductID)
	if err != nil {
		return productLookupError(c, err)
	}

	h.wishlist.Add(product)
	return serviceutils.ResponseSuccess(c, http.StatusCreated, "Item saved to wishlist", h.snapshot())
}

func (h *WishlistHandler) ToggleHandler(c echo.Context) error {
	product, err := h.products.GetByID(c.Param("productId"))
	if err != nil {
		return productLookupError(c, err)
	}

	saved, count := h.wishlist.Toggle(product)
	h.observe(count)
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Wishlist toggled", WishlistToggleResponse{
		ProductID:  product.ID,
		InWishlist: saved,
		Count:      count,
	})
}

func (h *WishlistHandler) RemoveItemHandler(c echo.Context) error {
	h.wishlist.Remove(c.Param("productId"))
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Item removed from wishlist", h.snapshot())
}

func (h *WishlistHandler) ClearHandler(c echo.Context) error {
	h.wishlist.Clear()
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Wishlist cleared", h.snapshot())
}

func (h *WishlistHandler) snapshot() WishlistResponse {
	items := h.wishlist.Items()
	h.observe(len(items))
	return WishlistResponse{Items: items, Count: len(items)}
}

func (h *WishlistHandler) observe(n int) {
	if h.gauge != nil {
		h.gauge.SetWishlistItems(n)
	}
}
