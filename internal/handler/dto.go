package handler

import "github.com/locvowork/decant_storefront/internal/domain"

// ProductDetailResponse is the product page payload.
type ProductDetailResponse struct {
	Product domain.Product   `json:"product"`
	Similar []domain.Product `json:"similar"`
}

// ProductListResponse is a filtered catalog listing.
type ProductListResponse struct {
	Products      []domain.Product `json:"products"`
	Count         int              `json:"count"`
	ActiveFilters bool             `json:"active_filters"`
}

type CartResponse struct {
	Items     []domain.CartItem `json:"items"`
	ItemCount int               `json:"item_count"`
	Subtotal  float64           `json:"subtotal"`
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
}

type UpdateCartItemRequest struct {
	Quantity int    `json:"quantity"`
	Size     string `json:"size"`
}

type WishlistResponse struct {
	Items []domain.Product `json:"items"`
	Count int              `json:"count"`
}

type AddWishlistItemRequest struct {
	ProductID string `json:"product_id"`
}

type WishlistToggleResponse struct {
	ProductID  string `json:"product_id"`
	InWishlist bool   `json:"in_wishlist"`
	Count      int    `json:"count"`
}
