package domain

import "strings"

// ==================== CATALOG ====================

// Category is the audience a fragrance is marketed to.
type Category string

const (
	CategoryMasculine Category = "masculine"
	CategoryFeminine  Category = "feminine"
	CategoryUnisex    Category = "unisex"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryMasculine, CategoryFeminine, CategoryUnisex:
		return true
	}
	return false
}

// ParseCategory normalizes s and reports whether it names a known category.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	return c, c.Valid()
}

// ScentType is the olfactory family of a fragrance.
type ScentType string

const (
	ScentFresh    ScentType = "fresh"
	ScentWoody    ScentType = "woody"
	ScentFloral   ScentType = "floral"
	ScentOriental ScentType = "oriental"
	ScentCitrus   ScentType = "citrus"
)

// Valid reports whether t is one of the known scent types.
func (t ScentType) Valid() bool {
	switch t {
	case ScentFresh, ScentWoody, ScentFloral, ScentOriental, ScentCitrus:
		return true
	}
	return false
}

// ParseScentType normalizes s and reports whether it names a known scent type.
func ParseScentType(s string) (ScentType, bool) {
	t := ScentType(strings.ToLower(strings.TrimSpace(s)))
	return t, t.Valid()
}

// Notes is the three-tier note pyramid of a fragrance.
type Notes struct {
	Top    []string `json:"top"`
	Middle []string `json:"middle"`
	Base   []string `json:"base"`
}

// Product is an immutable catalog entry. The JSON layout matches the arrays
// kept in the shopper's local storage.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Brand         string    `json:"brand"`
	Price         float64   `json:"price"`
	OriginalPrice float64   `json:"originalPrice,omitempty"`
	Image         string    `json:"image"`
	Images        []string  `json:"images,omitempty"`
	Category      Category  `json:"category"`
	Type          ScentType `json:"type"`
	Description   string    `json:"description"`
	Notes         Notes     `json:"notes"`
	IsNew         bool      `json:"isNew,omitempty"`
	IsBestSeller  bool      `json:"isBestSeller,omitempty"`
	Longevity     string    `json:"longevity"`
	Sillage       string    `json:"sillage"`
	Occasion      []string  `json:"occasion"`
}

// HasDiscount reports whether the product carries a higher reference price.
func (p Product) HasDiscount() bool {
	return p.OriginalPrice > p.Price
}

// ==================== SHOPPER STATE ====================

// DefaultSize is the only decant size sold today.
const DefaultSize = "10ml"

// CartItem is one cart line, unique by (Product.ID, Size).
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Size     string  `json:"size"`
}

// SortOption selects the ordering of a catalog listing.
type SortOption string

const (
	SortFeatured  SortOption = "featured"
	SortPriceLow  SortOption = "price-low"
	SortPriceHigh SortOption = "price-high"
	SortName      SortOption = "name"
)

// ParseSortOption maps s to a sort option; unknown values fall back to featured.
func ParseSortOption(s string) SortOption {
	switch o := SortOption(strings.TrimSpace(s)); o {
	case SortPriceLow, SortPriceHigh, SortName:
		return o
	}
	return SortFeatured
}
