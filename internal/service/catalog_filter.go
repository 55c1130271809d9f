package service

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/locvowork/decant_storefront/internal/domain"
)

// DefaultMaxPrice is the upper end of the shop's price slider.
const DefaultMaxPrice = 10000

// CatalogQuery is the shop page's filter state. Zero values select everything:
// empty Category/Type mean all, MaxPrice 0 means no upper bound and empty
// Brands means every brand.
type CatalogQuery struct {
	Search   string
	Category domain.Category
	Type     domain.ScentType
	MinPrice float64
	MaxPrice float64
	Brands   []string
	Sort     domain.SortOption
}

// HasActiveFilters reports whether q narrows the catalog compared to the
// default shop view. Sort order is not a filter.
func (q CatalogQuery) HasActiveFilters() bool {
	return strings.TrimSpace(q.Search) != "" ||
		q.Category != "" ||
		q.Type != "" ||
		q.MinPrice != 0 ||
		(q.MaxPrice != 0 && q.MaxPrice != DefaultMaxPrice) ||
		len(q.Brands) > 0
}

func (q CatalogQuery) matches(p domain.Product, search string, brands map[string]struct{}) bool {
	if search != "" &&
		!strings.Contains(strings.ToLower(p.Name), search) &&
		!strings.Contains(strings.ToLower(p.Brand), search) {
		return false
	}
	if q.Category != "" && p.Category != q.Category {
		return false
	}
	if q.Type != "" && p.Type != q.Type {
		return false
	}
	if p.Price < q.MinPrice {
		return false
	}
	if q.MaxPrice > 0 && p.Price > q.MaxPrice {
		return false
	}
	if len(brands) > 0 {
		if _, ok := brands[p.Brand]; !ok {
			return false
		}
	}
	return true
}

// FilterProducts applies every criterion of q and returns a newly allocated,
// stably sorted result. products is never modified.
func FilterProducts(products []domain.Product, q CatalogQuery) []domain.Product {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	var brands map[string]struct{}
	if len(q.Brands) > 0 {
		brands = make(map[string]struct{}, len(q.Brands))
		for _, b := range q.Brands {
			brands[b] = struct{}{}
		}
	}

	result := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if q.matches(p, search, brands) {
			result = append(result, p)
		}
	}

	SortProducts(result, q.Sort)
	return result
}

// SortProducts stably sorts products in place. Unknown options sort as
// featured, which lists best sellers first and otherwise keeps catalog order.
func SortProducts(products []domain.Product, by domain.SortOption) {
	switch by {
	case domain.SortPriceLow:
		slices.SortStableFunc(products, func(a, b domain.Product) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case domain.SortPriceHigh:
		slices.SortStableFunc(products, func(a, b domain.Product) int {
			return cmp.Compare(b.Price, a.Price)
		})
	case domain.SortName:
		c := collate.New(language.English)
		slices.SortStableFunc(products, func(a, b domain.Product) int {
			return c.CompareString(a.Name, b.Name)
		})
	default:
		slices.SortStableFunc(products, func(a, b domain.Product) int {
			return boolRank(b.IsBestSeller) - boolRank(a.IsBestSeller)
		})
	}
}

func boolRank(v bool) int {
	if v {
		return 1
	}
	return 0
}

// Brands returns the distinct brands of products in lexical order.
func Brands(products []domain.Product) []string {
	brands := make([]string, 0, len(products))
	for _, p := range products {
		brands = append(brands, p.Brand)
	}
	slices.Sort(brands)
	return slices.Compact(brands)
}

// SearchProducts is the header quick search. Blank text finds nothing;
// otherwise name, brand, type and category are matched case-insensitively.
func SearchProducts(products []domain.Product, text string) []domain.Product {
	if strings.TrimSpace(text) == "" {
		return []domain.Product{}
	}

	needle := strings.ToLower(text)
	result := []domain.Product{}
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Brand), needle) ||
			strings.Contains(string(p.Type), needle) ||
			strings.Contains(string(p.Category), needle) {
			result = append(result, p)
		}
	}
	return result
}
