package service

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/locvowork/decant_storefront/internal/domain"
	"github.com/locvowork/decant_storefront/internal/logger"
)

// DefaultSimilarLimit is how many related products a product page shows.
const DefaultSimilarLimit = 4

// ProductService answers catalog queries from a snapshot loaded once from the
// configured repository.
type ProductService struct {
	repo domain.ProductRepository

	mu       sync.RWMutex
	products []domain.Product
}

// NewProductService creates a new ProductService instance
func NewProductService(repo domain.ProductRepository) *ProductService {
	return &ProductService{repo: repo, products: []domain.Product{}}
}

// Load replaces the catalog snapshot with the repository's current content.
func (ps *ProductService) Load(ctx context.Context) error {
	products, err := ps.repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	if products == nil {
		products = []domain.Product{}
	}

	ps.mu.Lock()
	ps.products = products
	ps.mu.Unlock()

	logger.InfoLog(ctx, "Catalog loaded with %d products", len(products))
	return nil
}

func (ps *ProductService) snapshot() []domain.Product {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return ps.products
}

// ==================== Catalog Queries ====================

// GetAll returns the catalog in featured order.
func (ps *ProductService) GetAll() []domain.Product {
	return slices.Clone(ps.snapshot())
}

// GetByID returns domain.ErrProductNotFound for an unknown id.
func (ps *ProductService) GetByID(id string) (domain.Product, error) {
	for _, p := range ps.snapshot() {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, fmt.Errorf("product %q: %w", id, domain.ErrProductNotFound)
}

func (ps *ProductService) ByCategory(c domain.Category) []domain.Product {
	return ps.where(func(p domain.Product) bool { return p.Category == c })
}

func (ps *ProductService) ByType(t domain.ScentType) []domain.Product {
	return ps.where(func(p domain.Product) bool { return p.Type == t })
}

func (ps *ProductService) BestSellers() []domain.Product {
	return ps.where(func(p domain.Product) bool { return p.IsBestSeller })
}

func (ps *ProductService) NewArrivals() []domain.Product {
	return ps.where(func(p domain.Product) bool { return p.IsNew })
}

// Similar lists up to limit other products sharing product's type or
// category, in catalog order. A non-positive limit uses DefaultSimilarLimit.
func (ps *ProductService) Similar(product domain.Product, limit int) []domain.Product {
	if limit <= 0 {
		limit = DefaultSimilarLimit
	}

	result := []domain.Product{}
	for _, p := range ps.snapshot() {
		if len(result) == limit {
			break
		}
		if p.ID != product.ID && (p.Type == product.Type || p.Category == product.Category) {
			result = append(result, p)
		}
	}
	return result
}

func (ps *ProductService) Brands() []string {
	return Brands(ps.snapshot())
}

func (ps *ProductService) Filter(q CatalogQuery) []domain.Product {
	return FilterProducts(ps.snapshot(), q)
}

func (ps *ProductService) Search(text string) []domain.Product {
	return SearchProducts(ps.snapshot(), text)
}

func (ps *ProductService) where(keep func(domain.Product) bool) []domain.Product {
	result := []domain.Product{}
	for _, p := range ps.snapshot() {
		if keep(p) {
			result = append(result, p)
		}
	}
	return result
}

// ==================== Statistics ====================

// CatalogStatistics summarizes the loaded catalog.
type CatalogStatistics struct {
	TotalProducts int                      `json:"total_products"`
	BestSellers   int                      `json:"best_sellers"`
	NewArrivals   int                      `json:"new_arrivals"`
	Discounted    int                      `json:"discounted"`
	Brands        int                      `json:"brands"`
	ByCategory    map[domain.Category]int  `json:"by_category"`
	ByType        map[domain.ScentType]int `json:"by_type"`
	MinPrice      float64                  `json:"min_price"`
	MaxPrice      float64                  `json:"max_price"`
}

func (ps *ProductService) Statistics() CatalogStatistics {
	products := ps.snapshot()

	stats := CatalogStatistics{
		TotalProducts: len(products),
		Brands:        len(Brands(products)),
		ByCategory:    make(map[domain.Category]int),
		ByType:        make(map[domain.ScentType]int),
	}
	for i, p := range products {
		if p.IsBestSeller {
			stats.BestSellers++
		}
		if p.IsNew {
			stats.NewArrivals++
		}
		if p.HasDiscount() {
			stats.Discounted++
		}
		stats.ByCategory[p.Category]++
		stats.ByType[p.Type]++

		if i == 0 || p.Price < stats.MinPrice {
			stats.MinPrice = p.Price
		}
		if p.Price > stats.MaxPrice {
			stats.MaxPrice = p.Price
		}
	}
	return stats
}
