package service

import (
	"context"
	"encoding/json"
	"slices"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/locvowork/decant_storefront/internal/domain"
	"github.com/locvowork/decant_storefront/internal/logger"
)

// CartStorageKey is the local storage key holding the cart array.
const CartStorageKey = "elegance-cart"

// MaxLineQuantity caps the units held by one cart line.
const MaxLineQuantity = 999

// CartStore is the shopper's cart. Lines are unique by (product id, size) and
// kept in insertion order. Every mutation is written through to storage.
type CartStore struct {
	mu      sync.RWMutex
	items   []domain.CartItem
	storage domain.LocalStorage
}

// NewCartStore restores the cart from storage. Unreadable state starts an
// empty cart.
func NewCartStore(storage domain.LocalStorage) *CartStore {
	s := &CartStore{storage: storage, items: []domain.CartItem{}}

	raw, ok, err := storage.GetItem(CartStorageKey)
	switch {
	case err != nil:
		logger.ErrorLog(context.Background(), "Error loading cart: %v", err)
	case ok:
		var items []domain.CartItem
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			logger.ErrorLog(context.Background(), "Error loading cart: %v", err)
		} else if items != nil {
			for i := range items {
				items[i].Quantity = clampQuantity(items[i].Quantity)
			}
			s.items = items
		}
	}
	return s
}

// Add merges quantity into the (product, size) line, or appends a new line.
// An empty size means the default decant size; quantity below 1 counts as 1.
// The merged line never exceeds MaxLineQuantity.
func (s *CartStore) Add(product domain.Product, quantity int, size string) {
	if size == "" {
		size = domain.DefaultSize
	}
	quantity = clampQuantity(quantity)

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.items, func(it domain.CartItem) bool {
		return it.Product.ID == product.ID && it.Size == size
	})
	if idx >= 0 {
		s.items[idx].Quantity = min(s.items[idx].Quantity+quantity, MaxLineQuantity)
	} else {
		s.items = append(s.items, domain.CartItem{Product: product, Quantity: quantity, Size: size})
	}
	s.persistLocked()
}

// Remove drops the lines of productID. An empty size drops every size.
func (s *CartStore) Remove(productID, size string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(productID, size)
	s.persistLocked()
}

// UpdateQuantity sets the quantity of the matching lines. A quantity of 0 or
// less removes them; larger ones are capped at MaxLineQuantity.
func (s *CartStore) UpdateQuantity(productID string, quantity int, size string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(productID, size)
	} else {
		for i := range s.items {
			if lineMatches(s.items[i], productID, size) {
				s.items[i].Quantity = min(quantity, MaxLineQuantity)
			}
		}
	}
	s.persistLocked()
}

// Clear empties the cart.
func (s *CartStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = []domain.CartItem{}
	s.persistLocked()
}

// CartSnapshot is the cart lines and their totals read at one instant.
type CartSnapshot struct {
	Items     []domain.CartItem
	ItemCount int
	Subtotal  decimal.Decimal
}

// Snapshot returns the lines, unit count and subtotal under a single lock.
func (s *CartStore) Snapshot() CartSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return CartSnapshot{
		Items:     slices.Clone(s.items),
		ItemCount: itemCount(s.items),
		Subtotal:  subtotal(s.items),
	}
}

// Items returns a snapshot of the cart lines.
func (s *CartStore) Items() []domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

// ItemCount is the sum of all line quantities.
func (s *CartStore) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return itemCount(s.items)
}

// Subtotal is the sum of price times quantity over all lines.
func (s *CartStore) Subtotal() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return subtotal(s.items)
}

// Contains reports whether any line holds productID, in any size.
func (s *CartStore) Contains(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.ContainsFunc(s.items, func(it domain.CartItem) bool {
		return it.Product.ID == productID
	})
}

// ContainsLine reports whether a line matches productID and size. An empty
// size matches any size.
func (s *CartStore) ContainsLine(productID, size string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.ContainsFunc(s.items, func(it domain.CartItem) bool {
		return lineMatches(it, productID, size)
	})
}

func (s *CartStore) removeLocked(productID, size string) {
	s.items = slices.DeleteFunc(s.items, func(it domain.CartItem) bool {
		return lineMatches(it, productID, size)
	})
}

func (s *CartStore) persistLocked() {
	data, err := json.Marshal(s.items)
	if err != nil {
		logger.ErrorLog(context.Background(), "Error saving cart: %v", err)
		return
	}
	if err := s.storage.SetItem(CartStorageKey, string(data)); err != nil {
		logger.ErrorLog(context.Background(), "Error saving cart: %v", err)
	}
}

func lineMatches(it domain.CartItem, productID, size string) bool {
	return it.Product.ID == productID && (size == "" || it.Size == size)
}

func clampQuantity(q int) int {
	return max(1, min(q, MaxLineQuantity))
}

func itemCount(items []domain.CartItem) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}

func subtotal(items []domain.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		line := decimal.NewFromFloat(it.Product.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
		total = total.Add(line)
	}
	return total
}
