package service

import (
	"context"
	"encoding/json"
	"slices"
	"sync"

	"github.com/locvowork/decant_storefront/internal/domain"
	"github.com/locvowork/decant_storefront/internal/logger"
)

// WishlistStorageKey is the local storage key holding the wishlist array.
const WishlistStorageKey = "elegance-wishlist"

// WishlistStore is the shopper's saved products, unique by id, in the order
// they were added.
type WishlistStore struct {
	mu      sync.RWMutex
	items   []domain.Product
	storage domain.LocalStorage
}

func NewWishlistStore(storage domain.LocalStorage) *WishlistStore {
	s := &WishlistStore{storage: storage, items: []domain.Product{}}

	raw, ok, err := storage.GetItem(WishlistStorageKey)
	switch {
	case err != nil:
		logger.ErrorLog(context.Background(), "Error loading wishlist: %v", err)
	case ok:
		var items []domain.Product
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			logger.ErrorLog(context.Background(), "Error loading wishlist: %v", err)
		} else if items != nil {
			s.items = items
		}
	}
	return s
}

// Add saves product unless it is already present.
func (s *WishlistStore) Add(product domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexLocked(product.ID) >= 0 {
		return
	}
	s.items = append(s.items, product)
	s.persistLocked()
}

func (s *WishlistStore) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = slices.DeleteFunc(s.items, func(p domain.Product) bool { return p.ID == productID })
	s.persistLocked()
}

// Toggle adds product when absent and removes it when present. It returns
// whether the product is saved afterwards and the resulting count.
func (s *WishlistStore) Toggle(product domain.Product) (saved bool, count int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved = true
	if idx := s.indexLocked(product.ID); idx >= 0 {
		s.items = slices.Delete(s.items, idx, idx+1)
		saved = false
	} else {
		s.items = append(s.items, product)
	}
	s.persistLocked()
	return saved, len(s.items)
}

func (s *WishlistStore) Contains(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexLocked(productID) >= 0
}

func (s *WishlistStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = []domain.Product{}
	s.persistLocked()
}

func (s *WishlistStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Items returns a snapshot of the saved products.
func (s *WishlistStore) Items() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

func (s *WishlistStore) indexLocked(productID string) int {
	return slices.IndexFunc(s.items, func(p domain.Product) bool { return p.ID == productID })
}

func (s *WishlistStore) persistLocked() {
	data, err := json.Marshal(s.items)
	if err != nil {
		logger.ErrorLog(context.Background(), "Error saving wishlist: %v", err)
		return
	}
	if err := s.storage.SetItem(WishlistStorageKey, string(data)); err != nil {
		logger.ErrorLog(context.Background(), "Error saving wishlist: %v", err)
	}
}
