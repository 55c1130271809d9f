package domain

import (
	"context"
	"errors"
)

// ErrProductNotFound is returned when a product id is not in the catalog.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository supplies the catalog.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]Product, error)
}

// LocalStorage is a string key/value store with the semantics of the
// browser's localStorage. GetItem reports false for a missing key.
type LocalStorage interface {
	GetItem(key string) (string, bool, error)
	SetItem(key, value string) error
	RemoveItem(key string) error
}
