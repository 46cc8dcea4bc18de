package repository

import (
	"context"

	"salesapi/internal/domain/entity"
	"salesapi/internal/errors"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter narrows and pages product listings.
type ProductFilter struct {
	Limit       int64
	Offset      int64
	HideSoldOut bool // When true, only products with stock > 0 are returned.
}

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// Find retrieves a page of products matching the filter.
	Find(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// FindByID retrieves a single product by its unique id.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// Count returns the total number of products.
	Count(ctx context.Context) (int64, error)

	// Create persists a new product and assigns its generated id.
	Create(ctx context.Context, product *entity.Product) error

	// Update overwrites an existing product record.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product record.
	Delete(ctx context.Context, id string) error

	// AdjustStock atomically increments the product's stock by delta, which
	// may be negative. Stock is allowed to go below zero.
	AdjustStock(ctx context.Context, id string, delta int) error
}
