package usecase

import (
	"context"

	"salesapi/internal/domain/entity"
)

// ProductForm carries the fields of a create/update product mutation.
type ProductForm struct {
	ID    string  `json:"id"`
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
	Stock int     `json:"stock"`
}

// ListProductsInput pages product listings; HideSoldOut drops stock <= 0.
type ListProductsInput struct {
	Limit       int64
	Offset      int64
	HideSoldOut bool
}

// ProductUsecase defines the query/mutation contract for products.
type ProductUsecase interface {
	List(ctx context.Context, input ListProductsInput) ([]*entity.Product, error)
	Get(ctx context.Context, id string) (*entity.Product, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, form *ProductForm) (*entity.Product, error)
	Update(ctx context.Context, form *ProductForm) (*entity.Product, error)
	Delete(ctx context.Context, id string) error
}
