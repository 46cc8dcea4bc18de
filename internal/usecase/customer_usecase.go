// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"salesapi/internal/domain/entity"
)

// CustomerForm carries the fields of a create/update customer mutation.
type CustomerForm struct {
	ID            string   `json:"id"`
	Name          string   `json:"name" validate:"required"`
	Surname       string   `json:"surname"`
	Company       string   `json:"company"`
	Emails        []string `json:"emails"`
	Age           int      `json:"age" validate:"gte=0"`
	Category      string   `json:"category"`
	Orders        []string `json:"orders"`
	SalespersonID string   `json:"salesperson"`
}

// ListCustomersInput pages customer listings, optionally per salesperson.
type ListCustomersInput struct {
	Limit         int64
	Offset        int64
	SalespersonID string
}

// CustomerUsecase defines the query/mutation contract for customers.
type CustomerUsecase interface {
	List(ctx context.Context, input ListCustomersInput) ([]*entity.Customer, error)
	Get(ctx context.Context, id string) (*entity.Customer, error)
	Count(ctx context.Context, salespersonID string) (int64, error)
	Create(ctx context.Context, form *CustomerForm) (*entity.Customer, error)
	Update(ctx context.Context, form *CustomerForm) (*entity.Customer, error)
	Delete(ctx context.Context, id string) error
}
