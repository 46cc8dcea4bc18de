package usecase

import (
	"context"

	"salesapi/internal/domain/entity"
	"salesapi/internal/domain/repository"
)

// OrderLineInput is one submitted (product reference, quantity) pair.
type OrderLineInput struct {
	ProductID string `json:"product" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
}

// OrderForm carries the fields of a create/update order mutation. Status is
// ignored on creation (orders always start PENDING).
type OrderForm struct {
	ID            string           `json:"id"`
	Items         []OrderLineInput `json:"items" validate:"required,min=1,dive"`
	Total         float64          `json:"total" validate:"gte=0"`
	CustomerID    string           `json:"customer" validate:"required"`
	SalespersonID string           `json:"salesperson"`
	Status        string           `json:"status"`
}

// OrderUsecase defines the query/mutation contract for orders, including the
// revenue leaderboards derived from them.
type OrderUsecase interface {
	ListByCustomer(ctx context.Context, customerID string) ([]*entity.Order, error)

	// Create persists a new order in the PENDING state, decrementing each
	// line item's product stock best-effort.
	Create(ctx context.Context, form *OrderForm) (*entity.Order, error)

	// Update applies the submitted fields to the order, leaving the creation
	// timestamp intact, and applies the stock instruction derived from
	// (submitted status, prior status) to each submitted line item.
	Update(ctx context.Context, form *OrderForm, priorStatus string) (*entity.Order, error)

	TopCustomers(ctx context.Context) ([]*repository.LeaderboardEntry, error)
	TopSalespeople(ctx context.Context) ([]*repository.LeaderboardEntry, error)
}
