package repository

import (
	"context"

	"salesapi/internal/domain/entity"
	"salesapi/internal/errors"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// LeaderboardEntry is one row of a revenue leaderboard: a customer or
// salesperson reference with its summed COMPLETED-order total and the display
// name joined from the corresponding collection.
type LeaderboardEntry struct {
	RefID string
	Name  string
	Total float64
}

// OrderRepository defines the standard operations for order persistence,
// including the aggregation queries behind the leaderboards.
type OrderRepository interface {
	// FindByCustomer retrieves all orders placed by a customer.
	FindByCustomer(ctx context.Context, customerID string) ([]*entity.Order, error)

	// Create persists a new order and assigns its generated id.
	Create(ctx context.Context, order *entity.Order) error

	// Update applies the submitted fields to an existing order. Fields the
	// form does not carry, notably the creation timestamp, keep their
	// stored values.
	Update(ctx context.Context, order *entity.Order) error

	// TopCustomers returns at most ten customers ranked by summed
	// COMPLETED-order total, descending; ties break by reference id.
	TopCustomers(ctx context.Context) ([]*LeaderboardEntry, error)

	// TopSalespeople returns at most ten salespeople ranked by summed
	// COMPLETED-order total, descending; ties break by reference id.
	TopSalespeople(ctx context.Context) ([]*LeaderboardEntry, error)
}
