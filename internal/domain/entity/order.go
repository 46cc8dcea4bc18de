package entity

import (
	"time"

	"github.com/pkg/errors"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusCompleted OrderStatus = "COMPLETED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// ParseOrderStatus converts a raw string into an OrderStatus, rejecting
// anything outside the three enumerated values.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	switch status := OrderStatus(raw); status {
	case StatusPending, StatusCompleted, StatusCancelled:
		return status, nil
	default:
		return "", errors.Errorf("unknown order status %q", raw)
	}
}

// LineItem is a (product reference, quantity) pair within an order.
type LineItem struct {
	ProductID string
	Quantity  int
}

// Order is an ordered list of line items sold to a customer by a salesperson.
// Orders are always created in the PENDING state.
type Order struct {
	ID            string
	Items         []LineItem
	Total         float64
	CreatedAt     time.Time
	CustomerID    string
	SalespersonID string
	Status        OrderStatus
}

// StockDelta computes the stock adjustment for one line item when an order
// moves from the prior status to the target status. It is a function of
// (target, prior) only:
//
//	COMPLETED <- PENDING   : no change (stock was decremented at creation)
//	COMPLETED <- other     : decrement again
//	CANCELLED <- any       : restore
//	PENDING   <- COMPLETED : no change
//	PENDING   <- other     : decrement
func StockDelta(target, prior OrderStatus, quantity int) int {
	switch target {
	case StatusCompleted:
		if prior == StatusPending {
			return 0
		}

		return -quantity
	case StatusCancelled:
		return quantity
	default: // StatusPending
		if prior == StatusCompleted {
			return 0
		}

		return -quantity
	}
}
