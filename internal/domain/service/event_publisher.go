package service

import (
	"context"
	"time"
)

// OrderEvent describes an order lifecycle change for downstream consumers.
type OrderEvent struct {
	RequestID     string           `json:"request_id,omitempty"` // For distributed tracing
	OrderID       string           `json:"order_id"`
	CustomerID    string           `json:"customer_id"`
	SalespersonID string           `json:"salesperson_id,omitempty"`
	Status        string           `json:"status"`
	PriorStatus   string           `json:"prior_status,omitempty"`
	Total         float64          `json:"total"`
	Items         []OrderEventItem `json:"items"`
	OccurredAt    time.Time        `json:"occurred_at"`
}

// OrderEventItem mirrors one line item of the order.
type OrderEventItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// EventPublisher defines the interface for publishing order events to a message queue.
// Publishing is best-effort; mutations never fail because an event could not be sent.
type EventPublisher interface {
	// PublishOrderEvent publishes an order lifecycle event.
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
