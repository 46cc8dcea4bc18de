package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOrderStatus(t *testing.T) {
	for _, raw := range []string{"PENDING", "COMPLETED", "CANCELLED"} {
		status, err := ParseOrderStatus(raw)
		assert.NoError(t, err)
		assert.Equal(t, OrderStatus(raw), status)
	}

	for _, raw := range []string{"", "pending", "SHIPPED", "Completed"} {
		_, err := ParseOrderStatus(raw)
		assert.Error(t, err, "expected rejection for %q", raw)
	}
}

func TestStockDelta(t *testing.T) {
	tests := []struct {
		name     string
		target   OrderStatus
		prior    OrderStatus
		quantity int
		want     int
	}{
		{"completing a pending order leaves stock alone", StatusCompleted, StatusPending, 5, 0},
		{"completing a cancelled order decrements again", StatusCompleted, StatusCancelled, 5, -5},
		{"completing a completed order decrements again", StatusCompleted, StatusCompleted, 3, -3},
		{"cancelling a pending order restores stock", StatusCancelled, StatusPending, 4, 4},
		{"cancelling a completed order restores stock", StatusCancelled, StatusCompleted, 4, 4},
		{"cancelling a cancelled order restores again", StatusCancelled, StatusCancelled, 2, 2},
		{"reopening a completed order leaves stock alone", StatusPending, StatusCompleted, 7, 0},
		{"pending from cancelled decrements", StatusPending, StatusCancelled, 7, -7},
		{"pending from pending decrements", StatusPending, StatusPending, 1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StockDelta(tt.target, tt.prior, tt.quantity))
		})
	}
}
