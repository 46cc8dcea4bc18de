// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"salesapi/internal/domain/entity"
	"salesapi/internal/errors"
)

// ErrCustomerNotFound is a domain-specific error returned when a customer is not found.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerFilter narrows and pages customer listings.
type CustomerFilter struct {
	Limit         int64
	Offset        int64
	SalespersonID string // When set, restricts results to this salesperson's customers.
}

// CustomerRepository defines the standard operations for customer persistence.
type CustomerRepository interface {
	// Find retrieves a page of customers matching the filter.
	Find(ctx context.Context, filter CustomerFilter) ([]*entity.Customer, error)

	// FindByID retrieves a single customer by its unique id.
	FindByID(ctx context.Context, id string) (*entity.Customer, error)

	// Count returns the number of customers, optionally restricted to a salesperson.
	Count(ctx context.Context, salespersonID string) (int64, error)

	// Create persists a new customer and assigns its generated id.
	Create(ctx context.Context, customer *entity.Customer) error

	// Update overwrites an existing customer record.
	Update(ctx context.Context, customer *entity.Customer) error

	// Delete removes a customer record. Associated orders are not cascaded.
	Delete(ctx context.Context, id string) error
}
