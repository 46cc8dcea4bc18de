// Package repository provides hand-maintained test doubles for the domain
// repository interfaces, built on testify/mock.
package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"salesapi/internal/domain/entity"
	"salesapi/internal/domain/repository"
)

// MockCustomerRepository is a mock implementation of repository.CustomerRepository.
type MockCustomerRepository struct {
	mock.Mock
}

// NewMockCustomerRepository creates a mock wired to the test lifecycle:
// expectations are asserted automatically on cleanup.
func NewMockCustomerRepository(t *testing.T) *MockCustomerRepository {
	m := &MockCustomerRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCustomerRepository) Find(ctx context.Context, filter repository.CustomerFilter) ([]*entity.Customer, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id string) (*entity.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Count(ctx context.Context, salespersonID string) (int64, error) {
	args := m.Called(ctx, salespersonID)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
