package impl

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"salesapi/internal/domain/entity"
	domainerrors "salesapi/internal/domain/errors"
	"salesapi/internal/domain/repository"
	mockRepo "salesapi/internal/mocks/repository"
	"salesapi/internal/usecase"
)

func createTestCustomerService(t *testing.T) (usecase.CustomerUsecase, *mockRepo.MockCustomerRepository) {
	repo := mockRepo.NewMockCustomerRepository(t)
	svc := NewCustomerService(CustomerServiceParams{
		CustomerRepo: repo,
		Logger:       newDiscardLogger(),
	})

	return svc, repo
}

func TestCustomerService_List_PassesFilter(t *testing.T) {
	svc, repo := createTestCustomerService(t)
	ctx := context.Background()

	expected := []*entity.Customer{{ID: "cust-1", Name: "Acme"}}
	repo.On("Find", ctx, repository.CustomerFilter{Limit: 5, Offset: 10, SalespersonID: "sales-1"}).
		Return(expected, nil)

	customers, err := svc.List(ctx, usecase.ListCustomersInput{Limit: 5, Offset: 10, SalespersonID: "sales-1"})

	require.NoError(t, err)
	assert.Equal(t, expected, customers)
}

func TestCustomerService_Get_NotFound(t *testing.T) {
	svc, repo := createTestCustomerService(t)
	ctx := context.Background()

	repo.On("FindByID", ctx, "missing").Return(nil, repository.ErrCustomerNotFound)

	customer, err := svc.Get(ctx, "missing")

	assert.Nil(t, customer)
	assert.True(t, errors.Is(err, domainerrors.ErrCustomerNotFound))
}

func TestCustomerService_Create(t *testing.T) {
	svc, repo := createTestCustomerService(t)
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*entity.Customer")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Customer).ID = "64f000000000000000000001"
		}).
		Return(nil)

	customer, err := svc.Create(ctx, &usecase.CustomerForm{
		Name:    "Acme",
		Surname: "Corp",
		Emails:  []string{"sales@acme.test"},
		Age:     12,
	})

	require.NoError(t, err)
	assert.Equal(t, "64f000000000000000000001", customer.ID)
	assert.Equal(t, "Acme", customer.Name)
}

func TestCustomerService_Update_NotFound(t *testing.T) {
	svc, repo := createTestCustomerService(t)
	ctx := context.Background()

	repo.On("Update", ctx, mock.AnythingOfType("*entity.Customer")).
		Return(repository.ErrCustomerNotFound)

	_, err := svc.Update(ctx, &usecase.CustomerForm{ID: "missing", Name: "Acme"})

	assert.True(t, errors.Is(err, domainerrors.ErrCustomerNotFound))
}

func TestCustomerService_Delete(t *testing.T) {
	svc, repo := createTestCustomerService(t)
	ctx := context.Background()

	repo.On("Delete", ctx, "cust-1").Return(nil)

	assert.NoError(t, svc.Delete(ctx, "cust-1"))
}
