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

func createTestProductService(t *testing.T) (usecase.ProductUsecase, *mockRepo.MockProductRepository) {
	repo := mockRepo.NewMockProductRepository(t)
	svc := NewProductService(ProductServiceParams{
		ProductRepo: repo,
		Logger:      newDiscardLogger(),
	})

	return svc, repo
}

func TestProductService_List_HideSoldOut(t *testing.T) {
	svc, repo := createTestProductService(t)
	ctx := context.Background()

	expected := []*entity.Product{{ID: "prod-1", Name: "Widget", Stock: 3}}
	repo.On("Find", ctx, repository.ProductFilter{Limit: 20, HideSoldOut: true}).
		Return(expected, nil)

	products, err := svc.List(ctx, usecase.ListProductsInput{Limit: 20, HideSoldOut: true})

	require.NoError(t, err)
	assert.Equal(t, expected, products)
}

func TestProductService_Get_NotFound(t *testing.T) {
	svc, repo := createTestProductService(t)
	ctx := context.Background()

	repo.On("FindByID", ctx, "missing").Return(nil, repository.ErrProductNotFound)

	product, err := svc.Get(ctx, "missing")

	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_Create(t *testing.T) {
	svc, repo := createTestProductService(t)
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Product).ID = "64f000000000000000000002"
		}).
		Return(nil)

	product, err := svc.Create(ctx, &usecase.ProductForm{Name: "Widget", Price: 9.5, Stock: 40})

	require.NoError(t, err)
	assert.Equal(t, "64f000000000000000000002", product.ID)
	assert.Equal(t, 40, product.Stock)
}

func TestProductService_Delete_NotFound(t *testing.T) {
	svc, repo := createTestProductService(t)
	ctx := context.Background()

	repo.On("Delete", ctx, "missing").Return(repository.ErrProductNotFound)

	err := svc.Delete(ctx, "missing")

	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}
