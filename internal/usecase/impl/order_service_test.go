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
	"salesapi/internal/domain/service"
	mockRepo "salesapi/internal/mocks/repository"
	mockSvc "salesapi/internal/mocks/service"
	"salesapi/internal/usecase"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service     usecase.OrderUsecase
	orderRepo   *mockRepo.MockOrderRepository
	productRepo *mockRepo.MockProductRepository
	publisher   *mockSvc.MockEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewOrderService(OrderServiceParams{
		OrderRepo:   orderRepo,
		ProductRepo: productRepo,
		Publisher:   publisher,
		Logger:      newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:     svc,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		publisher:   publisher,
	}
}

func newOrderForm() *usecase.OrderForm {
	return &usecase.OrderForm{
		Items: []usecase.OrderLineInput{
			{ProductID: "prod-1", Quantity: 2},
			{ProductID: "prod-2", Quantity: 1},
		},
		Total:         150,
		CustomerID:    "cust-1",
		SalespersonID: "sales-1",
	}
}

func TestOrderService_Create_ForcesPendingAndDecrementsStock(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	form := newOrderForm()
	form.Status = "COMPLETED" // Submitted status must be ignored

	fx.productRepo.On("AdjustStock", ctx, "prod-1", -2).Return(nil)
	fx.productRepo.On("AdjustStock", ctx, "prod-2", -1).Return(nil)
	fx.orderRepo.On("Create", ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(args mock.Arguments) {
			order := args.Get(1).(*entity.Order)
			order.ID = "64f000000000000000000010"
		}).
		Return(nil)
	fx.publisher.On("PublishOrderEvent", ctx, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	order, err := fx.service.Create(ctx, form)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, order.Status)
	assert.False(t, order.CreatedAt.IsZero())
	assert.Equal(t, "64f000000000000000000010", order.ID)
}

func TestOrderService_Create_StockFailureIsSwallowed(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.productRepo.On("AdjustStock", ctx, "prod-1", -2).Return(errors.New("store down"))
	fx.productRepo.On("AdjustStock", ctx, "prod-2", -1).Return(nil)
	fx.orderRepo.On("Create", ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.publisher.On("PublishOrderEvent", ctx, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	order, err := fx.service.Create(ctx, newOrderForm())

	// A failed decrement neither blocks the order nor rolls anything back.
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, order.Status)
}

func TestOrderService_Create_PublishFailureIsSwallowed(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.productRepo.On("AdjustStock", ctx, "prod-1", -2).Return(nil)
	fx.productRepo.On("AdjustStock", ctx, "prod-2", -1).Return(nil)
	fx.orderRepo.On("Create", ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.publisher.On("PublishOrderEvent", ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(errors.New("broker unreachable"))

	_, err := fx.service.Create(ctx, newOrderForm())

	assert.NoError(t, err)
}

func TestOrderService_Update_CompletingPendingLeavesStockAlone(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	form := newOrderForm()
	form.ID = "64f000000000000000000010"
	form.Status = "COMPLETED"

	// Delta is zero for every item, so AdjustStock must never be called.
	fx.orderRepo.On("Update", ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.publisher.On("PublishOrderEvent", ctx, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	order, err := fx.service.Update(ctx, form, "PENDING")

	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, order.Status)
	fx.productRepo.AssertNotCalled(t, "AdjustStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_Update_CancellingRestoresStock(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	form := newOrderForm()
	form.ID = "64f000000000000000000010"
	form.Status = "CANCELLED"

	fx.productRepo.On("AdjustStock", ctx, "prod-1", 2).Return(nil)
	fx.productRepo.On("AdjustStock", ctx, "prod-2", 1).Return(nil)
	fx.orderRepo.On("Update", ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.publisher.On("PublishOrderEvent", ctx, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	order, err := fx.service.Update(ctx, form, "PENDING")

	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, order.Status)
}

func TestOrderService_Update_CompletingCancelledDecrementsAgain(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	form := newOrderForm()
	form.ID = "64f000000000000000000010"
	form.Status = "COMPLETED"

	fx.productRepo.On("AdjustStock", ctx, "prod-1", -2).Return(nil)
	fx.productRepo.On("AdjustStock", ctx, "prod-2", -1).Return(nil)
	fx.orderRepo.On("Update", ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.publisher.On("PublishOrderEvent", ctx, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	_, err := fx.service.Update(ctx, form, "CANCELLED")

	assert.NoError(t, err)
}

func TestOrderService_Update_RejectsUnknownStatus(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	form := newOrderForm()
	form.Status = "SHIPPED"

	_, err := fx.service.Update(ctx, form, "PENDING")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	form.Status = "COMPLETED"
	_, err = fx.service.Update(ctx, form, "bogus")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_Update_OrderNotFound(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	form := newOrderForm()
	form.ID = "64f000000000000000000099"
	form.Status = "COMPLETED"

	fx.orderRepo.On("Update", ctx, mock.AnythingOfType("*entity.Order")).
		Return(repository.ErrOrderNotFound)

	_, err := fx.service.Update(ctx, form, "PENDING")

	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_Update_PublishCarriesPriorStatus(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	form := newOrderForm()
	form.ID = "64f000000000000000000010"
	form.Status = "CANCELLED"

	fx.productRepo.On("AdjustStock", ctx, mock.Anything, mock.Anything).Return(nil)
	fx.orderRepo.On("Update", ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

	var published *service.OrderEvent
	fx.publisher.On("PublishOrderEvent", ctx, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(args mock.Arguments) {
			published = args.Get(1).(*service.OrderEvent)
		}).
		Return(nil)

	_, err := fx.service.Update(ctx, form, "COMPLETED")

	require.NoError(t, err)
	require.NotNil(t, published)
	assert.Equal(t, "CANCELLED", published.Status)
	assert.Equal(t, "COMPLETED", published.PriorStatus)
	assert.Len(t, published.Items, 2)
}

func TestOrderService_TopCustomers(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	entries := []*repository.LeaderboardEntry{
		{RefID: "cust-1", Name: "Acme", Total: 900},
		{RefID: "cust-2", Name: "Globex", Total: 450},
	}
	fx.orderRepo.On("TopCustomers", ctx).Return(entries, nil)

	got, err := fx.service.TopCustomers(ctx)

	require.NoError(t, err)
	assert.Equal(t, entries, got)
}
