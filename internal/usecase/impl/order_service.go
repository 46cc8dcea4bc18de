package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "salesapi/internal/delivery/context"
	"salesapi/internal/domain/entity"
	domainerrors "salesapi/internal/domain/errors"
	"salesapi/internal/domain/repository"
	"salesapi/internal/domain/service"
	"salesapi/internal/usecase"
)

// orderService implements the OrderUsecase interface. It carries the
// inventory transition logic: per-line-item stock updates are issued
// independently and best-effort, matching the store's non-transactional
// document model.
type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo   repository.OrderRepository
	ProductRepo repository.ProductRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:   params.OrderRepo,
		productRepo: params.ProductRepo,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListByCustomer retrieves all orders placed by one customer.
func (srv *orderService) ListByCustomer(ctx context.Context, customerID string) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindByCustomer(ctx, customerID)

	return orders, errors.Wrap(err, "failed to list orders")
}

// Create persists a new order. Whatever status the caller submitted, the
// order starts PENDING with a server-side timestamp. Each line item's product
// stock is decremented first; a failed decrement is logged and skipped, it
// neither blocks the order nor rolls back earlier decrements.
func (srv *orderService) Create(ctx context.Context, form *usecase.OrderForm) (*entity.Order, error) {
	order := orderFromForm(form)
	order.Status = entity.StatusPending
	order.CreatedAt = time.Now().UTC()

	for _, item := range order.Items {
		if err := srv.productRepo.AdjustStock(ctx, item.ProductID, -item.Quantity); err != nil {
			srv.log(ctx).Warn("Stock decrement failed",
				slog.String("productID", item.ProductID),
				slog.Int("quantity", item.Quantity),
				slog.Any("error", err),
			)
		}
	}

	if err := srv.orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	srv.publishEvent(ctx, order, "")

	return order, nil
}

// Update applies the submitted fields to the order after applying the stock
// instruction derived from (target status, prior status) to each submitted
// line item. The stored creation timestamp is untouched. The instruction only
// consults the two statuses; if the submitted line items differ from what was
// decremented at creation, stock drifts, exactly as the store-level contract
// allows.
func (srv *orderService) Update(ctx context.Context, form *usecase.OrderForm, priorStatus string) (*entity.Order, error) {
	target, err := entity.ParseOrderStatus(form.Status)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}
	prior, err := entity.ParseOrderStatus(priorStatus)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	order := orderFromForm(form)
	order.Status = target

	for _, item := range order.Items {
		delta := entity.StockDelta(target, prior, item.Quantity)
		if delta == 0 {
			continue
		}
		if err := srv.productRepo.AdjustStock(ctx, item.ProductID, delta); err != nil {
			srv.log(ctx).Warn("Stock adjustment failed",
				slog.String("productID", item.ProductID),
				slog.Int("delta", delta),
				slog.Any("error", err),
			)
		}
	}

	if err := srv.orderRepo.Update(ctx, order); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("order " + form.ID)
		}

		return nil, errors.Wrap(err, "failed to update order")
	}

	srv.publishEvent(ctx, order, string(prior))

	return order, nil
}

// TopCustomers returns the customer revenue leaderboard.
func (srv *orderService) TopCustomers(ctx context.Context) ([]*repository.LeaderboardEntry, error) {
	entries, err := srv.orderRepo.TopCustomers(ctx)

	return entries, errors.Wrap(err, "failed to rank customers")
}

// TopSalespeople returns the salesperson revenue leaderboard.
func (srv *orderService) TopSalespeople(ctx context.Context) ([]*repository.LeaderboardEntry, error) {
	entries, err := srv.orderRepo.TopSalespeople(ctx)

	return entries, errors.Wrap(err, "failed to rank salespeople")
}

// publishEvent emits an order lifecycle event best-effort; a publish failure
// never fails the enclosing mutation.
func (srv *orderService) publishEvent(ctx context.Context, order *entity.Order, priorStatus string) {
	event := &service.OrderEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:       order.ID,
		CustomerID:    order.CustomerID,
		SalespersonID: order.SalespersonID,
		Status:        string(order.Status),
		PriorStatus:   priorStatus,
		Total:         order.Total,
		OccurredAt:    time.Now().UTC(),
	}
	for _, item := range order.Items {
		event.Items = append(event.Items, service.OrderEventItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Order event publish failed",
			slog.String("orderID", order.ID),
			slog.Any("error", err),
		)
	}
}

func orderFromForm(form *usecase.OrderForm) *entity.Order {
	order := &entity.Order{
		ID:            form.ID,
		Total:         form.Total,
		CustomerID:    form.CustomerID,
		SalespersonID: form.SalespersonID,
		Status:        entity.OrderStatus(form.Status),
	}
	for _, item := range form.Items {
		order.Items = append(order.Items, entity.LineItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return order
}
