// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "salesapi/internal/delivery/context"
	"salesapi/internal/domain/entity"
	domainerrors "salesapi/internal/domain/errors"
	"salesapi/internal/domain/repository"
	"salesapi/internal/usecase"
)

// customerService implements the CustomerUsecase interface.
type customerService struct {
	customerRepo repository.CustomerRepository
	logger       *slog.Logger
}

// CustomerServiceParams holds dependencies for customerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	CustomerRepo repository.CustomerRepository
	Logger       *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	return &customerService{
		customerRepo: params.CustomerRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *customerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List retrieves a page of customers, optionally restricted to one salesperson.
func (srv *customerService) List(ctx context.Context, input usecase.ListCustomersInput) ([]*entity.Customer, error) {
	customers, err := srv.customerRepo.Find(ctx, repository.CustomerFilter{
		Limit:         input.Limit,
		Offset:        input.Offset,
		SalespersonID: input.SalespersonID,
	})

	return customers, errors.Wrap(err, "failed to list customers")
}

// Get retrieves a single customer.
func (srv *customerService) Get(ctx context.Context, id string) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrCustomerNotFound) {
		return nil, domainerrors.ErrCustomerNotFound.WrapMessage("customer " + id)
	}

	return customer, errors.Wrap(err, "failed to get customer")
}

// Count returns the number of customers, optionally per salesperson.
func (srv *customerService) Count(ctx context.Context, salespersonID string) (int64, error) {
	count, err := srv.customerRepo.Count(ctx, salespersonID)

	return count, errors.Wrap(err, "failed to count customers")
}

// Create persists a new customer and assigns its generated id.
func (srv *customerService) Create(ctx context.Context, form *usecase.CustomerForm) (*entity.Customer, error) {
	customer := customerFromForm(form)
	if err := srv.customerRepo.Create(ctx, customer); err != nil {
		return nil, errors.Wrap(err, "failed to create customer")
	}

	srv.log(ctx).Debug("Customer created", slog.String("customerID", customer.ID))

	return customer, nil
}

// Update overwrites an existing customer with the submitted fields.
func (srv *customerService) Update(ctx context.Context, form *usecase.CustomerForm) (*entity.Customer, error) {
	customer := customerFromForm(form)
	if err := srv.customerRepo.Update(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound.WrapMessage("customer " + form.ID)
		}

		return nil, errors.Wrap(err, "failed to update customer")
	}

	return customer, nil
}

// Delete removes a customer. Its orders are intentionally left in place.
func (srv *customerService) Delete(ctx context.Context, id string) error {
	if err := srv.customerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return domainerrors.ErrCustomerNotFound.WrapMessage("customer " + id)
		}

		return errors.Wrap(err, "failed to delete customer")
	}

	srv.log(ctx).Debug("Customer deleted", slog.String("customerID", id))

	return nil
}

func customerFromForm(form *usecase.CustomerForm) *entity.Customer {
	return &entity.Customer{
		ID:            form.ID,
		Name:          form.Name,
		Surname:       form.Surname,
		Company:       form.Company,
		Emails:        form.Emails,
		Age:           form.Age,
		Category:      form.Category,
		Orders:        form.Orders,
		SalespersonID: form.SalespersonID,
	}
}
