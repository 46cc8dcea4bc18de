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

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List retrieves a page of products; sold-out items can be hidden.
func (srv *productService) List(ctx context.Context, input usecase.ListProductsInput) ([]*entity.Product, error) {
	products, err := srv.productRepo.Find(ctx, repository.ProductFilter{
		Limit:       input.Limit,
		Offset:      input.Offset,
		HideSoldOut: input.HideSoldOut,
	})

	return products, errors.Wrap(err, "failed to list products")
}

// Get retrieves a single product.
func (srv *productService) Get(ctx context.Context, id string) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound.WrapMessage("product " + id)
	}

	return product, errors.Wrap(err, "failed to get product")
}

// Count returns the total number of products.
func (srv *productService) Count(ctx context.Context) (int64, error) {
	count, err := srv.productRepo.Count(ctx)

	return count, errors.Wrap(err, "failed to count products")
}

// Create persists a new product and assigns its generated id.
func (srv *productService) Create(ctx context.Context, form *usecase.ProductForm) (*entity.Product, error) {
	product := &entity.Product{
		Name:  form.Name,
		Price: form.Price,
		Stock: form.Stock,
	}
	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Debug("Product created", slog.String("productID", product.ID))

	return product, nil
}

// Update overwrites an existing product with the submitted fields. This is
// the administrative path; order transitions adjust stock through AdjustStock.
func (srv *productService) Update(ctx context.Context, form *usecase.ProductForm) (*entity.Product, error) {
	product := &entity.Product{
		ID:    form.ID,
		Name:  form.Name,
		Price: form.Price,
		Stock: form.Stock,
	}
	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("product " + form.ID)
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// Delete removes a product record.
func (srv *productService) Delete(ctx context.Context, id string) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound.WrapMessage("product " + id)
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Debug("Product deleted", slog.String("productID", id))

	return nil
}
