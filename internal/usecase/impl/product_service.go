package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// productService implements the ProductUsecase interface.
type productService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		txManager: txManager,
		logger:    logger,
	}
}

// GetProduct retrieves a single product by ID.
func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProductRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
			}

			return errors.Wrap(err, "failed to find product")
		}
		product = found

		return nil
	})

	if err != nil {
		return nil, err
	}

	return product, nil
}

// ListProducts returns one page of products plus the total count.
func (srv *productService) ListProducts(ctx context.Context, input usecase.ListProductsInput) (*usecase.ProductListOutput, error) {
	var output *usecase.ProductListOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		products, err := productRepo.FindAll(ctx, input.Count, input.Page)
		if err != nil {
			return errors.Wrap(err, "failed to list products")
		}

		total, err := productRepo.Count(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to count products")
		}

		output = &usecase.ProductListOutput{Products: products, Total: total}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return output, nil
}

// CreateProduct persists a new product.
func (srv *productService) CreateProduct(ctx context.Context, input usecase.CreateProductInput) (*entity.Product, error) {
	srv.logger.Debug("Creating product", "name", input.Name)

	product := &entity.Product{
		Name:  input.Name,
		Price: input.Price,
		Count: input.Count,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ProductRepo().Create(ctx, product)
	})

	if err != nil {
		return nil, err
	}

	return product, nil
}

// UpdateProduct applies a partial update and returns the refreshed entity.
func (srv *productService) UpdateProduct(ctx context.Context, id uuid.UUID, input usecase.UpdateProductInput) (*entity.Product, error) {
	srv.logger.Debug("Updating product", "id", id)

	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		found, err := productRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
			}

			return errors.Wrap(err, "failed to find product")
		}

		if input.Name != nil {
			found.Name = *input.Name
		}
		if input.Price != nil {
			found.Price = *input.Price
		}
		if input.Count != nil {
			found.Count = *input.Count
		}

		if err := productRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update product")
		}
		product = found

		return nil
	})

	if err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct removes a product; absent IDs are a no-op.
func (srv *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	srv.logger.Debug("Deleting product", "id", id)

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ProductRepo().Delete(ctx, id)
	})
}
