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

// orderService implements the OrderUsecase interface. Order creation is the
// one genuinely multi-statement workflow in the system: the header insert and
// the join-row inserts share a single transaction, so a failing product
// reference rolls back the header as well and no partially-associated order
// is ever visible to other readers.
type orderService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		txManager: txManager,
		logger:    logger,
	}
}

// GetOrder retrieves a single order with its products.
func (srv *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.OrderRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
			}

			return errors.Wrap(err, "failed to find order")
		}
		order = found

		return nil
	})

	if err != nil {
		return nil, err
	}

	return order, nil
}

// ListOrders returns one page of orders.
func (srv *orderService) ListOrders(ctx context.Context, input usecase.ListOrdersInput) ([]*entity.Order, error) {
	var orders []*entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.OrderRepo().FindAll(ctx, input.Count, input.Page)
		if err != nil {
			return errors.Wrap(err, "failed to list orders")
		}
		orders = found

		return nil
	})

	if err != nil {
		return nil, err
	}

	return orders, nil
}

// ListOrdersByUser returns all orders placed by a user.
func (srv *orderService) ListOrdersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orders []*entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.OrderRepo().FindByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list orders by user")
		}
		orders = found

		return nil
	})

	if err != nil {
		return nil, err
	}

	return orders, nil
}

// CreateOrder places an order atomically: the header insert and one join row
// per product either all commit or all roll back. The shipping address must
// exist and belong to the ordering user. The fully-loaded order (including
// its product associations) is re-read after commit.
func (srv *orderService) CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*entity.Order, error) {
	srv.logger.Debug("Creating order", "userID", input.UserID, "products", len(input.ProductIDs))

	order := &entity.Order{
		UserID:    input.UserID,
		AddressID: input.AddressID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		address, err := repoFactory.AddressRepo().FindByID(ctx, input.AddressID)
		if err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return errors.Wrap(domainerrors.ErrAddressNotFound, "shipping address not found")
			}

			return errors.Wrap(err, "failed to find shipping address")
		}
		if address.UserID != input.UserID {
			return errors.Wrap(domainerrors.ErrAddressOwnership, "shipping address belongs to another user")
		}

		orderRepo := repoFactory.OrderRepo()

		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order header")
		}

		if err := orderRepo.AddProducts(ctx, order.ID, input.ProductIDs); err != nil {
			return errors.Wrap(err, "failed to associate products")
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return srv.GetOrder(ctx, order.ID)
}

// DeleteOrder removes an order and its join rows; absent IDs are a no-op.
func (srv *orderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	srv.logger.Debug("Deleting order", "id", id)

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.OrderRepo().Delete(ctx, id)
	})
}
