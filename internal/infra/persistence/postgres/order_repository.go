// Package postgres contains the concrete implementation of the persistence layer using GORM.
package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderRepository implements the domain.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// FindByID retrieves an order with its associated products preloaded.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Products").
		Where("id = ?", id).
		First(&orderM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// FindAll returns one page of orders with their products preloaded.
func (repo *orderRepository) FindAll(ctx context.Context, limit, page int) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Products").
		Offset(limit * page).
		Limit(limit).
		Find(&orderModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// FindByUser retrieves all orders placed by a user.
func (repo *orderRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Products").
		Where("user_id = ?", userID).
		Find(&orderModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// Create inserts the order header only. Associations are omitted so the
// caller controls join-row writes; the generated ID is back-filled and
// usable for AddProducts within the same transaction.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(orderM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrConstraintViolation.WrapMessage("order references a nonexistent user or address")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// AddProducts inserts one join row per product ID. Nonexistent product IDs
// surface as FK violations, duplicates as unique violations on the composite
// key; either way the caller's transaction must roll back the header too.
func (repo *orderRepository) AddProducts(ctx context.Context, orderID uuid.UUID, productIDs []uuid.UUID) error {
	for _, productID := range productIDs {
		join := &model.OrderProductModel{
			OrderID:   orderID,
			ProductID: productID,
		}

		if err := repo.db.WithContext(ctx).Create(join).Error; err != nil {
			if isForeignKeyConstraintViolation(err) {
				return domainerrors.ErrConstraintViolation.WrapMessage("order references a nonexistent product")
			}
			if isUniqueConstraintViolation(err) {
				return domainerrors.ErrConstraintViolation.WrapMessage("duplicate product in order")
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to add product to order")
		}
	}

	return nil
}

// Delete removes an order by ID; join rows go with it via ON DELETE CASCADE.
// An absent ID is a no-op.
func (repo *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OrderModel{}).Error

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete order")
	}

	return nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	products := make([]*entity.Product, 0, len(data.Products))
	for _, productM := range data.Products {
		products = append(products, toProductDomain(productM))
	}

	return &entity.Order{
		ID:        data.ID,
		UserID:    data.UserID,
		AddressID: data.AddressID,
		Products:  products,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
// Products are intentionally not mapped; join rows are managed explicitly.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:        data.ID,
		UserID:    data.UserID,
		AddressID: data.AddressID,
	}
}
