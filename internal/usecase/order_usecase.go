package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateOrderInput defines the data required to place an order.
// ProductIDs may be empty; the order is then created without join rows.
type CreateOrderInput struct {
	UserID     uuid.UUID   `json:"user_id" validate:"required"`
	AddressID  uuid.UUID   `json:"address_id" validate:"required"`
	ProductIDs []uuid.UUID `json:"product_ids"`
}

// ListOrdersInput defines pagination for the order listing.
type ListOrdersInput struct {
	Count int `query:"count" validate:"gt=0"`
	Page  int `query:"page" validate:"gte=0"`
}

// OrderUsecase defines the interface for order-related operations.
// Orders are immutable once placed; there is no update operation.
type OrderUsecase interface {
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	ListOrders(ctx context.Context, input ListOrdersInput) ([]*entity.Order, error)
	ListOrdersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	CreateOrder(ctx context.Context, input CreateOrderInput) (*entity.Order, error)
	DeleteOrder(ctx context.Context, id uuid.UUID) error
}
