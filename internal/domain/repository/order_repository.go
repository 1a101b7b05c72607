// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order-related database operations.
//
// Creating an order with products is a multi-statement workflow: Create
// inserts the header only and makes the generated ID available, AddProducts
// then writes one join row per product. Callers that need the two to be
// atomic must run both through a TransactionManager.
type OrderRepository interface {
	// FindByID retrieves an order by its unique ID, with its associated
	// products loaded. Returns ErrOrderNotFound when no row matches.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindAll returns one page of orders, at most limit rows at offset limit*page.
	// Associated products are loaded for each order.
	FindAll(ctx context.Context, limit, page int) ([]*entity.Order, error)

	// FindByUser retrieves all orders placed by a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// Create inserts the order header only (no join rows) and back-fills the
	// generated ID and timestamps.
	Create(ctx context.Context, order *entity.Order) error

	// AddProducts inserts one order_products join row per product ID.
	// A product ID that does not exist fails with a foreign-key violation;
	// a duplicate ID in the list fails the join table's composite key.
	AddProducts(ctx context.Context, orderID uuid.UUID, productIDs []uuid.UUID) error

	// Delete removes an order by ID together with its join rows.
	// Deleting an absent ID is a no-op.
	Delete(ctx context.Context, id uuid.UUID) error
}
