// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	// FindByID retrieves a product by its unique ID.
	// Returns ErrProductNotFound when no row matches.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindAll returns one page of products, at most limit rows at offset limit*page.
	FindAll(ctx context.Context, limit, page int) ([]*entity.Product, error)

	// Count returns the total number of products, for pagination totals.
	Count(ctx context.Context) (int64, error)

	// Create persists a new product and back-fills the generated ID and timestamps.
	Create(ctx context.Context, product *entity.Product) error

	// Update saves the full product entity and back-fills the refreshed UpdatedAt.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product by ID. Deleting an absent ID is a no-op.
	// A product still referenced by an order fails the store's
	// restrict-delete constraint.
	Delete(ctx context.Context, id uuid.UUID) error
}
