// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAddressNotFound is returned when an address is not found.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the interface for address-related database operations.
type AddressRepository interface {
	// FindByID retrieves an address by its unique ID.
	// Returns ErrAddressNotFound when no row matches.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// FindAll returns one page of addresses, at most limit rows at offset limit*page.
	FindAll(ctx context.Context, limit, page int) ([]*entity.Address, error)

	// FindByUser retrieves all addresses owned by a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)

	// Create persists a new address and back-fills the generated ID and timestamps.
	Create(ctx context.Context, address *entity.Address) error

	// Update saves the full address entity and back-fills the refreshed UpdatedAt.
	Update(ctx context.Context, address *entity.Address) error

	// Delete removes an address by ID. Deleting an absent ID is a no-op.
	Delete(ctx context.Context, id uuid.UUID) error
}
