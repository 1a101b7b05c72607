// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserFilter enumerates the user fields that support equality filtering.
// A nil field is not applied. Keeping the set closed means unknown filter
// keys are rejected at the HTTP boundary instead of being silently dropped.
type UserFilter struct {
	Username    *string
	Email       *string
	Description *string
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	// Returns ErrUserNotFound when no row matches.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByFilter returns one page of users matching the filter plus the
	// total count computed against the same predicate, so callers can build
	// reliable pagination. limit is the page size, page the zero-based index.
	FindByFilter(ctx context.Context, filter UserFilter, limit, page int) ([]*entity.User, int64, error)

	// Create persists a new user entity and back-fills the generated ID and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// Update saves the full user entity and back-fills the refreshed UpdatedAt.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user by ID. Deleting an absent ID is a no-op.
	// A user with remaining addresses or orders fails the store's
	// restrict-delete constraint.
	Delete(ctx context.Context, id uuid.UUID) error
}
