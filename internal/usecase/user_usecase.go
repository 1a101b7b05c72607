// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateUserInput defines the data required to create a new user.
type CreateUserInput struct {
	Username    string `json:"username" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Description string `json:"description"`
}

// UpdateUserInput carries a partial update: only non-nil fields are applied,
// absent fields are left untouched.
type UpdateUserInput struct {
	Username    *string `json:"username" validate:"omitempty,min=1"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Description *string `json:"description"`
}

// ListUsersInput defines pagination plus the enumerated equality filters.
// Count is the page size, Page the zero-based page index.
type ListUsersInput struct {
	Count       int     `query:"count" validate:"gt=0"`
	Page        int     `query:"page" validate:"gte=0"`
	Username    *string `query:"username"`
	Email       *string `query:"email"`
	Description *string `query:"description"`
}

// --- Output DTOs ---

// UserListOutput returns one page of users and the total count matching the
// same filter, so clients can derive the number of pages.
type UserListOutput struct {
	Users []*entity.User
	Total int64
}

// UserUsecase defines the interface for user-related operations.
// This is the contract that the delivery layer (HTTP handlers) will depend on.
type UserUsecase interface {
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	ListUsers(ctx context.Context, input ListUsersInput) (*UserListOutput, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*entity.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
