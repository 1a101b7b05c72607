package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAddressInput defines the data required to create a new address.
// State and ZipCode fall back to their defaults when omitted.
type CreateAddressInput struct {
	UserID    uuid.UUID `json:"user_id" validate:"required"`
	Street    string    `json:"street" validate:"required"`
	City      string    `json:"city" validate:"required"`
	State     string    `json:"state"`
	ZipCode   int       `json:"zip_code"`
	Country   string    `json:"country" validate:"required"`
	IsPrimary bool      `json:"is_primary"`
}

// UpdateAddressInput carries a partial update; only non-nil fields are applied.
type UpdateAddressInput struct {
	Street    *string `json:"street" validate:"omitempty,min=1"`
	City      *string `json:"city" validate:"omitempty,min=1"`
	State     *string `json:"state"`
	ZipCode   *int    `json:"zip_code"`
	Country   *string `json:"country" validate:"omitempty,min=1"`
	IsPrimary *bool   `json:"is_primary"`
}

// ListAddressesInput defines pagination for the address listing.
type ListAddressesInput struct {
	Count int `query:"count" validate:"gt=0"`
	Page  int `query:"page" validate:"gte=0"`
}

// AddressUsecase defines the interface for address-related operations.
type AddressUsecase interface {
	GetAddress(ctx context.Context, id uuid.UUID) (*entity.Address, error)
	ListAddresses(ctx context.Context, input ListAddressesInput) ([]*entity.Address, error)
	ListAddressesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)
	CreateAddress(ctx context.Context, input CreateAddressInput) (*entity.Address, error)
	UpdateAddress(ctx context.Context, id uuid.UUID, input UpdateAddressInput) (*entity.Address, error)
	DeleteAddress(ctx context.Context, id uuid.UUID) error
}
