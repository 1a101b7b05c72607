package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductInput defines the data required to create a new product.
type CreateProductInput struct {
	Name  string          `json:"name" validate:"required"`
	Price decimal.Decimal `json:"price" validate:"required"`
	Count int             `json:"count" validate:"gte=0"`
}

// UpdateProductInput carries a partial update; only non-nil fields are applied.
type UpdateProductInput struct {
	Name  *string          `json:"name" validate:"omitempty,min=1"`
	Price *decimal.Decimal `json:"price"`
	Count *int             `json:"count" validate:"omitempty,gte=0"`
}

// ListProductsInput defines pagination for the product listing.
type ListProductsInput struct {
	Count int `query:"count" validate:"gt=0"`
	Page  int `query:"page" validate:"gte=0"`
}

// ProductListOutput returns one page of products and the total count.
type ProductListOutput struct {
	Products []*entity.Product
	Total    int64
}

// ProductUsecase defines the interface for product-related operations.
type ProductUsecase interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	ListProducts(ctx context.Context, input ListProductsInput) (*ProductListOutput, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
