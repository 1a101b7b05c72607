package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog item that orders reference through the join table.
type Product struct {
	ID        uuid.UUID       // The Global Unique Identifier (GUID) for the product.
	Name      string          // Display name, required.
	Price     decimal.Decimal // Unit price; decimal to avoid float rounding on money.
	Count     int             // Inventory quantity; defaults to 0.
	CreatedAt time.Time       // Timestamp of when this product was created.
	UpdatedAt time.Time       // Timestamp of the last modification.
}
