package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order is a purchase placed by a User, shipped to one of that user's
// Addresses. Products hold the associated catalog items loaded through the
// join table; the slice is populated on reads and ignored on writes, where
// join rows are managed explicitly inside the creation transaction.
type Order struct {
	ID        uuid.UUID  // The Global Unique Identifier (GUID) for the order.
	UserID    uuid.UUID  // The ordering user; must reference an existing User.
	AddressID uuid.UUID  // The shipping address; must belong to the ordering user.
	Products  []*Product // Associated products, preloaded on reads.
	CreatedAt time.Time  // Timestamp of when this order was placed.
	UpdatedAt time.Time  // Timestamp of the last modification.
}
