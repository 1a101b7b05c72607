// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultState is the sentinel stored when an address gives no state/region.
const DefaultState = "N/A"

// Address is a shipping location belonging to exactly one User.
type Address struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the address.
	UserID    uuid.UUID // The owning user; must reference an existing User.
	Street    string    // Street line, required.
	City      string    // City, required.
	State     string    // State/region; defaults to DefaultState.
	ZipCode   int       // Postal code; defaults to 0 when not provided.
	Country   string    // Country, required.
	IsPrimary bool      // Marks the user's primary shipping address.
	CreatedAt time.Time // Timestamp of when this address was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}
