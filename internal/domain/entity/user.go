// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultDescription is the sentinel stored when a user gives no description.
const DefaultDescription = "N/A"

// User is the root entity of the system, representing a registered account.
// Addresses and Orders reference a User by foreign key; they are stored and
// deleted independently, never embedded here.
type User struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Username    string    // Unique login/display name, required.
	Email       string    // Unique contact email, required.
	Description string    // Free-form profile text; defaults to DefaultDescription.
	CreatedAt   time.Time // Timestamp of when this account was created. Immutable after insert.
	UpdatedAt   time.Time // Timestamp of the last modification to this user's data.
}
