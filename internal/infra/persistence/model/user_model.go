// Package model contains the GORM-specific persistence structs.
// They mirror database tables and stay out of the domain layer; repositories
// map between them and the pure entities.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username    string    `gorm:"type:varchar(100);unique;not null"`
	Email       string    `gorm:"type:varchar(255);unique;not null"`
	Description string    `gorm:"type:text;default:'N/A'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Dependents are referenced by FK only; RESTRICT blocks deleting a user
	// that still owns addresses or orders.
	Addresses []*AddressModel `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	Orders    []*OrderModel   `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate generates the UUID primary key when the caller did not set one.
func (m *UserModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
