// Package model contains the GORM-specific structs that map to database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM-specific struct for the 'users' table.
// Coordinates are stored as plain lon/lat columns; the origin means "unset".
type UserModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FirebaseUID string    `gorm:"type:varchar(128);uniqueIndex;not null"`
	Email       string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Role        string    `gorm:"type:varchar(16);not null;default:'consumer';index"`
	Address     string    `gorm:"type:text"`
	Avatar      string    `gorm:"type:text"`
	Longitude   float64   `gorm:"type:double precision;not null;default:0"`
	Latitude    float64   `gorm:"type:double precision;not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
