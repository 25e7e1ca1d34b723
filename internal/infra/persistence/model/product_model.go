package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel is the GORM-specific struct for the 'products' table.
// Stock carries a non-negative check; decrements happen through a guarded
// UPDATE so the constraint is never hit under normal operation.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FarmerID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null;index"`
	Description string    `gorm:"type:text"`
	Price       float64   `gorm:"type:decimal(12,2);not null"`
	Stock       int       `gorm:"not null;default:0;check:stock >= 0"`
	ImageURL    string    `gorm:"type:text"`
	Organic     bool      `gorm:"not null;default:false"`
	Longitude   float64   `gorm:"type:double precision;not null;default:0"`
	Latitude    float64   `gorm:"type:double precision;not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Farmer *UserModel `gorm:"foreignKey:FarmerID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
