package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel is the GORM-specific struct for the 'reviews' table.
// The (product, consumer) pair is unique; resubmission updates in place.
type ReviewModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_product_consumer"`
	ConsumerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_product_consumer"`
	Rating     int       `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment    string    `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Consumer *UserModel `gorm:"foreignKey:ConsumerID"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
