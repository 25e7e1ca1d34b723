package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a single rating for a product. At most one review exists per
// (product, consumer) pair; resubmission overwrites rating and comment.
type Review struct {
	ID         uuid.UUID
	ProductID  uuid.UUID
	ConsumerID uuid.UUID
	Rating     int // 1 to 5 inclusive.
	Comment    string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	ReviewerName string // Expanded from the consumer account for public listings.
}
