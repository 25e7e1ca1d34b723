package repository

import (
	"context"
	"errors"

	"farmkitchen/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReviewNotFound is a domain-specific error returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines the standard operations for review persistence.
type ReviewRepository interface {
	// FindByProductAndConsumer retrieves the single review a consumer left on
	// a product, if any.
	FindByProductAndConsumer(ctx context.Context, productID, consumerID uuid.UUID) (*entity.Review, error)

	// Create persists a new review.
	Create(ctx context.Context, review *entity.Review) error

	// Update overwrites the rating and comment of an existing review.
	Update(ctx context.Context, review *entity.Review) error

	// ListByProduct retrieves a product's reviews newest-first with the
	// reviewer name expanded.
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error)
}
