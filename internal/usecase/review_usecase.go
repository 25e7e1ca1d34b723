package usecase

import (
	"context"

	"github.com/google/uuid"

	"farmkitchen/internal/domain/entity"
)

// SubmitReviewInput carries a rating and optional comment.
type SubmitReviewInput struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// ReviewUseCase manages product reviews. A consumer holds at most one review
// per product; submitting again overwrites the previous one.
type ReviewUseCase interface {
	// Submit records or overwrites the consumer's review. The boolean
	// reports whether a new review was created rather than updated.
	Submit(ctx context.Context, consumer *entity.User, productID uuid.UUID, input *SubmitReviewInput) (*entity.Review, bool, error)

	// ListByProduct returns the product's reviews, newest first, with the
	// reviewer's display name attached.
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error)
}
