package impl

import (
	"context"
	"time"

	"farmkitchen/internal/domain/entity"
	domainerrors "farmkitchen/internal/domain/errors"
	"farmkitchen/internal/domain/repository"
	"farmkitchen/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo  repository.ReviewRepository
	ProductRepo repository.ProductRepository
}

// NewReviewService creates a new review service instance
func NewReviewService(params ReviewServiceParams) usecase.ReviewUseCase {
	return &reviewService{
		reviewRepo:  params.ReviewRepo,
		productRepo: params.ProductRepo,
	}
}

// Submit records a rating, overwriting the consumer's previous review of the
// same product if one exists.
func (s *reviewService) Submit(ctx context.Context, consumer *entity.User, productID uuid.UUID, input *usecase.SubmitReviewInput) (*entity.Review, bool, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, false, domainerrors.ErrInvalidInput.WithDetails("Rating must be between 1 and 5")
	}

	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, false, domainerrors.ErrProductNotFound
		}

		return nil, false, errors.Wrap(err, "failed to find product by id")
	}

	existing, err := s.reviewRepo.FindByProductAndConsumer(ctx, productID, consumer.ID)
	if err != nil && !errors.Is(err, repository.ErrReviewNotFound) {
		return nil, false, errors.Wrap(err, "failed to find review by product and consumer")
	}

	if existing != nil {
		existing.Rating = input.Rating
		existing.Comment = input.Comment
		existing.UpdatedAt = time.Now()
		if err := s.reviewRepo.Update(ctx, existing); err != nil {
			return nil, false, errors.Wrap(err, "failed to update review")
		}
		existing.ReviewerName = consumer.Name

		return existing, false, nil
	}

	review := &entity.Review{
		ID:         uuid.New(),
		ProductID:  productID,
		ConsumerID: consumer.ID,
		Rating:     input.Rating,
		Comment:    input.Comment,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, false, errors.Wrap(err, "failed to create review")
	}
	review.ReviewerName = consumer.Name

	return review, true, nil
}

func (s *reviewService) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error) {
	reviews, err := s.reviewRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews by product")
	}

	return reviews, nil
}
