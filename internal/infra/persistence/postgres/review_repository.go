package postgres

import (
	"context"

	"farmkitchen/internal/domain/entity"
	domainerrors "farmkitchen/internal/domain/errors"
	"farmkitchen/internal/domain/repository"
	"farmkitchen/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// FindByProductAndConsumer retrieves the single review a consumer left on a product.
func (repo *reviewRepository) FindByProductAndConsumer(ctx context.Context, productID, consumerID uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("product_id = ? AND consumer_id = ?", productID, consumerID).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by product and consumer")
	}

	return toReviewDomain(&reviewM), nil
}

// Create persists a new review.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := &model.ReviewModel{
		ID:         review.ID,
		ProductID:  review.ProductID,
		ConsumerID: review.ConsumerID,
		Rating:     review.Rating,
		Comment:    review.Comment,
		CreatedAt:  review.CreatedAt,
		UpdatedAt:  review.UpdatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		// Concurrent first submissions can race on the (product, consumer) index.
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "review already exists for this product")
		}

		return errors.Wrap(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// Update overwrites the rating and comment of an existing review.
func (repo *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ?", review.ID).
		Updates(map[string]any{
			"rating":  review.Rating,
			"comment": review.Comment,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// ListByProduct retrieves a product's reviews newest-first with the reviewer
// name expanded.
func (repo *reviewRepository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Preload("Consumer").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews by product")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

func toReviewDomain(reviewM *model.ReviewModel) *entity.Review {
	review := &entity.Review{
		ID:         reviewM.ID,
		ProductID:  reviewM.ProductID,
		ConsumerID: reviewM.ConsumerID,
		Rating:     reviewM.Rating,
		Comment:    reviewM.Comment,
		CreatedAt:  reviewM.CreatedAt,
		UpdatedAt:  reviewM.UpdatedAt,
	}
	if reviewM.Consumer != nil {
		review.ReviewerName = reviewM.Consumer.Name
	}

	return review
}
