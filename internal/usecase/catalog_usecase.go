package usecase

import (
	"context"

	"github.com/google/uuid"

	"farmkitchen/internal/domain/entity"
	"farmkitchen/internal/domain/repository"
)

// CreateProductInput carries a new listing. Coordinates are optional; when
// absent the listing inherits the farmer's stored location.
type CreateProductInput struct {
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
	Price       float64   `json:"price" validate:"required,gt=0"`
	Stock       int       `json:"stock" validate:"gte=0"`
	ImageURL    string    `json:"imageUrl"`
	Organic     bool      `json:"organic"`
	Coordinates []float64 `json:"coordinates"` // [longitude, latitude]
}

// UpdateProductInput carries a partial listing update. Nil pointers leave the
// stored value untouched.
type UpdateProductInput struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	Stock       *int      `json:"stock"`
	ImageURL    *string   `json:"imageUrl"`
	Organic     *bool     `json:"organic"`
	Coordinates []float64 `json:"coordinates"`
}

// CatalogUseCase manages the public product catalog and farmer-owned
// listings. Mutations enforce that the caller owns the listing.
type CatalogUseCase interface {
	List(ctx context.Context, filter *repository.ProductFilter) ([]*entity.Product, error)
	Get(ctx context.Context, productID uuid.UUID) (*entity.Product, error)
	Create(ctx context.Context, farmer *entity.User, input *CreateProductInput) (*entity.Product, error)
	Update(ctx context.Context, caller *entity.User, productID uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	Delete(ctx context.Context, caller *entity.User, productID uuid.UUID) error
}
