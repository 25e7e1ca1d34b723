package impl

import (
	"context"
	"time"

	"farmkitchen/internal/domain/entity"
	domainerrors "farmkitchen/internal/domain/errors"
	"farmkitchen/internal/domain/repository"
	"farmkitchen/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	productRepo repository.ProductRepository
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUseCase {
	return &catalogService{
		productRepo: params.ProductRepo,
	}
}

func (s *catalogService) List(ctx context.Context, filter *repository.ProductFilter) ([]*entity.Product, error) {
	products, err := s.productRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (s *catalogService) Get(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return product, nil
}

func (s *catalogService) Create(ctx context.Context, farmer *entity.User, input *usecase.CreateProductInput) (*entity.Product, error) {
	location, err := resolveLocation(input.Coordinates, farmer.Location)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		ID:          uuid.New(),
		FarmerID:    farmer.ID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		ImageURL:    input.ImageURL,
		Organic:     input.Organic,
		Location:    location,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	return product, nil
}

func (s *catalogService) Update(ctx context.Context, caller *entity.User, productID uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := s.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.FarmerID != caller.ID {
		return nil, domainerrors.ErrForbidden.WithDetails("Access denied")
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		if *input.Price <= 0 {
			return nil, domainerrors.ErrInvalidInput.WithDetails("Price must be greater than zero")
		}
		product.Price = *input.Price
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, domainerrors.ErrInvalidInput.WithDetails("Stock cannot be negative")
		}
		product.Stock = *input.Stock
	}
	if input.ImageURL != nil {
		product.ImageURL = *input.ImageURL
	}
	if input.Organic != nil {
		product.Organic = *input.Organic
	}
	if len(input.Coordinates) != 0 {
		location, err := resolveLocation(input.Coordinates, product.Location)
		if err != nil {
			return nil, err
		}
		product.Location = location
	}
	product.UpdatedAt = time.Now()

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

func (s *catalogService) Delete(ctx context.Context, caller *entity.User, productID uuid.UUID) error {
	product, err := s.Get(ctx, productID)
	if err != nil {
		return err
	}
	if product.FarmerID != caller.ID {
		return domainerrors.ErrForbidden.WithDetails("Access denied")
	}

	if err := s.productRepo.Delete(ctx, productID); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

// resolveLocation prefers explicit coordinates and falls back to the given
// default point.
func resolveLocation(coordinates []float64, fallback orb.Point) (orb.Point, error) {
	if len(coordinates) == 0 {
		return fallback, nil
	}
	if len(coordinates) != 2 {
		return orb.Point{}, domainerrors.ErrInvalidInput.WithDetails("Coordinates must be [longitude, latitude]")
	}

	return orb.Point{coordinates[0], coordinates[1]}, nil
}
