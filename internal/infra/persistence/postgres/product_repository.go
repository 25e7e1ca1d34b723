package postgres

import (
	"context"

	"farmkitchen/internal/domain/entity"
	"farmkitchen/internal/domain/repository"
	"farmkitchen/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// FindByID retrieves a single listing by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// Create persists a new listing.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		return errors.Wrap(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update modifies an existing listing. The owner is never changed.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":        productM.Name,
			"description": productM.Description,
			"price":       productM.Price,
			"stock":       productM.Stock,
			"image_url":   productM.ImageURL,
			"organic":     productM.Organic,
			"longitude":   productM.Longitude,
			"latitude":    productM.Latitude,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a listing permanently.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// List retrieves listings newest-first, narrowed by the filter.
func (repo *productRepository) List(ctx context.Context, filter *repository.ProductFilter) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if filter != nil {
		if filter.Query != "" {
			query = query.Where("name ILIKE ?", "%"+filter.Query+"%")
		}
		if filter.MinPrice != nil {
			query = query.Where("price >= ?", *filter.MinPrice)
		}
		if filter.MaxPrice != nil {
			query = query.Where("price <= ?", *filter.MaxPrice)
		}
		if filter.Organic != nil {
			query = query.Where("organic = ?", *filter.Organic)
		}
	}

	var productModels []*model.ProductModel
	if err := query.Preload("Farmer").Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// ListPaged retrieves one page of listings newest-first with the owning
// farmer expanded, plus the total match count.
func (repo *productRepository) ListPaged(ctx context.Context, query string, page, limit int) ([]*entity.Product, int64, error) {
	base := repo.db.WithContext(ctx).Model(&model.ProductModel{})
	if query != "" {
		base = base.Where("name ILIKE ?", "%"+query+"%")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	var productModels []*model.ProductModel
	if err := base.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Preload("Farmer").
		Find(&productModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products paged")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, total, nil
}

// Count returns the total number of listings.
func (repo *productRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count products")
	}

	return count, nil
}

// DecrementStock atomically subtracts quantity from the listing's stock.
// The stock >= quantity guard makes concurrent purchases safe: the row is
// locked by the UPDATE and the condition re-checked, so stock never goes
// negative.
func (repo *productRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND stock >= ?", id, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to decrement stock")
	}

	return result.RowsAffected > 0, nil
}

func fromProductDomain(product *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:          product.ID,
		FarmerID:    product.FarmerID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		ImageURL:    product.ImageURL,
		Organic:     product.Organic,
		Longitude:   product.Location.Lon(),
		Latitude:    product.Location.Lat(),
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

func toProductDomain(productM *model.ProductModel) *entity.Product {
	product := &entity.Product{
		ID:          productM.ID,
		FarmerID:    productM.FarmerID,
		Name:        productM.Name,
		Description: productM.Description,
		Price:       productM.Price,
		Stock:       productM.Stock,
		ImageURL:    productM.ImageURL,
		Organic:     productM.Organic,
		Location:    orb.Point{productM.Longitude, productM.Latitude},
		CreatedAt:   productM.CreatedAt,
		UpdatedAt:   productM.UpdatedAt,
	}
	if productM.Farmer != nil {
		product.Farmer = toUserDomain(productM.Farmer)
	}

	return product
}
