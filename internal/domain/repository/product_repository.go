package repository

import (
	"context"
	"errors"

	"farmkitchen/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter narrows the public catalog listing.
type ProductFilter struct {
	Query    string   // Case-insensitive substring match against the name.
	MinPrice *float64 // Inclusive lower price bound.
	MaxPrice *float64 // Inclusive upper price bound.
	Organic  *bool
}

// ProductRepository defines the standard operations for listing persistence.
type ProductRepository interface {
	// FindByID retrieves a single listing by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// Create persists a new listing.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing listing.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a listing permanently.
	Delete(ctx context.Context, id uuid.UUID) error

	// List retrieves listings newest-first, narrowed by the filter.
	List(ctx context.Context, filter *ProductFilter) ([]*entity.Product, error)

	// ListPaged retrieves one page of listings newest-first with the owning
	// farmer expanded, plus the total match count. Query matches the name
	// case-insensitively.
	ListPaged(ctx context.Context, query string, page, limit int) ([]*entity.Product, int64, error)

	// Count returns the total number of listings.
	Count(ctx context.Context) (int64, error)

	// DecrementStock atomically subtracts quantity from the listing's stock,
	// guarded by a stock >= quantity condition. It reports whether the
	// decrement was applied; false means insufficient stock.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) (bool, error)
}
