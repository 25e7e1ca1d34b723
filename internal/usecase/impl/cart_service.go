package impl

import (
	"context"
	"fmt"
	"time"

	"farmkitchen/internal/domain/entity"
	domainerrors "farmkitchen/internal/domain/errors"
	"farmkitchen/internal/domain/repository"
	"farmkitchen/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
}

// NewCartService creates a new cart service instance
func NewCartService(params CartServiceParams) usecase.CartUseCase {
	return &cartService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
	}
}

func (s *cartService) Get(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	return s.getOrCreate(ctx, userID)
}

func (s *cartService) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entity.Cart, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrInvalidInput.WithDetails("Quantity must be at least 1")
	}

	cart, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WithDetails("Product not found")
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	// The requested quantity alone is checked against stock, not the
	// resulting line total. Nothing is reserved until an order is placed.
	if product.Stock < quantity {
		return nil, domainerrors.ErrInsufficientStock.WithDetails(fmt.Sprintf("Only %d left in stock", product.Stock))
	}

	if line := cart.FindItem(productID); line != nil {
		if err := s.cartRepo.UpdateItemQuantity(ctx, cart.ID, productID, line.Quantity+quantity); err != nil {
			return nil, errors.Wrap(err, "failed to update cart item quantity")
		}
	} else {
		if err := s.cartRepo.InsertItem(ctx, cart.ID, productID, quantity); err != nil {
			return nil, errors.Wrap(err, "failed to insert cart item")
		}
	}

	return s.reload(ctx, userID)
}

func (s *cartService) UpdateItemQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entity.Cart, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrInvalidInput.WithDetails("Quantity must be at least 1")
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WithDetails("Product not found")
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}
	if product.Stock < quantity {
		return nil, domainerrors.ErrInsufficientStock.WithDetails(fmt.Sprintf("Only %d left in stock", product.Stock))
	}

	cart, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart.FindItem(productID) == nil {
		return nil, domainerrors.ErrCartItemNotFound.WithDetails("Item not in cart")
	}

	if err := s.cartRepo.UpdateItemQuantity(ctx, cart.ID, productID, quantity); err != nil {
		return nil, errors.Wrap(err, "failed to update cart item quantity")
	}

	return s.reload(ctx, userID)
}

func (s *cartService) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*entity.Cart, error) {
	cart, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.DeleteItem(ctx, cart.ID, productID); err != nil {
		return nil, errors.Wrap(err, "failed to delete cart item")
	}

	return s.reload(ctx, userID)
}

func (s *cartService) Clear(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.ClearItems(ctx, cart.ID); err != nil {
		return nil, errors.Wrap(err, "failed to clear cart items")
	}

	return s.reload(ctx, userID)
}

// getOrCreate returns the account's cart, lazily creating an empty one on
// first access.
func (s *cartService) getOrCreate(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := s.cartRepo.FindByUser(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, repository.ErrCartNotFound) {
		return nil, errors.Wrap(err, "failed to find cart by user")
	}

	cart = &entity.Cart{
		ID:        uuid.New(),
		UserID:    userID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.cartRepo.Create(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to create cart")
	}

	return cart, nil
}

func (s *cartService) reload(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload cart")
	}

	return cart, nil
}
