package postgres

import (
	"context"

	"farmkitchen/internal/domain/entity"
	"farmkitchen/internal/domain/repository"
	"farmkitchen/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// FindByUser retrieves the account's cart with items and product data expanded.
func (repo *cartRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.Product").
		First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by user")
	}

	return toCartDomain(&cartM), nil
}

// Create persists a new, empty cart for the account.
func (repo *cartRepository) Create(ctx context.Context, cart *entity.Cart) error {
	cartM := &model.CartModel{
		ID:        cart.ID,
		UserID:    cart.UserID,
		CreatedAt: cart.CreatedAt,
		UpdatedAt: cart.UpdatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(cartM).Error; err != nil {
		return errors.Wrap(err, "failed to create cart")
	}

	cart.ID = cartM.ID
	cart.CreatedAt = cartM.CreatedAt
	cart.UpdatedAt = cartM.UpdatedAt

	return nil
}

// InsertItem appends a new line to the cart.
func (repo *cartRepository) InsertItem(ctx context.Context, cartID, productID uuid.UUID, quantity int) error {
	itemM := &model.CartItemModel{
		ID:        uuid.New(),
		CartID:    cartID,
		ProductID: productID,
		Quantity:  quantity,
	}

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		return errors.Wrap(err, "failed to insert cart item")
	}

	return nil
}

// UpdateItemQuantity sets the quantity of an existing line.
func (repo *cartRepository) UpdateItemQuantity(ctx context.Context, cartID, productID uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Update("quantity", quantity)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update cart item quantity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// DeleteItem removes one line from the cart. Deleting an absent line is a no-op.
func (repo *cartRepository) DeleteItem(ctx context.Context, cartID, productID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&model.CartItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete cart item")
	}

	return nil
}

// ClearItems removes every line from the cart.
func (repo *cartRepository) ClearItems(ctx context.Context, cartID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&model.CartItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear cart items")
	}

	return nil
}

func toCartDomain(cartM *model.CartModel) *entity.Cart {
	items := make([]*entity.CartItem, 0, len(cartM.Items))
	for _, itemM := range cartM.Items {
		item := &entity.CartItem{
			ID:        itemM.ID,
			ProductID: itemM.ProductID,
			Quantity:  itemM.Quantity,
		}
		if itemM.Product != nil {
			item.Product = toProductDomain(itemM.Product)
		}
		items = append(items, item)
	}

	return &entity.Cart{
		ID:        cartM.ID,
		UserID:    cartM.UserID,
		Items:     items,
		CreatedAt: cartM.CreatedAt,
		UpdatedAt: cartM.UpdatedAt,
	}
}
