package usecase

import (
	"context"

	"github.com/google/uuid"

	"farmkitchen/internal/domain/entity"
)

// OrderLineInput is one requested purchase line.
type OrderLineInput struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

// OrderUseCase places consumer orders. Placement runs in a single
// transaction: every line's stock is checked and decremented, and the order
// is recorded, atomically. Any failing line rolls back the whole order.
type OrderUseCase interface {
	Place(ctx context.Context, consumerID uuid.UUID, lines []OrderLineInput) (*entity.Order, error)
}
