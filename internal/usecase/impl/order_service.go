package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"farmkitchen/internal/domain/entity"
	domainerrors "farmkitchen/internal/domain/errors"
	"farmkitchen/internal/domain/repository"
	"farmkitchen/internal/domain/service"
	"farmkitchen/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type orderService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUseCase {
	return &orderService{
		txManager: params.TxManager,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// Place creates an order inside a single transaction. Every line's stock is
// decremented with a stock >= quantity guard, so a failure on any line rolls
// back all previous decrements and no order is recorded.
func (s *orderService) Place(ctx context.Context, consumerID uuid.UUID, lines []usecase.OrderLineInput) (*entity.Order, error) {
	if len(lines) == 0 {
		return nil, domainerrors.ErrInvalidInput.WithDetails("Order must contain at least one item")
	}
	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, domainerrors.ErrInvalidInput.WithDetails("Quantity must be at least 1")
		}
	}

	var order *entity.Order
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		productRepo := factory.ProductRepo()

		items := make([]*entity.OrderItem, 0, len(lines))
		var total float64
		for _, line := range lines {
			product, err := productRepo.FindByID(ctx, line.ProductID)
			if err != nil {
				if errors.Is(err, repository.ErrProductNotFound) {
					return domainerrors.ErrProductNotFound.WithDetails(fmt.Sprintf("Product not found: %s", line.ProductID))
				}

				return errors.Wrap(err, "failed to find product by id")
			}

			applied, err := productRepo.DecrementStock(ctx, line.ProductID, line.Quantity)
			if err != nil {
				return errors.Wrap(err, "failed to decrement stock")
			}
			if !applied {
				return domainerrors.ErrInsufficientStock.WithDetails(fmt.Sprintf("Insufficient stock for %s", product.Name))
			}

			total += product.Price * float64(line.Quantity)
			items = append(items, &entity.OrderItem{
				ID:        uuid.New(),
				ProductID: product.ID,
				FarmerID:  product.FarmerID,
				Quantity:  line.Quantity,
				UnitPrice: product.Price,
			})
		}

		order = &entity.Order{
			ID:          uuid.New(),
			ConsumerID:  consumerID,
			Items:       items,
			TotalAmount: total,
			Status:      entity.OrderStatusPending,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}

		if err := factory.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Publishing is best effort; the committed order is the source of truth.
	event := &service.OrderPlacedEvent{
		OrderID:     order.ID.String(),
		ConsumerID:  order.ConsumerID.String(),
		TotalAmount: order.TotalAmount,
		ItemCount:   len(order.Items),
		PlacedAt:    order.CreatedAt,
	}
	if err := s.publisher.PublishOrderPlaced(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to publish order placed event",
			slog.String("order_id", event.OrderID),
			slog.Any("error", err))
	}

	return order, nil
}
