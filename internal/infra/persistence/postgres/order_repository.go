package postgres

import (
	"context"
	"time"

	"farmkitchen/internal/domain/entity"
	"farmkitchen/internal/domain/repository"
	"farmkitchen/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists a new order together with its line items.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return errors.Wrap(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByID retrieves a single order by its unique ID.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Preload("Items").
		Preload("Items.Product").
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// ListByConsumer retrieves the account's orders newest-first.
func (repo *orderRepository) ListByConsumer(ctx context.Context, consumerID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("consumer_id = ?", consumerID).
		Order("created_at DESC").
		Preload("Items").
		Preload("Items.Product").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders by consumer")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// ListPaged retrieves one page of orders newest-first with buyer and product
// data expanded. The free-text query matches the order id or the buyer's
// name or email.
func (repo *orderRepository) ListPaged(ctx context.Context, filter *repository.OrderListFilter) ([]*entity.Order, int64, error) {
	base := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Joins("LEFT JOIN users ON users.id = orders.consumer_id")

	if filter != nil {
		if filter.Query != "" {
			pattern := "%" + filter.Query + "%"
			base = base.Where(
				"CAST(orders.id AS TEXT) ILIKE ? OR users.name ILIKE ? OR users.email ILIKE ?",
				pattern, pattern, pattern,
			)
		}
		if filter.Status != nil {
			base = base.Where("orders.status = ?", filter.Status.String())
		}
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	query := base.Order("orders.created_at DESC")
	if filter != nil && filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * filter.Limit).Limit(filter.Limit)
	}

	var orderModels []*model.OrderModel
	if err := query.
		Preload("Items").
		Preload("Items.Product").
		Preload("Consumer").
		Find(&orderModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders paged")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, total, nil
}

// UpdateStatus sets the order's status.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", status.String())
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// Delete removes an order and its line items permanently.
func (repo *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", id).
		Delete(&model.OrderItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete order items")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OrderModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// Count returns the total number of orders.
func (repo *orderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}

// SumRevenue totals the order amounts across the given statuses.
func (repo *orderRepository) SumRevenue(ctx context.Context, statuses []entity.OrderStatus) (float64, error) {
	values := make([]string, 0, len(statuses))
	for _, status := range statuses {
		values = append(values, status.String())
	}

	var total float64
	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("status IN ?", values).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum revenue")
	}

	return total, nil
}

// CountPerDay buckets orders created since the given time by calendar day.
// Days without orders are absent from the result.
func (repo *orderRepository) CountPerDay(ctx context.Context, since time.Time) ([]repository.DailyOrderCount, error) {
	var buckets []repository.DailyOrderCount

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("created_at >= ?", since).
		Select("to_char(created_at, 'YYYY-MM-DD') AS date, COUNT(*) AS count").
		Group("to_char(created_at, 'YYYY-MM-DD')").
		Order("date ASC").
		Scan(&buckets).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count orders per day")
	}

	return buckets, nil
}

// TopProducts ranks listings by total quantity sold across all orders.
func (repo *orderRepository) TopProducts(ctx context.Context, limit int) ([]repository.ProductSales, error) {
	var sales []repository.ProductSales

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderItemModel{}).
		Joins("JOIN products ON products.id = order_items.product_id").
		Select("products.name AS name, SUM(order_items.quantity) AS sold").
		Group("products.name").
		Order("sold DESC").
		Limit(limit).
		Scan(&sales).Error; err != nil {
		return nil, errors.Wrap(err, "failed to rank top products")
	}

	return sales, nil
}

func fromOrderDomain(order *entity.Order) *model.OrderModel {
	items := make([]*model.OrderItemModel, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, &model.OrderItemModel{
			ID:        item.ID,
			OrderID:   order.ID,
			ProductID: item.ProductID,
			FarmerID:  item.FarmerID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return &model.OrderModel{
		ID:          order.ID,
		ConsumerID:  order.ConsumerID,
		TotalAmount: order.TotalAmount,
		Status:      order.Status.String(),
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
		Items:       items,
	}
}

func toOrderDomain(orderM *model.OrderModel) *entity.Order {
	items := make([]*entity.OrderItem, 0, len(orderM.Items))
	for _, itemM := range orderM.Items {
		item := &entity.OrderItem{
			ID:        itemM.ID,
			ProductID: itemM.ProductID,
			FarmerID:  itemM.FarmerID,
			Quantity:  itemM.Quantity,
			UnitPrice: itemM.UnitPrice,
		}
		if itemM.Product != nil {
			item.Product = toProductDomain(itemM.Product)
		}
		items = append(items, item)
	}

	order := &entity.Order{
		ID:          orderM.ID,
		ConsumerID:  orderM.ConsumerID,
		Items:       items,
		TotalAmount: orderM.TotalAmount,
		Status:      entity.OrderStatus(orderM.Status),
		CreatedAt:   orderM.CreatedAt,
		UpdatedAt:   orderM.UpdatedAt,
	}
	if orderM.Consumer != nil {
		order.Consumer = toUserDomain(orderM.Consumer)
	}

	return order
}
