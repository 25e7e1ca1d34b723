package service

import (
	"context"
	"time"
)

// OrderPlacedEvent is emitted after an order commits, for downstream
// consumers such as seller notifications and fulfilment.
type OrderPlacedEvent struct {
	OrderID     string    `json:"order_id"`
	ConsumerID  string    `json:"consumer_id"`
	TotalAmount float64   `json:"total_amount"`
	ItemCount   int       `json:"item_count"`
	PlacedAt    time.Time `json:"placed_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderPlaced publishes an order-placed event for async processing.
	PublishOrderPlaced(ctx context.Context, event *OrderPlacedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
