package repository

import (
	"context"

	"farmkitchen/internal/domain/entity"

	"github.com/google/uuid"
)

// MessageRepository defines the standard operations for message persistence.
// Messages are append-only; there is no update or delete.
type MessageRepository interface {
	// Create persists a new message.
	Create(ctx context.Context, message *entity.Message) error

	// ListByParticipant retrieves every message the account sent or received,
	// newest-first.
	ListByParticipant(ctx context.Context, userID uuid.UUID) ([]*entity.Message, error)

	// ListThread retrieves the full history between two accounts in
	// chronological order.
	ListThread(ctx context.Context, userID, partnerID uuid.UUID) ([]*entity.Message, error)
}
