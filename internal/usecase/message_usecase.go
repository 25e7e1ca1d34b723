package usecase

import (
	"context"

	"github.com/google/uuid"

	"farmkitchen/internal/domain/entity"
)

// MessageUseCase handles direct messages between accounts.
type MessageUseCase interface {
	// Inbox returns one conversation per distinct partner, ordered by the
	// most recent message in each.
	Inbox(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error)

	// Thread returns the full exchange between the caller and partner,
	// oldest first.
	Thread(ctx context.Context, userID, partnerID uuid.UUID) ([]*entity.Message, error)

	// Send records a message to the recipient. The recipient must exist
	// and the text must be non-empty.
	Send(ctx context.Context, senderID, recipientID uuid.UUID, text string) (*entity.Message, error)
}
