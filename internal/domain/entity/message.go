package entity

import (
	"time"

	"github.com/google/uuid"
)

// Message is a directed text message between two accounts. Messages are
// immutable once created.
type Message struct {
	ID          uuid.UUID
	SenderID    uuid.UUID
	RecipientID uuid.UUID
	Text        string
	CreatedAt   time.Time
}

// Conversation is one inbox entry: the most recent message exchanged with a
// single partner, regardless of direction.
type Conversation struct {
	Partner     *User
	LastMessage string
	UpdatedAt   time.Time
}
