package model

import (
	"time"

	"github.com/google/uuid"
)

// MessageModel is the GORM-specific struct for the 'messages' table.
// Messages are append-only.
type MessageModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SenderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	RecipientID uuid.UUID `gorm:"type:uuid;not null;index"`
	Text        string    `gorm:"type:text;not null"`
	CreatedAt   time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}
