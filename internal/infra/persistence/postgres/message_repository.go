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

// messageRepository implements the repository.MessageRepository interface.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{
		db: db,
	}
}

// Create persists a new message.
func (repo *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	messageM := &model.MessageModel{
		ID:          message.ID,
		SenderID:    message.SenderID,
		RecipientID: message.RecipientID,
		Text:        message.Text,
		CreatedAt:   message.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		return errors.Wrap(err, "failed to create message")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt

	return nil
}

// ListByParticipant retrieves every message the account sent or received,
// newest-first.
func (repo *messageRepository) ListByParticipant(ctx context.Context, userID uuid.UUID) ([]*entity.Message, error) {
	var messageModels []*model.MessageModel

	if err := repo.db.WithContext(ctx).
		Where("sender_id = ? OR recipient_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list messages by participant")
	}

	return toMessageDomains(messageModels), nil
}

// ListThread retrieves the full history between two accounts in
// chronological order.
func (repo *messageRepository) ListThread(ctx context.Context, userID, partnerID uuid.UUID) ([]*entity.Message, error) {
	var messageModels []*model.MessageModel

	if err := repo.db.WithContext(ctx).
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userID, partnerID, partnerID, userID).
		Order("created_at ASC").
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list message thread")
	}

	return toMessageDomains(messageModels), nil
}

func toMessageDomains(messageModels []*model.MessageModel) []*entity.Message {
	messages := make([]*entity.Message, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, &entity.Message{
			ID:          messageM.ID,
			SenderID:    messageM.SenderID,
			RecipientID: messageM.RecipientID,
			Text:        messageM.Text,
			CreatedAt:   messageM.CreatedAt,
		})
	}

	return messages
}
