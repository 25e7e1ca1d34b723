package impl

import (
	"context"
	"strings"
	"time"

	"farmkitchen/internal/domain/entity"
	domainerrors "farmkitchen/internal/domain/errors"
	"farmkitchen/internal/domain/repository"
	"farmkitchen/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type messageService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
}

// MessageServiceParams holds dependencies for MessageService, injected by Fx.
type MessageServiceParams struct {
	fx.In

	MessageRepo repository.MessageRepository
	UserRepo    repository.UserRepository
}

// NewMessageService creates a new message service instance
func NewMessageService(params MessageServiceParams) usecase.MessageUseCase {
	return &messageService{
		messageRepo: params.MessageRepo,
		userRepo:    params.UserRepo,
	}
}

// Inbox folds the account's messages into one conversation per distinct
// partner. Messages arrive newest-first, so the first message seen for a
// partner is the conversation's latest, and the resulting list is ordered by
// recency.
func (s *messageService) Inbox(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error) {
	messages, err := s.messageRepo.ListByParticipant(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages by participant")
	}

	seen := make(map[uuid.UUID]bool)
	partnerIDs := make([]uuid.UUID, 0)
	latest := make(map[uuid.UUID]*entity.Message)
	for _, message := range messages {
		partnerID := message.SenderID
		if partnerID == userID {
			partnerID = message.RecipientID
		}
		if seen[partnerID] {
			continue
		}
		seen[partnerID] = true
		partnerIDs = append(partnerIDs, partnerID)
		latest[partnerID] = message
	}

	if len(partnerIDs) == 0 {
		return []*entity.Conversation{}, nil
	}

	partners, err := s.userRepo.FindByIDs(ctx, partnerIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find conversation partners")
	}
	partnersByID := make(map[uuid.UUID]*entity.User, len(partners))
	for _, partner := range partners {
		partnersByID[partner.ID] = partner
	}

	conversations := make([]*entity.Conversation, 0, len(partnerIDs))
	for _, partnerID := range partnerIDs {
		partner, ok := partnersByID[partnerID]
		if !ok {
			continue
		}
		message := latest[partnerID]
		conversations = append(conversations, &entity.Conversation{
			Partner:     partner,
			LastMessage: message.Text,
			UpdatedAt:   message.CreatedAt,
		})
	}

	return conversations, nil
}

func (s *messageService) Thread(ctx context.Context, userID, partnerID uuid.UUID) ([]*entity.Message, error) {
	messages, err := s.messageRepo.ListThread(ctx, userID, partnerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list message thread")
	}

	return messages, nil
}

func (s *messageService) Send(ctx context.Context, senderID, recipientID uuid.UUID, text string) (*entity.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("Message text is required")
	}

	if _, err := s.userRepo.FindByID(ctx, recipientID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WithDetails("Recipient not found")
		}

		return nil, errors.Wrap(err, "failed to find recipient")
	}

	message := &entity.Message{
		ID:          uuid.New(),
		SenderID:    senderID,
		RecipientID: recipientID,
		Text:        text,
		CreatedAt:   time.Now(),
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, errors.Wrap(err, "failed to create message")
	}

	return message, nil
}
