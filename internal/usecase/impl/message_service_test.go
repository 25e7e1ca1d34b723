package impl

import (
	"context"
	"testing"
	"time"

	"farmkitchen/internal/domain/entity"
	domainerrors "farmkitchen/internal/domain/errors"
	"farmkitchen/internal/domain/repository"
	mockRepo "farmkitchen/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMessageService_Inbox_OneConversationPerPartner(t *testing.T) {
	mockMessageRepo := mockRepo.NewMockMessageRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := NewMessageService(MessageServiceParams{MessageRepo: mockMessageRepo, UserRepo: mockUserRepo})

	ctx := context.Background()
	me := uuid.New()
	farmer := &entity.User{ID: uuid.New(), Name: "Farmer Bhatt"}
	buyer := &entity.User{ID: uuid.New(), Name: "Neel"}

	now := time.Now()
	// Newest first, as the repository returns them. Three messages with the
	// farmer across both directions must fold into one conversation.
	messages := []*entity.Message{
		{ID: uuid.New(), SenderID: me, RecipientID: farmer.ID, Text: "Is the honey raw?", CreatedAt: now},
		{ID: uuid.New(), SenderID: farmer.ID, RecipientID: me, Text: "Fresh stock on Friday", CreatedAt: now.Add(-time.Hour)},
		{ID: uuid.New(), SenderID: buyer.ID, RecipientID: me, Text: "Thanks!", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: uuid.New(), SenderID: me, RecipientID: farmer.ID, Text: "Hello", CreatedAt: now.Add(-3 * time.Hour)},
	}

	mockMessageRepo.On("ListByParticipant", ctx, me).Return(messages, nil)
	mockUserRepo.On("FindByIDs", ctx, []uuid.UUID{farmer.ID, buyer.ID}).
		Return([]*entity.User{farmer, buyer}, nil)

	conversations, err := service.Inbox(ctx, me)
	require.NoError(t, err)
	require.Len(t, conversations, 2)
	assert.Equal(t, farmer.ID, conversations[0].Partner.ID)
	assert.Equal(t, "Is the honey raw?", conversations[0].LastMessage)
	assert.Equal(t, buyer.ID, conversations[1].Partner.ID)
	assert.Equal(t, "Thanks!", conversations[1].LastMessage)
}

func TestMessageService_Inbox_Empty(t *testing.T) {
	mockMessageRepo := mockRepo.NewMockMessageRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := NewMessageService(MessageServiceParams{MessageRepo: mockMessageRepo, UserRepo: mockUserRepo})

	ctx := context.Background()
	me := uuid.New()
	mockMessageRepo.On("ListByParticipant", ctx, me).Return([]*entity.Message{}, nil)

	conversations, err := service.Inbox(ctx, me)
	require.NoError(t, err)
	assert.Empty(t, conversations)
	mockUserRepo.AssertNotCalled(t, "FindByIDs", mock.Anything, mock.Anything)
}

func TestMessageService_Send_Success(t *testing.T) {
	mockMessageRepo := mockRepo.NewMockMessageRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := NewMessageService(MessageServiceParams{MessageRepo: mockMessageRepo, UserRepo: mockUserRepo})

	ctx := context.Background()
	sender := uuid.New()
	recipient := &entity.User{ID: uuid.New(), Name: "Gita"}

	mockUserRepo.On("FindByID", ctx, recipient.ID).Return(recipient, nil)
	mockMessageRepo.On("Create", ctx, mock.AnythingOfType("*entity.Message")).Return(nil)

	message, err := service.Send(ctx, sender, recipient.ID, "Do you deliver on weekends?")
	require.NoError(t, err)
	require.NotNil(t, message)
	assert.Equal(t, sender, message.SenderID)
	assert.Equal(t, recipient.ID, message.RecipientID)
}

func TestMessageService_Send_BlankText(t *testing.T) {
	mockMessageRepo := mockRepo.NewMockMessageRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := NewMessageService(MessageServiceParams{MessageRepo: mockMessageRepo, UserRepo: mockUserRepo})

	message, err := service.Send(context.Background(), uuid.New(), uuid.New(), "   ")
	require.Error(t, err)
	assert.Nil(t, message)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestMessageService_Send_UnknownRecipient(t *testing.T) {
	mockMessageRepo := mockRepo.NewMockMessageRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := NewMessageService(MessageServiceParams{MessageRepo: mockMessageRepo, UserRepo: mockUserRepo})

	ctx := context.Background()
	recipientID := uuid.New()
	mockUserRepo.On("FindByID", ctx, recipientID).Return(nil, repository.ErrUserNotFound)

	message, err := service.Send(ctx, uuid.New(), recipientID, "Hello?")
	require.Error(t, err)
	assert.Nil(t, message)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	mockMessageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
