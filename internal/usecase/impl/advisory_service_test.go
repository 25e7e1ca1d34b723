package impl

import (
	"context"
	"testing"

	domainerrors "farmkitchen/internal/domain/errors"
	"farmkitchen/internal/domain/service"
	mockSvc "farmkitchen/internal/mocks/service"
	"farmkitchen/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvisoryService_Ask_NormalizesHistory(t *testing.T) {
	mockAdvisor := mockSvc.NewMockCropAdvisor(t)
	advisory := NewAdvisoryService(AdvisoryServiceParams{Advisor: mockAdvisor})

	ctx := context.Background()
	advCtx := service.AdvisoryContext{SoilType: "loamy", Location: "Nashik", Season: "kharif", AvailableWater: "drip"}

	// Blank turns are dropped and unknown roles collapse to "user".
	wantHistory := []service.AdvisoryTurn{
		{Role: "user", Text: "What should I sow?"},
		{Role: "assistant", Text: "Consider soybean."},
		{Role: "user", Text: "And intercropping?"},
	}
	mockAdvisor.On("Advise", ctx, &advCtx, "How much seed per acre?", wantHistory).
		Return("Around 25 to 30 kg per acre.", nil)

	answer, err := advisory.Ask(ctx, &usecase.AdvisoryInput{
		Question: "How much seed per acre?",
		Context:  advCtx,
		History: []service.AdvisoryTurn{
			{Role: "user", Text: "What should I sow?"},
			{Role: "assistant", Text: "Consider soybean."},
			{Role: "assistant", Text: "   "},
			{Role: "system", Text: "And intercropping?"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Around 25 to 30 kg per acre.", answer)
}

func TestAdvisoryService_Ask_BlankQuestion(t *testing.T) {
	mockAdvisor := mockSvc.NewMockCropAdvisor(t)
	advisory := NewAdvisoryService(AdvisoryServiceParams{Advisor: mockAdvisor})

	answer, err := advisory.Ask(context.Background(), &usecase.AdvisoryInput{
		Question: "   ",
		Context:  service.AdvisoryContext{SoilType: "loamy"},
	})
	require.Error(t, err)
	assert.Empty(t, answer)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestAdvisoryService_Ask_EmptyContext(t *testing.T) {
	mockAdvisor := mockSvc.NewMockCropAdvisor(t)
	advisory := NewAdvisoryService(AdvisoryServiceParams{Advisor: mockAdvisor})

	answer, err := advisory.Ask(context.Background(), &usecase.AdvisoryInput{
		Question: "What should I sow?",
	})
	require.Error(t, err)
	assert.Empty(t, answer)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}
