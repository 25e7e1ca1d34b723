package usecase

import (
	"context"

	"farmkitchen/internal/domain/service"
)

// AdvisoryInput is one advisory question with its farming context and any
// prior conversation turns.
type AdvisoryInput struct {
	Question string                  `json:"question"`
	Context  service.AdvisoryContext `json:"context"`
	History  []service.AdvisoryTurn  `json:"history"`
}

// AdvisoryUseCase answers farming questions through the crop advisor.
type AdvisoryUseCase interface {
	Ask(ctx context.Context, input *AdvisoryInput) (string, error)
}
