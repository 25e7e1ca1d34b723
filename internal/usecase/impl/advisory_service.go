package impl

import (
	"context"
	"strings"

	domainerrors "farmkitchen/internal/domain/errors"
	"farmkitchen/internal/domain/service"
	"farmkitchen/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type advisoryService struct {
	advisor service.CropAdvisor
}

// AdvisoryServiceParams holds dependencies for AdvisoryService, injected by Fx.
type AdvisoryServiceParams struct {
	fx.In

	Advisor service.CropAdvisor
}

// NewAdvisoryService creates a new advisory service instance
func NewAdvisoryService(params AdvisoryServiceParams) usecase.AdvisoryUseCase {
	return &advisoryService{
		advisor: params.Advisor,
	}
}

func (s *advisoryService) Ask(ctx context.Context, input *usecase.AdvisoryInput) (string, error) {
	if strings.TrimSpace(input.Question) == "" || isContextEmpty(&input.Context) {
		return "", domainerrors.ErrInvalidInput.WithDetails("Question and context are required")
	}

	answer, err := s.advisor.Advise(ctx, &input.Context, input.Question, normalizeHistory(input.History))
	if err != nil {
		return "", errors.Wrap(err, "failed to get advisory answer")
	}

	return answer, nil
}

func isContextEmpty(advCtx *service.AdvisoryContext) bool {
	return advCtx.SoilType == "" &&
		advCtx.Location == "" &&
		advCtx.Season == "" &&
		advCtx.AvailableWater == "" &&
		advCtx.CropGoal == ""
}

// normalizeHistory drops blank turns and coerces unknown roles to "user", so
// the advisor only ever sees well-formed user/assistant exchanges.
func normalizeHistory(history []service.AdvisoryTurn) []service.AdvisoryTurn {
	normalized := make([]service.AdvisoryTurn, 0, len(history))
	for _, turn := range history {
		text := strings.TrimSpace(turn.Text)
		if text == "" {
			continue
		}
		role := turn.Role
		if role != "assistant" {
			role = "user"
		}
		normalized = append(normalized, service.AdvisoryTurn{Role: role, Text: text})
	}

	return normalized
}
