package service

import "context"

// AdvisoryContext is the structured farming context sent with every question.
type AdvisoryContext struct {
	SoilType       string `json:"soilType"`
	Location       string `json:"location"`
	Season         string `json:"season"`
	AvailableWater string `json:"availableWater"`
	CropGoal       string `json:"cropGoal"`
}

// AdvisoryTurn is one prior exchange in the conversation history.
type AdvisoryTurn struct {
	Role string `json:"role"` // "user" or "assistant"; anything else is treated as "user".
	Text string `json:"text"`
}

// CropAdvisor forwards a farming-context prompt plus conversation history to
// an external language model and returns its answer.
type CropAdvisor interface {
	Advise(ctx context.Context, advCtx *AdvisoryContext, question string, history []AdvisoryTurn) (string, error)
}
