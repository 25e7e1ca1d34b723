// Package advisor implements the crop advisory chat against the OpenAI API.
package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"farmkitchen/config"
	domainerrors "farmkitchen/internal/domain/errors"
	"farmkitchen/internal/domain/service"
	"farmkitchen/internal/errors"

	"go.uber.org/fx"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o-mini"

	answerTemperature = 0.7
	answerMaxTokens   = 600

	requestTimeout = 60 * time.Second
)

type openAIAdvisor struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// Params holds dependencies for the OpenAI advisor, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
}

// NewOpenAIAdvisor creates a crop advisor backed by the OpenAI chat API.
func NewOpenAIAdvisor(params Params) (service.CropAdvisor, error) {
	cfg := params.Config.OpenAI
	if cfg == nil {
		return nil, errors.New("openai configuration is missing")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	return &openAIAdvisor{
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		model:      model,
		httpClient: &http.Client{Timeout: requestTimeout},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Advise sends the farming context, prior turns and question to the chat API
// and returns the model's answer.
func (a *openAIAdvisor) Advise(ctx context.Context, advCtx *service.AdvisoryContext, question string, history []service.AdvisoryTurn) (string, error) {
	messages := make([]chatMessage, 0, len(history)+2)
	messages = append(messages, chatMessage{Role: "system", Content: systemPrompt(advCtx)})
	for _, turn := range history {
		messages = append(messages, chatMessage{Role: turn.Role, Content: turn.Text})
	}
	messages = append(messages, chatMessage{Role: "user", Content: strings.TrimSpace(question)})

	body, err := json.Marshal(chatRequest{
		Model:       a.model,
		Messages:    messages,
		Temperature: answerTemperature,
		MaxTokens:   answerMaxTokens,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal chat request")
	}

	endpoint := a.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "failed to build chat request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.apiKey)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", domainerrors.ErrUpstreamFailure.WithDetails("AI service unavailable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", domainerrors.ErrUpstreamFailure.WithDetails("AI service unavailable")
	}

	var payload chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", domainerrors.ErrUpstreamFailure.WithDetails("AI service unavailable")
	}
	if len(payload.Choices) == 0 {
		return "", nil
	}

	return payload.Choices[0].Message.Content, nil
}

func systemPrompt(advCtx *service.AdvisoryContext) string {
	goal := advCtx.CropGoal
	if goal == "" {
		goal = "No specific goal"
	}

	return fmt.Sprintf(
		"You are an agronomist giving region-specific crop advice.\n"+
			"Soil: %s. Location: %s.\n"+
			"Season: %s. Water: %s.\n"+
			"Goal: %s.\n"+
			"Answer concisely in bullet-points where helpful.",
		advCtx.SoilType, advCtx.Location, advCtx.Season, advCtx.AvailableWater, goal,
	)
}
