package advisor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"farmkitchen/config"
	domainerrors "farmkitchen/internal/domain/errors"
	"farmkitchen/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdvisorForTest(t *testing.T, baseURL string) *openAIAdvisor {
	t.Helper()

	adv, err := NewOpenAIAdvisor(Params{
		Config: &config.Config{
			OpenAI: &config.OpenAIConfig{APIKey: "test-key", BaseURL: baseURL},
		},
	})
	require.NoError(t, err)

	return adv.(*openAIAdvisor)
}

func TestOpenAIAdvisor_Advise_BuildsPromptAndReturnsAnswer(t *testing.T) {
	var captured chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": [{"message": {"content": "Sow after the first rains."}}]}`))
	}))
	defer server.Close()

	adv := newAdvisorForTest(t, server.URL)

	answer, err := adv.Advise(context.Background(),
		&service.AdvisoryContext{SoilType: "black cotton", Location: "Vidarbha", Season: "kharif", AvailableWater: "rainfed"},
		"When should I sow cotton?",
		[]service.AdvisoryTurn{{Role: "user", Text: "Hello"}},
	)
	require.NoError(t, err)
	assert.Equal(t, "Sow after the first rains.", answer)

	require.Len(t, captured.Messages, 3)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Contains(t, captured.Messages[0].Content, "Soil: black cotton.")
	assert.Contains(t, captured.Messages[0].Content, "Goal: No specific goal.")
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.Equal(t, "When should I sow cotton?", captured.Messages[2].Content)
	assert.Equal(t, defaultModel, captured.Model)
}

func TestOpenAIAdvisor_Advise_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	adv := newAdvisorForTest(t, server.URL)

	answer, err := adv.Advise(context.Background(), &service.AdvisoryContext{SoilType: "loamy"}, "Anything?", nil)
	require.NoError(t, err)
	assert.Empty(t, answer)
}

func TestOpenAIAdvisor_Advise_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	adv := newAdvisorForTest(t, server.URL)

	answer, err := adv.Advise(context.Background(), &service.AdvisoryContext{SoilType: "loamy"}, "Anything?", nil)
	require.Error(t, err)
	assert.Empty(t, answer)
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamFailure)
}
