package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ollama_models "github.com/uthuyomi/ai-workbench/providers/ollama/models"
	"github.com/uthuyomi/ai-workbench/token_management"
)

func TestOllamaProvider_Generate(t *testing.T) {
	var received ollama_models.OllamaChatCompletionRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		response := ollama_models.OllamaChatCompletionResponse{
			Model:           received.Model,
			Done:            true,
			PromptEvalCount: 12,
			EvalCount:       34,
		}
		response.Message.Role = "assistant"
		response.Message.Content = "proposal text"
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	tm := token_management.NewTokenManager()
	provider := NewOllamaChatProvider(&OllamaConfig{
		BaseURL:         server.URL,
		Model:           "llama3.1",
		TokenManagement: tm,
	})

	response, err := provider.Generate(context.Background(), "system text", "user text")
	require.NoError(t, err)
	assert.Equal(t, "proposal text", response)

	// Exactly one system and one user message, in that order.
	require.Len(t, received.Messages, 2)
	assert.Equal(t, "system", received.Messages[0].Role)
	assert.Equal(t, "system text", received.Messages[0].Content)
	assert.Equal(t, "user", received.Messages[1].Role)
	assert.False(t, received.Stream)

	total, input, output := tm.GetCurrentTokenUsage()
	assert.Equal(t, 46, total)
	assert.Equal(t, 12, input)
	assert.Equal(t, 34, output)
}

func TestOllamaProvider_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": {"message": "model not loaded"}}`))
	}))
	defer server.Close()

	provider := NewOllamaChatProvider(&OllamaConfig{BaseURL: server.URL, Model: "llama3.1"})

	_, err := provider.Generate(context.Background(), "s", "u")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "model not loaded")
}
