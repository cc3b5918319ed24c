package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/uthuyomi/ai-workbench/providers/contracts"
	"github.com/uthuyomi/ai-workbench/providers/models"
	ollama_models "github.com/uthuyomi/ai-workbench/providers/ollama/models"
	contracts2 "github.com/uthuyomi/ai-workbench/token_management/contracts"
)

// OllamaConfig configures the local Ollama chat provider.
type OllamaConfig struct {
	BaseURL         string
	Model           string
	Temperature     *float32
	TokenManagement contracts2.ITokenManagement
}

const defaultBaseURL = "http://localhost:11434/api"

type ollamaProvider struct {
	baseURL         string
	model           string
	temperature     *float32
	tokenManagement contracts2.ITokenManagement
}

// NewOllamaChatProvider initializes a provider backed by a local Ollama
// server.
func NewOllamaChatProvider(config *OllamaConfig) contracts.IChatAIProvider {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &ollamaProvider{
		baseURL:         baseURL,
		model:           config.Model,
		temperature:     config.Temperature,
		tokenManagement: config.TokenManagement,
	}
}

// Generate performs a single non-streaming chat request against /chat.
func (p *ollamaProvider) Generate(ctx context.Context, systemPrompt string, userPrompt string) (string, error) {
	reqBody := ollama_models.OllamaChatCompletionRequest{
		Model: p.model,
		Messages: []ollama_models.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Stream: false,
	}
	if p.temperature != nil {
		reqBody.Options = &ollama_models.Options{Temperature: p.temperature}
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("error marshalling request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/chat", p.baseURL), bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return "", fmt.Errorf("request canceled: %w", err)
		}
		return "", fmt.Errorf("error sending request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiError models.AIError
		if err := json.Unmarshal(body, &apiError); err != nil {
			return "", fmt.Errorf("API request failed with status code '%d'", resp.StatusCode)
		}
		return "", fmt.Errorf("API request failed with status code '%d' - %s", resp.StatusCode, apiError.Error.Message)
	}

	var response ollama_models.OllamaChatCompletionResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("error unmarshalling response: %w", err)
	}

	if p.tokenManagement != nil {
		p.tokenManagement.UsedTokens(response.PromptEvalCount, response.EvalCount)
	}

	return response.Message.Content, nil
}
