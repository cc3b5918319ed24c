package openai

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/uthuyomi/ai-workbench/providers/contracts"
	contracts2 "github.com/uthuyomi/ai-workbench/token_management/contracts"
)

// OpenAIConfig configures the OpenAI-compatible chat provider.
type OpenAIConfig struct {
	BaseURL         string
	Model           string
	Temperature     *float32
	MaxTokens       int
	ApiKey          string
	TokenManagement contracts2.ITokenManagement
}

type openAIProvider struct {
	client          *openai.Client
	model           string
	temperature     *float32
	maxTokens       int
	tokenManagement contracts2.ITokenManagement
}

// NewOpenAIChatProvider initializes a provider backed by the OpenAI chat
// completions API. A custom BaseURL points the same client at any
// OpenAI-compatible endpoint.
func NewOpenAIChatProvider(config *OpenAIConfig) contracts.IChatAIProvider {
	clientConfig := openai.DefaultConfig(config.ApiKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &openAIProvider{
		client:          openai.NewClientWithConfig(clientConfig),
		model:           config.Model,
		temperature:     config.Temperature,
		maxTokens:       config.MaxTokens,
		tokenManagement: config.TokenManagement,
	}
}

// Generate performs a single non-streaming chat completion and returns
// the raw response text. Transport and provider errors are wrapped and
// returned unchanged in meaning; no retry is attempted here.
func (p *openAIProvider) Generate(ctx context.Context, systemPrompt string, userPrompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	}
	if p.temperature != nil {
		req.Temperature = *p.temperature
	}
	if p.maxTokens > 0 {
		req.MaxTokens = p.maxTokens
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}

	if p.tokenManagement != nil {
		p.tokenManagement.UsedTokens(resp.Usage.PromptTokens, resp.Usage.CompletionTokens)
	}

	return resp.Choices[0].Message.Content, nil
}
