// Package providers selects and configures the chat AI backend.
package providers

import (
	"fmt"
	"strings"

	"github.com/uthuyomi/ai-workbench/providers/contracts"
	"github.com/uthuyomi/ai-workbench/providers/ollama"
	"github.com/uthuyomi/ai-workbench/providers/openai"
	contracts2 "github.com/uthuyomi/ai-workbench/token_management/contracts"
)

// AIProviderConfig represents the provider section of the configuration file.
type AIProviderConfig struct {
	Provider    string   `mapstructure:"provider"`
	BaseURL     string   `mapstructure:"base_url"`
	Model       string   `mapstructure:"model"`
	Temperature *float32 `mapstructure:"temperature"`
	MaxTokens   int      `mapstructure:"max_tokens"`
	ApiKey      string   `mapstructure:"api_key"`
	ApiVersion  string   `mapstructure:"api_version"`
}

// ChatProviderFactory creates the chat provider named by the config.
// Unknown provider names are a construction error, not a runtime fallback.
func ChatProviderFactory(config *AIProviderConfig, tokenManagement contracts2.ITokenManagement) (contracts.IChatAIProvider, error) {
	switch strings.ToLower(config.Provider) {
	case "openai", "azure-openai":
		return openai.NewOpenAIChatProvider(&openai.OpenAIConfig{
			BaseURL:         config.BaseURL,
			Model:           config.Model,
			Temperature:     config.Temperature,
			MaxTokens:       config.MaxTokens,
			ApiKey:          config.ApiKey,
			TokenManagement: tokenManagement,
		}), nil
	case "ollama":
		return ollama.NewOllamaChatProvider(&ollama.OllamaConfig{
			BaseURL:         config.BaseURL,
			Model:           config.Model,
			Temperature:     config.Temperature,
			TokenManagement: tokenManagement,
		}), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", config.Provider)
	}
}
