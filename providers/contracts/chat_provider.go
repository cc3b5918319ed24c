package contracts

import "context"

// IChatAIProvider is the single contact point with an external language
// model. One call, two prompts in, one raw text payload out. Providers do
// not retry, stream or interpret the response; failures propagate to the
// caller unchanged.
type IChatAIProvider interface {
	Generate(ctx context.Context, systemPrompt string, userPrompt string) (string, error)
}
