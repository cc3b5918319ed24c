package engine

import (
	"fmt"
	"strings"

	"github.com/uthuyomi/ai-workbench/domain"
	"github.com/uthuyomi/ai-workbench/embed_data"
	"github.com/uthuyomi/ai-workbench/engine/contracts"
)

// PromptBuilder renders snapshots and diffs into the prompt structure
// the provider receives. It holds no state and knows nothing about which
// model will consume the text.
type PromptBuilder struct{}

// NewPromptBuilder initializes a prompt builder.
func NewPromptBuilder() contracts.IPromptBuilder {
	return &PromptBuilder{}
}

// BuildSystemPrompt returns the fixed system role text.
func (b *PromptBuilder) BuildSystemPrompt() string {
	return strings.TrimSpace(string(embed_data.DevSystemPrompt))
}

// BuildUserPrompt emits one delimited block per snapshot file, optional
// blocks for an existing diff, and a final instruction line. Content is
// passed through untouched.
func (b *PromptBuilder) BuildUserPrompt(snapshot *domain.Snapshot, existingDiff *domain.Diff) string {
	var lines []string

	lines = append(lines, "The following files are provided as context:\n")

	for _, file := range snapshot.Files {
		lines = append(lines, fmt.Sprintf("--- FILE: %s ---", file.Path))
		lines = append(lines, file.Content)
		lines = append(lines, fmt.Sprintf("--- END FILE: %s ---\n", file.Path))
	}

	if existingDiff != nil {
		lines = append(lines, "An existing proposed diff is shown below:\n")

		for _, diffFile := range existingDiff.Files {
			lines = append(lines, fmt.Sprintf("--- DIFF TARGET: %s ---", diffFile.Path))
			lines = append(lines, "<<< BEFORE >>>")
			lines = append(lines, diffFile.Before)
			lines = append(lines, "<<< AFTER >>>")
			lines = append(lines, diffFile.After)
			lines = append(lines, fmt.Sprintf("--- END DIFF: %s ---\n", diffFile.Path))
		}
	}

	lines = append(lines, "Based on the context above, perform the requested task.")

	return strings.Join(lines, "\n")
}
