package contracts

import (
	"context"

	"github.com/uthuyomi/ai-workbench/domain"
)

// IPromptBuilder assembles the two prompt strings handed to the chat
// provider. It does not call the model and does not interpret anything.
type IPromptBuilder interface {
	BuildSystemPrompt() string
	BuildUserPrompt(snapshot *domain.Snapshot, existingDiff *domain.Diff) string
}

// IDevEngine turns a snapshot into a change proposal through exactly one
// model call per run.
type IDevEngine interface {
	Run(ctx context.Context, snapshot *domain.Snapshot, existingDiff *domain.Diff) (*domain.Diff, error)
	RunFromIndex(ctx context.Context, index *domain.WorkspaceIndex, rootPath string, existingDiff *domain.Diff) (*domain.Diff, error)
}

// IWorkflow is the single entry point of the pipeline: resolve the
// requested mode, then dispatch to the engine. Stateless and safe for
// concurrent callers.
type IWorkflow interface {
	Execute(ctx context.Context, snapshot *domain.Snapshot, requestedMode string, existingDiff *domain.Diff) (*domain.Diff, error)
	ExecuteFromIndex(ctx context.Context, index *domain.WorkspaceIndex, rootPath string, requestedMode string, existingDiff *domain.Diff) (*domain.Diff, error)
}
