package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/uthuyomi/ai-workbench/domain"
	"github.com/uthuyomi/ai-workbench/engine/contracts"
	contracts_provider "github.com/uthuyomi/ai-workbench/providers/contracts"
	contracts_workspace "github.com/uthuyomi/ai-workbench/workspace/contracts"
)

// DevEngine produces change proposals. It assembles the prompts, makes
// exactly one provider call per run, and shapes the raw response into a
// Diff. It proposes; it never applies.
type DevEngine struct {
	provider        contracts_provider.IChatAIProvider
	promptBuilder   contracts.IPromptBuilder
	snapshotBuilder contracts_workspace.ISnapshotBuilder
	logger          *zap.Logger
}

// NewDevEngine initializes an engine with its injected collaborators.
func NewDevEngine(
	provider contracts_provider.IChatAIProvider,
	promptBuilder contracts.IPromptBuilder,
	snapshotBuilder contracts_workspace.ISnapshotBuilder,
	logger *zap.Logger,
) contracts.IDevEngine {
	return &DevEngine{
		provider:        provider,
		promptBuilder:   promptBuilder,
		snapshotBuilder: snapshotBuilder,
		logger:          logger,
	}
}

// Run builds the prompts from the snapshot (plus the existing diff, when
// one is being revised), calls the provider once, and materializes the
// response into a Diff. Provider failures propagate unchanged; there is
// no retry and no partial Diff.
func (e *DevEngine) Run(ctx context.Context, snapshot *domain.Snapshot, existingDiff *domain.Diff) (*domain.Diff, error) {
	e.logger.Info("dev engine run started",
		zap.String("project_id", snapshot.ProjectID),
		zap.Int("files", len(snapshot.Files)),
	)

	systemPrompt := e.promptBuilder.BuildSystemPrompt()
	userPrompt := e.promptBuilder.BuildUserPrompt(snapshot, existingDiff)

	response, err := e.provider.Generate(ctx, systemPrompt, userPrompt)
	if err != nil {
		return nil, fmt.Errorf("synthesis failed: %w", err)
	}

	diff := buildDiffFromResponse(snapshot, response)

	e.logger.Info("dev engine run completed",
		zap.String("project_id", diff.ProjectID),
		zap.Int("diff_files", len(diff.Files)),
	)

	return diff, nil
}

// RunFromIndex builds a full snapshot of the index first, then runs.
func (e *DevEngine) RunFromIndex(ctx context.Context, index *domain.WorkspaceIndex, rootPath string, existingDiff *domain.Diff) (*domain.Diff, error) {
	snapshot, err := e.snapshotBuilder.Build(index, rootPath, nil)
	if err != nil {
		return nil, err
	}
	return e.Run(ctx, snapshot, existingDiff)
}

// buildDiffFromResponse emits one DiffFile per snapshot file: before is
// the snapshot content, after is the entire raw response. Replicating
// the whole response per file is a provisional policy kept until a real
// response-parsing stage exists; it guarantees the diff's path set
// equals the snapshot's.
func buildDiffFromResponse(snapshot *domain.Snapshot, responseText string) *domain.Diff {
	diffFiles := make([]domain.DiffFile, 0, len(snapshot.Files))

	for _, file := range snapshot.Files {
		diffFiles = append(diffFiles, domain.DiffFile{
			Path:   file.Path,
			Before: file.Content,
			After:  responseText,
		})
	}

	return &domain.Diff{
		ProjectID: snapshot.ProjectID,
		Files:     diffFiles,
	}
}
