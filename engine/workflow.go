package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/uthuyomi/ai-workbench/domain"
	"github.com/uthuyomi/ai-workbench/engine/contracts"
)

// Workflow is the conductor: it resolves the mode, dispatches to the
// engine, and returns the result. It performs no I/O and keeps no state,
// so independent callers may share one instance.
type Workflow struct {
	modeRouter *ModeRouter
	devEngine  contracts.IDevEngine
	logger     *zap.Logger
}

// NewWorkflow initializes a workflow with its injected collaborators.
func NewWorkflow(modeRouter *ModeRouter, devEngine contracts.IDevEngine, logger *zap.Logger) contracts.IWorkflow {
	return &Workflow{
		modeRouter: modeRouter,
		devEngine:  devEngine,
		logger:     logger,
	}
}

// Execute runs the pipeline on a pre-built snapshot: resolve mode, then
// dispatch. Errors are not absorbed here; the caller reports them.
func (w *Workflow) Execute(ctx context.Context, snapshot *domain.Snapshot, requestedMode string, existingDiff *domain.Diff) (*domain.Diff, error) {
	w.logger.Info("workflow execution started", zap.String("project_id", snapshot.ProjectID))

	return w.run(requestedMode, func() (*domain.Diff, error) {
		return w.devEngine.Run(ctx, snapshot, existingDiff)
	})
}

// ExecuteFromIndex is the index-origin entry point: the engine builds
// the snapshot itself (no target filter) before running.
func (w *Workflow) ExecuteFromIndex(ctx context.Context, index *domain.WorkspaceIndex, rootPath string, requestedMode string, existingDiff *domain.Diff) (*domain.Diff, error) {
	w.logger.Info("workflow execution started from index",
		zap.String("project_id", index.ProjectID),
		zap.Int("indexed_files", len(index.Files)),
	)

	return w.run(requestedMode, func() (*domain.Diff, error) {
		return w.devEngine.RunFromIndex(ctx, index, rootPath, existingDiff)
	})
}

// run resolves the mode and dispatches. Every Mode constant must be
// handled explicitly; the default branch is the safety net for
// incomplete dispatch, not a fallback.
func (w *Workflow) run(requestedMode string, devRun func() (*domain.Diff, error)) (*domain.Diff, error) {
	mode := w.modeRouter.Resolve(requestedMode)
	w.logger.Info("workflow mode resolved", zap.String("mode", string(mode)))

	var diff *domain.Diff
	var err error

	switch mode {
	case ModeDev:
		diff, err = devRun()
	case ModeCasual:
		// Casual mode is reserved for the expression layer; until that
		// lands it takes the dev route.
		w.logger.Info("casual mode currently falls back to dev flow")
		diff, err = devRun()
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnhandledMode, mode)
	}
	if err != nil {
		return nil, err
	}

	w.logger.Info("workflow execution completed", zap.Int("diff_files", len(diff.Files)))
	return diff, nil
}
