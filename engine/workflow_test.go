package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uthuyomi/ai-workbench/domain"
	"github.com/uthuyomi/ai-workbench/logging"
)

// fakeDevEngine records how it was invoked and returns a fixed diff.
type fakeDevEngine struct {
	diff          *domain.Diff
	err           error
	runCalls      int
	fromIndexCall int
}

func (f *fakeDevEngine) Run(_ context.Context, _ *domain.Snapshot, _ *domain.Diff) (*domain.Diff, error) {
	f.runCalls++
	return f.diff, f.err
}

func (f *fakeDevEngine) RunFromIndex(_ context.Context, _ *domain.WorkspaceIndex, _ string, _ *domain.Diff) (*domain.Diff, error) {
	f.fromIndexCall++
	return f.diff, f.err
}

func TestWorkflow_ExecuteDispatchesToDev(t *testing.T) {
	expected := &domain.Diff{ProjectID: "proj-1"}
	devEngine := &fakeDevEngine{diff: expected}
	workflow := NewWorkflow(NewModeRouter(logging.NewNop()), devEngine, logging.NewNop())

	for _, mode := range []string{"", "dev", "casual", "bogus"} {
		diff, err := workflow.Execute(context.Background(), &domain.Snapshot{ProjectID: "proj-1"}, mode, nil)
		require.NoError(t, err)
		assert.Same(t, expected, diff)
	}

	// Every requested mode currently reaches the dev engine.
	assert.Equal(t, 4, devEngine.runCalls)
}

func TestWorkflow_ExecuteFromIndex(t *testing.T) {
	expected := &domain.Diff{ProjectID: "proj-1"}
	devEngine := &fakeDevEngine{diff: expected}
	workflow := NewWorkflow(NewModeRouter(logging.NewNop()), devEngine, logging.NewNop())

	index := domain.NewWorkspaceIndex("proj-1", nil)
	diff, err := workflow.ExecuteFromIndex(context.Background(), index, t.TempDir(), "dev", nil)
	require.NoError(t, err)

	assert.Same(t, expected, diff)
	assert.Equal(t, 1, devEngine.fromIndexCall)
	assert.Zero(t, devEngine.runCalls)
}

func TestWorkflow_EngineFailurePropagates(t *testing.T) {
	engineErr := errors.New("synthesis failed: boom")
	devEngine := &fakeDevEngine{err: engineErr}
	workflow := NewWorkflow(NewModeRouter(logging.NewNop()), devEngine, logging.NewNop())

	diff, err := workflow.Execute(context.Background(), &domain.Snapshot{ProjectID: "proj-1"}, "dev", nil)
	assert.Nil(t, diff)
	assert.ErrorIs(t, err, engineErr)
}
