package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uthuyomi/ai-workbench/domain"
	"github.com/uthuyomi/ai-workbench/logging"
	"github.com/uthuyomi/ai-workbench/store"
	storeContracts "github.com/uthuyomi/ai-workbench/store/contracts"
	"github.com/uthuyomi/ai-workbench/workspace"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeScanner struct {
	index *domain.WorkspaceIndex
	err   error
}

func (f *fakeScanner) Scan(projectID string, _ string) (*domain.WorkspaceIndex, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.index != nil {
		return f.index, nil
	}
	return domain.NewWorkspaceIndex(projectID, nil), nil
}

type fakeSnapshotBuilder struct {
	snapshot *domain.Snapshot
	err      error
}

func (f *fakeSnapshotBuilder) Build(index *domain.WorkspaceIndex, _ string, _ []string) (*domain.Snapshot, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.snapshot != nil {
		return f.snapshot, nil
	}
	return &domain.Snapshot{ProjectID: index.ProjectID}, nil
}

type fakeAnalyzer struct {
	err error
}

func (f *fakeAnalyzer) Enrich(index *domain.WorkspaceIndex, _ string) (*domain.WorkspaceIndex, error) {
	if f.err != nil {
		return nil, f.err
	}
	return index, nil
}

type fakeWorkflow struct {
	diff *domain.Diff
	err  error
}

func (f *fakeWorkflow) Execute(_ context.Context, snapshot *domain.Snapshot, _ string, _ *domain.Diff) (*domain.Diff, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.diff != nil {
		return f.diff, nil
	}
	return &domain.Diff{ProjectID: snapshot.ProjectID}, nil
}

func (f *fakeWorkflow) ExecuteFromIndex(_ context.Context, index *domain.WorkspaceIndex, _ string, _ string, _ *domain.Diff) (*domain.Diff, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.diff != nil {
		return f.diff, nil
	}
	return &domain.Diff{ProjectID: index.ProjectID}, nil
}

type testServer struct {
	router *gin.Engine
	store  storeContracts.IWorkspaceStore
}

func newTestServer(t *testing.T, scanner *fakeScanner, workflow *fakeWorkflow) *testServer {
	t.Helper()

	workspaceStore, err := store.NewBadgerStore(store.BadgerStoreConfig{InMemory: true}, logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = workspaceStore.Close() })

	srv := NewServer(
		ServerConfig{Host: "127.0.0.1", Port: 0},
		scanner,
		&fakeSnapshotBuilder{},
		&fakeAnalyzer{},
		workflow,
		workspaceStore,
		logging.NewNop(),
	)
	return &testServer{router: srv.Router(), store: workspaceStore}
}

func (ts *testServer) do(t *testing.T, method string, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	ts.router.ServeHTTP(recorder, req)
	return recorder
}

func TestServer_Healthz(t *testing.T) {
	ts := newTestServer(t, &fakeScanner{}, &fakeWorkflow{})

	recorder := ts.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"status":"ok"}`, recorder.Body.String())
}

func TestServer_WorkspaceScan(t *testing.T) {
	index := domain.NewWorkspaceIndex("proj-1", []domain.WorkspaceFile{{Path: "main.go", Hash: "abc"}})
	ts := newTestServer(t, &fakeScanner{index: index}, &fakeWorkflow{})

	recorder := ts.do(t, http.MethodPost, "/workspace/scan", map[string]any{
		"project_id": "proj-1",
		"root_path":  "/workspace",
		"save":       true,
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), domain.Fingerprint(index))

	// --save persisted the index, so it is now retrievable.
	getRecorder := ts.do(t, http.MethodGet, "/workspace/proj-1", nil)
	assert.Equal(t, http.StatusOK, getRecorder.Code)
}

func TestServer_WorkspaceScanValidation(t *testing.T) {
	ts := newTestServer(t, &fakeScanner{}, &fakeWorkflow{})

	recorder := ts.do(t, http.MethodPost, "/workspace/scan", map[string]any{"project_id": "proj-1"})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestServer_WorkspaceScanInvalidRoot(t *testing.T) {
	scanner := &fakeScanner{err: fmt.Errorf("%w: /missing does not exist", workspace.ErrInvalidRoot)}
	ts := newTestServer(t, scanner, &fakeWorkflow{})

	recorder := ts.do(t, http.MethodPost, "/workspace/scan", map[string]any{
		"project_id": "proj-1",
		"root_path":  "/missing",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestServer_WorkspaceGetMissing(t *testing.T) {
	ts := newTestServer(t, &fakeScanner{}, &fakeWorkflow{})

	recorder := ts.do(t, http.MethodGet, "/workspace/nobody", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestServer_SnapshotBuildNeedsStoredIndex(t *testing.T) {
	ts := newTestServer(t, &fakeScanner{}, &fakeWorkflow{})

	recorder := ts.do(t, http.MethodPost, "/snapshot/build", map[string]any{
		"project_id": "proj-1",
		"root_path":  "/workspace",
	})
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestServer_Chat(t *testing.T) {
	ts := newTestServer(t, &fakeScanner{}, &fakeWorkflow{})

	index := domain.NewWorkspaceIndex("proj-1", nil)
	require.NoError(t, ts.store.SaveIndex(index))

	recorder := ts.do(t, http.MethodPost, "/chat", map[string]any{
		"project_id": "proj-1",
		"root_path":  "/workspace",
		"mode":       "dev",
	})
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "proj-1")
}

func TestServer_ChatFailureMapsTo500(t *testing.T) {
	workflow := &fakeWorkflow{err: fmt.Errorf("synthesis failed: model unavailable")}
	ts := newTestServer(t, &fakeScanner{}, workflow)

	index := domain.NewWorkspaceIndex("proj-1", nil)
	require.NoError(t, ts.store.SaveIndex(index))

	recorder := ts.do(t, http.MethodPost, "/chat", map[string]any{
		"project_id": "proj-1",
		"root_path":  "/workspace",
	})
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestServer_ChatSnapshot(t *testing.T) {
	ts := newTestServer(t, &fakeScanner{}, &fakeWorkflow{})

	recorder := ts.do(t, http.MethodPost, "/chat/snapshot", map[string]any{
		"snapshot": map[string]any{
			"project_id": "proj-1",
			"files":      []map[string]string{{"path": "main.go", "content": "package main\n"}},
		},
	})
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestServer_ChatSnapshotValidation(t *testing.T) {
	ts := newTestServer(t, &fakeScanner{}, &fakeWorkflow{})

	recorder := ts.do(t, http.MethodPost, "/chat/snapshot", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestServer_ProjectLifecycle(t *testing.T) {
	ts := newTestServer(t, &fakeScanner{}, &fakeWorkflow{})

	createRecorder := ts.do(t, http.MethodPost, "/project", map[string]any{
		"name":        "backend",
		"description": "the backend service",
	})
	require.Equal(t, http.StatusCreated, createRecorder.Code)

	var created struct {
		Project domain.Project `json:"project"`
	}
	require.NoError(t, json.Unmarshal(createRecorder.Body.Bytes(), &created))
	require.NotEmpty(t, created.Project.ProjectID)

	getRecorder := ts.do(t, http.MethodGet, "/project/"+created.Project.ProjectID, nil)
	assert.Equal(t, http.StatusOK, getRecorder.Code)

	listRecorder := ts.do(t, http.MethodGet, "/project", nil)
	assert.Equal(t, http.StatusOK, listRecorder.Code)
	assert.Contains(t, listRecorder.Body.String(), "backend")
}

func TestServer_ProjectCreateValidation(t *testing.T) {
	ts := newTestServer(t, &fakeScanner{}, &fakeWorkflow{})

	recorder := ts.do(t, http.MethodPost, "/project", map[string]any{"description": "nameless"})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestServer_ProjectGetMissing(t *testing.T) {
	ts := newTestServer(t, &fakeScanner{}, &fakeWorkflow{})

	recorder := ts.do(t, http.MethodGet, "/project/nobody", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
