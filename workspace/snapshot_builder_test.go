package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uthuyomi/ai-workbench/domain"
	"github.com/uthuyomi/ai-workbench/logging"
)

func scanTree(t *testing.T, root string) *domain.WorkspaceIndex {
	t.Helper()
	index, err := NewWorkspaceScanner(logging.NewNop()).Scan("proj-1", root)
	require.NoError(t, err)
	return index
}

func TestSnapshotBuilder_AllFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.go", "package a\n")
	writeFile(t, root, "sub/b.go", "package b\n")
	index := scanTree(t, root)

	builder := NewSnapshotBuilder(logging.NewNop())
	snapshot, err := builder.Build(index, root, nil)
	require.NoError(t, err)

	assert.Equal(t, "proj-1", snapshot.ProjectID)
	assert.ElementsMatch(t, index.Paths(), snapshot.Paths())

	content, ok := snapshot.Content("a.go")
	require.True(t, ok)
	assert.Equal(t, "package a\n", content)
}

func TestSnapshotBuilder_TargetFilter(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.go", "package a\n")
	writeFile(t, root, "b.go", "package b\n")
	index := scanTree(t, root)

	builder := NewSnapshotBuilder(logging.NewNop())
	snapshot, err := builder.Build(index, root, []string{"a.go"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.go"}, snapshot.Paths())
}

func TestSnapshotBuilder_UnknownTargetsIgnored(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.go", "package a\n")
	index := scanTree(t, root)

	builder := NewSnapshotBuilder(logging.NewNop())
	snapshot, err := builder.Build(index, root, []string{"a.go", "ghost.go"})
	require.NoError(t, err)

	// Targets the index does not contain are dropped, not errors.
	assert.Equal(t, []string{"a.go"}, snapshot.Paths())
}

func TestSnapshotBuilder_EmptyTargetListSelectsNothing(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.go", "package a\n")
	index := scanTree(t, root)

	builder := NewSnapshotBuilder(logging.NewNop())
	snapshot, err := builder.Build(index, root, []string{})
	require.NoError(t, err)

	// Nil means all files; an empty non-nil list means none.
	assert.Empty(t, snapshot.Files)
}

func TestSnapshotBuilder_SkipsDriftedFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "kept.go", "package kept\n")
	writeFile(t, root, "removed.go", "package removed\n")
	index := scanTree(t, root)

	// The tree drifts after indexing.
	require.NoError(t, os.Remove(filepath.Join(root, "removed.go")))

	builder := NewSnapshotBuilder(logging.NewNop())
	snapshot, err := builder.Build(index, root, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"kept.go"}, snapshot.Paths())
}

func TestSnapshotBuilder_SkipsBinaryContent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "text.go", "package text\n")
	require.NoError(t, os.WriteFile(filepath.Join(root, "blob.bin"), []byte{0xff, 0xfe, 0x00, 0x80}, 0o644))
	index := scanTree(t, root)
	require.Len(t, index.Files, 2)

	builder := NewSnapshotBuilder(logging.NewNop())
	snapshot, err := builder.Build(index, root, nil)
	require.NoError(t, err)

	// Indexed but undecodable content is absorbed, never fatal.
	assert.Equal(t, []string{"text.go"}, snapshot.Paths())
}

func TestSnapshotBuilder_InvalidRoot(t *testing.T) {
	index := domain.NewWorkspaceIndex("proj-1", nil)

	builder := NewSnapshotBuilder(logging.NewNop())
	_, err := builder.Build(index, filepath.Join(t.TempDir(), "missing"), nil)
	assert.ErrorIs(t, err, ErrInvalidRoot)
}

func TestSnapshotBuilder_Idempotent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.go", "package a\n")
	writeFile(t, root, "b.go", "package b\n")
	index := scanTree(t, root)

	builder := NewSnapshotBuilder(logging.NewNop())
	first, err := builder.Build(index, root, nil)
	require.NoError(t, err)
	second, err := builder.Build(index, root, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
