package workspace

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uthuyomi/ai-workbench/logging"
)

func writeFile(t *testing.T, root string, relPath string, content string) {
	t.Helper()
	fullPath := filepath.Join(root, filepath.FromSlash(relPath))
	require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0o755))
	require.NoError(t, os.WriteFile(fullPath, []byte(content), 0o644))
}

func TestWorkspaceScanner_Scan(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.go", "package main\n")
	writeFile(t, root, "internal/util.go", "package internal\n")

	scanner := NewWorkspaceScanner(logging.NewNop())
	index, err := scanner.Scan("proj-1", root)
	require.NoError(t, err)

	assert.Equal(t, "proj-1", index.ProjectID)
	assert.NotEmpty(t, index.IndexVersion)
	assert.ElementsMatch(t, []string{"main.go", "internal/util.go"}, index.Paths())

	// Paths are relative with forward slashes, even on Windows.
	for _, p := range index.Paths() {
		assert.NotContains(t, p, "\\")
		assert.False(t, filepath.IsAbs(p))
	}
}

func TestWorkspaceScanner_HashMatchesContent(t *testing.T) {
	root := t.TempDir()
	content := "hello workspace\n"
	writeFile(t, root, "a.txt", content)

	scanner := NewWorkspaceScanner(logging.NewNop())
	index, err := scanner.Scan("proj-1", root)
	require.NoError(t, err)
	require.Len(t, index.Files, 1)

	sum := sha256.Sum256([]byte(content))
	assert.Equal(t, hex.EncodeToString(sum[:]), index.Files[0].Hash)
}

func TestWorkspaceScanner_IgnoredEntries(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "kept.go", "package kept\n")
	writeFile(t, root, ".git/config", "[core]\n")
	writeFile(t, root, "node_modules/pkg/index.js", "module.exports = {}\n")
	writeFile(t, root, "Cargo.lock", "lock\n")
	writeFile(t, root, "go.sum", "sum\n")

	scanner := NewWorkspaceScanner(logging.NewNop())
	index, err := scanner.Scan("proj-1", root)
	require.NoError(t, err)

	// Ignored directories and files contribute zero entries.
	assert.Equal(t, []string{"kept.go"}, index.Paths())
}

func TestWorkspaceScanner_InvalidRoot(t *testing.T) {
	scanner := NewWorkspaceScanner(logging.NewNop())

	_, err := scanner.Scan("proj-1", filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, ErrInvalidRoot)

	root := t.TempDir()
	writeFile(t, root, "file.txt", "not a dir\n")
	_, err = scanner.Scan("proj-1", filepath.Join(root, "file.txt"))
	assert.ErrorIs(t, err, ErrInvalidRoot)
}

func TestWorkspaceScanner_EmptyTree(t *testing.T) {
	scanner := NewWorkspaceScanner(logging.NewNop())

	index, err := scanner.Scan("proj-1", t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, index.Files)
}
