// Package domain holds the data structures shared by the scanning,
// snapshot and synthesis layers. Values are treated as immutable once
// built: a changed tree produces a new WorkspaceIndex, never an in-place
// update.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// WorkspaceFile is a single file inside a WorkspaceIndex. It carries
// structure only, never file content. Language, imports, exports and
// dependencies stay empty until the analysis stage fills them in.
type WorkspaceFile struct {
	// Path relative to the workspace root, forward-slash separated.
	Path string `json:"path"`

	Language string `json:"language,omitempty"`

	// Hex SHA-256 digest of the file bytes. Empty when the file could not
	// be hashed.
	Hash string `json:"hash,omitempty"`

	Imports      []string `json:"imports"`
	Exports      []string `json:"exports"`
	Dependencies []string `json:"dependencies"`
}

// WorkspaceIndex is the content-free structural map of a workspace:
// paths and hashes, nothing else. It is the only reference the snapshot
// builder consults when deciding what may be read from disk.
type WorkspaceIndex struct {
	ProjectID    string          `json:"project_id"`
	IndexVersion string          `json:"index_version"`
	GeneratedAt  string          `json:"generated_at"`
	Files        []WorkspaceFile `json:"files"`
}

// NewWorkspaceIndex builds an index with a fresh version token. The files
// slice is copied so later mutation by the caller cannot leak in.
func NewWorkspaceIndex(projectID string, files []WorkspaceFile) *WorkspaceIndex {
	copied := make([]WorkspaceFile, len(files))
	copy(copied, files)

	return &WorkspaceIndex{
		ProjectID:    projectID,
		IndexVersion: uuid.NewString(),
		GeneratedAt:  time.Now().UTC().Format(time.RFC3339),
		Files:        copied,
	}
}

// Paths returns the relative paths of all indexed files, in index order.
func (w *WorkspaceIndex) Paths() []string {
	paths := make([]string, 0, len(w.Files))
	for _, f := range w.Files {
		paths = append(paths, f.Path)
	}
	return paths
}

// ContainsPath reports whether the index knows the given relative path.
func (w *WorkspaceIndex) ContainsPath(path string) bool {
	for _, f := range w.Files {
		if f.Path == path {
			return true
		}
	}
	return false
}
