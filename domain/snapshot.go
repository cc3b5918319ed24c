package domain

// SnapshotFile is one file inside a Snapshot: relative path plus the full
// file content, verbatim. The path always corresponds to an entry of the
// WorkspaceIndex the snapshot was built from.
type SnapshotFile struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// Snapshot is the content-bearing subset view of a WorkspaceIndex, read
// from disk on demand. Files the index lists but that could not be read
// are simply absent; a Snapshot never carries errors. Snapshots are
// request-scoped and not persisted.
type Snapshot struct {
	ProjectID string         `json:"project_id"`
	Files     []SnapshotFile `json:"files"`
}

// Paths returns the snapshot's relative paths in snapshot order.
func (s *Snapshot) Paths() []string {
	paths := make([]string, 0, len(s.Files))
	for _, f := range s.Files {
		paths = append(paths, f.Path)
	}
	return paths
}

// Content returns the content recorded for path, if present.
func (s *Snapshot) Content(path string) (string, bool) {
	for _, f := range s.Files {
		if f.Path == path {
			return f.Content, true
		}
	}
	return "", false
}
