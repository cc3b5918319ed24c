package contracts

import "github.com/uthuyomi/ai-workbench/domain"

// IWorkspaceScanner walks a workspace root and produces its structural
// index: paths and content hashes, no file content.
type IWorkspaceScanner interface {
	Scan(projectID string, rootPath string) (*domain.WorkspaceIndex, error)
}

// ISnapshotBuilder reads real file content for a subset of an index.
// A nil targetPaths selects every indexed file; target paths the index
// does not know are ignored.
type ISnapshotBuilder interface {
	Build(index *domain.WorkspaceIndex, rootPath string, targetPaths []string) (*domain.Snapshot, error)
}
