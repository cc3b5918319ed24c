package contracts

import "github.com/uthuyomi/ai-workbench/domain"

// ICodeAnalyzer enriches a WorkspaceIndex with language tags and
// import/export symbols extracted from source. Enrich never mutates its
// input; it returns a new index.
type ICodeAnalyzer interface {
	Enrich(index *domain.WorkspaceIndex, rootPath string) (*domain.WorkspaceIndex, error)
}
