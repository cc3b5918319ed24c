package contracts

import "github.com/uthuyomi/ai-workbench/domain"

// IWorkspaceStore persists workspace indexes and project records. The
// pipeline itself never touches the store; only the CLI and the HTTP
// server wire it in.
type IWorkspaceStore interface {
	SaveIndex(index *domain.WorkspaceIndex) error
	LatestIndex(projectID string) (*domain.WorkspaceIndex, error)

	SaveProject(project *domain.Project) error
	GetProject(projectID string) (*domain.Project, error)
	ListProjects() ([]*domain.Project, error)
	DeleteProject(projectID string) error

	Close() error
}
