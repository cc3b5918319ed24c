package domain

import (
	"time"

	"github.com/google/uuid"
)

// Project is the logical unit a workspace index belongs to. It carries
// metadata only; workspace structure and content live in WorkspaceIndex
// and Snapshot.
type Project struct {
	ProjectID   string `json:"project_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// NewProject creates a project record with a generated id.
func NewProject(name, description string) *Project {
	return &Project{
		ProjectID:   uuid.NewString(),
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
}
