package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/uthuyomi/ai-workbench/domain"
	"github.com/uthuyomi/ai-workbench/store"
	"github.com/uthuyomi/ai-workbench/workspace"
)

type scanRequest struct {
	ProjectID string `json:"project_id"`
	RootPath  string `json:"root_path"`
	Analyze   bool   `json:"analyze"`
	Save      bool   `json:"save"`
}

type snapshotBuildRequest struct {
	ProjectID   string   `json:"project_id"`
	RootPath    string   `json:"root_path"`
	TargetPaths []string `json:"target_paths"`
}

type chatRequest struct {
	ProjectID    string       `json:"project_id"`
	RootPath     string       `json:"root_path"`
	Mode         string       `json:"mode"`
	ExistingDiff *domain.Diff `json:"existing_diff"`
}

type chatSnapshotRequest struct {
	Snapshot     *domain.Snapshot `json:"snapshot"`
	Mode         string           `json:"mode"`
	ExistingDiff *domain.Diff     `json:"existing_diff"`
}

type projectCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Server) handleWorkspaceScan(c *gin.Context) {
	var req scanRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.ProjectID == "" || req.RootPath == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project_id and root_path are required"})
		return
	}

	index, err := s.scanner.Scan(req.ProjectID, req.RootPath)
	if err != nil {
		s.respondError(c, err)
		return
	}

	if req.Analyze {
		index, err = s.analyzer.Enrich(index, req.RootPath)
		if err != nil {
			s.respondError(c, err)
			return
		}
	}

	if req.Save {
		if err := s.store.SaveIndex(index); err != nil {
			s.respondError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"index":       index,
		"fingerprint": domain.Fingerprint(index),
	})
}

func (s *Server) handleWorkspaceGet(c *gin.Context) {
	projectID := c.Param("project_id")

	index, err := s.store.LatestIndex(projectID)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"index":       index,
		"fingerprint": domain.Fingerprint(index),
	})
}

func (s *Server) handleSnapshotBuild(c *gin.Context) {
	var req snapshotBuildRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.ProjectID == "" || req.RootPath == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project_id and root_path are required"})
		return
	}

	index, err := s.store.LatestIndex(req.ProjectID)
	if err != nil {
		s.respondError(c, err)
		return
	}

	snapshot, err := s.snapshotBuilder.Build(index, req.RootPath, req.TargetPaths)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"snapshot": snapshot})
}

func (s *Server) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.ProjectID == "" || req.RootPath == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project_id and root_path are required"})
		return
	}

	index, err := s.store.LatestIndex(req.ProjectID)
	if err != nil {
		s.respondError(c, err)
		return
	}

	diff, err := s.workflow.ExecuteFromIndex(c.Request.Context(), index, req.RootPath, req.Mode, req.ExistingDiff)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"diff": diff})
}

func (s *Server) handleChatSnapshot(c *gin.Context) {
	var req chatSnapshotRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Snapshot == nil || req.Snapshot.ProjectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "snapshot with project_id is required"})
		return
	}

	diff, err := s.workflow.Execute(c.Request.Context(), req.Snapshot, req.Mode, req.ExistingDiff)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"diff": diff})
}

func (s *Server) handleProjectCreate(c *gin.Context) {
	var req projectCreateRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	project := domain.NewProject(req.Name, req.Description)
	if err := s.store.SaveProject(project); err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"project": project})
}

func (s *Server) handleProjectList(c *gin.Context) {
	projects, err := s.store.ListProjects()
	if err != nil {
		s.respondError(c, err)
		return
	}
	if projects == nil {
		projects = []*domain.Project{}
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

func (s *Server) handleProjectGet(c *gin.Context) {
	project, err := s.store.GetProject(c.Param("project_id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": project})
}

// respondError maps error classes to HTTP statuses: bad input to 400,
// missing records to 404, everything else to 500.
func (s *Server) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, workspace.ErrInvalidRoot):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		s.logger.Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
