package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	analysisContracts "github.com/uthuyomi/ai-workbench/analysis/contracts"
	engineContracts "github.com/uthuyomi/ai-workbench/engine/contracts"
	storeContracts "github.com/uthuyomi/ai-workbench/store/contracts"
	workspaceContracts "github.com/uthuyomi/ai-workbench/workspace/contracts"
)

// ServerConfig holds the listen address for the HTTP transport.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Server exposes the pipeline over HTTP. Handlers validate the request
// shape and delegate; they contain no pipeline logic of their own.
type Server struct {
	config          ServerConfig
	scanner         workspaceContracts.IWorkspaceScanner
	snapshotBuilder workspaceContracts.ISnapshotBuilder
	analyzer        analysisContracts.ICodeAnalyzer
	workflow        engineContracts.IWorkflow
	store           storeContracts.IWorkspaceStore
	logger          *zap.Logger
}

func NewServer(
	config ServerConfig,
	scanner workspaceContracts.IWorkspaceScanner,
	snapshotBuilder workspaceContracts.ISnapshotBuilder,
	analyzer analysisContracts.ICodeAnalyzer,
	workflow engineContracts.IWorkflow,
	store storeContracts.IWorkspaceStore,
	logger *zap.Logger,
) *Server {
	return &Server{
		config:          config,
		scanner:         scanner,
		snapshotBuilder: snapshotBuilder,
		analyzer:        analyzer,
		workflow:        workflow,
		store:           store,
		logger:          logger,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.requestLogger())

	router.GET("/healthz", s.handleHealth)

	router.POST("/workspace/scan", s.handleWorkspaceScan)
	router.GET("/workspace/:project_id", s.handleWorkspaceGet)

	router.POST("/snapshot/build", s.handleSnapshotBuild)

	router.POST("/chat", s.handleChat)
	router.POST("/chat/snapshot", s.handleChatSnapshot)

	router.POST("/project", s.handleProjectCreate)
	router.GET("/project", s.handleProjectList)
	router.GET("/project/:project_id", s.handleProjectGet)

	return router
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	address := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	httpServer := &http.Server{
		Addr:    address,
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", zap.String("address", address))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server failed: %w", err)
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
