package workspace

import (
	"os"
	"path/filepath"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/uthuyomi/ai-workbench/domain"
	"github.com/uthuyomi/ai-workbench/workspace/contracts"
)

// SnapshotBuilder turns a WorkspaceIndex back into real file content.
// The index is the only authority over which paths may be read; the
// builder never discovers files on its own.
type SnapshotBuilder struct {
	logger *zap.Logger
}

// NewSnapshotBuilder initializes a snapshot builder.
func NewSnapshotBuilder(logger *zap.Logger) contracts.ISnapshotBuilder {
	return &SnapshotBuilder{logger: logger}
}

// Build reads the content of the index's files under rootPath. A nil
// targetPaths means every indexed file; otherwise only indexed paths that
// are members of targetPaths are read, and target paths the index does
// not contain are silently ignored. The tree may have drifted since
// indexing: files that are missing, not regular, unreadable or not valid
// UTF-8 are logged and skipped, never fatal. Content is carried verbatim.
func (b *SnapshotBuilder) Build(index *domain.WorkspaceIndex, rootPath string, targetPaths []string) (*domain.Snapshot, error) {
	b.logger.Info("snapshot build started",
		zap.String("project_id", index.ProjectID),
		zap.Int("target_paths", len(targetPaths)),
	)

	if err := validateRoot(rootPath); err != nil {
		return nil, err
	}

	var targets map[string]struct{}
	if targetPaths != nil {
		targets = make(map[string]struct{}, len(targetPaths))
		for _, p := range targetPaths {
			targets[p] = struct{}{}
		}
	}

	var files []domain.SnapshotFile

	for _, wf := range index.Files {
		if targets != nil {
			if _, ok := targets[wf.Path]; !ok {
				continue
			}
		}

		fullPath := filepath.Clean(filepath.Join(rootPath, filepath.FromSlash(wf.Path)))

		info, err := os.Stat(fullPath)
		if err != nil {
			b.logger.Info("snapshot skipped missing file", zap.String("path", fullPath))
			continue
		}
		if !info.Mode().IsRegular() {
			b.logger.Info("snapshot skipped non-regular file", zap.String("path", fullPath))
			continue
		}

		content, err := os.ReadFile(fullPath)
		if err != nil {
			b.logger.Info("snapshot skipped unreadable file", zap.String("path", fullPath), zap.Error(err))
			continue
		}
		if !utf8.Valid(content) {
			// Binary files are expected to land here; they are treated as
			// unreadable rather than fatal.
			b.logger.Info("snapshot skipped undecodable file", zap.String("path", fullPath))
			continue
		}

		files = append(files, domain.SnapshotFile{
			Path:    wf.Path,
			Content: string(content),
		})
	}

	snapshot := &domain.Snapshot{
		ProjectID: index.ProjectID,
		Files:     files,
	}

	b.logger.Info("snapshot build completed",
		zap.String("project_id", snapshot.ProjectID),
		zap.Int("files", len(snapshot.Files)),
	)

	return snapshot, nil
}
