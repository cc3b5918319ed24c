// Package workspace maps a directory tree into the backend's structural
// view of it and reads file content back out on demand. The scanner and
// the snapshot builder are stateless; every call works only from its
// arguments.
package workspace

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/uthuyomi/ai-workbench/domain"
	"github.com/uthuyomi/ai-workbench/workspace/contracts"
)

// hashChunkSize bounds memory while hashing large files.
const hashChunkSize = 8192

// WorkspaceScanner walks a workspace root and builds a WorkspaceIndex.
// It records structure only: relative paths and content hashes. Language,
// import and export data are left for the analysis stage.
type WorkspaceScanner struct {
	logger *zap.Logger
}

// NewWorkspaceScanner initializes a scanner.
func NewWorkspaceScanner(logger *zap.Logger) contracts.IWorkspaceScanner {
	return &WorkspaceScanner{logger: logger}
}

// Scan recursively walks rootPath and returns the index of every
// non-ignored, hashable file. Ignored directories are pruned before
// descent. Files that cannot be opened are logged and omitted; they never
// abort the scan. A missing or non-directory root fails with
// ErrInvalidRoot.
func (s *WorkspaceScanner) Scan(projectID string, rootPath string) (*domain.WorkspaceIndex, error) {
	s.logger.Info("workspace scan started",
		zap.String("project_id", projectID),
		zap.String("root_path", rootPath),
	)

	if err := validateRoot(rootPath); err != nil {
		return nil, err
	}

	var files []domain.WorkspaceFile

	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable directory entries are expected environmental
			// variance, same as unreadable files.
			s.logger.Info("skipped unreadable entry", zap.String("path", path), zap.Error(err))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != rootPath && IsIgnoredDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if IsIgnoredFile(d.Name()) {
			return nil
		}

		relPath, err := filepath.Rel(rootPath, path)
		if err != nil {
			s.logger.Info("skipped unresolvable path", zap.String("path", path), zap.Error(err))
			return nil
		}

		fileHash, err := hashFile(path)
		if err != nil {
			s.logger.Info("skipped unreadable file", zap.String("path", path), zap.Error(err))
			return nil
		}

		files = append(files, domain.WorkspaceFile{
			Path: filepath.ToSlash(relPath),
			Hash: fileHash,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	index := domain.NewWorkspaceIndex(projectID, files)

	s.logger.Info("workspace scan completed",
		zap.String("project_id", projectID),
		zap.Int("files", len(index.Files)),
	)

	return index, nil
}

// hashFile computes the hex SHA-256 digest of a file, streaming in fixed
// size chunks so large files never load whole into memory.
func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	buf := make([]byte, hashChunkSize)
	if _, err := io.CopyBuffer(h, f, buf); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
