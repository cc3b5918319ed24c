package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"

	"github.com/uthuyomi/ai-workbench/domain"
	"github.com/uthuyomi/ai-workbench/store/contracts"
)

const (
	projectKeyPrefix    = "project:"
	indexKeyPrefix      = "index:"
	latestIndexKeyBase  = "index-latest:"
	directoryPermission = 0o750
)

// BadgerStoreConfig holds the options for opening the embedded store.
type BadgerStoreConfig struct {
	// Path is the directory for the database files. Ignored when
	// InMemory is true.
	Path string `mapstructure:"path"`

	// InMemory keeps everything in RAM. Used by tests.
	InMemory bool `mapstructure:"in_memory"`
}

// BadgerStore persists indexes and projects as JSON values in an
// embedded badger database.
type BadgerStore struct {
	db     *badger.DB
	logger *zap.Logger
}

// NewBadgerStore opens the database and returns the store. The caller
// owns the store and must Close it.
func NewBadgerStore(config BadgerStoreConfig, logger *zap.Logger) (contracts.IWorkspaceStore, error) {
	var options badger.Options
	if config.InMemory {
		options = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if config.Path == "" {
			return nil, errors.New("store path is required for a persistent store")
		}
		if err := os.MkdirAll(config.Path, directoryPermission); err != nil {
			return nil, fmt.Errorf("failed to create store directory %s: %w", config.Path, err)
		}
		options = badger.DefaultOptions(config.Path)
	}
	options = options.WithLogger(&badgerZapLogger{logger: logger})

	db, err := badger.Open(options)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return &BadgerStore{db: db, logger: logger}, nil
}

// SaveIndex stores the index under its project id and version, and
// updates the latest pointer for the project.
func (s *BadgerStore) SaveIndex(index *domain.WorkspaceIndex) error {
	if index.ProjectID == "" {
		return errors.New("index project id is empty")
	}

	value, err := json.Marshal(index)
	if err != nil {
		return fmt.Errorf("failed to encode index: %w", err)
	}

	versionKey := fmt.Sprintf("%s%s:%s", indexKeyPrefix, index.ProjectID, index.IndexVersion)
	latestKey := latestIndexKeyBase + index.ProjectID

	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(versionKey), value); err != nil {
			return err
		}
		return txn.Set([]byte(latestKey), value)
	})
	if err != nil {
		return fmt.Errorf("failed to save index: %w", err)
	}

	s.logger.Info("index saved",
		zap.String("project_id", index.ProjectID),
		zap.String("index_version", index.IndexVersion),
		zap.Int("files", len(index.Files)),
	)
	return nil
}

// LatestIndex returns the most recently saved index for the project,
// or ErrNotFound if the project has none.
func (s *BadgerStore) LatestIndex(projectID string) (*domain.WorkspaceIndex, error) {
	var index domain.WorkspaceIndex
	if err := s.getJSON(latestIndexKeyBase+projectID, &index); err != nil {
		return nil, err
	}
	return &index, nil
}

// SaveProject stores or replaces a project record.
func (s *BadgerStore) SaveProject(project *domain.Project) error {
	if project.ProjectID == "" {
		return errors.New("project id is empty")
	}

	value, err := json.Marshal(project)
	if err != nil {
		return fmt.Errorf("failed to encode project: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(projectKeyPrefix+project.ProjectID), value)
	})
	if err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}
	return nil
}

// GetProject returns the project record, or ErrNotFound.
func (s *BadgerStore) GetProject(projectID string) (*domain.Project, error) {
	var project domain.Project
	if err := s.getJSON(projectKeyPrefix+projectID, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// ListProjects returns all project records sorted by name.
func (s *BadgerStore) ListProjects() ([]*domain.Project, error) {
	var projects []*domain.Project

	err := s.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Prefix = []byte(projectKeyPrefix)
		iterator := txn.NewIterator(options)
		defer iterator.Close()

		for iterator.Rewind(); iterator.Valid(); iterator.Next() {
			err := iterator.Item().Value(func(value []byte) error {
				var project domain.Project
				if err := json.Unmarshal(value, &project); err != nil {
					return fmt.Errorf("failed to decode project: %w", err)
				}
				projects = append(projects, &project)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	sort.Slice(projects, func(i, j int) bool {
		return projects[i].Name < projects[j].Name
	})
	return projects, nil
}

// DeleteProject removes a project record. Deleting a missing project
// returns ErrNotFound. Saved indexes are kept.
func (s *BadgerStore) DeleteProject(projectID string) error {
	key := []byte(projectKeyPrefix + projectID)

	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); err != nil {
			return err
		}
		return txn.Delete(key)
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

func (s *BadgerStore) getJSON(key string, target any) error {
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			return json.Unmarshal(value, target)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to read record: %w", err)
	}
	return nil
}

// badgerZapLogger adapts zap to badger's Logger interface. Badger's
// internal chatter goes out at debug so it never drowns application
// logs.
type badgerZapLogger struct {
	logger *zap.Logger
}

func (l *badgerZapLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerZapLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerZapLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l *badgerZapLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}
