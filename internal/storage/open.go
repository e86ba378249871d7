//go:build !(js && wasm)

// ABOUTME: Opens the storage backend chosen by configuration
// ABOUTME: file, memory, charm, or sqlite, each behind the same namespace store
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/harper/carenotes/internal/charm"
	"github.com/harper/carenotes/internal/config"
	"github.com/harper/carenotes/internal/kv"
	"github.com/harper/carenotes/internal/storage/sqlite"
)

// syncBaseDelay is the first backoff step for Charm sync retries
const syncBaseDelay = 500 * time.Millisecond

// Open builds the storage stack for cfg.Backend
func Open(cfg *config.Config, logger *log.Logger) (*Storage, error) {
	if logger == nil {
		logger = log.Default()
	}

	switch cfg.Backend {
	case config.BackendMemory:
		return NewMemory(cfg.Namespace, logger)

	case config.BackendFile:
		backend, err := kv.NewOSBackend(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		logger.Debug("opened file storage", "dir", cfg.DataDir)
		return New(backend, cfg.Backend, cfg.Namespace, logger), nil

	case config.BackendSQLite:
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite storage: %w", err)
		}
		logger.Debug("opened sqlite storage", "path", cfg.SQLitePath)
		s := New(db, cfg.Backend, cfg.Namespace, logger)
		s.closeFn = db.Close
		return s, nil

	case config.BackendCharm:
		client, err := charm.NewClient(&charm.Config{
			Host:        cfg.CharmHost,
			DBName:      cfg.CharmDBName,
			AutoSync:    cfg.AutoSync,
			SyncRetries: cfg.SyncRetries,
			Logger:      logger,
		})
		if err != nil {
			return nil, err
		}
		logger.Debug("opened charm storage", "host", cfg.CharmHost, "db", cfg.CharmDBName)
		s := New(client, cfg.Backend, cfg.Namespace, logger)
		s.closeFn = client.Close
		s.syncFn = func(ctx context.Context) error {
			return client.SyncWithRetry(ctx, syncBaseDelay)
		}
		return s, nil
	}

	return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
}

// CharmClient returns the Charm client behind s, if s uses the charm backend
func (s *Storage) CharmClient() (*charm.Client, bool) {
	c, ok := s.Backend.(*charm.Client)
	return c, ok
}

// SQLiteDB returns the SQLite database behind s, if s uses the sqlite backend
func (s *Storage) SQLiteDB() (*sqlite.DB, bool) {
	db, ok := s.Backend.(*sqlite.DB)
	return db, ok
}
