// ABOUTME: Storage handle tying a backend, its namespace store, and the repository together
// ABOUTME: Shared by every build; backend selection from config lives in open.go
package storage

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/harper/carenotes/internal/kv"
)

// Storage is an opened persistence stack
type Storage struct {
	*Repository

	Store   *kv.BlobStore
	Backend kv.Backend
	Kind    string

	closeFn func() error
	syncFn  func(ctx context.Context) error
}

// New builds storage over an already-open backend
func New(backend kv.Backend, kind, namespace string, logger *log.Logger) *Storage {
	if logger == nil {
		logger = log.Default()
	}
	store := kv.NewBlobStore(backend, namespace, logger)
	return &Storage{
		Repository: NewRepository(store, logger),
		Store:      store,
		Backend:    backend,
		Kind:       kind,
	}
}

// NewMemory builds storage that lives only for the process lifetime
func NewMemory(namespace string, logger *log.Logger) (*Storage, error) {
	backend, err := kv.NewMemoryBackend()
	if err != nil {
		return nil, err
	}
	return New(backend, "memory", namespace, logger), nil
}

// Sync pushes and pulls remote data for backends that support it.
// It is a no-op for local backends.
func (s *Storage) Sync(ctx context.Context) error {
	if s.syncFn == nil {
		return nil
	}
	return s.syncFn(ctx)
}

// CanSync reports whether Sync talks to a remote
func (s *Storage) CanSync() bool {
	return s.syncFn != nil
}

// Close releases the backend
func (s *Storage) Close() error {
	if s.closeFn == nil {
		return nil
	}
	err := s.closeFn()
	s.closeFn = nil
	return err
}
