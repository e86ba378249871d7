// ABOUTME: Key-value store over a single serialized namespace blob
// ABOUTME: Every operation re-reads and rewrites the whole blob; failures are logged, never returned
package kv

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
)

// Store is a string-keyed JSON value store.
// Reads of missing or unreadable data report absence; writes that fail are
// logged and dropped, so callers never see storage errors.
type Store interface {
	Get(key string) (json.RawMessage, bool)
	Set(key string, value any)
	Remove(key string)
	Clear()
}

// BlobStore implements Store as one JSON object per namespace in a Backend
type BlobStore struct {
	backend   Backend
	namespace string
	logger    *log.Logger
	mu        sync.Mutex
}

// NewBlobStore creates a store for namespace. A nil logger uses log.Default().
func NewBlobStore(backend Backend, namespace string, logger *log.Logger) *BlobStore {
	if logger == nil {
		logger = log.Default()
	}
	return &BlobStore{
		backend:   backend,
		namespace: namespace,
		logger:    logger.With("namespace", namespace),
	}
}

// Namespace returns the blob name this store reads and writes
func (s *BlobStore) Namespace() string {
	return s.namespace
}

// Get returns the raw JSON stored under key
func (s *BlobStore) Get(key string) (json.RawMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.load()[key]
	return v, ok
}

// Set stores value under key, replacing any prior value
func (s *BlobStore) Set(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Error("failed to encode value", "key", key, "err", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.load()
	data[key] = raw
	s.save(data, key)
}

// Remove deletes key; other keys are untouched
func (s *BlobStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.load()
	delete(data, key)
	s.save(data, key)
}

// Clear deletes the whole namespace
func (s *BlobStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.backend.Delete(s.namespace); err != nil {
		s.logger.Error("failed to clear namespace", "err", err)
		return
	}
	s.logger.Debug("namespace cleared")
}

// Keys lists the keys currently stored, sorted
func (s *BlobStore) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.load()
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Raw returns the serialized blob exactly as the backend holds it
func (s *BlobStore) Raw() ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := s.backend.Read(s.namespace)
	if err != nil {
		return nil, false
	}
	return blob, true
}

func (s *BlobStore) load() map[string]json.RawMessage {
	blob, err := s.backend.Read(s.namespace)
	if errors.Is(err, ErrNotFound) {
		return map[string]json.RawMessage{}
	}
	if err != nil {
		s.logger.Error("failed to read namespace", "err", err)
		return map[string]json.RawMessage{}
	}
	data, err := Decode(blob)
	if err != nil {
		s.logger.Warn("namespace blob is corrupt, treating as empty", "err", err)
		return map[string]json.RawMessage{}
	}
	return data
}

func (s *BlobStore) save(data map[string]json.RawMessage, key string) {
	blob, err := Encode(data)
	if err != nil {
		s.logger.Error("failed to encode namespace", "key", key, "err", err)
		return
	}
	if err := s.backend.Write(s.namespace, blob); err != nil {
		s.logger.Error("failed to write namespace", "key", key, "err", err)
		return
	}
	s.logger.Debug("namespace written", "key", key, "bytes", len(blob))
}

// Encode serializes a namespace map. Keys are written in sorted order so
// encoding a decoded blob reproduces it byte for byte.
func Encode(data map[string]json.RawMessage) ([]byte, error) {
	return json.Marshal(data)
}

// Decode parses a namespace blob. A blob that is not a JSON object is an error.
func Decode(blob []byte) (map[string]json.RawMessage, error) {
	var data map[string]json.RawMessage
	if err := json.Unmarshal(blob, &data); err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("namespace blob is not an object")
	}
	return data, nil
}

// GetJSON decodes the value stored under key into T.
// ok is false when the key is absent; err is set when it does not decode.
func GetJSON[T any](s Store, key string) (v T, ok bool, err error) {
	raw, ok := s.Get(key)
	if !ok {
		return v, false, nil
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return v, true, nil
}
