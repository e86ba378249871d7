// ABOUTME: Filesystem backend storing each namespace as <namespace>.json in a hackpadfs.FS
// ABOUTME: Works over the OS filesystem, an in-memory FS, or IndexedDB in the browser
package kv

import (
	"errors"
	"fmt"
	"path"

	"github.com/hack-pad/hackpadfs"
	"github.com/hack-pad/hackpadfs/mem"
)

// FSBackend keeps namespace blobs as files under dir in fs
type FSBackend struct {
	fs  hackpadfs.FS
	dir string
}

// NewFSBackend stores blobs under dir ("" for the FS root).
// dir uses slash-separated io/fs path syntax.
func NewFSBackend(fs hackpadfs.FS, dir string) *FSBackend {
	return &FSBackend{fs: fs, dir: dir}
}

// NewMemoryBackend returns a backend whose blobs live only for the process lifetime
func NewMemoryBackend() (*FSBackend, error) {
	fs, err := mem.NewFS()
	if err != nil {
		return nil, fmt.Errorf("failed to create memory fs: %w", err)
	}
	return NewFSBackend(fs, ""), nil
}

func (b *FSBackend) path(namespace string) string {
	return path.Join(b.dir, namespace+".json")
}

// Read returns the namespace file contents, or ErrNotFound when the file is missing
func (b *FSBackend) Read(namespace string) ([]byte, error) {
	data, err := hackpadfs.ReadFile(b.fs, b.path(namespace))
	if errors.Is(err, hackpadfs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read namespace %s: %w", namespace, err)
	}
	return data, nil
}

// Write replaces the namespace file, creating the directory if needed
func (b *FSBackend) Write(namespace string, data []byte) error {
	if b.dir != "" {
		if err := hackpadfs.MkdirAll(b.fs, b.dir, 0o700); err != nil {
			return fmt.Errorf("failed to create dir for namespace %s: %w", namespace, err)
		}
	}
	if err := hackpadfs.WriteFullFile(b.fs, b.path(namespace), data, 0o600); err != nil {
		return fmt.Errorf("failed to write namespace %s: %w", namespace, err)
	}
	return nil
}

// Delete removes the namespace file; a missing file is not an error
func (b *FSBackend) Delete(namespace string) error {
	err := hackpadfs.Remove(b.fs, b.path(namespace))
	if err != nil && !errors.Is(err, hackpadfs.ErrNotExist) {
		return fmt.Errorf("failed to delete namespace %s: %w", namespace, err)
	}
	return nil
}
