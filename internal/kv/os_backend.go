//go:build !(js && wasm)

// ABOUTME: OS directory constructor for FSBackend, excluded from browser builds
// ABOUTME: Maps a native data dir onto the hackpadfs OS filesystem
package kv

import (
	"fmt"
	"path/filepath"

	"github.com/hack-pad/hackpadfs"
	hos "github.com/hack-pad/hackpadfs/os"
)

// NewOSBackend stores blobs as files in the OS directory dir, creating it if needed
func NewOSBackend(dir string) (*FSBackend, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data dir: %w", err)
	}
	fs := hos.NewFS()
	p, err := fs.FromOSPath(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to map data dir %s: %w", abs, err)
	}
	if err := hackpadfs.MkdirAll(fs, p, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create data dir %s: %w", abs, err)
	}
	return NewFSBackend(fs, p), nil
}
