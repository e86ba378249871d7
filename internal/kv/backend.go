// ABOUTME: Backend abstracts where a namespace blob is durably kept
// ABOUTME: Implemented by the filesystem, Charm KV, and SQLite backends
package kv

import "errors"

// ErrNotFound is returned by Backend.Read when a namespace has never been written
var ErrNotFound = errors.New("namespace not found")

// Backend stores one opaque blob per namespace
type Backend interface {
	// Read returns the blob for namespace, or ErrNotFound when absent
	Read(namespace string) ([]byte, error)
	// Write replaces the blob for namespace
	Write(namespace string, data []byte) error
	// Delete removes the namespace; deleting an absent namespace is not an error
	Delete(namespace string) error
}
