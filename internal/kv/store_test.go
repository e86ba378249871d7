// ABOUTME: Tests for the namespace blob store across backends
// ABOUTME: Covers absence, isolation, clear, corrupt blobs, and swallowed write failures
package kv

import (
	"bytes"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyBackend wraps a memory map and fails writes on demand
type flakyBackend struct {
	mu        sync.Mutex
	blobs     map[string][]byte
	failWrite bool
	writes    int
}

func newFlakyBackend() *flakyBackend {
	return &flakyBackend{blobs: map[string][]byte{}}
}

func (b *flakyBackend) Read(namespace string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	blob, ok := b.blobs[namespace]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), blob...), nil
}

func (b *flakyBackend) Write(namespace string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failWrite {
		return errors.New("quota exceeded")
	}
	b.writes++
	b.blobs[namespace] = append([]byte(nil), data...)
	return nil
}

func (b *flakyBackend) Delete(namespace string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.blobs, namespace)
	return nil
}

func newTestStore(t *testing.T) (*BlobStore, *bytes.Buffer) {
	t.Helper()
	backend, err := NewMemoryBackend()
	require.NoError(t, err)
	var buf bytes.Buffer
	return NewBlobStore(backend, "test-ns", log.New(&buf)), &buf
}

type sample struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
	Count int      `json:"count"`
}

func TestBlobStore_GetMissing(t *testing.T) {
	s, _ := newTestStore(t)

	_, ok := s.Get("profiles")
	assert.False(t, ok)

	_, ok, err := GetJSON[[]sample](s, "profiles")
	assert.False(t, ok)
	assert.NoError(t, err)
}

func TestBlobStore_SetGetDeepEqual(t *testing.T) {
	s, _ := newTestStore(t)
	want := []sample{{Name: "a", Items: []string{"x", "y"}, Count: 2}, {Name: "b", Items: []string{}}}

	s.Set("profiles", want)

	got, ok, err := GetJSON[[]sample](s, "profiles")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestBlobStore_SetOverwrites(t *testing.T) {
	s, _ := newTestStore(t)

	s.Set("isDarkMode", true)
	s.Set("isDarkMode", false)

	got, ok, err := GetJSON[bool](s, "isDarkMode")
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, got)
}

func TestBlobStore_RemoveIsolation(t *testing.T) {
	s, _ := newTestStore(t)
	s.Set("a", 1)
	s.Set("b", []string{"keep"})

	s.Remove("a")

	_, ok := s.Get("a")
	assert.False(t, ok)
	got, ok, err := GetJSON[[]string](s, "b")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"keep"}, got)

	// removing an absent key is harmless
	s.Remove("missing")
	assert.Equal(t, []string{"b"}, s.Keys())
}

func TestBlobStore_Clear(t *testing.T) {
	s, _ := newTestStore(t)
	s.Set("profiles", []int{1})
	s.Set("chatMessages", []int{2})

	s.Clear()

	assert.Empty(t, s.Keys())
	_, ok := s.Raw()
	assert.False(t, ok, "clear should delete the namespace outright")

	// clearing twice is fine
	s.Clear()
}

func TestBlobStore_CorruptBlobReadsEmpty(t *testing.T) {
	backend := newFlakyBackend()
	var buf bytes.Buffer
	s := NewBlobStore(backend, "ns", log.New(&buf))

	for _, blob := range []string{"{not json", "null", "[1,2,3]", `"text"`} {
		backend.blobs["ns"] = []byte(blob)

		_, ok := s.Get("profiles")
		assert.False(t, ok, "blob %q should read as empty", blob)
	}
	assert.Contains(t, buf.String(), "corrupt")

	// a write after corruption replaces the blob with a valid one
	s.Set("profiles", []string{})
	_, err := Decode(backend.blobs["ns"])
	assert.NoError(t, err)
}

func TestBlobStore_WriteFailureIsSwallowed(t *testing.T) {
	backend := newFlakyBackend()
	var buf bytes.Buffer
	s := NewBlobStore(backend, "ns", log.New(&buf))

	s.Set("profiles", []string{"first"})
	backend.failWrite = true

	assert.NotPanics(t, func() {
		s.Set("profiles", []string{"second"})
		s.Remove("profiles")
	})

	got, ok, err := GetJSON[[]string](s, "profiles")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"first"}, got, "failed writes must not change stored data")
	assert.Contains(t, buf.String(), "failed to write namespace")
	assert.Contains(t, buf.String(), "quota exceeded")
}

func TestBlobStore_UnencodableValue(t *testing.T) {
	backend := newFlakyBackend()
	var buf bytes.Buffer
	s := NewBlobStore(backend, "ns", log.New(&buf))

	s.Set("bad", make(chan int))

	assert.Equal(t, 0, backend.writes)
	assert.Contains(t, buf.String(), "failed to encode value")
}

func TestGetJSON_WrongShape(t *testing.T) {
	s, _ := newTestStore(t)
	s.Set("profiles", "not a list")

	_, ok, err := GetJSON[[]sample](s, "profiles")
	assert.False(t, ok)
	assert.Error(t, err)
}

func TestEncodeDecode_Idempotent(t *testing.T) {
	s, _ := newTestStore(t)
	s.Set("zeta", map[string]any{"b": 1, "a": []any{"x", nil, true}})
	s.Set("alpha", "text with <html> & quotes \"")
	s.Set("isDarkMode", true)

	first, ok := s.Raw()
	require.True(t, ok)

	decoded, err := Decode(first)
	require.NoError(t, err)
	second, err := Encode(decoded)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
	assert.True(t, json.Valid(second))
	assert.Equal(t, []string{"alpha", "isDarkMode", "zeta"}, s.Keys())
}

func TestBlobStore_NamespacesAreIndependent(t *testing.T) {
	backend, err := NewMemoryBackend()
	require.NoError(t, err)
	a := NewBlobStore(backend, "a", nil)
	b := NewBlobStore(backend, "b", nil)

	a.Set("k", 1)
	b.Clear()

	_, ok := a.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "a", a.Namespace())
}
