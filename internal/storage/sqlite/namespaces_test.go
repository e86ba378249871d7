// ABOUTME: Tests for the SQLite namespace backend
// ABOUTME: Verifies upsert, not-found mapping, delete, listing, and use under a BlobStore
package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper/carenotes/internal/kv"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestNamespaces_ReadMissing(t *testing.T) {
	db := newTestDB(t)

	_, err := db.Read("nothing")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

func TestNamespaces_WriteUpserts(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Write("ns", []byte(`{"a":1}`)))
	require.NoError(t, db.Write("ns", []byte(`{"a":2}`)))

	got, err := db.Read("ns")
	require.NoError(t, err)
	assert.Equal(t, `{"a":2}`, string(got))

	infos, err := db.Namespaces()
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "ns", infos[0].Name)
	assert.Equal(t, len(`{"a":2}`), infos[0].Size)
	assert.False(t, infos[0].UpdatedAt.IsZero())
}

func TestNamespaces_Delete(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Write("a", []byte(`{}`)))
	require.NoError(t, db.Write("b", []byte(`{}`)))

	require.NoError(t, db.Delete("a"))
	require.NoError(t, db.Delete("a"))

	_, err := db.Read("a")
	assert.ErrorIs(t, err, kv.ErrNotFound)
	_, err = db.Read("b")
	assert.NoError(t, err)
}

func TestNamespaces_BackingBlobStore(t *testing.T) {
	db := newTestDB(t)
	store := kv.NewBlobStore(db, "carenotes-data", nil)

	store.Set("isDarkMode", true)
	store.Set("profiles", []string{})
	store.Remove("profiles")

	got, ok, err := kv.GetJSON[bool](store, "isDarkMode")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, got)
	assert.Equal(t, []string{"isDarkMode"}, store.Keys())

	store.Clear()
	_, err = db.Read("carenotes-data")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}
