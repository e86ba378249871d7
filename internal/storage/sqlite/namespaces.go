// ABOUTME: Namespace backend over the namespaces table
// ABOUTME: Writes upsert the whole blob; reads of unknown namespaces report kv.ErrNotFound
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/harper/carenotes/internal/kv"
)

var _ kv.Backend = (*DB)(nil)

// Read returns the stored blob, or kv.ErrNotFound when the namespace has no row
func (db *DB) Read(namespace string) ([]byte, error) {
	var data string
	err := db.conn.QueryRow(`SELECT data FROM namespaces WHERE name = ?`, namespace).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, kv.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read namespace %s: %w", namespace, err)
	}
	return []byte(data), nil
}

// Write upserts the blob and stamps updated_at
func (db *DB) Write(namespace string, data []byte) error {
	_, err := db.conn.Exec(`
		INSERT INTO namespaces (name, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`, namespace, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to write namespace %s: %w", namespace, err)
	}
	return nil
}

// Delete removes the namespace row
func (db *DB) Delete(namespace string) error {
	if _, err := db.conn.Exec(`DELETE FROM namespaces WHERE name = ?`, namespace); err != nil {
		return fmt.Errorf("failed to delete namespace %s: %w", namespace, err)
	}
	return nil
}

// NamespaceInfo describes one stored namespace
type NamespaceInfo struct {
	Name      string
	Size      int
	UpdatedAt time.Time
}

// Namespaces lists stored namespaces ordered by name
func (db *DB) Namespaces() ([]NamespaceInfo, error) {
	rows, err := db.conn.Query(`SELECT name, length(data), updated_at FROM namespaces ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list namespaces: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []NamespaceInfo
	for rows.Next() {
		var info NamespaceInfo
		if err := rows.Scan(&info.Name, &info.Size, &info.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan namespace: %w", err)
		}
		result = append(result, info)
	}
	return result, rows.Err()
}
