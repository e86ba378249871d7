// ABOUTME: SQLite database schema for namespace blob storage
// ABOUTME: One row per namespace holding the serialized key-value object
package sqlite

// Schema contains all SQL statements for database initialization
const Schema = `
CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY
);

-- One serialized key-value object per namespace
CREATE TABLE IF NOT EXISTS namespaces (
    name TEXT PRIMARY KEY,
    data TEXT NOT NULL,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// SchemaVersion is the current schema version for migrations
const SchemaVersion = 1
