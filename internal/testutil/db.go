// Package testutil provides test utilities for database setup.
package testutil

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Karvyz/halfmoon/internal/infrastructure/sqlite"
)

// NewTestDB creates an in-memory SQLite database with the transcript schema.
// The database is closed when the test ends.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// each pooled connection would see its own empty in-memory database
	db.SetMaxOpenConns(1)
	require.NoError(t, sqlite.Migrate(db))
	t.Cleanup(func() { _ = db.Close() })
	return db
}
