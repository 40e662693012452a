package db_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"linguabridge/backend/internal/db"
)

func TestOpen(t *testing.T) {
	database, err := db.Open("db-open-test")
	require.NoError(t, err)
	require.NotNil(t, database)
	defer database.Close()

	// Verify schema exists (basic check)
	var name string
	err = database.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='conversations'").Scan(&name)
	require.NoError(t, err)
	require.Equal(t, "conversations", name)

	err = database.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='conversation_turns'").Scan(&name)
	require.NoError(t, err)
	require.Equal(t, "conversation_turns", name)
}

// Pragmas must be embedded in the DSN so all connections in the pool have
// them; foreign_keys in particular gates the ON DELETE CASCADE on turns.
func TestBuildDSN(t *testing.T) {
	dsn := db.BuildDSN("test")
	require.Contains(t, dsn, "file:test")
	require.Contains(t, dsn, "mode=memory")
	require.Contains(t, dsn, "cache=shared")
	require.Contains(t, dsn, "foreign_keys(1)")
	require.Contains(t, dsn, "busy_timeout")
}

func TestOpen_SeparateNamesAreIsolated(t *testing.T) {
	first, err := db.Open("db-isolated-a")
	require.NoError(t, err)
	defer first.Close()

	second, err := db.Open("db-isolated-b")
	require.NoError(t, err)
	defer second.Close()

	_, err = first.Exec(`INSERT INTO conversations (id, session_id, language_pair, saved_at, position) VALUES ('c1', 's1', 'English → Spanish', '2026-01-01 10:00', 1)`)
	require.NoError(t, err)

	var count int
	err = second.QueryRow("SELECT COUNT(*) FROM conversations").Scan(&count)
	require.NoError(t, err)
	require.Zero(t, count)
}
