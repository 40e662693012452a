// Package testutil provides database helpers for repository tests.
package testutil

import (
	"database/sql"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"linguabridge/backend/internal/db"
	"linguabridge/backend/internal/snowflake"
)

var (
	initOnce sync.Once
	dbSeq    atomic.Int64
)

// NewTestDB opens a fresh in-memory database with the schema applied. Each
// call gets its own named memory database so tests stay isolated.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	initOnce.Do(func() {
		if err := snowflake.Init(1); err != nil {
			t.Fatalf("init snowflake: %v", err)
		}
	})

	database, err := db.Open(fmt.Sprintf("testdb-%d", dbSeq.Add(1)))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}
