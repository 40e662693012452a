package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Open creates the in-memory conversation store database. The DSN uses a
// named memory database with shared cache so every pooled connection sees
// the same data; contents are discarded when the process exits, which is
// exactly the lifetime saved conversations have.
func Open(name string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", BuildDSN(name))
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	// Keep at least one connection alive: a shared-cache memory database
	// is dropped once its last connection closes.
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := Migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// BuildDSN returns the sqlite DSN for a named shared-cache memory database.
// Pragmas are embedded in the DSN so every connection in the pool gets them.
func BuildDSN(name string) string {
	return fmt.Sprintf(
		"file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)&_pragma=busy_timeout(30000)",
		name,
	)
}
