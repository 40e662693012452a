package db

import (
	"database/sql"
	"fmt"
)

// Base schema - conversation rows use Snowflake positions for insertion
// ordering; turn rows use Snowflake IDs (no AUTOINCREMENT).
const baseSchema = `
CREATE TABLE IF NOT EXISTS conversations (
  id TEXT NOT NULL,
  session_id TEXT NOT NULL,
  language_pair TEXT NOT NULL,
  saved_at TEXT NOT NULL,
  position INTEGER NOT NULL,
  PRIMARY KEY (session_id, id)
);

CREATE INDEX IF NOT EXISTS idx_conversations_session_id ON conversations(session_id);

CREATE TABLE IF NOT EXISTS conversation_turns (
  id INTEGER PRIMARY KEY,
  session_id TEXT NOT NULL,
  conversation_id TEXT NOT NULL,
  seq INTEGER NOT NULL,
  role TEXT NOT NULL,
  content TEXT NOT NULL,
  language_pair TEXT,
  created_at TEXT NOT NULL,
  FOREIGN KEY (session_id, conversation_id) REFERENCES conversations(session_id, id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_turns_conversation ON conversation_turns(session_id, conversation_id, seq);
`

// Migrate applies the schema. Statements are idempotent so this is safe to
// run on every startup.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
