package repository

import (
	"context"
	"database/sql"
	"fmt"

	"linguabridge/backend/internal/model"
	"linguabridge/backend/internal/snowflake"
)

// ErrNotFound is returned when a conversation id is not present for the
// session.
var ErrNotFound = sql.ErrNoRows

type ConversationRepository interface {
	// Save stores a snapshot. Saving an id that already exists replaces
	// the stored snapshot but keeps its original insertion position,
	// matching overwrite semantics of an insertion-ordered map.
	Save(ctx context.Context, sessionID string, conv model.SavedConversation) error
	GetByID(ctx context.Context, sessionID, id string) (model.SavedConversation, error)
	// List returns all conversations for the session in insertion order.
	List(ctx context.Context, sessionID string) ([]model.SavedConversation, error)
	// ListRecent returns the last n conversations, still in insertion
	// order (oldest of the n first).
	ListRecent(ctx context.Context, sessionID string, n int) ([]model.SavedConversation, error)
	// DeleteBySession drops everything a session saved. Called when the
	// janitor evicts an idle session.
	DeleteBySession(ctx context.Context, sessionID string) error
}

type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type conversationRepository struct {
	db *sql.DB
}

func NewConversationRepository(db *sql.DB) ConversationRepository {
	return &conversationRepository{db: db}
}

func (r *conversationRepository) Save(ctx context.Context, sessionID string, conv model.SavedConversation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save conversation: %w", err)
	}
	defer tx.Rollback()

	// ON CONFLICT keeps the original position so an overwritten save does
	// not move to the end of the listing.
	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO conversations (id, session_id, language_pair, saved_at, position)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (session_id, id) DO UPDATE SET language_pair = excluded.language_pair, saved_at = excluded.saved_at`,
		conv.ID,
		sessionID,
		conv.LanguagePair,
		conv.SavedAt,
		snowflake.NextID(),
	)
	if err != nil {
		return fmt.Errorf("save conversation: %w", err)
	}

	if _, err := tx.ExecContext(
		ctx,
		`DELETE FROM conversation_turns WHERE session_id = ? AND conversation_id = ?`,
		sessionID,
		conv.ID,
	); err != nil {
		return fmt.Errorf("replace conversation turns: %w", err)
	}

	for seq, turn := range conv.Turns {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO conversation_turns (id, session_id, conversation_id, seq, role, content, language_pair, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			snowflake.NextID(),
			sessionID,
			conv.ID,
			seq,
			string(turn.Role),
			turn.Content,
			nullableString(turn.LanguagePair),
			turn.Timestamp,
		); err != nil {
			return fmt.Errorf("save conversation turn: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save conversation: %w", err)
	}
	return nil
}

func (r *conversationRepository) GetByID(ctx context.Context, sessionID, id string) (model.SavedConversation, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT id, language_pair, saved_at FROM conversations WHERE session_id = ? AND id = ?`,
		sessionID,
		id,
	)

	var conv model.SavedConversation
	if err := row.Scan(&conv.ID, &conv.LanguagePair, &conv.SavedAt); err != nil {
		return model.SavedConversation{}, fmt.Errorf("get conversation: %w", err)
	}

	turns, err := r.turnsFor(ctx, r.db, sessionID, id)
	if err != nil {
		return model.SavedConversation{}, err
	}
	conv.Turns = turns
	return conv, nil
}

func (r *conversationRepository) List(ctx context.Context, sessionID string) ([]model.SavedConversation, error) {
	return r.list(ctx, sessionID, 0)
}

func (r *conversationRepository) ListRecent(ctx context.Context, sessionID string, n int) ([]model.SavedConversation, error) {
	if n <= 0 {
		return nil, nil
	}
	return r.list(ctx, sessionID, n)
}

func (r *conversationRepository) list(ctx context.Context, sessionID string, limit int) ([]model.SavedConversation, error) {
	query := `SELECT id, language_pair, saved_at FROM conversations WHERE session_id = ? ORDER BY position`
	args := []any{sessionID}
	if limit > 0 {
		// Last n by position, re-sorted ascending so callers always see
		// insertion order.
		query = `SELECT id, language_pair, saved_at FROM (
		           SELECT id, language_pair, saved_at, position FROM conversations
		           WHERE session_id = ? ORDER BY position DESC LIMIT ?
		         ) ORDER BY position`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	defer rows.Close()

	var convs []model.SavedConversation
	for rows.Next() {
		var conv model.SavedConversation
		if err := rows.Scan(&conv.ID, &conv.LanguagePair, &conv.SavedAt); err != nil {
			return nil, fmt.Errorf("scan conversation: %w", err)
		}
		convs = append(convs, conv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conversations: %w", err)
	}

	for i := range convs {
		turns, err := r.turnsFor(ctx, r.db, sessionID, convs[i].ID)
		if err != nil {
			return nil, err
		}
		convs[i].Turns = turns
	}
	return convs, nil
}

func (r *conversationRepository) DeleteBySession(ctx context.Context, sessionID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM conversations WHERE session_id = ?`, sessionID); err != nil {
		return fmt.Errorf("delete session conversations: %w", err)
	}
	return nil
}

func (r *conversationRepository) turnsFor(ctx context.Context, q dbtx, sessionID, conversationID string) ([]model.ChatTurn, error) {
	rows, err := q.QueryContext(
		ctx,
		`SELECT role, content, language_pair, created_at FROM conversation_turns
		 WHERE session_id = ? AND conversation_id = ? ORDER BY seq`,
		sessionID,
		conversationID,
	)
	if err != nil {
		return nil, fmt.Errorf("list conversation turns: %w", err)
	}
	defer rows.Close()

	var turns []model.ChatTurn
	for rows.Next() {
		var turn model.ChatTurn
		var role string
		var pair sql.NullString
		if err := rows.Scan(&role, &turn.Content, &pair, &turn.Timestamp); err != nil {
			return nil, fmt.Errorf("scan conversation turn: %w", err)
		}
		turn.Role = model.Role(role)
		if pair.Valid {
			turn.LanguagePair = pair.String
		}
		turns = append(turns, turn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conversation turns: %w", err)
	}
	return turns, nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
