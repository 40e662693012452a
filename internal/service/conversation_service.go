package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"linguabridge/backend/internal/language"
	"linguabridge/backend/internal/logger"
	"linguabridge/backend/internal/model"
	"linguabridge/backend/internal/repository"
)

// ConversationService snapshots transcripts into the conversation store and
// restores them. Snapshots are deep copies in both directions: saving then
// mutating the live transcript never changes the stored conversation, and
// restoring then mutating never changes it either.
type ConversationService interface {
	// Save snapshots the current transcript under a second-resolution id.
	// Returns saved=false (and no error) when the transcript is empty.
	// Two saves within the same second produce the same id; the later one
	// deterministically overwrites the earlier snapshot.
	Save(ctx context.Context, sessionID, sourceName, targetName string) (conv model.SavedConversation, saved bool, err error)
	// List returns the session's saved conversations in insertion order.
	List(ctx context.Context, sessionID string) ([]model.SavedConversation, error)
	// Recent returns the last n saved conversations in insertion order.
	Recent(ctx context.Context, sessionID string, n int) ([]model.SavedConversation, error)
	// Restore replaces the live transcript with a copy of the snapshot.
	// Fails with ErrNotFound for unknown ids, leaving the transcript
	// untouched.
	Restore(ctx context.Context, sessionID, id string) ([]model.ChatTurn, error)
}

type conversationService struct {
	sessions      *SessionManager
	conversations repository.ConversationRepository
}

func NewConversationService(sessions *SessionManager, conversations repository.ConversationRepository) ConversationService {
	return &conversationService{
		sessions:      sessions,
		conversations: conversations,
	}
}

func (s *conversationService) Save(ctx context.Context, sessionID, sourceName, targetName string) (model.SavedConversation, bool, error) {
	if _, err := language.CodeOf(sourceName); err != nil {
		return model.SavedConversation{}, false, err
	}
	if _, err := language.CodeOf(targetName); err != nil {
		return model.SavedConversation{}, false, err
	}

	sess, ok := s.sessions.Lookup(sessionID)
	if !ok {
		return model.SavedConversation{}, false, nil
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if len(sess.turns) == 0 {
		return model.SavedConversation{}, false, nil
	}

	now := s.sessions.Now()
	conv := model.SavedConversation{
		ID:           "conv_" + now.Format("20060102_150405"),
		Turns:        model.CloneTurns(sess.turns),
		LanguagePair: language.Pair(sourceName, targetName),
		SavedAt:      now.Format("2006-01-02 15:04"),
	}

	if err := s.conversations.Save(ctx, sessionID, conv); err != nil {
		return model.SavedConversation{}, false, fmt.Errorf("save conversation: %w", err)
	}
	logger.Info("conversation saved", "module", "conversation", "action", "save", "resource", "conversation", "result", "ok", "conversation_id", conv.ID, "turns", len(conv.Turns))
	return conv, true, nil
}

func (s *conversationService) List(ctx context.Context, sessionID string) ([]model.SavedConversation, error) {
	return s.conversations.List(ctx, sessionID)
}

func (s *conversationService) Recent(ctx context.Context, sessionID string, n int) ([]model.SavedConversation, error) {
	return s.conversations.ListRecent(ctx, sessionID, n)
}

func (s *conversationService) Restore(ctx context.Context, sessionID, id string) ([]model.ChatTurn, error) {
	conv, err := s.conversations.GetByID(ctx, sessionID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("restore conversation: %w", err)
	}

	sess := s.sessions.Ensure(sessionID)
	sess.mu.Lock()
	sess.turns = model.CloneTurns(conv.Turns)
	sess.mu.Unlock()

	logger.Info("conversation restored", "module", "conversation", "action", "restore", "resource", "conversation", "result", "ok", "conversation_id", id, "turns", len(conv.Turns))
	return model.CloneTurns(conv.Turns), nil
}
