package service

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"linguabridge/backend/internal/language"
	"linguabridge/backend/internal/logger"
	"linguabridge/backend/internal/model"
	"linguabridge/backend/internal/translate"
)

// ChatService drives the live transcript: translating submitted text into
// paired user/assistant turns, reading history, clearing, and exporting.
type ChatService interface {
	// Translate validates the submission, runs it through the translation
	// port and appends exactly two turns (user then assistant) to the
	// session transcript. On provider failure the assistant turn carries
	// TranslationErrorMarker and ErrTranslationUnavailable is returned
	// alongside the committed turns. Empty or whitespace-only text
	// appends nothing and fails with ErrInvalid.
	Translate(ctx context.Context, sessionID, text, sourceName, targetName string) ([]model.ChatTurn, error)
	// History returns a copy of the session transcript in display order.
	History(sessionID string) []model.ChatTurn
	// Clear empties the transcript. Saved conversations are unaffected.
	Clear(sessionID string)
	// Export renders the transcript as the downloadable text blob and
	// returns the suggested filename alongside it.
	Export(sessionID string) (filename, content string)
}

type chatService struct {
	sessions   *SessionManager
	translator translate.Translator
	limiter    *translate.RateLimiter
	sanitizer  *bluemonday.Policy
}

// NewChatService creates a chat service on top of the given session
// manager and translation port.
func NewChatService(sessions *SessionManager, translator translate.Translator, limiter *translate.RateLimiter) ChatService {
	return &chatService{
		sessions:   sessions,
		translator: translator,
		limiter:    limiter,
		sanitizer:  bluemonday.StrictPolicy(),
	}
}

func (s *chatService) Translate(ctx context.Context, sessionID, text, sourceName, targetName string) ([]model.ChatTurn, error) {
	// Strip any markup from the submitted text before it can reach the
	// transcript or a provider prompt.
	text = strings.TrimSpace(html.UnescapeString(s.sanitizer.Sanitize(text)))
	if text == "" {
		return nil, fmt.Errorf("%w: empty text", ErrInvalid)
	}

	sourceCode, err := language.CodeOf(sourceName)
	if err != nil {
		return nil, err
	}
	targetCode, err := language.CodeOf(targetName)
	if err != nil {
		return nil, err
	}

	sess := s.sessions.Ensure(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTranslationUnavailable, err)
	}

	pair := language.Pair(sourceName, targetName)
	userTurn := model.ChatTurn{
		Role:         model.RoleUser,
		Content:      text,
		LanguagePair: pair,
		Timestamp:    s.sessions.Now().Format("15:04:05"),
	}

	translated, terr := s.translator.Translate(ctx, text, sourceCode, targetCode)

	assistantTurn := model.ChatTurn{
		Role:      model.RoleAssistant,
		Timestamp: s.sessions.Now().Format("15:04:05"),
	}
	if terr != nil {
		// Commit the pair anyway: a failed attempt must leave an
		// error-marked assistant turn, never an orphan user turn.
		assistantTurn.Content = TranslationErrorMarker
		sess.turns = append(sess.turns, userTurn, assistantTurn)
		logger.Warn("translation failed", "module", "chat", "action", "translate", "resource", "provider", "result", "failed", "provider", s.translator.Name(), "error", terr)
		return []model.ChatTurn{userTurn, assistantTurn}, fmt.Errorf("%w: %v", ErrTranslationUnavailable, terr)
	}

	assistantTurn.Content = translated
	sess.turns = append(sess.turns, userTurn, assistantTurn)
	logger.Debug("translation appended", "module", "chat", "action", "translate", "resource", "provider", "result", "ok", "provider", s.translator.Name(), "pair", pair)
	return []model.ChatTurn{userTurn, assistantTurn}, nil
}

func (s *chatService) History(sessionID string) []model.ChatTurn {
	sess, ok := s.sessions.Lookup(sessionID)
	if !ok {
		return nil
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return model.CloneTurns(sess.turns)
}

func (s *chatService) Clear(sessionID string) {
	sess, ok := s.sessions.Lookup(sessionID)
	if !ok {
		return
	}
	sess.mu.Lock()
	sess.turns = nil
	sess.mu.Unlock()
	logger.Info("transcript cleared", "module", "chat", "action", "clear", "resource", "transcript", "result", "ok")
}
