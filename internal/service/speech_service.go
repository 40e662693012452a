package service

import (
	"context"
	"fmt"
	"time"

	"linguabridge/backend/internal/model"
	"linguabridge/backend/internal/speech"
)

// SpeechService exposes the best-effort speech capabilities to the
// presentation layer. Neither operation can fail the session: engine
// problems surface as unavailable results, not errors.
type SpeechService interface {
	// SpeakLast speaks the most recent assistant turn. Fails with
	// ErrInvalid when the transcript has no assistant turn to speak.
	SpeakLast(ctx context.Context, sessionID string) (speech.SpeakResult, error)
	// Listen blocks until an utterance is captured or the configured
	// timeout elapses. The session is locked for the duration, so no
	// other session mutation can interleave with a pending capture.
	// A successful capture is meant to replace the client's pending
	// input buffer, never to be appended to it.
	Listen(ctx context.Context, sessionID string) speech.ListenResult
}

type speechService struct {
	sessions      *SessionManager
	synthesizer   speech.Synthesizer
	recognizer    speech.Recognizer
	listenTimeout time.Duration
}

func NewSpeechService(sessions *SessionManager, synthesizer speech.Synthesizer, recognizer speech.Recognizer, listenTimeout time.Duration) SpeechService {
	return &speechService{
		sessions:      sessions,
		synthesizer:   synthesizer,
		recognizer:    recognizer,
		listenTimeout: listenTimeout,
	}
}

func (s *speechService) SpeakLast(ctx context.Context, sessionID string) (speech.SpeakResult, error) {
	sess, ok := s.sessions.Lookup(sessionID)
	if !ok {
		return speech.SpeakResult{}, fmt.Errorf("%w: nothing to speak", ErrInvalid)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if len(sess.turns) == 0 {
		return speech.SpeakResult{}, fmt.Errorf("%w: nothing to speak", ErrInvalid)
	}
	last := sess.turns[len(sess.turns)-1]
	if last.Role != model.RoleAssistant {
		return speech.SpeakResult{}, fmt.Errorf("%w: last turn is not a translation", ErrInvalid)
	}

	return s.synthesizer.Speak(ctx, last.Content), nil
}

func (s *speechService) Listen(ctx context.Context, sessionID string) speech.ListenResult {
	sess := s.sessions.Ensure(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if s.listenTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.listenTimeout)
		defer cancel()
	}
	return s.recognizer.Listen(ctx)
}
