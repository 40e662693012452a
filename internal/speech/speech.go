// Package speech defines the text-to-speech and speech-to-text ports.
// Both capabilities are best-effort: engines report a typed "unavailable"
// result instead of raising, so a missing microphone or synthesizer never
// breaks text-based operation.
package speech

import "context"

// SpeakResult reports the outcome of a synthesis attempt.
type SpeakResult struct {
	Available bool   `json:"available"`
	Detail    string `json:"detail,omitempty"`
}

// ListenResult carries a captured utterance, or an empty text with
// Available=false when capture failed or produced nothing.
type ListenResult struct {
	Text      string `json:"text"`
	Available bool   `json:"available"`
	Detail    string `json:"detail,omitempty"`
}

// Synthesizer speaks text out loud. Safe to call repeatedly; overlapping
// calls have no ordering guarantee.
type Synthesizer interface {
	Speak(ctx context.Context, text string) SpeakResult
}

// Recognizer captures one utterance and returns its transcript. Listen
// blocks until capture completes or the engine's timeout elapses.
type Recognizer interface {
	Listen(ctx context.Context) ListenResult
}

// Config selects the speech engines. Empty commands degrade to no-ops.
type Config struct {
	SpeakCommand  string
	ListenCommand string
}

// NewSynthesizer returns a command-backed synthesizer, or the no-op engine
// when no command is configured.
func NewSynthesizer(cfg Config) Synthesizer {
	if cfg.SpeakCommand == "" {
		return NoopSynthesizer{}
	}
	return &CommandSynthesizer{command: cfg.SpeakCommand}
}

// NewRecognizer returns a command-backed recognizer, or the no-op engine
// when no command is configured.
func NewRecognizer(cfg Config) Recognizer {
	if cfg.ListenCommand == "" {
		return NoopRecognizer{}
	}
	return &CommandRecognizer{command: cfg.ListenCommand}
}
