package speech

import "context"

// NoopSynthesizer is the engine used when no TTS command is configured.
// Every call reports unavailable.
type NoopSynthesizer struct{}

func (NoopSynthesizer) Speak(ctx context.Context, text string) SpeakResult {
	return SpeakResult{Available: false, Detail: "text-to-speech not configured"}
}

// NoopRecognizer is the engine used when no capture command is configured.
type NoopRecognizer struct{}

func (NoopRecognizer) Listen(ctx context.Context) ListenResult {
	return ListenResult{Available: false, Detail: "speech recognition not configured"}
}
