package speech

import (
	"context"
	"os/exec"
	"strings"

	"linguabridge/backend/internal/logger"
)

// CommandSynthesizer shells out to an OS-level TTS command (say, espeak,
// edge-tts wrappers). The text is piped on stdin. Any failure degrades to
// an unavailable result.
type CommandSynthesizer struct {
	command string
}

func (s *CommandSynthesizer) Speak(ctx context.Context, text string) SpeakResult {
	cmd := exec.CommandContext(ctx, "sh", "-c", s.command)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		logger.Warn("text-to-speech unavailable", "module", "speech", "action", "speak", "resource", "engine", "result", "failed", "error", err)
		return SpeakResult{Available: false, Detail: "text-to-speech not available in this environment"}
	}
	return SpeakResult{Available: true}
}

// CommandRecognizer shells out to a capture+recognition command that prints
// the transcript on stdout. Failures and empty captures degrade to an
// unavailable result instead of an error.
type CommandRecognizer struct {
	command string
}

func (r *CommandRecognizer) Listen(ctx context.Context) ListenResult {
	out, err := exec.CommandContext(ctx, "sh", "-c", r.command).Output()
	if err != nil {
		logger.Warn("speech recognition unavailable", "module", "speech", "action", "listen", "resource", "engine", "result", "failed", "error", err)
		return ListenResult{Available: false, Detail: "speech recognition not available"}
	}

	text := strings.TrimSpace(string(out))
	if text == "" {
		return ListenResult{Available: false, Detail: "no speech captured"}
	}
	return ListenResult{Text: text, Available: true}
}
