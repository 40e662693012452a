package speech_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"linguabridge/backend/internal/speech"
)

func TestNewSynthesizer_EmptyCommandDegradesToNoop(t *testing.T) {
	s := speech.NewSynthesizer(speech.Config{})
	res := s.Speak(context.Background(), "hello")
	require.False(t, res.Available)
	require.NotEmpty(t, res.Detail)
}

func TestNewRecognizer_EmptyCommandDegradesToNoop(t *testing.T) {
	r := speech.NewRecognizer(speech.Config{})
	res := r.Listen(context.Background())
	require.False(t, res.Available)
	require.Empty(t, res.Text)
}

func TestCommandSynthesizer_Success(t *testing.T) {
	s := speech.NewSynthesizer(speech.Config{SpeakCommand: "cat > /dev/null"})
	res := s.Speak(context.Background(), "hello world")
	require.True(t, res.Available)
}

func TestCommandSynthesizer_FailureIsNonFatal(t *testing.T) {
	s := speech.NewSynthesizer(speech.Config{SpeakCommand: "exit 3"})
	res := s.Speak(context.Background(), "hello")
	require.False(t, res.Available)
	require.NotEmpty(t, res.Detail)
}

func TestCommandRecognizer_CapturesTranscript(t *testing.T) {
	r := speech.NewRecognizer(speech.Config{ListenCommand: "echo '  hello from mic  '"})
	res := r.Listen(context.Background())
	require.True(t, res.Available)
	require.Equal(t, "hello from mic", res.Text)
}

func TestCommandRecognizer_EmptyCaptureIsUnavailable(t *testing.T) {
	r := speech.NewRecognizer(speech.Config{ListenCommand: "echo ''"})
	res := r.Listen(context.Background())
	require.False(t, res.Available)
	require.Empty(t, res.Text)
}

func TestCommandRecognizer_FailureIsNonFatal(t *testing.T) {
	r := speech.NewRecognizer(speech.Config{ListenCommand: "exit 1"})
	res := r.Listen(context.Background())
	require.False(t, res.Available)
	require.Empty(t, res.Text)
}
