package translate

import (
	"context"
	"fmt"
	"time"
)

// StubTranslator is the reference translation behavior: it reverses the
// input text and appends a "[src→dst]" marker, with a fixed simulated
// latency. It stands in for a real provider and is fully deterministic.
type StubTranslator struct {
	delay time.Duration
}

// NewStubTranslator creates a stub translator. A zero delay disables the
// simulated latency, which tests rely on.
func NewStubTranslator(delay time.Duration) *StubTranslator {
	return &StubTranslator{delay: delay}
}

// Name returns the provider name.
func (t *StubTranslator) Name() string {
	return ProviderStub
}

// Translate reverses the text and tags it with the code pair.
func (t *StubTranslator) Translate(ctx context.Context, text, sourceCode, targetCode string) (string, error) {
	if t.delay > 0 {
		timer := time.NewTimer(t.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	return fmt.Sprintf("%s [%s→%s]", reverse(text), sourceCode, targetCode), nil
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
