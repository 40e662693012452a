package service

import "errors"

var (
	ErrInvalid                = errors.New("invalid")
	ErrNotFound               = errors.New("conversation not found")
	ErrTranslationUnavailable = errors.New("translation unavailable")
)

// TranslationErrorMarker is the assistant turn content committed when the
// provider fails, so the user/assistant pairing invariant holds even for
// failed attempts.
const TranslationErrorMarker = "[translation unavailable]"
