package model

// Role identifies the author of a chat turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatTurn is one message in a transcript. User turns carry the language
// pair that was active when the text was submitted; assistant turns carry
// the translated text only. Turns are append-only and always created in
// user/assistant pairs.
type ChatTurn struct {
	Role      Role
	Content   string
	// LanguagePair is "<Source> → <Target>", set on user turns only.
	LanguagePair string
	// Timestamp is the wall-clock creation time, formatted HH:MM:SS.
	Timestamp string
}

// CloneTurns returns an independent copy of a transcript slice. Turns are
// value types, so copying the backing array is sufficient.
func CloneTurns(turns []ChatTurn) []ChatTurn {
	if turns == nil {
		return nil
	}
	out := make([]ChatTurn, len(turns))
	copy(out, turns)
	return out
}
