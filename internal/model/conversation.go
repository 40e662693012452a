package model

// SavedConversation is an immutable snapshot of a transcript taken at save
// time. The ID is derived from the save timestamp with second resolution
// ("conv_YYYYMMDD_HHMMSS"); saving twice within the same second overwrites
// the earlier snapshot deterministically.
type SavedConversation struct {
	ID           string
	Turns        []ChatTurn
	LanguagePair string
	// SavedAt is formatted "YYYY-MM-DD HH:MM".
	SavedAt string
}
