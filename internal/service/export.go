package service

import (
	"fmt"
	"strings"

	"linguabridge/backend/internal/model"
)

// ExportTitle is the fixed first line of every export.
const ExportTitle = "LinguaBridge AI - Chat History"

func (s *chatService) Export(sessionID string) (string, string) {
	turns := s.History(sessionID)

	var b strings.Builder
	b.WriteString(ExportTitle)
	b.WriteString("\n\n")
	for _, turn := range turns {
		label := "You"
		if turn.Role == model.RoleAssistant {
			label = "Translation"
		}
		fmt.Fprintf(&b, "%s: %s\n", label, turn.Content)
		if turn.LanguagePair != "" {
			fmt.Fprintf(&b, "Languages: %s\n", turn.LanguagePair)
		}
		fmt.Fprintf(&b, "Time: %s\n\n", turn.Timestamp)
	}

	filename := "translation_chat_" + s.sessions.Now().Format("20060102_1504") + ".txt"
	return filename, b.String()
}
