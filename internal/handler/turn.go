package handler

import "linguabridge/backend/internal/model"

type turnResponse struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Languages string `json:"languages,omitempty"`
	Timestamp string `json:"timestamp"`
}

type transcriptResponse struct {
	Turns []turnResponse `json:"turns"`
}

func toTurnResponses(turns []model.ChatTurn) []turnResponse {
	out := make([]turnResponse, 0, len(turns))
	for _, turn := range turns {
		out = append(out, turnResponse{
			Role:      string(turn.Role),
			Content:   turn.Content,
			Languages: turn.LanguagePair,
			Timestamp: turn.Timestamp,
		})
	}
	return out
}
