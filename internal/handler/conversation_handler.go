package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"linguabridge/backend/internal/model"
	"linguabridge/backend/internal/service"
)

type ConversationHandler struct {
	conversations service.ConversationService
}

type saveConversationRequest struct {
	SourceLanguage string `json:"sourceLanguage"`
	TargetLanguage string `json:"targetLanguage"`
}

type conversationResponse struct {
	ID        string `json:"id"`
	Languages string `json:"languages"`
	SavedAt   string `json:"savedAt"`
	TurnCount int    `json:"turnCount"`
}

func NewConversationHandler(conversations service.ConversationService) *ConversationHandler {
	return &ConversationHandler{conversations: conversations}
}

func (h *ConversationHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/conversations", h.Save)
	g.GET("/conversations", h.List)
	g.POST("/conversations/:id/restore", h.Restore)
}

// Save snapshots the current transcript.
// @Summary Save conversation
// @Description Snapshot the current transcript into the conversation store
// @Tags conversations
// @Accept json
// @Produce json
// @Param request body saveConversationRequest true "Active language selection"
// @Success 201 {object} conversationResponse
// @Success 204 "No Content (empty transcript)"
// @Failure 400 {object} errorResponse
// @Router /conversations [post]
func (h *ConversationHandler) Save(c echo.Context) error {
	var req saveConversationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	conv, saved, err := h.conversations.Save(c.Request().Context(), sessionID(c), req.SourceLanguage, req.TargetLanguage)
	if err != nil {
		return writeServiceError(c, err)
	}
	if !saved {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusCreated, toConversationResponse(conv))
}

// List returns saved conversations.
// @Summary List conversations
// @Description List saved conversations in insertion order; use recent to limit to the newest n
// @Tags conversations
// @Produce json
// @Param recent query int false "Return only the newest n conversations"
// @Success 200 {array} conversationResponse
// @Router /conversations [get]
func (h *ConversationHandler) List(c echo.Context) error {
	var (
		convs []model.SavedConversation
		err   error
	)
	if recent := intQueryParam(c, "recent", 0); recent > 0 {
		convs, err = h.conversations.Recent(c.Request().Context(), sessionID(c), recent)
	} else {
		convs, err = h.conversations.List(c.Request().Context(), sessionID(c))
	}
	if err != nil {
		return writeServiceError(c, err)
	}

	response := make([]conversationResponse, 0, len(convs))
	for _, conv := range convs {
		response = append(response, toConversationResponse(conv))
	}
	return c.JSON(http.StatusOK, response)
}

// Restore replaces the transcript with a saved snapshot.
// @Summary Restore conversation
// @Description Replace the live transcript with a copy of the saved snapshot
// @Tags conversations
// @Produce json
// @Param id path string true "Conversation ID"
// @Success 200 {object} transcriptResponse
// @Failure 404 {object} errorResponse
// @Router /conversations/{id}/restore [post]
func (h *ConversationHandler) Restore(c echo.Context) error {
	turns, err := h.conversations.Restore(c.Request().Context(), sessionID(c), c.Param("id"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, transcriptResponse{Turns: toTurnResponses(turns)})
}

func toConversationResponse(conv model.SavedConversation) conversationResponse {
	return conversationResponse{
		ID:        conv.ID,
		Languages: conv.LanguagePair,
		SavedAt:   conv.SavedAt,
		TurnCount: len(conv.Turns),
	}
}
