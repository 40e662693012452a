package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"linguabridge/backend/internal/service"
)

type ChatHandler struct {
	chat service.ChatService
}

type translateRequest struct {
	Text           string `json:"text"`
	SourceLanguage string `json:"sourceLanguage"`
	TargetLanguage string `json:"targetLanguage"`
}

type translateResponse struct {
	Turns []turnResponse `json:"turns"`
	Error string         `json:"error,omitempty"`
}

func NewChatHandler(chat service.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

func (h *ChatHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/chat/translate", h.Translate)
	g.GET("/chat/history", h.History)
	g.POST("/chat/clear", h.Clear)
	g.GET("/chat/export", h.Export)
}

// Translate submits text for translation.
// @Summary Translate text
// @Description Translate text between two supported languages and append the exchange to the transcript
// @Tags chat
// @Accept json
// @Produce json
// @Param request body translateRequest true "Translation request"
// @Success 200 {object} translateResponse
// @Failure 400 {object} errorResponse
// @Failure 502 {object} translateResponse
// @Router /chat/translate [post]
func (h *ChatHandler) Translate(c echo.Context) error {
	var req translateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	turns, err := h.chat.Translate(c.Request().Context(), sessionID(c), req.Text, req.SourceLanguage, req.TargetLanguage)
	if err != nil {
		// A provider failure still commits an error-marked pair; hand the
		// turns back so the UI can render them alongside the error.
		if errors.Is(err, service.ErrTranslationUnavailable) {
			return c.JSON(http.StatusBadGateway, translateResponse{
				Turns: toTurnResponses(turns),
				Error: "translation unavailable",
			})
		}
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, translateResponse{Turns: toTurnResponses(turns)})
}

// History returns the live transcript.
// @Summary Get chat history
// @Description Get the session transcript in display order
// @Tags chat
// @Produce json
// @Success 200 {object} transcriptResponse
// @Router /chat/history [get]
func (h *ChatHandler) History(c echo.Context) error {
	turns := h.chat.History(sessionID(c))
	return c.JSON(http.StatusOK, transcriptResponse{Turns: toTurnResponses(turns)})
}

// Clear empties the live transcript.
// @Summary Clear chat
// @Description Empty the session transcript; saved conversations are kept
// @Tags chat
// @Success 204 "No Content"
// @Router /chat/clear [post]
func (h *ChatHandler) Clear(c echo.Context) error {
	h.chat.Clear(sessionID(c))
	return c.NoContent(http.StatusNoContent)
}

// Export downloads the transcript as a text file.
// @Summary Export chat history
// @Description Download the transcript as a plain-text file
// @Tags chat
// @Produce plain
// @Success 200 {string} string "chat history"
// @Router /chat/export [get]
func (h *ChatHandler) Export(c echo.Context) error {
	filename, content := h.chat.Export(sessionID(c))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, "text/plain; charset=utf-8", []byte(content))
}
