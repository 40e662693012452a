package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"linguabridge/backend/internal/service"
)

type SpeechHandler struct {
	speech service.SpeechService
}

func NewSpeechHandler(speech service.SpeechService) *SpeechHandler {
	return &SpeechHandler{speech: speech}
}

func (h *SpeechHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/speech/speak", h.Speak)
	g.POST("/speech/listen", h.Listen)
}

// Speak reads the latest translation out loud.
// @Summary Speak last translation
// @Description Speak the most recent assistant turn; degrades to available=false when no engine is usable
// @Tags speech
// @Produce json
// @Success 200 {object} speech.SpeakResult
// @Failure 400 {object} errorResponse
// @Router /speech/speak [post]
func (h *SpeechHandler) Speak(c echo.Context) error {
	result, err := h.speech.SpeakLast(c.Request().Context(), sessionID(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// Listen captures one spoken utterance.
// @Summary Capture voice input
// @Description Block until an utterance is captured or the engine times out. The captured text replaces any pending input on the client; it is never appended to it.
// @Tags speech
// @Produce json
// @Success 200 {object} speech.ListenResult
// @Router /speech/listen [post]
func (h *SpeechHandler) Listen(c echo.Context) error {
	result := h.speech.Listen(c.Request().Context(), sessionID(c))
	return c.JSON(http.StatusOK, result)
}
