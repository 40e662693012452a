package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"linguabridge/backend/internal/language"
)

type LanguageHandler struct{}

func NewLanguageHandler() *LanguageHandler {
	return &LanguageHandler{}
}

func (h *LanguageHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/languages", h.List)
}

// List returns the supported languages.
// @Summary List languages
// @Description Get the fixed set of supported languages in registry order
// @Tags languages
// @Produce json
// @Success 200 {array} language.Language
// @Router /languages [get]
func (h *LanguageHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, language.All())
}
