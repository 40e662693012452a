package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"linguabridge/backend/internal/language"
	"linguabridge/backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, language.ErrUnknownLanguage):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "unknown language"})
	case errors.Is(err, service.ErrInvalid):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "conversation not found"})
	case errors.Is(err, service.ErrTranslationUnavailable):
		return c.JSON(http.StatusBadGateway, errorResponse{Error: "translation unavailable"})
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

// Error returns a JSON error response with the given status and message
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Error: message})
}
