package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "linguabridge/backend/docs"
	"linguabridge/backend/internal/handler"
	"linguabridge/backend/internal/service"
)

func NewRouter(
	chatHandler *handler.ChatHandler,
	conversationHandler *handler.ConversationHandler,
	languageHandler *handler.LanguageHandler,
	speechHandler *handler.SpeechHandler,
	sessions *service.SessionManager,
	staticDir string,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(RequestLoggerMiddleware())

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	api.Use(SessionMiddleware(sessions))
	chatHandler.RegisterRoutes(api)
	conversationHandler.RegisterRoutes(api)
	languageHandler.RegisterRoutes(api)
	speechHandler.RegisterRoutes(api)

	registerStatic(e, staticDir)

	return e
}
