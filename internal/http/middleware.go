package http

import (
	nethttp "net/http"
	"time"

	"github.com/labstack/echo/v4"

	"linguabridge/backend/internal/handler"
	"linguabridge/backend/internal/logger"
	"linguabridge/backend/internal/service"
)

// SessionCookieName is the name of the session identity cookie.
const SessionCookieName = "lb_session"

// RequestLoggerMiddleware logs HTTP requests using logger.
func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			latency := time.Since(start)
			remoteIP := c.RealIP()

			status := res.Status
			result := "ok"
			if status >= 400 {
				result = "failed"
			}
			fields := []any{
				"module", "http",
				"action", "request",
				"resource", "http",
				"result", result,
				"method", req.Method,
				"path", req.URL.Path,
				"status_code", status,
				"duration_ms", latency.Milliseconds(),
				"remote_ip", remoteIP,
			}
			switch {
			case status >= 500:
				logger.Error("http request", fields...)
			case status >= 400:
				logger.Warn("http request", fields...)
			default:
				logger.Debug("http request", fields...)
			}

			return nil
		}
	}
}

// SessionMiddleware assigns every caller a session identity cookie and
// exposes the id to handlers. The id keys all per-session state; no
// authentication is attached to it.
func SessionMiddleware(sessions *service.SessionManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var id string
			if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
				id = cookie.Value
			}
			if id == "" {
				id = sessions.NewID()
				c.SetCookie(&nethttp.Cookie{
					Name:     SessionCookieName,
					Value:    id,
					Path:     "/",
					HttpOnly: true,
					SameSite: nethttp.SameSiteLaxMode,
				})
				logger.Debug("session assigned", "module", "http", "action", "request", "resource", "session", "result", "ok", "session_id", id)
			}
			c.Set(handler.SessionContextKey, id)
			return next(c)
		}
	}
}
