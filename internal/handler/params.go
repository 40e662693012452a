package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// SessionContextKey is where the session middleware stores the caller's
// session id on the request context.
const SessionContextKey = "lb_session_id"

func sessionID(c echo.Context) string {
	id, _ := c.Get(SessionContextKey).(string)
	return id
}

func intQueryParam(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
