package http

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"linguabridge/backend/internal/handler"
	"linguabridge/backend/internal/service"
)

func TestSessionMiddleware_AssignsCookie(t *testing.T) {
	sessions := service.NewSessionManager()
	e := echo.New()

	req := httptest.NewRequest(nethttp.MethodGet, "/api/chat/history", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	h := SessionMiddleware(sessions)(func(c echo.Context) error {
		seen = c.Get(handler.SessionContextKey).(string)
		return c.NoContent(nethttp.StatusNoContent)
	})
	require.NoError(t, h(c))
	require.NotEmpty(t, seen)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, SessionCookieName, cookies[0].Name)
	require.Equal(t, seen, cookies[0].Value)
	require.True(t, cookies[0].HttpOnly)
}

func TestSessionMiddleware_ReusesCookie(t *testing.T) {
	sessions := service.NewSessionManager()
	e := echo.New()

	req := httptest.NewRequest(nethttp.MethodGet, "/api/chat/history", nil)
	req.AddCookie(&nethttp.Cookie{Name: SessionCookieName, Value: "existing-session"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	h := SessionMiddleware(sessions)(func(c echo.Context) error {
		seen = c.Get(handler.SessionContextKey).(string)
		return c.NoContent(nethttp.StatusNoContent)
	})
	require.NoError(t, h(c))
	require.Equal(t, "existing-session", seen)
	require.Empty(t, rec.Result().Cookies())
}
