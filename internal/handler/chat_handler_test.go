package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"linguabridge/backend/internal/handler"
	"linguabridge/backend/internal/service"
	"linguabridge/backend/internal/translate"
)

func newTestClock() func() time.Time {
	at := time.Date(2026, 9, 1, 10, 30, 1, 0, time.UTC)
	return func() time.Time { return at }
}

func newChatHandler(t *testing.T) *handler.ChatHandler {
	t.Helper()
	sessions := service.NewSessionManager(service.WithClock(newTestClock()))
	chat := service.NewChatService(sessions, translate.NewStubTranslator(0), translate.NewRateLimiter(100))
	return handler.NewChatHandler(chat)
}

func doJSON(t *testing.T, h echo.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(handler.SessionContextKey, "test-session")
	require.NoError(t, h(c))
	return rec
}

func doJSONParam(t *testing.T, h echo.HandlerFunc, method, target, paramName, paramValue string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(handler.SessionContextKey, "test-session")
	c.SetParamNames(paramName)
	c.SetParamValues(paramValue)
	require.NoError(t, h(c))
	return rec
}

func TestChatHandler_Translate(t *testing.T) {
	h := newChatHandler(t)

	rec := doJSON(t, h.Translate, http.MethodPost, "/api/chat/translate",
		`{"text":"hello","sourceLanguage":"English","targetLanguage":"Spanish"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Turns []struct {
			Role      string `json:"role"`
			Content   string `json:"content"`
			Languages string `json:"languages"`
			Timestamp string `json:"timestamp"`
		} `json:"turns"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Turns, 2)
	require.Equal(t, "user", resp.Turns[0].Role)
	require.Equal(t, "hello", resp.Turns[0].Content)
	require.Equal(t, "English → Spanish", resp.Turns[0].Languages)
	require.Equal(t, "assistant", resp.Turns[1].Role)
	require.Equal(t, "olleh [en→es]", resp.Turns[1].Content)
	require.Empty(t, resp.Turns[1].Languages)
}

func TestChatHandler_Translate_EmptyText(t *testing.T) {
	h := newChatHandler(t)

	rec := doJSON(t, h.Translate, http.MethodPost, "/api/chat/translate",
		`{"text":"   ","sourceLanguage":"English","targetLanguage":"Spanish"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatHandler_Translate_UnknownLanguage(t *testing.T) {
	h := newChatHandler(t)

	rec := doJSON(t, h.Translate, http.MethodPost, "/api/chat/translate",
		`{"text":"hello","sourceLanguage":"Klingon","targetLanguage":"Spanish"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "unknown language")
}

func TestChatHandler_HistoryAndClear(t *testing.T) {
	h := newChatHandler(t)

	doJSON(t, h.Translate, http.MethodPost, "/api/chat/translate",
		`{"text":"hello","sourceLanguage":"English","targetLanguage":"Spanish"}`)

	rec := doJSON(t, h.History, http.MethodGet, "/api/chat/history", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "olleh [en→es]")

	rec = doJSON(t, h.Clear, http.MethodPost, "/api/chat/clear", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, h.History, http.MethodGet, "/api/chat/history", "")
	require.JSONEq(t, `{"turns":[]}`, rec.Body.String())
}

func TestChatHandler_Export(t *testing.T) {
	h := newChatHandler(t)

	doJSON(t, h.Translate, http.MethodPost, "/api/chat/translate",
		`{"text":"hello","sourceLanguage":"English","targetLanguage":"Spanish"}`)

	rec := doJSON(t, h.Export, http.MethodGet, "/api/chat/export", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/plain")
	require.Equal(t, `attachment; filename="translation_chat_20260901_1030.txt"`, rec.Header().Get(echo.HeaderContentDisposition))

	body := rec.Body.String()
	require.True(t, strings.HasPrefix(body, "LinguaBridge AI - Chat History\n\n"))
	require.Contains(t, body, "You: hello\n")
	require.Contains(t, body, "Languages: English → Spanish\n")
	require.Contains(t, body, "Translation: olleh [en→es]\n")
	require.Contains(t, body, "Time: 10:30:01\n")
}
