package server

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/AlterEgo_Go/internal/handler"
	"github.com/osse101/AlterEgo_Go/internal/inventory"
)

const testKey = "secret-key"

type stubCommands struct{}

func (stubCommands) PlayerNamed(name string) *inventory.Player {
	if name == "Vivian" {
		return inventory.NewPlayer("Vivian", nil)
	}
	return nil
}

func (stubCommands) Execute(context.Context, *inventory.Player, string) (string, error) {
	return "You take a HAMMER.", nil
}

func (stubCommands) ExecuteModerator(context.Context, string) (string, error) {
	return "done", nil
}

func (stubCommands) Describe(*inventory.Player, bool) string { return "__Vivian's inventory:__" }

func testRouter(limit int) http.Handler {
	return newRouter(Config{APIKey: testKey, Version: "test", RateLimit: limit}, stubCommands{}, handler.ReadinessChecks{})
}

func request(h http.Handler, method, path, key, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if key != "" {
		req.Header.Set(HeaderAPIKey, key)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestRoutes(t *testing.T) {
	h := testRouter(0)

	tests := []struct {
		name       string
		method     string
		path       string
		key        string
		body       string
		wantStatus int
	}{
		{"healthz is public", http.MethodGet, "/healthz", "", "", http.StatusOK},
		{"readyz is public", http.MethodGet, "/readyz", "", "", http.StatusOK},
		{"version is public", http.MethodGet, "/version", "", "", http.StatusOK},
		{"metrics is public", http.MethodGet, "/metrics", "", "", http.StatusOK},
		{"command needs key", http.MethodPost, "/api/v1/commands", "", `{"player":"Vivian","command":"take hammer"}`, http.StatusUnauthorized},
		{"wrong key", http.MethodPost, "/api/v1/commands", "nope", `{"player":"Vivian","command":"take hammer"}`, http.StatusUnauthorized},
		{"command", http.MethodPost, "/api/v1/commands", testKey, `{"player":"Vivian","command":"take hammer"}`, http.StatusOK},
		{"moderator command", http.MethodPost, "/api/v1/moderator/commands", testKey, `{"command":"instantiate hammer into kitchen"}`, http.StatusOK},
		{"inventory", http.MethodGet, "/api/v1/inventory/Vivian", testKey, "", http.StatusOK},
		{"unknown route", http.MethodGet, "/api/v1/nothing", testKey, "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := request(h, tt.method, tt.path, tt.key, tt.body)
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, HeaderValueNoSniff, rr.Header().Get(HeaderContentType))
		})
	}
}

func TestRequestSizeLimit(t *testing.T) {
	h := testRouter(0)
	body := `{"player":"Vivian","command":"` + strings.Repeat("a", MaxRequestBytes) + `"}`
	rr := request(h, http.MethodPost, "/api/v1/commands", testKey, body)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRateLimit(t *testing.T) {
	h := testRouter(2)

	for range 2 {
		require.Equal(t, http.StatusOK, request(h, http.MethodGet, "/api/v1/inventory/Vivian", testKey, "").Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, request(h, http.MethodGet, "/api/v1/inventory/Vivian", testKey, "").Code)
}

func TestRateLimiter_PerClient(t *testing.T) {
	l := NewRateLimiter(1, DefaultRateWindow, 8)
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.2"))
}

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/inventory/Vivian", nil)
	req.Header.Set(HeaderAPIKey, "secret-key-123")
	req.Header.Set(HeaderAuthorization, "Bearer mytoken")
	loggingMiddleware(next).ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, LogMsgRequestHeaders)
	assert.Contains(t, out, RedactedValue)
	assert.Contains(t, out, "status=418")
	assert.NotContains(t, out, "secret-key-123")
	assert.NotContains(t, out, "mytoken")
}
