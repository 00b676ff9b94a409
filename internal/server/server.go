// Package server serves the HTTP API next to the Discord bot.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/AlterEgo_Go/internal/handler"
	"github.com/osse101/AlterEgo_Go/internal/logger"
	"github.com/osse101/AlterEgo_Go/internal/metrics"
)

// Config holds what the server needs besides the game itself
type Config struct {
	Port      int
	APIKey    string
	Version   string
	RateLimit int
}

type Server struct {
	httpServer *http.Server
}

// NewServer wires the API routes around the command dispatcher
func NewServer(cfg Config, cmds handler.Commands, checks handler.ReadinessChecks) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           newRouter(cfg, cmds, checks),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

func newRouter(cfg Config, cmds handler.Commands, checks handler.ReadinessChecks) http.Handler {
	limit := cfg.RateLimit
	if limit <= 0 {
		limit = DefaultRateLimit
	}

	r := chi.NewRouter()

	// outermost first
	r.Use(middleware.Recoverer)
	r.Use(SecurityHeadersMiddleware)
	r.Use(loggingMiddleware)
	r.Use(AuthMiddleware(cfg.APIKey))
	r.Use(RateLimitMiddleware(NewRateLimiter(limit, DefaultRateWindow, DefaultRateLimitIPs)))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBytes))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(checks))
	r.Get("/version", handler.HandleVersion(cfg.Version))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/commands", handler.HandleCommand(cmds))
		r.Post("/moderator/commands", handler.HandleModeratorCommand(cmds))
		r.Get("/inventory/{player}", handler.HandleGetInventory(cmds))
	})

	return r
}

// responseWriter captures the status code for the request log
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	rw.statusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isPublic(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength)

		headers := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				headers[k] = []string{RedactedValue}
				continue
			}
			headers[k] = v
		}
		log.Debug(LogMsgRequestHeaders, "headers", headers)

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", time.Since(start).Milliseconds())
	})
}

// Start serves until Stop is called
func (s *Server) Start() error {
	slog.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop shuts the server down gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
