package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/osse101/AlterEgo_Go/internal/discord"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string                `json:"status"`
	Message string                `json:"message,omitempty"`
	Discord *discord.HealthStatus `json:"discord,omitempty"`
	Backlog *Backlog              `json:"backlog,omitempty"`
}

// Backlog reports work accepted but not yet delivered.
type Backlog struct {
	RowDeltas  int `json:"row_deltas"`
	Narrations int `json:"narrations"`
}

// Pinger is a row store connection that can be probed, e.g. a pgx pool
type Pinger interface {
	Ping(ctx context.Context) error
}

// BotHealth reports the chat transport's connection state
type BotHealth interface {
	Health() discord.HealthStatus
}

// Pending is anything with a queue of undelivered work
type Pending interface {
	Pending() int
}

// HandleHealthz provides a basic liveness check
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: HealthStatusOK})
	}
}

// ReadinessChecks lists the optional dependencies /readyz probes. Nil fields are skipped.
type ReadinessChecks struct {
	DB         Pinger
	Bot        BotHealth
	RowDeltas  Pending
	Narrations Pending
}

// HandleReadyz reports whether the row store is reachable and the bot connected.
// A disconnected bot degrades the game but does not make it unready.
func HandleReadyz(checks ReadinessChecks) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{Status: HealthStatusOK, Backlog: &Backlog{}}
		if checks.RowDeltas != nil {
			resp.Backlog.RowDeltas = checks.RowDeltas.Pending()
		}
		if checks.Narrations != nil {
			resp.Backlog.Narrations = checks.Narrations.Pending()
		}

		if checks.DB != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := checks.DB.Ping(ctx); err != nil {
				slog.Error("Readiness check failed", "error", err)
				resp.Status = HealthStatusUnavailable
				resp.Message = MsgRowStoreUnreachable
				respondJSON(w, http.StatusServiceUnavailable, resp)
				return
			}
		}

		if checks.Bot != nil {
			bot := checks.Bot.Health()
			resp.Discord = &bot
			if !bot.Connected {
				resp.Status = HealthStatusDegraded
				resp.Message = MsgDiscordDisconnected
			}
		}
		respondJSON(w, http.StatusOK, resp)
	}
}
