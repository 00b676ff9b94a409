package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/AlterEgo_Go/internal/server"
)

// GracefulShutdown stops intake first and drains queues after, so every command
// that was accepted still reaches the row store and the chat:
//  1. HTTP server and Discord gateway (no new commands)
//  2. row syncer (applies every emitted delta)
//  3. narration pool (delivers every queued message)
//  4. row store and database pool
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, srv *server.Server, g *Game) {
	slog.Info(LogMsgShuttingDown)

	if srv != nil {
		if err := srv.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}
	if g.Bot != nil {
		g.Bot.Stop()
	}

	g.Syncer.Stop()
	g.narrationPool.Stop()

	if err := g.Store.Close(); err != nil {
		slog.Error(LogMsgRowStoreCloseFailed, "error", err)
	}
	if g.DB != nil {
		g.DB.Close()
	}

	slog.Info(LogMsgStopped)
}
