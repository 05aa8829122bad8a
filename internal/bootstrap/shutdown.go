package bootstrap

import (
	"context"
	"log/slog"

	"github.com/DJPeters03/IdleAnimalKingdom/internal/server"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/session"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/sse"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server     *server.Server
	Background *Background
	Sessions   *session.Manager
	Hub        *sse.Hub
	Store      *Store
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler and workers (no autosave races the final save)
// 3. Sessions (final save of every live game)
// 4. SSE hub, then the store
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Background != nil {
		components.Background.Stop()
	}

	if components.Sessions != nil {
		slog.Info(LogMsgSavingSessions, "sessions", components.Sessions.Len())
		if err := components.Sessions.Shutdown(ctx); err != nil {
			slog.Error(LogMsgSessionShutdownFailed, "error", err)
		}
	}

	if components.Hub != nil {
		components.Hub.Stop()
	}

	if components.Store != nil && components.Store.Close != nil {
		components.Store.Close()
	}

	slog.Info(LogMsgServerStopped)
}
