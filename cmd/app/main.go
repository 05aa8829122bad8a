package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/DJPeters03/IdleAnimalKingdom/internal/bootstrap"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/config"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/event"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/handler"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/server"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/session"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/sse"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

const (
	startupTimeout  = 30 * time.Second
	shutdownTimeout = 15 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg, version)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	if err := run(cfg); err != nil {
		slog.Error(bootstrap.LogMsgServerExitedWithError, "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	startCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	store, err := bootstrap.InitializeStore(startCtx, cfg)
	cancel()
	if err != nil {
		return err
	}

	bus := event.NewMemoryBus()
	hub := sse.NewHub()
	hub.Start()

	manager := session.NewManager(store, bus, session.Config{
		TickRate:     cfg.TickRate,
		MaxTickDelta: cfg.MaxTickDelta,
		IdleTTL:      cfg.SessionIdleTTL,
		MaxSessions:  cfg.MaxSessions,
	})

	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:   bus,
		Hub:        hub,
		Sessions:   manager,
		Registerer: prometheus.DefaultRegisterer,
	}); err != nil {
		return err
	}

	background := bootstrap.StartBackground(cfg.WorkerCount, cfg.AutosaveInterval, manager)

	srv := server.NewServer(server.Options{
		Port:             cfg.Port,
		APIKey:           cfg.APIKey,
		TrustedProxies:   cfg.TrustedProxies,
		MaxRequests:      server.MaxRequestsPerWindow,
		SnapshotInterval: cfg.SnapshotInterval,
	}, server.Deps{
		Sessions: handler.NewSessionProvider(manager),
		Hub:      hub,
		Ready:    store.Ready,
	})

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-stop:
		slog.Info(bootstrap.LogMsgReceivedSignal, "signal", sig.String())
	case runErr = <-serverErr:
	}

	ctx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:     srv,
		Background: background,
		Sessions:   manager,
		Hub:        hub,
		Store:      store,
	})

	return runErr
}
