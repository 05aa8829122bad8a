package bootstrap

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DJPeters03/IdleAnimalKingdom/internal/config"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/domain"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/event"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/save"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/session"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/sse"
)

func TestCleanupLogs_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf(LogFileNamePattern, base.Add(time.Duration(i)*time.Minute).Format(LogFileTimestampFormat))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o644))

	cleanupLogs(dir, LogFileRetentionCount)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var logs []string
	for _, e := range entries {
		if filepath.Ext(e.Name()) == LogFileExtension {
			logs = append(logs, e.Name())
		}
	}
	assert.Len(t, logs, LogFileRetentionCount)
	assert.NotContains(t, logs, fmt.Sprintf(LogFileNamePattern, base.Format(LogFileTimestampFormat)))
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
}

func TestSetupLogger_WritesStdoutAndFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	cfg := &config.Config{
		LogLevel:     "info",
		LogFormat:    "json",
		LogDir:       filepath.Join(t.TempDir(), "logs"),
		Environment:  config.EnvironmentDev,
		StoreBackend: config.StoreBackendMemory,
	}
	var stdout bytes.Buffer
	now := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

	f, err := setupLogger(cfg, "test", &stdout, now)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	path := filepath.Join(cfg.LogDir, "session_2024-05-06_07-08-09.log")
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), LogMsgLoggingInitialized)
	assert.Contains(t, string(data), LogMsgLoggingInitialized)
	assert.Contains(t, string(data), `"service":"idle-animal-kingdom"`)
}

func TestInitializeStore(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		st, err := InitializeStore(ctx, &config.Config{StoreBackend: config.StoreBackendMemory})
		require.NoError(t, err)
		assert.Nil(t, st.Ready)
		require.NoError(t, st.Set(ctx, "k", "v"))
		v, ok, err := st.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "v", v)
	})

	t.Run("file", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "saves")
		st, err := InitializeStore(ctx, &config.Config{StoreBackend: config.StoreBackendFile, SaveDir: dir})
		require.NoError(t, err)
		require.NoError(t, st.Set(ctx, save.Key("p1"), "{}"))
		assert.DirExists(t, dir)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := InitializeStore(ctx, &config.Config{StoreBackend: "redis"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgUnknownStoreBackend)
	})
}

func TestRegisterEventHandlers_ForwardsToHub(t *testing.T) {
	bus := event.NewMemoryBus()
	hub := sse.NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)

	manager := session.NewManager(save.NewMemoryStore(), bus, session.Config{})
	t.Cleanup(func() { _ = manager.Shutdown(context.Background()) })

	reg := prometheus.NewRegistry()
	require.NoError(t, RegisterEventHandlers(EventHandlerDependencies{
		EventBus:   bus,
		Hub:        hub,
		Sessions:   manager,
		Registerer: reg,
	}))

	client := hub.Register("p1", nil)
	defer hub.Unregister(client.ID)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	payload := event.UnitsPurchasedPayloadV1{Unit: string(domain.UnitMonkey), Mode: "x1", Quantity: 1, Price: 1, NewCount: 2}
	require.NoError(t, bus.Publish(context.Background(), event.New("p1", event.UnitsPurchased, payload)))

	select {
	case got := <-client.EventChannel:
		assert.Equal(t, string(event.UnitsPurchased), got.Type)
		assert.Equal(t, "p1", got.PlayerID)
	case <-time.After(time.Second):
		t.Fatal("event not forwarded to SSE client")
	}

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestGracefulShutdown_WritesFinalSaves(t *testing.T) {
	ctx := context.Background()
	store := save.NewMemoryStore()
	bus := event.NewMemoryBus()
	manager := session.NewManager(store, bus, session.Config{})
	hub := sse.NewHub()
	hub.Start()

	_, err := manager.Get(ctx, "p1")
	require.NoError(t, err)

	background := StartBackground(1, time.Hour, manager)
	closed := false

	GracefulShutdown(ctx, ShutdownComponents{
		Background: background,
		Sessions:   manager,
		Hub:        hub,
		Store:      &Store{Store: store, Close: func() { closed = true }},
	})

	_, ok, err := store.Get(ctx, save.Key("p1"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, closed)

	_, err = manager.Get(ctx, "p2")
	assert.ErrorIs(t, err, session.ErrManagerClosed)
}
