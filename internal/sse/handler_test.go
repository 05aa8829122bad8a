package sse

import (
	"bufio"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DJPeters03/IdleAnimalKingdom/internal/domain"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/event"
)

func newStreamServer(t *testing.T, hub *Hub, snapshots SnapshotFunc, interval time.Duration) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	r.Get("/players/{playerID}/events", Handler(hub, snapshots, interval))
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

// nextEventType reads the stream until the next "event:" line
func nextEventType(t *testing.T, sc *bufio.Scanner) string {
	t.Helper()
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "event: ") {
			return strings.TrimPrefix(line, "event: ")
		}
	}
	t.Fatalf("stream ended: %v", sc.Err())
	return ""
}

func TestHandler_StreamsSnapshotsAndBusEvents(t *testing.T) {
	hub := startHub(t)
	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe()

	var calls atomic.Int32
	snapshots := func(_ context.Context, playerID string) (domain.Snapshot, error) {
		calls.Add(1)
		return domain.Snapshot{Food: 42, Rate: 1}, nil
	}
	srv := newStreamServer(t, hub, snapshots, 20*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/players/alice/events", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	sc := bufio.NewScanner(resp.Body)
	assert.Equal(t, EventTypeConnected, nextEventType(t, sc))
	assert.Equal(t, EventTypeSnapshot, nextEventType(t, sc))
	assert.Equal(t, EventTypeSnapshot, nextEventType(t, sc), "periodic snapshot")

	waitForClients(t, hub, 1)
	require.NoError(t, bus.Publish(ctx, event.New("alice", event.BurstTriggered, event.BurstTriggeredPayloadV1{Bursts: 1, Amount: 10})))
	require.NoError(t, bus.Publish(ctx, event.New("bob", event.CacheGranted, event.CacheGrantedPayloadV1{Parrots: 1, Amount: 5})))

	for {
		typ := nextEventType(t, sc)
		if typ == EventTypeSnapshot {
			continue
		}
		assert.Equal(t, string(event.BurstTriggered), typ)
		break
	}
	assert.GreaterOrEqual(t, calls.Load(), int32(2))

	cancel()
	waitForClients(t, hub, 0)
}

func TestHandler_SnapshotErrorBeforeStream(t *testing.T) {
	hub := startHub(t)
	snapshots := func(context.Context, string) (domain.Snapshot, error) {
		return domain.Snapshot{}, errors.New("session manager closed")
	}
	srv := newStreamServer(t, hub, snapshots, time.Second)

	resp, err := http.Get(srv.URL + "/players/alice/events")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, 0, hub.ClientCount())
}

func TestSubscriber_SkipsSaveEvents(t *testing.T) {
	hub := startHub(t)
	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe()

	c := hub.Register("alice", nil)
	waitForClients(t, hub, 1)

	ctx := context.Background()
	require.NoError(t, bus.Publish(ctx, event.New("alice", event.GameSaved, event.GameSavedPayloadV1{Reason: event.SaveReasonAutosave})))
	require.NoError(t, bus.Publish(ctx, event.New("alice", event.PrestigeCompleted, event.PrestigeCompletedPayloadV1{Gain: 2, Relics: 2})))

	e := receive(t, c)
	assert.Equal(t, string(event.PrestigeCompleted), e.Type)
	payload, ok := e.Payload.(event.PrestigeCompletedPayloadV1)
	require.True(t, ok)
	assert.Equal(t, 2, payload.Gain)
	assertNothing(t, c)
}
