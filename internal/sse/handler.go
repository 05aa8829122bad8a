package sse

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/DJPeters03/IdleAnimalKingdom/internal/domain"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/logger"
)

// SnapshotFunc reads the current projection of a player's game
type SnapshotFunc func(ctx context.Context, playerID string) (domain.Snapshot, error)

// Handler returns an HTTP handler that streams one player's game: a snapshot
// every interval, the game events published on the bus and a keepalive ping.
func Handler(hub *Hub, snapshots SnapshotFunc, interval time.Duration) http.HandlerFunc {
	if interval <= 0 {
		interval = DefaultSnapshotInterval
	}

	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, URLParamPlayer)
		if playerID == "" {
			http.Error(w, ErrMsgMissingPlayer, http.StatusBadRequest)
			return
		}

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, ErrMsgStreamingUnsupported, http.StatusInternalServerError)
			return
		}

		ctx := r.Context()
		log := logger.FromContext(ctx)

		// Open the game before committing to a stream so lookup errors are plain HTTP
		first, err := snapshots(ctx, playerID)
		if err != nil {
			log.Warn(LogMsgSnapshotFailed, "player_id", playerID, "error", err)
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("Access-Control-Allow-Origin", "*")

		var eventTypes []string
		if filterParam := r.URL.Query().Get(QueryParamTypes); filterParam != "" {
			eventTypes = strings.Split(filterParam, ",")
			// Snapshots are always wanted
			eventTypes = append(eventTypes, EventTypeSnapshot)
		}

		client := hub.Register(playerID, eventTypes)
		log.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"player_id", playerID,
			"filters", eventTypes,
			"total_clients", hub.ClientCount())

		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected,
				"client_id", client.ID,
				"player_id", playerID,
				"total_clients", hub.ClientCount())
		}()

		write := func(e Event) bool {
			msg, err := FormatSSEMessage(e)
			if err != nil {
				log.Error(LogMsgWriteError, "error", err)
				return true
			}
			if _, err := w.Write(msg); err != nil {
				log.Warn(LogMsgWriteError, "error", err)
				return false
			}
			flusher.Flush()
			return true
		}

		now := time.Now().Unix()
		if !write(Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			PlayerID:  playerID,
			Timestamp: now,
			Payload: map[string]interface{}{
				"client_id": client.ID,
				"filters":   eventTypes,
			},
		}) {
			return
		}
		if !write(Event{Type: EventTypeSnapshot, PlayerID: playerID, Timestamp: now, Payload: first}) {
			return
		}

		snapshotTicker := time.NewTicker(interval)
		defer snapshotTicker.Stop()
		keepalive := time.NewTicker(KeepaliveInterval)
		defer keepalive.Stop()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-client.EventChannel:
				if !ok {
					// Hub is shutting down
					return
				}
				if !write(event) {
					return
				}

			case <-snapshotTicker.C:
				snap, err := snapshots(ctx, playerID)
				if err != nil {
					// Session closed or evicted; let the client reconnect
					log.Debug(LogMsgSnapshotFailed, "player_id", playerID, "error", err)
					return
				}
				if !write(Event{Type: EventTypeSnapshot, PlayerID: playerID, Timestamp: time.Now().Unix(), Payload: snap}) {
					return
				}

			case <-keepalive.C:
				if !write(Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}) {
					return
				}
			}
		}
	}
}
