package sse

import (
	"context"
	"log/slog"

	"github.com/DJPeters03/IdleAnimalKingdom/internal/event"
)

// streamedTypes are the bus events forwarded to connected renderers.
// Save bookkeeping stays server-side.
var streamedTypes = []event.Type{
	event.UnitsPurchased,
	event.UpgradePurchased,
	event.BurstTriggered,
	event.CacheGranted,
	event.PrestigeCompleted,
	event.OfflineGranted,
	event.GameWiped,
	event.SaveImported,
}

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers the forwarding handler for every streamed event type
func (s *Subscriber) Subscribe() {
	names := make([]string, len(streamedTypes))
	for i, t := range streamedTypes {
		s.bus.Subscribe(t, s.forward)
		names[i] = string(t)
	}
	slog.Info(LogMsgSubscribed, "types", names)
}

// forward runs on the publishing goroutine, which for tick events is the
// session loop. Broadcast never blocks, so neither does this.
func (s *Subscriber) forward(_ context.Context, evt event.Event) error {
	playerID := evt.PlayerID()
	if !s.hub.Broadcast(playerID, string(evt.Type), evt.Payload) {
		slog.Warn(LogMsgEventDropped, "event_type", evt.Type, "player_id", playerID)
		return nil
	}
	slog.Debug(LogMsgEventBroadcast, "event_type", evt.Type, "player_id", playerID)
	return nil
}
