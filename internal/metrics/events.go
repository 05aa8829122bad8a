package metrics

import (
	"context"

	"github.com/DJPeters03/IdleAnimalKingdom/internal/event"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/logger"
)

// EventMetricsCollector subscribes to game events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all game events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range event.AllGameTypes() {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	return nil
}

// HandleEvent updates metrics for one event. It runs on the publishing
// goroutine and only touches counters.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.UnitsPurchased:
		var p event.UnitsPurchasedPayloadV1
		if p, err = event.DecodePayload[event.UnitsPurchasedPayloadV1](evt.Payload); err == nil {
			UnitsPurchased.WithLabelValues(p.Unit).Add(float64(p.Quantity))
			FoodSpent.Add(p.Price)
		}

	case event.UpgradePurchased:
		var p event.UpgradePurchasedPayloadV1
		if p, err = event.DecodePayload[event.UpgradePurchasedPayloadV1](evt.Payload); err == nil {
			UpgradesPurchased.WithLabelValues(p.UpgradeID).Inc()
			FoodSpent.Add(p.Cost)
		}

	case event.BurstTriggered:
		var p event.BurstTriggeredPayloadV1
		if p, err = event.DecodePayload[event.BurstTriggeredPayloadV1](evt.Payload); err == nil {
			Bursts.Add(float64(p.Bursts))
			BurstFood.Add(p.Amount)
		}

	case event.CacheGranted:
		var p event.CacheGrantedPayloadV1
		if p, err = event.DecodePayload[event.CacheGrantedPayloadV1](evt.Payload); err == nil {
			Caches.Inc()
			CacheFood.Add(p.Amount)
		}

	case event.OfflineGranted:
		var p event.OfflineGrantedPayloadV1
		if p, err = event.DecodePayload[event.OfflineGrantedPayloadV1](evt.Payload); err == nil {
			OfflineFood.Add(p.Amount)
		}

	case event.PrestigeCompleted:
		var p event.PrestigeCompletedPayloadV1
		if p, err = event.DecodePayload[event.PrestigeCompletedPayloadV1](evt.Payload); err == nil {
			Prestiges.Inc()
			RelicsGranted.Add(float64(p.Gain))
		}

	case event.GameSaved, event.SaveFailed:
		var p event.GameSavedPayloadV1
		if p, err = event.DecodePayload[event.GameSavedPayloadV1](evt.Payload); err == nil {
			result := ResultOK
			if evt.Type == event.SaveFailed {
				result = ResultError
			} else {
				SaveBytes.Observe(float64(p.Bytes))
			}
			Saves.WithLabelValues(p.Reason, result).Inc()
		}
	}

	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
