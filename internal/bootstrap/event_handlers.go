package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/DJPeters03/IdleAnimalKingdom/internal/event"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/metrics"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/session"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/sse"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus   event.Bus
	Hub        *sse.Hub
	Sessions   *session.Manager
	Registerer prometheus.Registerer
}

// RegisterEventHandlers sets up all event subscribers and gauges.
// This includes:
// - Metrics collector (game counters from bus events)
// - SSE subscriber (forwards game events to connected renderers)
// - Gauges for live sessions and SSE clients
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	sse.NewSubscriber(deps.Hub, deps.EventBus).Subscribe()
	slog.Info(LogMsgSSESubscriberRegistered)

	if deps.Registerer != nil {
		if err := metrics.RegisterGauges(deps.Registerer, deps.Sessions.Len, deps.Hub.ClientCount); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedRegisterGauges, err)
		}
	}

	return nil
}
