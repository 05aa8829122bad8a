package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Game Metrics
var (
	UnitsPurchased = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUnitsPurchased,
			Help: HelpTextUnitsPurchased,
		},
		[]string{LabelUnit},
	)

	FoodSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFoodSpent,
			Help: HelpTextFoodSpent,
		},
	)

	UpgradesPurchased = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUpgradesPurchased,
			Help: HelpTextUpgradesPurchased,
		},
		[]string{LabelUpgrade},
	)

	Bursts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBursts,
			Help: HelpTextBursts,
		},
	)

	BurstFood = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBurstFood,
			Help: HelpTextBurstFood,
		},
	)

	Caches = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCaches,
			Help: HelpTextCaches,
		},
	)

	CacheFood = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCacheFood,
			Help: HelpTextCacheFood,
		},
	)

	OfflineFood = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameOfflineFood,
			Help: HelpTextOfflineFood,
		},
	)

	Prestiges = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePrestiges,
			Help: HelpTextPrestiges,
		},
	)

	RelicsGranted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRelicsGranted,
			Help: HelpTextRelicsGranted,
		},
	)

	Saves = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSaves,
			Help: HelpTextSaves,
		},
		[]string{LabelReason, LabelResult},
	)

	SaveBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameSaveBytes,
			Help:    HelpTextSaveBytes,
			Buckets: SaveSizeBuckets,
		},
	)
)

// RegisterGauges registers gauges that are read from live components at
// scrape time. Call once per registry.
func RegisterGauges(reg prometheus.Registerer, activeSessions, sseClients func() int) error {
	gauges := []prometheus.Collector{
		prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: MetricNameActiveSessions,
				Help: HelpTextActiveSessions,
			},
			func() float64 { return float64(activeSessions()) },
		),
		prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: MetricNameSSEClients,
				Help: HelpTextSSEClients,
			},
			func() float64 { return float64(sseClients()) },
		),
	}
	for _, g := range gauges {
		if err := reg.Register(g); err != nil {
			return err
		}
	}
	return nil
}
