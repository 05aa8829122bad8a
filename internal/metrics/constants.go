package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Game metric names
const (
	MetricNameUnitsPurchased    = "game_units_purchased_total"
	MetricNameFoodSpent         = "game_food_spent_total"
	MetricNameUpgradesPurchased = "game_upgrades_purchased_total"
	MetricNameBursts            = "game_elephant_bursts_total"
	MetricNameBurstFood         = "game_burst_food_total"
	MetricNameCaches            = "game_parrot_caches_total"
	MetricNameCacheFood         = "game_cache_food_total"
	MetricNameOfflineFood       = "game_offline_food_total"
	MetricNamePrestiges         = "game_prestiges_total"
	MetricNameRelicsGranted     = "game_relics_granted_total"
	MetricNameSaves             = "game_saves_total"
	MetricNameSaveBytes         = "game_save_bytes"
	MetricNameActiveSessions    = "game_active_sessions"
	MetricNameSSEClients        = "sse_clients"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Game metric help text
const (
	HelpTextUnitsPurchased    = "Total number of units bought"
	HelpTextFoodSpent         = "Total food spent on units and upgrades"
	HelpTextUpgradesPurchased = "Total number of upgrades bought"
	HelpTextBursts            = "Total number of elephant bursts"
	HelpTextBurstFood         = "Total food granted by elephant bursts"
	HelpTextCaches            = "Total number of parrot caches that paid out"
	HelpTextCacheFood         = "Total food granted by parrot caches"
	HelpTextOfflineFood       = "Total food granted by offline catch-up"
	HelpTextPrestiges         = "Total number of prestige resets"
	HelpTextRelicsGranted     = "Total relics granted by prestige"
	HelpTextSaves             = "Total number of save attempts"
	HelpTextSaveBytes         = "Size of serialized saves in bytes"
	HelpTextActiveSessions    = "Number of live game sessions"
	HelpTextSSEClients        = "Number of connected SSE clients"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelUnit    = "unit"
	LabelUpgrade = "upgrade"
	LabelReason  = "reason"
	LabelResult  = "result"
)

// Save result label values
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// PathUnmatched labels requests no route matched, keeping path cardinality bounded
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// SaveSizeBuckets spans a fresh save (a few hundred bytes) to very large imports
var SaveSizeBuckets = []float64{256, 512, 1024, 2048, 4096, 8192, 16384, 65536}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
