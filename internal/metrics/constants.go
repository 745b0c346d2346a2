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

// Economy metric names
const (
	MetricNameCoinsGranted      = "coins_granted_total"
	MetricNameClaims            = "claims_total"
	MetricNameBets              = "bets_total"
	MetricNameCoinsWagered      = "coins_wagered_total"
	MetricNameTransfers         = "transfers_total"
	MetricNameCoinsTransferred  = "coins_transferred_total"
	MetricNamePurchases         = "purchases_total"
	MetricNameCoinsSpent        = "coins_spent_total"
	MetricNameEconomyWipes      = "economy_wipes_total"
	MetricNameAdminDenied       = "admin_denied_total"
	MetricNamePendingSelections = "shop_pending_selections"
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

// Economy metric help text
const (
	HelpTextCoinsGranted      = "Total coins created by claims and admin grants"
	HelpTextClaims            = "Total number of claim attempts"
	HelpTextBets              = "Total number of bets placed"
	HelpTextCoinsWagered      = "Total coins wagered on resolved bets"
	HelpTextTransfers         = "Total number of transfer attempts"
	HelpTextCoinsTransferred  = "Total coins moved between accounts"
	HelpTextPurchases         = "Total number of shop purchase resolutions"
	HelpTextCoinsSpent        = "Total coins spent in the shop"
	HelpTextEconomyWipes      = "Total number of global balance resets"
	HelpTextAdminDenied       = "Total number of privileged commands refused"
	HelpTextPendingSelections = "Shop catalogs currently awaiting a selection"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelItem      = "item"
	LabelSource    = "source"
	LabelKind      = "kind"
	LabelGame      = "game"
	LabelOutcome   = "outcome"
	LabelOperation = "operation"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)

// unmatchedRoute labels requests that matched no chi route
const unmatchedRoute = "unmatched"
