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

// Economy Metrics
var (
	CoinsGranted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCoinsGranted,
			Help: HelpTextCoinsGranted,
		},
		[]string{LabelSource},
	)

	Claims = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameClaims,
			Help: HelpTextClaims,
		},
		[]string{LabelKind, LabelOutcome},
	)

	Bets = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBets,
			Help: HelpTextBets,
		},
		[]string{LabelGame, LabelOutcome},
	)

	CoinsWagered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCoinsWagered,
			Help: HelpTextCoinsWagered,
		},
		[]string{LabelGame},
	)

	Transfers = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTransfers,
			Help: HelpTextTransfers,
		},
		[]string{LabelOutcome},
	)

	CoinsTransferred = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsTransferred,
			Help: HelpTextCoinsTransferred,
		},
	)

	Purchases = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePurchases,
			Help: HelpTextPurchases,
		},
		[]string{LabelItem, LabelOutcome},
	)

	CoinsSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsSpent,
			Help: HelpTextCoinsSpent,
		},
	)

	EconomyWipes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameEconomyWipes,
			Help: HelpTextEconomyWipes,
		},
	)

	AdminDenied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAdminDenied,
			Help: HelpTextAdminDenied,
		},
		[]string{LabelOperation},
	)

	PendingSelections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNamePendingSelections,
			Help: HelpTextPendingSelections,
		},
	)
)
