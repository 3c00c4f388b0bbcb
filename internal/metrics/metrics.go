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

// Event stream Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameEventsDropped,
			Help: HelpTextEventsDropped,
		},
	)

	StreamSubscribers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameStreamSubscribers,
			Help: HelpTextStreamSubscribers,
		},
	)
)

// Slot machine Metrics
var (
	SpinsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpinsTotal,
			Help: HelpTextSpinsTotal,
		},
		[]string{LabelOutcome},
	)

	// CoinsDeltaTotal is a gauge because net coins can go down
	CoinsDeltaTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCoinsDeltaTotal,
			Help: HelpTextCoinsDeltaTotal,
		},
	)

	LeaderboardSyncTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLeaderboardSyncTotal,
			Help: HelpTextLeaderboardSyncTotal,
		},
		[]string{LabelResult},
	)

	LeaderboardFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLeaderboardFetch,
			Help: HelpTextLeaderboardFetch,
		},
		[]string{LabelSource, LabelResult},
	)

	LeaderboardCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLeaderboardCache,
			Help: HelpTextLeaderboardCache,
		},
		[]string{LabelResult},
	)
)

// ResultLabel maps an error to the success/failure label value
func ResultLabel(err error) string {
	if err != nil {
		return ResultFailure
	}
	return ResultSuccess
}
