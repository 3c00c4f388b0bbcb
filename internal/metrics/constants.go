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
	MetricNameEventsPublished   = "events_published_total"
	MetricNameEventsDropped     = "events_dropped_total"
	MetricNameStreamSubscribers = "event_stream_subscribers"
)

// Slot machine metric names
const (
	MetricNameSpinsTotal           = "slot_spins_total"
	MetricNameCoinsDeltaTotal      = "slot_coins_delta_total"
	MetricNameLeaderboardSyncTotal = "leaderboard_sync_total"
	MetricNameLeaderboardFetch     = "leaderboard_fetch_total"
	MetricNameLeaderboardCache     = "leaderboard_cache_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextEventsPublished   = "Total number of events published to stream subscribers"
	HelpTextEventsDropped     = "Total number of events dropped for slow subscribers"
	HelpTextStreamSubscribers = "Current number of connected event stream subscribers"

	HelpTextSpinsTotal           = "Total number of spins by outcome"
	HelpTextCoinsDeltaTotal      = "Net coins won (positive) or lost (negative) across all spins"
	HelpTextLeaderboardSyncTotal = "Remote leaderboard submissions by result"
	HelpTextLeaderboardFetch     = "Leaderboard reads by source and result"
	HelpTextLeaderboardCache     = "Remote leaderboard cache lookups by result"
)

// ============================================================================
// Metric Label Names and Values
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelOutcome = "outcome"
	LabelResult  = "result"
	LabelSource  = "source"
)

const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultHit     = "hit"
	ResultMiss    = "miss"
)

// UnmatchedRoute labels requests that matched no chi route
const UnmatchedRoute = "unmatched"

// HTTPLatencyBuckets spans 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
