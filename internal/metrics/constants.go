package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "alterego_http_requests_total"
	MetricNameHTTPRequestDuration  = "alterego_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "alterego_http_requests_in_flight"
)

// Engine metric names
const (
	MetricNameOperationsTotal   = "alterego_operations_total"
	MetricNameRowDeltasTotal    = "alterego_row_deltas_total"
	MetricNamePersistenceErrors = "alterego_persistence_errors_total"
	MetricNameNarrationQueue    = "alterego_narration_queue_depth"
	MetricNameNarrationsSent    = "alterego_narrations_sent_total"
	MetricNameNarrationFailures = "alterego_narration_failures_total"
	MetricNameLiveItems         = "alterego_live_items"
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

// Engine metric help text
const (
	HelpTextOperationsTotal   = "Inventory operations by operation and result"
	HelpTextRowDeltasTotal    = "Row deltas emitted by table and op"
	HelpTextPersistenceErrors = "Row deltas the row store failed to apply"
	HelpTextNarrationQueue    = "Messages waiting in the narration queue"
	HelpTextNarrationsSent    = "Messages delivered by priority"
	HelpTextNarrationFailures = "Messages the chat transport failed to deliver"
	HelpTextLiveItems         = "Item instances currently in the registry"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelOperation = "operation"
	LabelResult    = "result"
	LabelTable     = "table"
	LabelOp        = "op"
	LabelPriority  = "priority"
)

// ============================================================================
// Label Values
// ============================================================================

// Operation results; rejections carry the lower-case error kind.
const (
	ResultOK                  = "ok"
	ResultNotFound            = "not_found"
	ResultCapacityExceeded    = "capacity_exceeded"
	ResultInvalidState        = "invalid_state"
	ResultPrerequisiteMissing = "prerequisite_missing"
	ResultError               = "error"
)

// PathUnmatched labels requests no route matched.
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request latency (in seconds)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5}
