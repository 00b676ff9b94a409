package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/osse101/AlterEgo_Go/internal/domain"
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

// Engine Metrics
var (
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameOperationsTotal,
			Help: HelpTextOperationsTotal,
		},
		[]string{LabelOperation, LabelResult},
	)

	RowDeltasTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRowDeltasTotal,
			Help: HelpTextRowDeltasTotal,
		},
		[]string{LabelTable, LabelOp},
	)

	PersistenceErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePersistenceErrors,
			Help: HelpTextPersistenceErrors,
		},
	)

	NarrationQueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameNarrationQueue,
			Help: HelpTextNarrationQueue,
		},
	)

	NarrationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameNarrationsSent,
			Help: HelpTextNarrationsSent,
		},
		[]string{LabelPriority},
	)

	NarrationFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameNarrationFailures,
			Help: HelpTextNarrationFailures,
		},
	)

	LiveItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameLiveItems,
			Help: HelpTextLiveItems,
		},
	)
)

// ResultLabel maps an operation error onto the result label.
func ResultLabel(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, domain.ErrNotFound):
		return ResultNotFound
	case errors.Is(err, domain.ErrCapacityExceeded):
		return ResultCapacityExceeded
	case errors.Is(err, domain.ErrInvalidState):
		return ResultInvalidState
	case errors.Is(err, domain.ErrPrerequisiteMissing):
		return ResultPrerequisiteMissing
	default:
		return ResultError
	}
}

// RecordOperation counts one engine operation.
func RecordOperation(operation string, err error) {
	OperationsTotal.WithLabelValues(operation, ResultLabel(err)).Inc()
}

// RecordDelta counts one row delta.
func RecordDelta(delta domain.RowDelta) {
	RowDeltasTotal.WithLabelValues(string(delta.Table), string(delta.Op)).Inc()
}
