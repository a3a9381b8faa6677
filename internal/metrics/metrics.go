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

// Cycle Metrics
var (
	CyclesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCyclesTotal,
			Help: HelpTextCyclesTotal,
		},
		[]string{LabelStatus},
	)

	CycleDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameCycleDuration,
			Help:    HelpTextCycleDuration,
			Buckets: CycleLatencyBuckets,
		},
	)

	LastCycleSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameLastCycleSuccess,
			Help: HelpTextLastCycleSuccess,
		},
	)
)

// Extraction Metrics
var (
	MessagesFetched = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMessagesFetched,
			Help: HelpTextMessagesFetched,
		},
	)

	MessagesDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMessagesDropped,
			Help: HelpTextMessagesDropped,
		},
		[]string{LabelReason},
	)

	RecordsExtracted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRecordsExtracted,
			Help: HelpTextRecordsExtracted,
		},
		[]string{LabelExtractionType, LabelDirection},
	)

	LinesSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLinesSkipped,
			Help: HelpTextLinesSkipped,
		},
	)
)

// Sink Metrics
var (
	SinkWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSinkWrites,
			Help: HelpTextSinkWrites,
		},
		[]string{LabelSink, LabelStatus},
	)

	SinkRowsWritten = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSinkRowsWritten,
			Help: HelpTextSinkRowsWritten,
		},
		[]string{LabelSink},
	)
)
