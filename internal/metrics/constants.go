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

// Scrape metric names
const (
	MetricNameCyclesTotal      = "loot_cycles_total"
	MetricNameCycleDuration    = "loot_cycle_duration_seconds"
	MetricNameLastCycleSuccess = "loot_last_cycle_success_timestamp_seconds"
	MetricNameMessagesFetched  = "loot_messages_fetched_total"
	MetricNameMessagesDropped  = "loot_messages_dropped_total"
	MetricNameRecordsExtracted = "loot_records_extracted_total"
	MetricNameLinesSkipped     = "loot_lines_skipped_total"
	MetricNameSinkWrites       = "loot_sink_writes_total"
	MetricNameSinkRowsWritten  = "loot_sink_rows_written_total"
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

// Scrape metric help text
const (
	HelpTextCyclesTotal      = "Total number of fetch cycles by outcome"
	HelpTextCycleDuration    = "Fetch cycle duration in seconds"
	HelpTextLastCycleSuccess = "Unix time of the last fully successful fetch cycle"
	HelpTextMessagesFetched  = "Total number of messages returned by the message source"
	HelpTextMessagesDropped  = "Total number of fetched messages dropped before assembly"
	HelpTextRecordsExtracted = "Total number of loot records extracted"
	HelpTextLinesSkipped     = "Total number of embed lines that produced no record"
	HelpTextSinkWrites       = "Total number of sink write attempts by outcome"
	HelpTextSinkRowsWritten  = "Total number of records written per sink"
)

// ============================================================================
// Label Names
// ============================================================================

const (
	LabelMethod         = "method"
	LabelPath           = "path"
	LabelStatus         = "status"
	LabelReason         = "reason"
	LabelExtractionType = "extraction_type"
	LabelDirection      = "direction"
	LabelSink           = "sink"
)

// Label values
const (
	StatusSuccess = "success"
	StatusError   = "error"

	ReasonLookback  = "lookback"
	ReasonDuplicate = "duplicate"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

var (
	HTTPLatencyBuckets  = []float64{.005, .01, .025, .05, .1, .25, .5, 1}
	CycleLatencyBuckets = []float64{.1, .25, .5, 1, 2.5, 5, 10, 30}
)
