package metrics

import (
	"time"

	"github.com/Yuridiegotech/CabalOnline/internal/domain"
)

// ObserveRecords counts extracted records by extraction type and direction
func ObserveRecords(records []domain.LootRecord) {
	for _, r := range records {
		RecordsExtracted.WithLabelValues(r.ExtractionType.String(), r.Direction.String()).Inc()
	}
}

// ObserveSinkWrite records the outcome of one sink write
func ObserveSinkWrite(sink string, rows int, err error) {
	if err != nil {
		SinkWrites.WithLabelValues(sink, StatusError).Inc()
		return
	}
	SinkWrites.WithLabelValues(sink, StatusSuccess).Inc()
	SinkRowsWritten.WithLabelValues(sink).Add(float64(rows))
}

// ObserveCycle records the duration and outcome of one fetch cycle
func ObserveCycle(start time.Time, err error) {
	CycleDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		CyclesTotal.WithLabelValues(StatusError).Inc()
		return
	}
	CyclesTotal.WithLabelValues(StatusSuccess).Inc()
	LastCycleSuccess.SetToCurrentTime()
}
