package scraper

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Yuridiegotech/CabalOnline/internal/domain"
	"github.com/Yuridiegotech/CabalOnline/internal/logger"
	"github.com/Yuridiegotech/CabalOnline/internal/loot"
	"github.com/Yuridiegotech/CabalOnline/internal/metrics"
	"github.com/Yuridiegotech/CabalOnline/internal/sink"
)

// MessageSource returns the most recent messages of a channel, oldest first
type MessageSource interface {
	Fetch(ctx context.Context) ([]domain.Message, error)
}

// Options tunes message filtering between fetch and assembly
type Options struct {
	// Lookback drops messages older than now minus Lookback. Zero keeps all.
	Lookback time.Duration
	// DedupeCacheSize bounds the seen-ID cache. Zero disables dedupe.
	DedupeCacheSize int
	DedupeTTL       time.Duration
	// Now is the clock used for lookback and missing timestamps. Nil means time.Now.
	Now func() time.Time
}

// CycleStatus describes the most recent cycle
type CycleStatus struct {
	RunID      string
	StartedAt  time.Time
	FinishedAt time.Time
	Messages   int
	Records    int
	Err        error
}

// Service defines the scraper business logic
type Service interface {
	// RunCycle fetches, extracts and writes one batch of records
	RunCycle(ctx context.Context) error
	// LastCycle returns the status of the last finished cycle, if any
	LastCycle() (CycleStatus, bool)
	// CheckHealth fails until a cycle has finished and while the last one failed
	CheckHealth(ctx context.Context) error
}

type service struct {
	source    MessageSource
	sinks     []sink.Sink
	assembler *loot.Assembler
	seen      *seenCache
	lookback  time.Duration
	now       func() time.Time

	mu      sync.RWMutex
	last    CycleStatus
	hasLast bool
}

// NewService creates a new scraper service writing to every sink in order
func NewService(source MessageSource, sinks []sink.Sink, opts Options) Service {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	s := &service{
		source:    source,
		sinks:     sinks,
		assembler: loot.NewAssembler(now),
		lookback:  opts.Lookback,
		now:       now,
	}
	if opts.DedupeCacheSize > 0 {
		s.seen = newSeenCache(opts.DedupeCacheSize, opts.DedupeTTL)
	}
	return s
}

// RunCycle implements Service. A fetch failure aborts the cycle before any
// sink is touched. Sink failures do not stop the remaining sinks; they are
// joined into the returned error.
func (s *service) RunCycle(ctx context.Context) (err error) {
	start := time.Now()
	status := CycleStatus{RunID: logger.GenerateRunID(), StartedAt: s.now()}
	ctx = logger.WithRunID(ctx, status.RunID)
	log := logger.FromContext(ctx)

	log.Info(LogMsgCycleStarted)
	defer func() {
		metrics.ObserveCycle(start, err)
		status.FinishedAt = s.now()
		status.Err = err
		s.setLast(status)
		log.Info(LogMsgCycleFinished,
			"messages", status.Messages,
			"records", status.Records,
			"duration", time.Since(start),
			"success", err == nil)
	}()

	messages, err := s.source.Fetch(ctx)
	if err != nil {
		log.Error(LogMsgFetchFailed, "error", err)
		return err
	}
	metrics.MessagesFetched.Add(float64(len(messages)))

	messages = s.filter(ctx, messages)
	status.Messages = len(messages)

	records, counts := s.assembler.AssembleCounted(messages)
	status.Records = len(records)
	metrics.ObserveRecords(records)
	metrics.LinesSkipped.Add(float64(counts.Skipped))

	if len(records) == 0 {
		log.Info(LogMsgNoRecords, "messages", len(messages), "lines", counts.Lines)
		s.markSeen(messages)
		return nil
	}
	log.Info(LogMsgRecordsExtracted, "records", len(records), "lines", counts.Lines, "skipped_lines", counts.Skipped)

	if err = s.writeAll(ctx, records); err != nil {
		return err
	}

	s.markSeen(messages)
	return nil
}

// LastCycle implements Service
func (s *service) LastCycle() (CycleStatus, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last, s.hasLast
}

// CheckHealth implements Service
func (s *service) CheckHealth(ctx context.Context) error {
	last, ok := s.LastCycle()
	if !ok {
		return domain.ErrNoCycleYet
	}
	if last.Err != nil {
		return fmt.Errorf("%w: run %s: %w", domain.ErrLastCycle, last.RunID, last.Err)
	}
	return nil
}

func (s *service) setLast(status CycleStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = status
	s.hasLast = true
}

// filter applies the lookback window and drops messages written in an
// earlier cycle
func (s *service) filter(ctx context.Context, messages []domain.Message) []domain.Message {
	var cutoff time.Time
	if s.lookback > 0 {
		cutoff = s.now().Add(-s.lookback)
	}

	kept := make([]domain.Message, 0, len(messages))
	var tooOld, duplicate int
	for _, msg := range messages {
		if !cutoff.IsZero() && s.olderThan(ctx, msg, cutoff) {
			tooOld++
			continue
		}
		if s.seen != nil && s.seen.Seen(msg.ID) {
			duplicate++
			continue
		}
		kept = append(kept, msg)
	}

	if tooOld > 0 || duplicate > 0 {
		metrics.MessagesDropped.WithLabelValues(metrics.ReasonLookback).Add(float64(tooOld))
		metrics.MessagesDropped.WithLabelValues(metrics.ReasonDuplicate).Add(float64(duplicate))
		logger.FromContext(ctx).Debug(LogMsgMessagesFiltered,
			"kept", len(kept), "too_old", tooOld, "duplicate", duplicate)
	}
	return kept
}

func (s *service) olderThan(ctx context.Context, msg domain.Message, cutoff time.Time) bool {
	if msg.Timestamp == "" {
		return false
	}
	ts, err := time.Parse(time.RFC3339Nano, msg.Timestamp)
	if err != nil {
		logger.FromContext(ctx).Debug(LogMsgUnparseableMsgTime, "message_id", msg.ID, "timestamp", msg.Timestamp)
		return false
	}
	return ts.Before(cutoff)
}

func (s *service) markSeen(messages []domain.Message) {
	if s.seen == nil {
		return
	}
	for _, msg := range messages {
		s.seen.Mark(msg.ID)
	}
}

func (s *service) writeAll(ctx context.Context, records []domain.LootRecord) error {
	log := logger.FromContext(ctx)

	var errs []error
	for _, sk := range s.sinks {
		err := sk.Write(ctx, records)
		metrics.ObserveSinkWrite(sk.Name(), len(records), err)
		if err != nil {
			log.Error(LogMsgSinkWriteFailed, "sink", sk.Name(), "error", err)
			errs = append(errs, fmt.Errorf("%w: %s: %w", domain.ErrSinkFailed, sk.Name(), err))
			continue
		}
		log.Info(LogMsgSinkWritten, "sink", sk.Name(), "records", len(records))
	}
	return errors.Join(errs...)
}
