package sink

import (
	"context"

	"github.com/Yuridiegotech/CabalOnline/internal/domain"
	"github.com/Yuridiegotech/CabalOnline/internal/logger"
)

// RecordStore is the repository behind the Postgres sink
type RecordStore interface {
	InsertRecords(ctx context.Context, records []domain.LootRecord) (int64, error)
}

// Postgres writes records to the loot_records table
type Postgres struct {
	store RecordStore
}

// NewPostgres creates a Postgres sink over store
func NewPostgres(store RecordStore) *Postgres {
	return &Postgres{store: store}
}

// Name implements Sink
func (p *Postgres) Name() string {
	return NamePostgres
}

// Write implements Sink
func (p *Postgres) Write(ctx context.Context, records []domain.LootRecord) error {
	if len(records) == 0 {
		return nil
	}
	n, err := p.store.InsertRecords(ctx, records)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Debug(LogMsgRowsInserted, "rows", n)
	return nil
}
