package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Yuridiegotech/CabalOnline/internal/domain"
)

// copier is the slice of pgxpool.Pool the repository needs
type copier interface {
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// LootRecordRepository stores loot records in PostgreSQL
type LootRecordRepository struct {
	db copier
}

// NewLootRecordRepository creates a new PostgreSQL loot record repository
func NewLootRecordRepository(db *pgxpool.Pool) *LootRecordRepository {
	return &LootRecordRepository{db: db}
}

// InsertRecords bulk-loads records with COPY and returns the number of rows written
func (r *LootRecordRepository) InsertRecords(ctx context.Context, records []domain.LootRecord) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}

	rows := make([][]interface{}, len(records))
	for i, rec := range records {
		rows[i] = []interface{}{
			rec.Timestamp,
			rec.ExtractionType.String(),
			rec.Direction.String(),
			rec.Item,
			rec.Rarity,
			rec.Quantity,
			rec.EnhancementLevel,
			rec.ClassRestriction,
			rec.Slots,
		}
	}

	n, err := r.db.CopyFrom(ctx, pgx.Identifier{TableLootRecords}, LootRecordColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return n, fmt.Errorf("%s: %w", ErrMsgFailedToCopyLootRecords, err)
	}
	return n, nil
}
