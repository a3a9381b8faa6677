package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Yuridiegotech/CabalOnline/internal/database"
	"github.com/Yuridiegotech/CabalOnline/internal/domain"
)

func TestLootRecordRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	var pgContainer *postgres.PostgresContainer
	var err error

	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test due to panic (likely Docker issue): %v", r)
			}
		}()
		pgContainer, err = postgres.Run(ctx,
			"postgres:15-alpine",
			postgres.WithDatabase("testdb"),
			postgres.WithUsername("testuser"),
			postgres.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
	}()

	if err != nil {
		t.Skipf("Skipping integration test: failed to start postgres container: %v", err)
	}
	if pgContainer == nil {
		return
	}
	defer func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}()

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := database.NewPool(ctx, connStr, 2, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	defer pool.Close()

	require.NoError(t, database.Migrate(ctx, pool))

	repo := NewLootRecordRepository(pool)

	rarity := "Médio"
	level := 0
	records := []domain.LootRecord{
		{
			Timestamp:        "2025-06-12T10:00:00Z",
			ExtractionType:   domain.ExtractionLoot,
			Direction:        domain.DirectionInbound,
			Item:             "Espada Mística",
			Rarity:           &rarity,
			Quantity:         2,
			EnhancementLevel: &level,
		},
		{
			Timestamp:      "2025-06-12T10:00:00Z",
			ExtractionType: domain.ExtractionInventoryCleaner,
			Direction:      domain.DirectionOutbound,
			Item:           "Poção",
			Quantity:       1,
		},
	}

	n, err := repo.InsertRecords(ctx, records)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	rows, err := pool.Query(ctx, `
		SELECT item, extraction_type, direction, rarity, quantity, enhancement_level, slots
		FROM loot_records ORDER BY loot_record_id`)
	require.NoError(t, err)
	defer rows.Close()

	type row struct {
		item, extractionType, direction string
		rarity, slots                   *string
		quantity                        int
		enhancement                     *int
	}
	var got []row
	for rows.Next() {
		var r row
		require.NoError(t, rows.Scan(&r.item, &r.extractionType, &r.direction, &r.rarity, &r.quantity, &r.enhancement, &r.slots))
		got = append(got, r)
	}
	require.NoError(t, rows.Err())
	require.Len(t, got, 2)

	assert.Equal(t, "Espada Mística", got[0].item)
	assert.Equal(t, "Loot", got[0].extractionType)
	require.NotNil(t, got[0].rarity)
	assert.Equal(t, "Médio", *got[0].rarity)
	require.NotNil(t, got[0].enhancement)
	assert.Equal(t, 0, *got[0].enhancement)
	assert.Nil(t, got[0].slots)

	assert.Equal(t, "Inventory Cleaner", got[1].extractionType)
	assert.Equal(t, "Outbound", got[1].direction)
	assert.Nil(t, got[1].rarity)
	assert.Nil(t, got[1].enhancement)
}
