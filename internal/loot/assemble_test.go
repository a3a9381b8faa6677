package loot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yuridiegotech/CabalOnline/internal/domain"
)

var fixedNow = time.Date(2025, 6, 12, 18, 30, 0, 0, time.UTC)

func newTestAssembler() *Assembler {
	return NewAssembler(func() time.Time { return fixedNow })
}

func TestAssemble_PreservesOrderAndTimestamps(t *testing.T) {
	messages := []domain.Message{
		{
			ID:        "1",
			Timestamp: "2025-06-12T10:00:00.000000+00:00",
			Embeds: []domain.Embed{{
				Title:       TitleLoot,
				Description: "Espada Longa (Alto) x3\n\nAnel +5\n",
			}},
		},
		{
			ID:        "2",
			Timestamp: "2025-06-12T11:00:00.000000+00:00",
			Embeds: []domain.Embed{{
				Title:       TitleInventoryCleaner,
				Description: ":outbox_tray: Pedra x10\r\n:inbox_tray: Colar (Baixo)",
			}},
		},
	}

	records := newTestAssembler().Assemble(messages)

	require.Len(t, records, 4)

	assert.Equal(t, "Espada Longa", records[0].Item)
	assert.Equal(t, 3, records[0].Quantity)
	assert.Equal(t, "2025-06-12T10:00:00.000000+00:00", records[0].Timestamp)
	assert.Equal(t, domain.ExtractionLoot, records[0].ExtractionType)

	assert.Equal(t, "Anel", records[1].Item)
	assert.Equal(t, "2025-06-12T10:00:00.000000+00:00", records[1].Timestamp)

	assert.Equal(t, "Pedra", records[2].Item)
	assert.Equal(t, 10, records[2].Quantity)
	assert.Equal(t, domain.DirectionOutbound, records[2].Direction)
	assert.Equal(t, domain.ExtractionInventoryCleaner, records[2].ExtractionType)
	assert.Equal(t, "2025-06-12T11:00:00.000000+00:00", records[2].Timestamp)

	assert.Equal(t, "Colar", records[3].Item)
	assert.Equal(t, domain.DirectionInbound, records[3].Direction)
	require.NotNil(t, records[3].Rarity)
	assert.Equal(t, "Baixo", *records[3].Rarity)
}

func TestAssemble_IgnoresUnknownEmbeds(t *testing.T) {
	messages := []domain.Message{
		{Timestamp: "2025-06-12T10:00:00Z"},
		{
			Timestamp: "2025-06-12T10:00:00Z",
			Embeds: []domain.Embed{
				{Title: "📦 Other", Description: "Espada"},
				{Title: "Loot", Description: "Espada"},
				{Title: TitleLoot, Description: "Escudo"},
			},
		},
	}

	records := newTestAssembler().Assemble(messages)

	require.Len(t, records, 1)
	assert.Equal(t, "Escudo", records[0].Item)
}

func TestAssemble_SkipsMarkerOnlyAndEmptyItems(t *testing.T) {
	messages := []domain.Message{{
		Timestamp: "2025-06-12T10:00:00Z",
		Embeds: []domain.Embed{{
			Title:       TitleInventoryCleaner,
			Description: "**out**\n:x: Espada\n**in**\n(Alto) x2\n   \nEscudo",
		}},
	}}

	records, counts := newTestAssembler().AssembleCounted(messages)

	require.Len(t, records, 2)
	assert.Equal(t, "Espada", records[0].Item)
	assert.Equal(t, domain.DirectionOutbound, records[0].Direction)
	assert.Equal(t, "Escudo", records[1].Item)
	assert.Equal(t, Counts{Lines: 5, Skipped: 3}, counts)
}

func TestAssemble_BulletedLinesDropDecoration(t *testing.T) {
	messages := []domain.Message{{
		Timestamp: "2025-06-12T10:00:00Z",
		Embeds: []domain.Embed{{
			Title:       TitleInventoryCleaner,
			Description: "* **out**\n* Espada\n+ Escudo x2\n# Anel +5\n:inbox_tray: • Colar",
		}},
	}}

	records, counts := newTestAssembler().AssembleCounted(messages)

	require.Len(t, records, 4)
	assert.Equal(t, "Espada", records[0].Item)
	assert.Equal(t, "Escudo", records[1].Item)
	assert.Equal(t, 2, records[1].Quantity)
	assert.Equal(t, "Anel", records[2].Item)
	require.NotNil(t, records[2].EnhancementLevel)
	assert.Equal(t, 5, *records[2].EnhancementLevel)
	assert.Equal(t, "Colar", records[3].Item)
	assert.Equal(t, Counts{Lines: 5, Skipped: 1}, counts)
}

func TestAssemble_FallsBackToClock(t *testing.T) {
	messages := []domain.Message{{
		Embeds: []domain.Embed{{Title: TitleLoot, Description: "Espada\nEscudo"}},
	}}

	records := newTestAssembler().Assemble(messages)

	require.Len(t, records, 2)
	for _, r := range records {
		assert.Equal(t, "2025-06-12T18:30:00Z", r.Timestamp)
	}
}

func TestAssemble_Empty(t *testing.T) {
	assert.Empty(t, NewAssembler(nil).Assemble(nil))
}

func TestCategoryForTitle(t *testing.T) {
	category, ok := CategoryForTitle(TitleLoot)
	assert.True(t, ok)
	assert.Equal(t, domain.ExtractionLoot, category)

	category, ok = CategoryForTitle(TitleInventoryCleaner)
	assert.True(t, ok)
	assert.Equal(t, domain.ExtractionInventoryCleaner, category)

	_, ok = CategoryForTitle("📦 loot")
	assert.False(t, ok)
}
