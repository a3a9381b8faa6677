package loot

import (
	"strings"
	"time"

	"github.com/Yuridiegotech/CabalOnline/internal/domain"
)

// Counts summarises one Assemble pass.
type Counts struct {
	Lines   int
	Skipped int
}

// Assembler turns fetched messages into loot records.
type Assembler struct {
	now func() time.Time
}

// NewAssembler creates an assembler. now supplies the timestamp for messages
// that carry none; nil means time.Now.
func NewAssembler(now func() time.Time) *Assembler {
	if now == nil {
		now = time.Now
	}
	return &Assembler{now: now}
}

// CategoryForTitle returns the category of an embed title, if it is one we read.
func CategoryForTitle(title string) (domain.ExtractionType, bool) {
	switch title {
	case TitleLoot:
		return domain.ExtractionLoot, true
	case TitleInventoryCleaner:
		return domain.ExtractionInventoryCleaner, true
	}
	return 0, false
}

// Assemble parses every recognised embed line, keeping message order then line order.
func (a *Assembler) Assemble(messages []domain.Message) []domain.LootRecord {
	records, _ := a.AssembleCounted(messages)
	return records
}

// AssembleCounted is Assemble plus line and skip counts.
func (a *Assembler) AssembleCounted(messages []domain.Message) ([]domain.LootRecord, Counts) {
	var (
		records []domain.LootRecord
		counts  Counts
	)

	for _, msg := range messages {
		timestamp := msg.Timestamp
		if timestamp == "" {
			timestamp = a.now().UTC().Format(time.RFC3339Nano)
		}

		for _, embed := range msg.Embeds {
			category, ok := CategoryForTitle(embed.Title)
			if !ok {
				continue
			}

			for _, raw := range strings.Split(embed.Description, "\n") {
				if strings.TrimSpace(raw) == "" {
					continue
				}
				counts.Lines++

				line, direction, skip := Normalize(category, raw)
				if skip {
					counts.Skipped++
					continue
				}

				fields := Extract(line)
				if fields.Item == "" {
					counts.Skipped++
					continue
				}

				records = append(records, domain.LootRecord{
					Timestamp:        timestamp,
					ExtractionType:   category,
					Direction:        direction,
					Item:             fields.Item,
					Rarity:           fields.Rarity,
					Quantity:         fields.Quantity,
					EnhancementLevel: fields.EnhancementLevel,
					ClassRestriction: fields.ClassRestriction,
					Slots:            fields.Slots,
				})
			}
		}
	}

	return records, counts
}
