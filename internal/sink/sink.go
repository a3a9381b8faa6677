package sink

import (
	"context"

	"github.com/Yuridiegotech/CabalOnline/internal/domain"
)

// Sink receives the records of one fetch cycle
type Sink interface {
	// Name identifies the sink in logs and metrics
	Name() string

	// Write persists records in order. An empty slice is a no-op.
	Write(ctx context.Context, records []domain.LootRecord) error
}

// Columns is the fixed column order of tabular sinks
var Columns = []string{
	"timestamp",
	"extraction_type",
	"direction",
	"item",
	"rarity",
	"quantity",
	"enhancement_level",
	"class_restriction",
	"slots",
}

// Row lays a record out in Columns order. Unset optional cells are empty strings.
func Row(r domain.LootRecord) []interface{} {
	return []interface{}{
		r.Timestamp,
		r.ExtractionType.String(),
		r.Direction.String(),
		r.Item,
		stringOrEmpty(r.Rarity),
		r.Quantity,
		intOrEmpty(r.EnhancementLevel),
		stringOrEmpty(r.ClassRestriction),
		stringOrEmpty(r.Slots),
	}
}

func stringOrEmpty(s *string) interface{} {
	if s == nil {
		return ""
	}
	return *s
}

func intOrEmpty(n *int) interface{} {
	if n == nil {
		return ""
	}
	return *n
}
