package postgres

// Table layout
const (
	TableLootRecords = "loot_records"
)

// LootRecordColumns is the COPY column order; it matches the tabular sink order.
var LootRecordColumns = []string{
	"message_timestamp",
	"extraction_type",
	"direction",
	"item",
	"rarity",
	"quantity",
	"enhancement_level",
	"class_restriction",
	"slots",
}

// Error Messages - Loot Record Operations
const (
	ErrMsgFailedToCopyLootRecords = "failed to copy loot records"
)
