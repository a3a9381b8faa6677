package domain

// Direction tells whether an item entered or left an inventory
type Direction int

const (
	DirectionInbound Direction = iota
	DirectionOutbound
)

// String returns the label written to sinks
func (d Direction) String() string {
	if d == DirectionOutbound {
		return DirectionLabelOutbound
	}
	return DirectionLabelInbound
}

// MarshalText implements encoding.TextMarshaler so JSON sinks write the label
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// ExtractionType identifies the embed category a record came from
type ExtractionType int

const (
	ExtractionLoot ExtractionType = iota
	ExtractionInventoryCleaner
)

// String returns the label written to sinks
func (e ExtractionType) String() string {
	if e == ExtractionInventoryCleaner {
		return ExtractionLabelInventoryCleaner
	}
	return ExtractionLabelLoot
}

// MarshalText implements encoding.TextMarshaler so JSON sinks write the label
func (e ExtractionType) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// Sink labels
const (
	DirectionLabelInbound           = "Inbound"
	DirectionLabelOutbound          = "Outbound"
	ExtractionLabelLoot             = "Loot"
	ExtractionLabelInventoryCleaner = "Inventory Cleaner"
)

// Rarity vocabulary, in canonical spelling
const (
	RarityAlto      = "Alto"
	RarityMedio     = "Médio"
	RarityBaixo     = "Baixo"
	RarityAltissimo = "Altíssimo"
	RarityAltoMedio = "Alto-médio"
)

// Rarities lists every recognised rarity tag
var Rarities = []string{RarityAlto, RarityMedio, RarityBaixo, RarityAltissimo, RarityAltoMedio}

// LootRecord is one parsed inventory event. Optional fields are nil when the
// line carried no matching annotation.
type LootRecord struct {
	Timestamp        string         `json:"timestamp"`
	ExtractionType   ExtractionType `json:"extraction_type"`
	Direction        Direction      `json:"direction"`
	Item             string         `json:"item"`
	Rarity           *string        `json:"rarity"`
	Quantity         int            `json:"quantity"`
	EnhancementLevel *int           `json:"enhancement_level"`
	ClassRestriction *string        `json:"class_restriction"`
	Slots            *string        `json:"slots"`
}
