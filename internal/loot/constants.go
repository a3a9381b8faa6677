package loot

// Embed titles that carry inventory text
const (
	TitleLoot             = "📦 Loot"
	TitleInventoryCleaner = "📦 Inventory Cleaner"
)

// Leading direction markers
const (
	MarkerInboxTray   = ":inbox_tray:"
	MarkerOutboxTray  = ":outbox_tray:"
	MarkerCross       = ":x:"
	MarkerCrossEmoji  = "❌"
	MarkerOutboxEmoji = "📤"
	MarkerInboxEmoji  = "📥"
	MarkerCheckEmoji  = "✅"
)

// ReservedTokens are direction-only lines that never carry an item
var ReservedTokens = []string{"in", "out", "**in**", "**out**"}

// DefaultQuantity applies when a line has no multiplier suffix
const DefaultQuantity = 1

// Extraction step names, in execution order
const (
	StepQuantity    = "quantity"
	StepSlots       = "slots"
	StepClass       = "class_restriction"
	StepRarity      = "rarity"
	StepEnhancement = "enhancement_level"
)

const (
	bulletRunes         = "-–—•·‣◦>»|"
	annotationOpeners   = "(["
	variationSelector16 = '\uFE0F'
	zeroWidthJoiner     = '\u200D'
)
