package loot

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Yuridiegotech/CabalOnline/internal/domain"
)

type marker struct {
	token     string
	direction domain.Direction
}

// markers is matched in order; the first prefix hit wins.
var markers = []marker{
	{MarkerInboxTray, domain.DirectionInbound},
	{MarkerOutboxTray, domain.DirectionOutbound},
	{MarkerCross, domain.DirectionOutbound},
	{MarkerCrossEmoji, domain.DirectionOutbound},
	{MarkerOutboxEmoji, domain.DirectionOutbound},
	{MarkerInboxEmoji, domain.DirectionInbound},
	{MarkerCheckEmoji, domain.DirectionInbound},
}

var (
	shortcodePattern   = regexp.MustCompile(`^:[a-z0-9_+\-]+:`)
	customEmojiPattern = regexp.MustCompile(`^<a?:\w+:\d+>`)
)

// directionRules maps each category to the direction a recognised marker implies.
// Loot lines are always inbound; the marker is only cosmetic there.
var directionRules = map[domain.ExtractionType]func(marker) domain.Direction{
	domain.ExtractionLoot: func(marker) domain.Direction {
		return domain.DirectionInbound
	},
	domain.ExtractionInventoryCleaner: func(m marker) domain.Direction {
		return m.direction
	},
}

// Normalize strips the leading marker from a raw line and decides its
// direction. skip is true for lines that only carry a direction token.
func Normalize(category domain.ExtractionType, raw string) (cleaned string, direction domain.Direction, skip bool) {
	line := strings.TrimSpace(raw)
	direction = domain.DirectionInbound

	if m, rest, ok := cutMarker(line); ok {
		line = stripDecoration(rest)
		if rule, found := directionRules[category]; found {
			direction = rule(m)
		}
	} else {
		line = stripDecoration(line)
	}

	return line, direction, isReserved(line)
}

func cutMarker(line string) (marker, string, bool) {
	for _, m := range markers {
		if rest, ok := strings.CutPrefix(line, m.token); ok {
			rest = strings.TrimLeft(rest, string(variationSelector16))
			return m, strings.TrimSpace(rest), true
		}
	}
	return marker{}, line, false
}

// stripDecoration removes leading emoji, shortcodes and bullets until the
// line starts with something that can begin an item name.
func stripDecoration(line string) string {
	for {
		trimmed := customEmojiPattern.ReplaceAllString(line, "")
		trimmed = shortcodePattern.ReplaceAllString(trimmed, "")
		trimmed = trimLeadingDecoration(trimmed)
		if trimmed == line {
			return line
		}
		line = trimmed
	}
}

func trimLeadingDecoration(line string) string {
	for i, r := range line {
		if shortcodePattern.MatchString(line[i:]) || customEmojiPattern.MatchString(line[i:]) {
			return strings.TrimSpace(line[i:])
		}
		if !isDecoration(r, line[i+utf8.RuneLen(r):]) {
			return strings.TrimSpace(line[i:])
		}
	}
	return ""
}

// isDecoration reports leading runes that never start an item name: emoji,
// emoji joiners, list bullets and ASCII punctuation. Annotation brackets are
// kept, and an asterisk only counts as a bullet when a space follows it.
func isDecoration(r rune, rest string) bool {
	switch {
	case unicode.IsSpace(r):
		return true
	case r == '*':
		next, _ := utf8.DecodeRuneInString(rest)
		return rest == "" || unicode.IsSpace(next)
	case strings.ContainsRune(annotationOpeners, r):
		return false
	case strings.ContainsRune(bulletRunes, r):
		return true
	case r == variationSelector16 || r == zeroWidthJoiner:
		return true
	case r <= unicode.MaxASCII && (unicode.IsPunct(r) || unicode.IsSymbol(r)):
		return true
	case r > unicode.MaxASCII && (unicode.Is(unicode.So, r) || unicode.Is(unicode.Sk, r)):
		return true
	}
	return false
}

func isReserved(line string) bool {
	for _, token := range ReservedTokens {
		if strings.EqualFold(line, token) {
			return true
		}
	}
	return false
}
