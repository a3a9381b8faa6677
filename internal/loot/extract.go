package loot

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/Yuridiegotech/CabalOnline/internal/domain"
)

// Fields holds the annotations pulled out of one normalized line.
// Optional fields are nil when the matching annotation is absent.
type Fields struct {
	Item             string
	Rarity           *string
	Quantity         int
	EnhancementLevel *int
	ClassRestriction *string
	Slots            *string
}

// step is one extraction pass. apply receives the first capture group and
// returns false to leave the match in the line.
type step struct {
	name    string
	pattern *regexp.Regexp
	apply   func(f *Fields, group string) bool
}

// steps run in order against the residual line. Slots must come before the
// class code so bracket contents are never read as a class.
var steps = []step{
	{StepQuantity, regexp.MustCompile(`x(\d+)$`), applyQuantity},
	{StepSlots, regexp.MustCompile(`\[(.*?)\]`), applySlots},
	{StepClass, regexp.MustCompile(`\(([A-Z]{2,3})\)`), applyClass},
	{StepRarity, rarityPattern(), applyRarity},
	{StepEnhancement, regexp.MustCompile(`\+(\d+)$`), applyEnhancement},
}

func rarityPattern() *regexp.Regexp {
	quoted := make([]string, len(domain.Rarities))
	for i, r := range domain.Rarities {
		quoted[i] = regexp.QuoteMeta(r)
	}
	return regexp.MustCompile(`(?i)\((` + strings.Join(quoted, "|") + `)\)`)
}

// StepNames returns the extraction order.
func StepNames() []string {
	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = s.name
	}
	return names
}

// Extract pulls the optional annotations out of a normalized line. A line
// that matches none of them becomes the item name as is.
func Extract(line string) Fields {
	f := Fields{Quantity: DefaultQuantity}
	residual := strings.TrimSpace(norm.NFC.String(line))

	for _, s := range steps {
		loc := s.pattern.FindStringSubmatchIndex(residual)
		if loc == nil {
			continue
		}
		if !s.apply(&f, residual[loc[2]:loc[3]]) {
			continue
		}
		residual = removeSpan(residual, loc[0], loc[1])
	}

	f.Item = residual
	return f
}

// removeSpan drops s[start:end]. A single space is left at the seam only
// when the span was already separated from its neighbours by whitespace.
func removeSpan(s string, start, end int) string {
	left := strings.TrimRightFunc(s[:start], unicode.IsSpace)
	right := strings.TrimLeftFunc(s[end:], unicode.IsSpace)
	spaced := len(left) < start || len(right) < len(s)-end
	switch {
	case left == "":
		return right
	case right == "":
		return left
	case spaced:
		return left + " " + right
	}
	return left + right
}

func applyQuantity(f *Fields, group string) bool {
	n, err := strconv.Atoi(group)
	if err != nil || n < DefaultQuantity {
		return false
	}
	f.Quantity = n
	return true
}

func applySlots(f *Fields, group string) bool {
	f.Slots = &group
	return true
}

func applyClass(f *Fields, group string) bool {
	f.ClassRestriction = &group
	return true
}

func applyRarity(f *Fields, group string) bool {
	rarity := canonicalRarity(group)
	f.Rarity = &rarity
	return true
}

func applyEnhancement(f *Fields, group string) bool {
	n, err := strconv.Atoi(group)
	if err != nil {
		return false
	}
	f.EnhancementLevel = &n
	return true
}

// canonicalRarity maps a case-insensitive match back to the vocabulary spelling.
func canonicalRarity(s string) string {
	fold := cases.Fold()
	key := fold.String(s)
	for _, r := range domain.Rarities {
		if fold.String(r) == key {
			return r
		}
	}
	return s
}
