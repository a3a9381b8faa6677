package loot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Fields
	}{
		{
			name: "no annotations",
			line: "  Espada Curta  ",
			want: Fields{Item: "Espada Curta", Quantity: 1},
		},
		{
			name: "every annotation",
			line: "Espada Longa (Alto) (WAR) [2 slots] x3",
			want: Fields{
				Item:             "Espada Longa",
				Rarity:           strPtr("Alto"),
				Quantity:         3,
				ClassRestriction: strPtr("WAR"),
				Slots:            strPtr("2 slots"),
			},
		},
		{
			name: "enhancement only",
			line: "Anel +5",
			want: Fields{Item: "Anel", Quantity: 1, EnhancementLevel: intPtr(5)},
		},
		{
			name: "enhancement and quantity",
			line: "Arma +7 x2",
			want: Fields{Item: "Arma", Quantity: 2, EnhancementLevel: intPtr(7)},
		},
		{
			name: "quantity is only read at the end of the line",
			line: "Arma x2 +7",
			want: Fields{Item: "Arma x2", Quantity: 1, EnhancementLevel: intPtr(7)},
		},
		{
			name: "rarity is case insensitive and canonicalised",
			line: "Colar (alto-MÉDIO)",
			want: Fields{Item: "Colar", Quantity: 1, Rarity: strPtr("Alto-médio")},
		},
		{
			name: "decomposed accent still matches rarity",
			line: "Luva (Me\u0301dio)",
			want: Fields{Item: "Luva", Quantity: 1, Rarity: strPtr("Médio")},
		},
		{
			name: "bracket contents are never read as class",
			line: "Bracelete [ (WAR) ]",
			want: Fields{Item: "Bracelete", Quantity: 1, Slots: strPtr(" (WAR) ")},
		},
		{
			name: "class before item name",
			line: "(BM) Orbe",
			want: Fields{Item: "Orbe", Quantity: 1, ClassRestriction: strPtr("BM")},
		},
		{
			name: "removed span in the middle leaves one space",
			line: "Espada (Altíssimo) Longa",
			want: Fields{Item: "Espada Longa", Quantity: 1, Rarity: strPtr("Altíssimo")},
		},
		{
			name: "span without surrounding spaces joins the halves",
			line: "Espada[2 slots]Longa",
			want: Fields{Item: "EspadaLonga", Quantity: 1, Slots: strPtr("2 slots")},
		},
		{
			name: "space on one side of the span is kept once",
			line: "Espada (WAR)Longa",
			want: Fields{Item: "Espada Longa", Quantity: 1, ClassRestriction: strPtr("WAR")},
		},
		{
			name: "unbalanced bracket is left in the name",
			line: "Elmo [sem fim",
			want: Fields{Item: "Elmo [sem fim", Quantity: 1},
		},
		{
			name: "zero multiplier is not a quantity",
			line: "Pedra x0",
			want: Fields{Item: "Pedra x0", Quantity: 1},
		},
		{
			name: "four letter code is not a class",
			line: "Botas (WARR)",
			want: Fields{Item: "Botas (WARR)", Quantity: 1},
		},
		{
			name: "only annotations leaves an empty item",
			line: "(Baixo) x4",
			want: Fields{Item: "", Quantity: 4, Rarity: strPtr("Baixo")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.line))
		})
	}
}

func TestExtract_Idempotent(t *testing.T) {
	lines := []string{
		"Espada Longa (Alto) (WAR) [2 slots] x3",
		"Anel +5",
		"Colar (Baixo) x10",
		"Pedra de Aprimoramento",
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			first := Extract(line)
			second := Extract(first.Item)

			assert.Equal(t, first.Item, second.Item)
			assert.Equal(t, Fields{Item: first.Item, Quantity: DefaultQuantity}, second)
		})
	}
}

func TestStepNames(t *testing.T) {
	require.Equal(t, []string{StepQuantity, StepSlots, StepClass, StepRarity, StepEnhancement}, StepNames())
}

func BenchmarkExtract(b *testing.B) {
	line := "Espada Longa (Alto) (WAR) [2 slots] x3"
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Extract(line)
	}
}
