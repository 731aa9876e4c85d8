package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"autoactas/pkg/contracts/domain"
)

func fp(v float64) *float64 { return &v }

func TestResolveTotal(t *testing.T) {
	tests := []struct {
		name     string
		claim    domain.Acreencia
		expected float64
	}{
		{
			name:     "explicit total wins over components",
			claim:    domain.Acreencia{Capital: fp(100), IntCte: fp(50), Total: fp(999)},
			expected: 999,
		},
		{
			name:     "missing total sums the four components",
			claim:    domain.Acreencia{Capital: fp(100), IntCte: fp(50), IntMora: fp(25), Otros: fp(5)},
			expected: 180,
		},
		{
			name:     "missing components count as zero",
			claim:    domain.Acreencia{Capital: fp(100)},
			expected: 100,
		},
		{
			name:     "all missing",
			claim:    domain.Acreencia{},
			expected: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveTotal(tt.claim))
		})
	}
}

func TestPercentage(t *testing.T) {
	claims := []domain.Acreencia{
		{Acreedor: "A", Total: fp(600000)},
		{Acreedor: "B", Total: fp(300000)},
		{Acreedor: "C", Total: fp(100000)},
	}

	var sum float64
	for _, c := range claims {
		pct, ok := Percentage(c, claims)
		assert.True(t, ok)
		sum += pct
	}
	assert.InDelta(t, 100, sum, 1e-9)

	pct, ok := Percentage(claims[0], claims)
	assert.True(t, ok)
	assert.InDelta(t, 60, pct, 1e-9)
}

func TestPercentageZeroAggregate(t *testing.T) {
	claims := []domain.Acreencia{{Acreedor: "A"}, {Acreedor: "B"}}
	for _, c := range claims {
		_, ok := Percentage(c, claims)
		assert.False(t, ok)
	}
}

func TestNormalizeVote(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.VoteCategory
		ok       bool
	}{
		{"POSITIVO", domain.VotePositivo, true},
		{"positivo", domain.VotePositivo, true},
		{"Voto positivo", domain.VotePositivo, true},
		{"NEGATIVO", domain.VoteNegativo, true},
		{"Negativa", domain.VoteNegativo, true},
		{"AUSENTE", domain.VoteAusente, true},
		{"ausente", domain.VoteAusente, true},
		{"ABSTENCION", domain.VoteAbstencion, true},
		{"Se abstiene", "", false},
		{"", "", false},
		{"pendiente", "", false},
	}
	for _, tt := range tests {
		cat, ok := NormalizeVote(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		if tt.ok {
			assert.Equal(t, tt.expected, cat, "input %q", tt.input)
		}
	}
}

// Scenario: totals 600000/300000/100000 with votes "Positivo"/""/"Negativo"
// must tally POSITIVO=60, AUSENTE=30, NEGATIVO=10, ABSTENCION=0.
func TestTally(t *testing.T) {
	claims := []domain.Acreencia{
		{Acreedor: "A", Total: fp(600000), Voto: "Positivo"},
		{Acreedor: "B", Total: fp(300000)},
		{Acreedor: "C", Total: fp(100000), Voto: "Negativo"},
	}

	tally := Tally(claims)
	assert.True(t, tally.HasVotes)
	assert.InDelta(t, 60, tally.Buckets[domain.VotePositivo], 1e-9)
	assert.InDelta(t, 30, tally.Buckets[domain.VoteAusente], 1e-9)
	assert.InDelta(t, 10, tally.Buckets[domain.VoteNegativo], 1e-9)
	assert.InDelta(t, 0, tally.Buckets[domain.VoteAbstencion], 1e-9)
}

func TestTallyNoVotes(t *testing.T) {
	claims := []domain.Acreencia{
		{Acreedor: "A", Total: fp(500)},
		{Acreedor: "B", Total: fp(500), Voto: "pendiente"},
	}

	tally := Tally(claims)
	assert.False(t, tally.HasVotes)
	for _, cat := range domain.VoteCategories {
		assert.Zero(t, tally.Buckets[cat])
	}
}

func TestSumComponents(t *testing.T) {
	claims := []domain.Acreencia{
		{Capital: fp(100), IntCte: fp(10), IntMora: fp(5), Otros: fp(1)},
		{Capital: fp(200), Total: fp(999)},
	}
	totals := SumComponents(claims)
	assert.Equal(t, 300.0, totals.Capital)
	assert.Equal(t, 10.0, totals.IntCte)
	assert.Equal(t, 5.0, totals.IntMora)
	assert.Equal(t, 1.0, totals.Otros)
	assert.Equal(t, 1115.0, totals.Total)
}
