package sheetscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLabel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Tasa de interés (mensual)", "TASA DE INTERES MENSUAL"},
		{"  VALOR -- CUOTA  ", "VALOR CUOTA"},
		{"Número de Cuotas:", "NUMERO DE CUOTAS"},
		{"", ""},
		{"%%%", ""},
		{"año 2025", "ANO 2025"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeLabel(tt.input), "input %q", tt.input)
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		ok       bool
	}{
		{"1.234.567", 1234567, true},
		{"1.234.567,89", 1234567.89, true},
		{"1,234,567.89", 1234567.89, true},
		{"$ 9.500.000", 9500000, true},
		{"45,5", 45.5, true},
		{"45,5%", 45.5, true},
		{"12.5", 12.5, true},
		{"1.234", 1234, true},
		{"(350)", -350, true},
		{"0", 0, true},
		{"", 0, false},
		{"-", 0, false},
		{"n/a", 0, false},
		{"FECHA", 0, false},
	}
	for _, tt := range tests {
		v, ok := ParseNumber(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		if tt.ok {
			assert.InDelta(t, tt.expected, v, 1e-9, "input %q", tt.input)
		}
	}
}

func TestGridCellOutOfRange(t *testing.T) {
	g := Grid{{"a"}, {"b", "c"}}
	assert.Equal(t, "a", g.Cell(0, 0))
	assert.Equal(t, "c", g.Cell(1, 1))
	assert.Equal(t, "", g.Cell(0, 1))
	assert.Equal(t, "", g.Cell(5, 0))
	assert.Equal(t, "", g.Cell(-1, -1))
}
