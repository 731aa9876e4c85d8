package esfmt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{0, "$ 0"},
		{950, "$ 950"},
		{9500000, "$ 9.500.000"},
		{1234567.49, "$ 1.234.567"},
		{1234567.51, "$ 1.234.568"},
		{-350000, "$ -350.000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Currency(tt.input))
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "60,00%", Percent(60))
	assert.Equal(t, "12,34%", Percent(12.34))
	assert.Equal(t, "0,00%", Percent(0))
	assert.Equal(t, "33,33%", Percent(33.333333))
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "1.234.567", Number(1234567))
	assert.Equal(t, "1.234,50", Number(1234.5))
	assert.Equal(t, "36", Number(36))
}

func TestFechas(t *testing.T) {
	d := time.Date(2026, time.August, 21, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "veintiuno (21) de agosto del año 2026", FechaEnLetras(d))
	assert.Equal(t, "21 de agosto de 2026", FechaLarga(d))

	d2 := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "dos (2) de enero del año 2025", FechaEnLetras(d2))
	assert.Equal(t, "02 de enero de 2025", FechaLarga(d2))
}

func TestHora12(t *testing.T) {
	assert.Equal(t, "2:30 p.m.", Hora12("14:30"))
	assert.Equal(t, "9 a.m.", Hora12("09:00"))
	assert.Equal(t, "12 p.m.", Hora12("12:00"))
	assert.Equal(t, "12:15 a.m.", Hora12("00:15"))
	assert.Equal(t, "no-hora", Hora12("no-hora"))
}
