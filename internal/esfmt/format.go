// Package esfmt formats numbers, money and dates the way Colombian legal
// documents expect them: dot thousands, comma decimals, dates written out in
// words where the text requires it.
package esfmt

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Currency renders a monetary value as "$ 1.234.567" with zero decimals.
func Currency(v float64) string {
	return "$ " + Number(math.Round(v))
}

// Percent renders a percentage with exactly two decimals and a comma as the
// decimal separator, e.g. "12,34%".
func Percent(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	return strings.Replace(s, ".", ",", 1) + "%"
}

// Number renders a plain number with dot thousands grouping and up to two
// comma decimals, dropping the decimals when the value is whole.
func Number(v float64) string {
	whole := int64(v)
	if v == math.Trunc(v) {
		return groupThousands(whole)
	}
	s := fmt.Sprintf("%.2f", v)
	parts := strings.SplitN(s, ".", 2)
	neg := strings.HasPrefix(parts[0], "-")
	n := int64(math.Abs(float64(whole)))
	out := groupThousands(n) + "," + parts[1]
	if neg {
		out = "-" + out
	}
	return out
}

func groupThousands(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := fmt.Sprintf("%d", n)
	if len(s) > 3 {
		var b strings.Builder
		lead := len(s) % 3
		if lead > 0 {
			b.WriteString(s[:lead])
		}
		for i := lead; i < len(s); i += 3 {
			if b.Len() > 0 {
				b.WriteByte('.')
			}
			b.WriteString(s[i : i+3])
		}
		s = b.String()
	}
	if neg {
		return "-" + s
	}
	return s
}

var meses = []string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

var unidades = []string{
	"", "uno", "dos", "tres", "cuatro", "cinco", "seis", "siete", "ocho", "nueve",
	"diez", "once", "doce", "trece", "catorce", "quince", "dieciséis", "diecisiete",
	"dieciocho", "diecinueve", "veinte", "veintiuno", "veintidós", "veintitrés",
	"veinticuatro", "veinticinco", "veintiséis", "veintisiete", "veintiocho",
	"veintinueve", "treinta", "treinta y uno",
}

// DayInWords spells a day of the month, e.g. 21 → "veintiuno".
func DayInWords(day int) string {
	if day >= 0 && day < len(unidades) {
		return unidades[day]
	}
	return fmt.Sprintf("%d", day)
}

// FechaEnLetras writes a date the way orders are signed:
// "veintiuno (21) de agosto del año 2026".
func FechaEnLetras(t time.Time) string {
	return fmt.Sprintf("%s (%d) de %s del año %d",
		DayInWords(t.Day()), t.Day(), meses[t.Month()-1], t.Year())
}

// FechaLarga writes a date in its long display form: "21 de agosto de 2026".
func FechaLarga(t time.Time) string {
	return fmt.Sprintf("%02d de %s de %d", t.Day(), meses[t.Month()-1], t.Year())
}

// Hora12 converts "HH:MM" (24h) into the colloquial 12-hour form used inside
// hearing citations: "14:30" → "2:30 p.m.", "09:00" → "9 a.m.". Anything that
// does not parse is returned unchanged.
func Hora12(hhmm string) string {
	var h, m int
	if _, err := fmt.Sscanf(hhmm, "%d:%d", &h, &m); err != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return hhmm
	}
	meridiem := "a.m."
	if h >= 12 {
		meridiem = "p.m."
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	if m == 0 {
		return fmt.Sprintf("%d %s", h12, meridiem)
	}
	return fmt.Sprintf("%d:%02d %s", h12, m, meridiem)
}
