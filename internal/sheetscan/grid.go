// Package sheetscan locates financial tables inside loosely structured,
// human-authored worksheets. The heuristics operate on a plain grid of
// display-formatted cell strings so they can be exercised against literal 2-D
// arrays; reading an actual workbook lives in workbook.go.
package sheetscan

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Grid is a worksheet as rows of display strings. Rows may be ragged; Cell
// treats anything out of range as empty.
type Grid [][]string

// Sheet pairs a grid with the worksheet name it came from.
type Sheet struct {
	Name string
	Grid Grid
}

// Cell returns the trimmed cell content at (row, col), or "" when the
// coordinate falls outside the grid.
func (g Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g) {
		return ""
	}
	r := g[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[col])
}

var diacriticStripper = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// NormalizeLabel folds a cell into the canonical form label matching works
// on: diacritics stripped, upper-cased, runs of non-alphanumerics collapsed
// to single spaces.
func NormalizeLabel(s string) string {
	stripped, _, err := transform.String(diacriticStripper, s)
	if err != nil {
		stripped = s
	}

	var b strings.Builder
	b.Grow(len(stripped))
	pendingSpace := false
	for _, r := range strings.ToUpper(stripped) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
		} else {
			pendingSpace = true
		}
	}
	return b.String()
}

// ParseNumber parses a display-formatted number with es-CO conventions
// (dot thousands, comma decimals) while tolerating the inverse layout.
// Currency symbols, percent signs and spaces are ignored; accounting-style
// parentheses negate. Anything ambiguous or non-numeric reports ok=false
// instead of guessing.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		neg = true
		s = s[1 : len(s)-1]
	}

	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '$', '%', ' ', ' ':
			return -1
		}
		return r
	}, s)
	if cleaned == "" || cleaned == "-" {
		return 0, false
	}

	dots := strings.Count(cleaned, ".")
	commas := strings.Count(cleaned, ",")
	switch {
	case dots > 0 && commas > 0:
		// The separator closest to the end is the decimal mark.
		if strings.LastIndex(cleaned, ",") > strings.LastIndex(cleaned, ".") {
			cleaned = strings.ReplaceAll(cleaned, ".", "")
			cleaned = strings.Replace(cleaned, ",", ".", 1)
		} else {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		}
	case commas > 1:
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	case commas == 1:
		idx := strings.Index(cleaned, ",")
		if idx > 0 && len(cleaned)-idx-1 == 3 {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		} else {
			cleaned = strings.Replace(cleaned, ",", ".", 1)
		}
	case dots > 1:
		cleaned = strings.ReplaceAll(cleaned, ".", "")
	case dots == 1:
		idx := strings.Index(cleaned, ".")
		if idx > 0 && len(cleaned)-idx-1 == 3 {
			cleaned = strings.ReplaceAll(cleaned, ".", "")
		}
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	if neg {
		v = -v
	}
	return v, true
}

// nonEmptyColumns returns the indices of the non-empty cells of a row.
func nonEmptyColumns(g Grid, row int) []int {
	if row < 0 || row >= len(g) {
		return nil
	}
	var cols []int
	for c := range g[row] {
		if g.Cell(row, c) != "" {
			cols = append(cols, c)
		}
	}
	return cols
}

// projectRow restricts a row to the given columns.
func projectRow(g Grid, row int, cols []int) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = g.Cell(row, c)
	}
	return out
}

// rowBlank reports whether every projected cell is empty.
func rowBlank(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}
