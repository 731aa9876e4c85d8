package sheetscan

import (
	"strings"

	"autoactas/pkg/contracts/domain"
)

// Header-based detection parameters.
const (
	// minKeywordGroups is the number of distinct keyword groups a row must
	// cover to be accepted as the projection-table header.
	minKeywordGroups = 3
	// projectionBlankLimit ends the data scan once this many consecutive
	// fully-blank rows follow collected data.
	projectionBlankLimit = 10
	// minHeaderColumns is the column count below which the fixed-column
	// fallback is preferred over the header-based result.
	minHeaderColumns = 5
)

// projectionKeywordGroups cover the vocabulary of installment schedules. A
// header row must hit at least minKeywordGroups distinct groups; hitting the
// same group twice does not count twice.
var projectionKeywordGroups = [][]string{
	{"CUOTA", "PERIODO"},               // installment number
	{"FECHA", "VENCIMIENTO", "VENCE"},  // due date
	{"VALOR", "TOTAL"},                 // installment value / total
	{"INTERES"},                        // interest portion
	{"ABONO", "AMORTIZACION"},          // capital amortization
	{"SALDO"},                          // running balance
}

// FindProjectionTable scans top-down for the first row covering enough
// keyword groups and collects the rows beneath it, restricted to the header's
// non-empty columns. Returns nil when no row qualifies.
func FindProjectionTable(g Grid) *domain.ExtractedTable {
	for r := range g {
		cols := nonEmptyColumns(g, r)
		if len(cols) < 2 {
			continue
		}
		if countKeywordGroups(g, r, cols) < minKeywordGroups {
			continue
		}

		headers := projectRow(g, r, cols)
		rows := collectRows(g, r+1, cols, projectionBlankLimit)
		return &domain.ExtractedTable{Headers: headers, Rows: rows}
	}
	return nil
}

func countKeywordGroups(g Grid, row int, cols []int) int {
	hit := make([]bool, len(projectionKeywordGroups))
	for _, c := range cols {
		cell := NormalizeLabel(g.Cell(row, c))
		for gi, group := range projectionKeywordGroups {
			if hit[gi] {
				continue
			}
			for _, kw := range group {
				if strings.Contains(cell, kw) {
					hit[gi] = true
					break
				}
			}
		}
	}
	n := 0
	for _, h := range hit {
		if h {
			n++
		}
	}
	return n
}

// collectRows gathers non-blank rows from startRow downward, projected onto
// cols, stopping once blankLimit consecutive blank rows follow at least one
// collected row. Blank rows are not emitted.
func collectRows(g Grid, startRow int, cols []int, blankLimit int) [][]string {
	var rows [][]string
	blanks := 0
	for r := startRow; r < len(g); r++ {
		cells := projectRow(g, r, cols)
		if rowBlank(cells) {
			blanks++
			if blanks >= blankLimit && len(rows) > 0 {
				break
			}
			continue
		}
		blanks = 0
		rows = append(rows, cells)
	}
	return rows
}

// Fixed-column fallback. One widely circulated installment-schedule template
// keeps its table at hard-coded offsets with the due date split over three
// cells; these constants mirror that template and are deliberately not
// generalized to other layouts.
const (
	fixedStartRow   = 18
	fixedBlankLimit = 12
	fixedTermSlack  = 12

	fixedColCuota   = 1
	fixedColDia     = 2
	fixedColMes     = 3
	fixedColAnio    = 4
	fixedColSaldo   = 5
	fixedColAbono   = 6
	fixedColInteres = 7
	fixedColValor   = 8
)

var fixedHeaders = []string{
	"CUOTA", "FECHA VENCIMIENTO", "SALDO", "ABONO CAPITAL", "INTERESES", "VALOR CUOTA",
}

// FindProjectionFixed reads the known template's columns. term bounds the
// scan: at most term+1 rows are collected (clamped below at 1) and scanning
// stops after fixedBlankLimit consecutive blank rows. Rows whose installment
// number is non-positive or unparseable are skipped without ending the scan.
func FindProjectionFixed(g Grid, term int) *domain.ExtractedTable {
	if term < 1 {
		term = 1
	}
	maxRows := term + 1

	var rows [][]string
	blanks := 0
	for r := fixedStartRow; r < len(g) && r < fixedStartRow+term+fixedTermSlack; r++ {
		cuotaCell := g.Cell(r, fixedColCuota)
		saldo := g.Cell(r, fixedColSaldo)
		abono := g.Cell(r, fixedColAbono)
		interes := g.Cell(r, fixedColInteres)
		valor := g.Cell(r, fixedColValor)

		if cuotaCell == "" && saldo == "" && abono == "" && interes == "" && valor == "" {
			blanks++
			if blanks >= fixedBlankLimit {
				break
			}
			continue
		}
		blanks = 0

		cuota, ok := ParseNumber(cuotaCell)
		if !ok || cuota <= 0 {
			continue
		}

		rows = append(rows, []string{
			cuotaCell,
			joinDate(g.Cell(r, fixedColDia), g.Cell(r, fixedColMes), g.Cell(r, fixedColAnio)),
			saldo,
			abono,
			interes,
			valor,
		})
		if len(rows) >= maxRows {
			break
		}
	}

	if len(rows) == 0 {
		return nil
	}
	return &domain.ExtractedTable{Headers: fixedHeaders, Rows: rows}
}

func joinDate(day, month, year string) string {
	parts := []string{}
	for _, p := range []string{day, month, year} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "/")
}

// SelectProjection applies the preference policy between the two detection
// methods: a header-based table with enough columns wins; otherwise the
// fixed-column table; otherwise whatever header-based result exists.
func SelectProjection(headerBased, fixed *domain.ExtractedTable) *domain.ExtractedTable {
	if headerBased != nil && len(headerBased.Headers) >= minHeaderColumns {
		return headerBased
	}
	if fixed != nil {
		return fixed
	}
	return headerBased
}

// TermFromMetadata derives the installment-count bound for the fixed-column
// scan from the PLAZO or NUMERO DE CUOTAS metadata cell, minimum 1.
func TermFromMetadata(pairs []domain.MetadataPair) int {
	for _, label := range []string{LabelPlazo, LabelNumeroCuotas} {
		for _, p := range pairs {
			if p.Label != label {
				continue
			}
			if v, ok := ParseNumber(p.Value); ok && v >= 1 {
				return int(v)
			}
		}
	}
	return 1
}
