package sheetscan

import (
	"strings"

	"autoactas/pkg/contracts/domain"
)

// Metadata scan window. Loan parameters always sit in the top-left corner of
// the worksheets seen so far; scanning further only picks up table noise.
const (
	metadataMaxRows = 45
	metadataMaxCols = 12

	valueScanRight = 8
	valueScanDown  = 4
)

// Canonical metadata labels. The extractor emits these keys regardless of
// which alias matched in the sheet.
const (
	LabelEntidad      = "ENTIDAD"
	LabelCapital      = "CAPITAL INICIAL"
	LabelPlazo        = "PLAZO"
	LabelTasaMensual  = "TASA MENSUAL"
	LabelTasaAnual    = "TASA ANUAL"
	LabelNumeroCuotas = "NUMERO DE CUOTAS"
	LabelValorCuota   = "VALOR CUOTA"
)

type cellRef struct{ row, col int }

type metadataLabel struct {
	key     string
	aliases []string
	// fallbacks are fixed coordinates of the known installment-schedule
	// template, consulted only when no alias matched anywhere.
	fallbacks []cellRef
}

var metadataLabels = []metadataLabel{
	// "BANCO" is deliberately not an alias: bank names themselves contain it
	// and would then be skipped as label cells during value scans.
	{key: LabelEntidad, aliases: []string{"ENTIDAD", "ENTIDAD FINANCIERA"}},
	{
		key:       LabelCapital,
		aliases:   []string{"CAPITAL INICIAL", "MONTO", "VALOR CREDITO", "VALOR DEL CREDITO", "MONTO DEL CREDITO"},
		fallbacks: []cellRef{{row: 3, col: 3}},
	},
	{
		key:       LabelPlazo,
		aliases:   []string{"PLAZO", "PLAZO EN MESES", "NUMERO DE PERIODOS"},
		fallbacks: []cellRef{{row: 4, col: 3}},
	},
	{
		key:       LabelTasaMensual,
		aliases:   []string{"TASA MENSUAL", "TASA M V", "INTERES MENSUAL"},
		fallbacks: []cellRef{{row: 5, col: 3}},
	},
	{key: LabelTasaAnual, aliases: []string{"TASA ANUAL", "TASA EFECTIVA ANUAL", "TASA E A", "INTERES ANUAL"}},
	{key: LabelNumeroCuotas, aliases: []string{"NUMERO DE CUOTAS", "NO DE CUOTAS", "CANTIDAD DE CUOTAS"}},
	{key: LabelValorCuota, aliases: []string{"VALOR CUOTA", "VALOR DE LA CUOTA", "CUOTA MENSUAL"}},
}

// matches reports whether a normalized cell equals or contains one of the
// label's aliases.
func (l metadataLabel) matches(normCell string) bool {
	if normCell == "" {
		return false
	}
	for _, a := range l.aliases {
		if normCell == a || strings.Contains(normCell, a) {
			return true
		}
	}
	return false
}

// looksLikeLabel reports whether a cell matches any known label; such cells
// are skipped while scanning for a label's value, they are never values.
func looksLikeLabel(cell string) bool {
	n := NormalizeLabel(cell)
	for _, l := range metadataLabels {
		if l.matches(n) {
			return true
		}
	}
	return false
}

// ExtractLoanMetadata scans the top of a grid for loan parameters. Missing
// labels are simply absent from the result; the entity defaults to the sheet
// name so downstream text always has something to call the lender.
func ExtractLoanMetadata(g Grid, sheetName string) []domain.MetadataPair {
	var pairs []domain.MetadataPair

	for _, label := range metadataLabels {
		if v := findLabelValue(g, label); v != "" {
			pairs = append(pairs, domain.MetadataPair{Label: label.key, Value: v})
		}
	}

	if !hasLabel(pairs, LabelEntidad) && sheetName != "" {
		pairs = append(pairs, domain.MetadataPair{Label: LabelEntidad, Value: sheetName})
	}
	return pairs
}

func hasLabel(pairs []domain.MetadataPair, label string) bool {
	for _, p := range pairs {
		if p.Label == label {
			return true
		}
	}
	return false
}

func findLabelValue(g Grid, label metadataLabel) string {
	for r := 0; r < metadataMaxRows; r++ {
		for c := 0; c < metadataMaxCols; c++ {
			if !label.matches(NormalizeLabel(g.Cell(r, c))) {
				continue
			}
			if v := resolveValueAt(g, r, c); v != "" {
				return v
			}
		}
	}
	for _, ref := range label.fallbacks {
		if v := g.Cell(ref.row, ref.col); v != "" && !looksLikeLabel(v) {
			return v
		}
	}
	return ""
}

// resolveValueAt looks for the value belonging to the label found at (r, c):
// first to the right, then below.
func resolveValueAt(g Grid, r, c int) string {
	for dc := 1; dc <= valueScanRight; dc++ {
		cell := g.Cell(r, c+dc)
		if cell == "" || looksLikeLabel(cell) {
			continue
		}
		return cell
	}
	for dr := 1; dr <= valueScanDown; dr++ {
		if cell := g.Cell(r+dr, c); cell != "" && !looksLikeLabel(cell) {
			return cell
		}
		for dc := 1; dc <= valueScanRight; dc++ {
			cell := g.Cell(r+dr, c+dc)
			if cell == "" || looksLikeLabel(cell) {
				continue
			}
			return cell
		}
	}
	return ""
}
