package sheetscan

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"autoactas/internal/textenc"
)

// LoadWorkbook reads an .xlsx stream into per-sheet grids of display strings.
// Formulas come back as their displayed values and every cell goes through
// the encoding repair, so the heuristics downstream only ever see clean text.
func LoadWorkbook(r io.Reader) ([]Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	var sheets []Sheet
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			// A single unreadable sheet should not sink the workbook.
			continue
		}
		grid := make(Grid, len(rows))
		for i, row := range rows {
			cells := make([]string, len(row))
			for j, cell := range row {
				cells[j] = textenc.Normalize(cell)
			}
			grid[i] = cells
		}
		sheets = append(sheets, Sheet{Name: name, Grid: grid})
	}
	return sheets, nil
}
