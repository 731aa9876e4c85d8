package sheetscan

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// buildScheduleGrid returns a grid whose row 10 is the installment-schedule
// header followed by n populated data rows and trailing blank rows.
func buildScheduleGrid(dataRows, blankRows int) Grid {
	g := make(Grid, 0, 11+dataRows+blankRows)
	for i := 0; i < 10; i++ {
		g = append(g, []string{"", "Proyección de pagos", ""})
	}
	g = append(g, []string{"CUOTA", "FECHA VENCIMIENTO", "SALDO CAPITAL", "ABONO CAPITAL", "INTERESES", "VALOR CUOTA"})
	for i := 1; i <= dataRows; i++ {
		g = append(g, []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("15/%02d/2025", (i%12)+1),
			"10.000.000",
			"350.000",
			"120.000",
			"470.000",
		})
	}
	for i := 0; i < blankRows; i++ {
		g = append(g, []string{"", "", "", "", "", ""})
	}
	return g
}

// Scenario: header at row 10, 24 populated rows, 11 blank rows after. The
// header-based detector must win with all 6 columns and exactly 24 rows.
func TestFindProjectionTableHeaderBased(t *testing.T) {
	g := buildScheduleGrid(24, 11)

	tbl := FindProjectionTable(g)
	require.NotNil(t, tbl)
	assert.Len(t, tbl.Headers, 6)
	assert.Equal(t, "CUOTA", tbl.Headers[0])
	assert.Equal(t, "VALOR CUOTA", tbl.Headers[5])
	assert.Len(t, tbl.Rows, 24)
	for _, row := range tbl.Rows {
		assert.Len(t, row, 6)
	}
}

func TestFindProjectionTableStopsAfterBlankRun(t *testing.T) {
	g := buildScheduleGrid(5, 15)
	// Data resuming after the blank limit must not be picked up.
	g = append(g, []string{"99", "01/01/2030", "1", "1", "1", "1"})

	tbl := FindProjectionTable(g)
	require.NotNil(t, tbl)
	assert.Len(t, tbl.Rows, 5)
}

func TestFindProjectionTableAbsent(t *testing.T) {
	g := Grid{
		{"ENTIDAD", "Banco Ejemplo"},
		{"algo", "de", "texto"},
		{"CUOTA", "FECHA"}, // only two keyword groups, below threshold
		{"1", "2025"},
	}
	assert.Nil(t, FindProjectionTable(g))
}

func TestFindProjectionFixed(t *testing.T) {
	g := make(Grid, fixedStartRow)
	for i := 1; i <= 12; i++ {
		g = append(g, []string{
			"", fmt.Sprintf("%d", i), "15", fmt.Sprintf("%d", i), "2025",
			"9.500.000", "300.000", "95.000", "395.000",
		})
	}
	// A subtotal line without an installment number must be skipped, not end
	// the scan.
	g = append(g, []string{"", "Subtotal", "", "", "", "", "3.600.000", "", ""})
	g = append(g, []string{"", "13", "15", "1", "2026", "9.100.000", "300.000", "91.000", "391.000"})

	tbl := FindProjectionFixed(g, 24)
	require.NotNil(t, tbl)
	assert.Equal(t, fixedHeaders, tbl.Headers)
	require.Len(t, tbl.Rows, 13)
	assert.Equal(t, "15/1/2025", tbl.Rows[0][1])
	assert.Equal(t, "13", tbl.Rows[12][0])
}

func TestFindProjectionFixedRowCap(t *testing.T) {
	g := make(Grid, fixedStartRow)
	for i := 1; i <= 10; i++ {
		g = append(g, []string{
			"", fmt.Sprintf("%d", i), "1", "1", "2025", "100", "10", "5", "15",
		})
	}
	// term 3 caps collection at term+1 rows.
	tbl := FindProjectionFixed(g, 3)
	require.NotNil(t, tbl)
	assert.Len(t, tbl.Rows, 4)
}

func TestSelectProjection(t *testing.T) {
	wide := FindProjectionTable(buildScheduleGrid(3, 0))
	require.NotNil(t, wide)
	narrow := FindProjectionTable(Grid{
		{"CUOTA", "INTERESES", "SALDO"},
		{"1", "10", "90"},
	})
	require.NotNil(t, narrow)
	fixed := FindProjectionFixed(func() Grid {
		g := make(Grid, fixedStartRow)
		return append(g, []string{"", "1", "1", "1", "2025", "100", "10", "5", "15"})
	}(), 1)
	require.NotNil(t, fixed)

	assert.Equal(t, wide, SelectProjection(wide, fixed), "wide header table wins")
	assert.Equal(t, fixed, SelectProjection(narrow, fixed), "narrow header loses to fixed")
	assert.Equal(t, narrow, SelectProjection(narrow, nil), "narrow header is the last resort")
	assert.Nil(t, SelectProjection(nil, nil))
}

// The end-to-end read path: build a workbook in memory, load it back and run
// the locator.
func TestLocateAllFromWorkbook(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetName(sheet, "Davivienda"))
	sheet = "Davivienda"

	headers := []string{"CUOTA", "FECHA VENCIMIENTO", "SALDO CAPITAL", "ABONO CAPITAL", "INTERESES", "VALOR CUOTA"}
	for j, h := range headers {
		col, _ := excelize.ColumnNumberToName(j + 1)
		require.NoError(t, f.SetCellValue(sheet, fmt.Sprintf("%s11", col), h))
	}
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			col, _ := excelize.ColumnNumberToName(j + 1)
			require.NoError(t, f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, 12+i), fmt.Sprintf("%d", i+1)))
		}
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	sheets, err := LoadWorkbook(&buf)
	require.NoError(t, err)
	require.Len(t, sheets, 1)

	located := LocateAll(sheets, []string{"Banco Davivienda S.A."}, nil)
	require.NotNil(t, located.Projection)
	assert.Len(t, located.Projection.Headers, 6)
	assert.Len(t, located.Projection.Rows, 6)
	assert.Equal(t, "Davivienda", located.Projection.Title)
	assert.Nil(t, located.Voting)
}

// The lender labelled in the sheet names the table, not the sheet tab.
func TestLocateAllTitleFromEntidad(t *testing.T) {
	sheets := []Sheet{{Name: "Hoja3", Grid: Grid{
		{"ENTIDAD", "Banco Caja Social"},
		{},
		{"CUOTA", "FECHA VENCIMIENTO", "SALDO CAPITAL", "ABONO CAPITAL", "INTERESES", "VALOR CUOTA"},
		{"1", "2026-09-01", "900.000", "100.000", "50.000", "150.000"},
	}}}

	located := LocateAll(sheets, nil, nil)
	require.NotNil(t, located.Projection)
	assert.Equal(t, "Banco Caja Social", located.Projection.Title)
	assert.Equal(t, "Banco Caja Social", located.Projection.MetadataValue(LabelEntidad))
}

func TestLocateAllNothingFound(t *testing.T) {
	sheets := []Sheet{{Name: "Hoja1", Grid: Grid{
		{"un", "texto", "cualquiera"},
		{"sin", "tablas"},
	}}}
	located := LocateAll(sheets, nil, nil)
	assert.Nil(t, located.Projection)
	assert.Nil(t, located.Voting)
}
