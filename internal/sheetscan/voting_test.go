package sheetscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autoactas/pkg/contracts/domain"
)

func TestFindVotingTable(t *testing.T) {
	g := Grid{
		{"RESULTADO DE LA VOTACIÓN"},
		{"ACREEDOR / APODERADO", "VOTO", "PORCENTAJE"},
		{"Banco Popular", "Positivo", "60,00%"},
		{"Coopcentral", "Negativo", "40,00%"},
		{"", "", ""},
		{"", "", ""},
		{"", "", ""},
		{"esto ya no", "pertenece", "a la tabla"},
	}

	tbl := FindVotingTable(g)
	require.NotNil(t, tbl)
	assert.Equal(t, "VOTACIÓN", tbl.Title)
	assert.Equal(t, []string{"ACREEDOR / APODERADO", "VOTO", "PORCENTAJE"}, tbl.Headers)
	assert.Len(t, tbl.Rows, 2)
	assert.Equal(t, []string{"Coopcentral", "Negativo", "40,00%"}, tbl.Rows[1])
}

func TestFindVotingTablePercentSignHeader(t *testing.T) {
	g := Grid{
		{"Acreedor", "Voto", "%"},
		{"Banco Popular", "Positivo", "60"},
	}
	tbl := FindVotingTable(g)
	require.NotNil(t, tbl)
	assert.Len(t, tbl.Rows, 1)
}

// A header followed by a blank gap has no body: whatever sits past the gap
// does not get swallowed as voting rows.
func TestFindVotingTableLeadingGapEndsScan(t *testing.T) {
	g := Grid{
		{"ACREEDOR / APODERADO", "VOTO", "PORCENTAJE"},
		{"", "", ""},
		{"", "", ""},
		{"", "", ""},
		{"texto posterior", "ajeno", "a la tabla"},
	}

	tbl := FindVotingTable(g)
	require.NotNil(t, tbl)
	assert.Empty(t, tbl.Rows)
}

// A row covering only two of the three keyword groups is not a header.
func TestFindVotingTableAbsent(t *testing.T) {
	g := Grid{
		{"ACREEDOR", "VOTO"},
		{"Banco Popular", "Positivo"},
		{"PORCENTAJE", "60"},
	}
	assert.Nil(t, FindVotingTable(g))
}

func TestFilterByCreditors(t *testing.T) {
	tablas := []*domain.ExtractedTable{
		{Title: "Hoja1"},
		{Title: "Davivienda"},
		{Title: "Banco Popular"},
	}

	kept := FilterByCreditors(tablas, []string{"BANCO POPULAR S.A."})
	require.Len(t, kept, 1)
	assert.Equal(t, "Banco Popular", kept[0].Title)

	// Fail-open: a filter that would discard everything is ignored.
	kept = FilterByCreditors(tablas, []string{"Scotiabank Colpatria"})
	assert.Equal(t, tablas, kept)

	// No creditor list means no filtering.
	assert.Equal(t, tablas, FilterByCreditors(tablas, nil))
}
