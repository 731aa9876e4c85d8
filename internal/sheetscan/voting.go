package sheetscan

import (
	"strings"

	"autoactas/pkg/contracts/domain"
)

// votingBlankLimit ends the voting-table scan after this many consecutive
// blank rows. Voting tables are short and tightly packed, so the limit is
// much lower than the projection table's.
const votingBlankLimit = 3

var (
	votingVoteKeywords     = []string{"VOTO", "VOTACION"}
	votingCreditorKeywords = []string{"ACREEDOR", "APODERADO"}
	votingPercentKeywords  = []string{"PORCENTAJE", "PORCENT"}
)

// FindVotingTable scans for the first row whose non-empty cells cover a
// voting keyword, a creditor/attorney keyword and a percentage keyword, and
// collects the rows beneath it. Returns nil when no row qualifies.
func FindVotingTable(g Grid) *domain.ExtractedTable {
	for r := range g {
		cols := nonEmptyColumns(g, r)
		if len(cols) < 2 {
			continue
		}
		if !votingHeaderRow(g, r, cols) {
			continue
		}
		return &domain.ExtractedTable{
			Title:   "VOTACIÓN",
			Headers: projectRow(g, r, cols),
			Rows:    collectVotingRows(g, r+1, cols),
		}
	}
	return nil
}

// collectVotingRows gathers non-blank rows beneath the header. Unlike the
// projection scan there is no grace for a leading gap: voting rows sit
// directly under their header, so votingBlankLimit consecutive blank rows end
// the scan even before the first data row.
func collectVotingRows(g Grid, startRow int, cols []int) [][]string {
	var rows [][]string
	blanks := 0
	for r := startRow; r < len(g); r++ {
		cells := projectRow(g, r, cols)
		if rowBlank(cells) {
			blanks++
			if blanks >= votingBlankLimit {
				break
			}
			continue
		}
		blanks = 0
		rows = append(rows, cells)
	}
	return rows
}

func votingHeaderRow(g Grid, row int, cols []int) bool {
	var vote, creditor, percent bool
	for _, c := range cols {
		raw := g.Cell(row, c)
		cell := NormalizeLabel(raw)
		vote = vote || containsAny(cell, votingVoteKeywords)
		creditor = creditor || containsAny(cell, votingCreditorKeywords)
		// The percent sign itself is stripped by NormalizeLabel, so it is
		// checked against the raw cell.
		percent = percent || containsAny(cell, votingPercentKeywords) || strings.Contains(raw, "%")
	}
	return vote && creditor && percent
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
