package sheetscan

import (
	"log/slog"
	"strings"

	"autoactas/pkg/contracts/domain"
)

// minFilterToken is the shortest creditor-name token considered meaningful
// for title matching.
const minFilterToken = 4

// Located is the outcome of scanning a workbook. Either table may be nil;
// absence is an expected state, never an error.
type Located struct {
	Projection *domain.ExtractedTable
	Voting     *domain.ExtractedTable
	Metadata   []domain.MetadataPair
}

// LocateAll scans the sheets in file order and keeps the first projection
// table and the first voting table found, independently per kind. When
// creditor names are supplied, projection candidates whose title shares no
// token with any creditor are filtered out — unless that would discard every
// candidate, in which case the filter is ignored.
func LocateAll(sheets []Sheet, creditors []string, logger *slog.Logger) Located {
	if logger == nil {
		logger = slog.Default()
	}

	var out Located
	var candidates []*domain.ExtractedTable

	for _, sheet := range sheets {
		meta := ExtractLoanMetadata(sheet.Grid, sheet.Name)

		headerBased := FindProjectionTable(sheet.Grid)
		fixed := FindProjectionFixed(sheet.Grid, TermFromMetadata(meta))
		if t := SelectProjection(headerBased, fixed); t != nil {
			t.Metadata = meta
			t.Title = sheet.Name
			if ent := t.MetadataValue(LabelEntidad); ent != "" {
				t.Title = ent
			}
			candidates = append(candidates, t)
		}

		if out.Voting == nil {
			if t := FindVotingTable(sheet.Grid); t != nil {
				out.Voting = t
				logger.Debug("voting table located",
					slog.String("sheet", sheet.Name),
					slog.Int("rows", len(t.Rows)))
			}
		}
	}

	// The creditor filter is a post-step across every candidate: a later
	// sheet whose title matches a creditor beats an earlier one that does
	// not, but first-match-wins order is kept among the survivors.
	if kept := FilterByCreditors(candidates, creditors); len(kept) > 0 {
		out.Projection = kept[0]
		out.Metadata = kept[0].Metadata
		logger.Debug("projection table located",
			slog.String("title", kept[0].Title),
			slog.Int("columns", len(kept[0].Headers)),
			slog.Int("rows", len(kept[0].Rows)))
	}

	if out.Projection == nil {
		logger.Info("no projection table found in workbook")
	}
	if out.Voting == nil {
		logger.Info("no voting table found in workbook")
	}
	return out
}

// FilterByCreditors keeps the tables whose title shares a token of at least
// minFilterToken characters with one of the creditor names, matching as a
// substring in either direction on normalized text. Fail-open: when the
// filter would eliminate everything, the input is returned unchanged so that
// filtering alone never produces zero tables.
func FilterByCreditors(tables []*domain.ExtractedTable, creditors []string) []*domain.ExtractedTable {
	if len(tables) == 0 || len(creditors) == 0 {
		return tables
	}

	var kept []*domain.ExtractedTable
	for _, t := range tables {
		if titleMatchesAnyCreditor(t.Title, creditors) {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		return tables
	}
	return kept
}

func titleMatchesAnyCreditor(title string, creditors []string) bool {
	nt := NormalizeLabel(title)
	if nt == "" {
		return false
	}
	for _, name := range creditors {
		nc := NormalizeLabel(name)
		if nc == "" {
			continue
		}
		if sharesToken(nt, nc) || sharesToken(nc, nt) {
			return true
		}
	}
	return false
}

// sharesToken reports whether any space-delimited token of a, at least
// minFilterToken long, occurs as a substring of b.
func sharesToken(a, b string) bool {
	for _, tok := range strings.Fields(a) {
		if len(tok) < minFilterToken {
			continue
		}
		if strings.Contains(b, tok) {
			return true
		}
	}
	return false
}
