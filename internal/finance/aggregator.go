// Package finance resolves claim totals, per-claim percentages and the vote
// tally the minutes report. All arithmetic is over already-fetched claim
// records; nothing here touches storage.
package finance

import (
	"math"
	"strings"

	"autoactas/pkg/contracts/domain"
)

// ResolveTotal returns the governing total of a claim: the explicit total
// when it is present and finite, otherwise the sum of the four monetary
// components with missing components counted as zero. Inputs are not
// re-validated, only summed.
func ResolveTotal(a domain.Acreencia) float64 {
	if a.Total != nil && !math.IsNaN(*a.Total) && !math.IsInf(*a.Total, 0) {
		return *a.Total
	}
	return deref(a.Capital) + deref(a.IntCte) + deref(a.IntMora) + deref(a.Otros)
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// Percentage returns the claim's share of the aggregate resolved total, in
// percent. ok is false when the aggregate is zero, in which case no claim has
// a meaningful share.
func Percentage(a domain.Acreencia, all []domain.Acreencia) (float64, bool) {
	var sum float64
	for _, c := range all {
		sum += ResolveTotal(c)
	}
	if sum == 0 {
		return 0, false
	}
	return ResolveTotal(a) / sum * 100, true
}

// NormalizeVote maps a free-text vote onto its canonical category by
// case-insensitive stem matching. Unrecognized text reports ok=false.
func NormalizeVote(raw string) (domain.VoteCategory, bool) {
	upper := strings.ToUpper(strings.TrimSpace(raw))
	switch {
	case strings.Contains(upper, "POSITIV"):
		return domain.VotePositivo, true
	case strings.Contains(upper, "NEGATIV"):
		return domain.VoteNegativo, true
	case strings.Contains(upper, "AUSENT"):
		return domain.VoteAusente, true
	case strings.Contains(upper, "ABSTEN"):
		return domain.VoteAbstencion, true
	default:
		return "", false
	}
}

// Tally sums each claim's percentage into its vote bucket. Claims without a
// recognizable vote count as AUSENTE. When no claim has a recognizable vote
// at all, HasVotes is false and every bucket stays zero so renderers can fall
// back to placeholder text.
func Tally(claims []domain.Acreencia) domain.VoteTally {
	tally := domain.VoteTally{Buckets: map[domain.VoteCategory]float64{
		domain.VotePositivo:   0,
		domain.VoteNegativo:   0,
		domain.VoteAusente:    0,
		domain.VoteAbstencion: 0,
	}}

	for _, c := range claims {
		if _, ok := NormalizeVote(c.Voto); ok {
			tally.HasVotes = true
			break
		}
	}
	if !tally.HasVotes {
		return tally
	}

	for _, c := range claims {
		bucket := domain.VoteAusente
		if cat, ok := NormalizeVote(c.Voto); ok {
			bucket = cat
		}
		pct, ok := Percentage(c, claims)
		if !ok {
			pct = 0
		}
		tally.Buckets[bucket] += pct
	}
	return tally
}

// ComponentTotals is the summed bottom row of the claims table.
type ComponentTotals struct {
	Capital float64
	IntCte  float64
	IntMora float64
	Otros   float64
	Total   float64
}

// SumComponents adds up the claims' monetary components and resolved totals.
func SumComponents(claims []domain.Acreencia) ComponentTotals {
	var t ComponentTotals
	for _, c := range claims {
		t.Capital += deref(c.Capital)
		t.IntCte += deref(c.IntCte)
		t.IntMora += deref(c.IntMora)
		t.Otros += deref(c.Otros)
		t.Total += ResolveTotal(c)
	}
	return t
}
