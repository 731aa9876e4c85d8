package domain

// Acreencia represents a single creditor claim inside an insolvency proceeding.
// Monetary components are kept separate because the explicit total reported by
// the creditor does not always match their sum; ResolverTotal in the finance
// package decides which one governs.
type Acreencia struct {
	ID          string   `json:"id,omitempty" db:"id"`
	Acreedor    string   `json:"acreedor" db:"acreedor" validate:"required"`
	Apoderado   string   `json:"apoderado,omitempty" db:"apoderado"`
	Naturaleza  string   `json:"naturaleza,omitempty" db:"naturaleza"`
	Prelacion   string   `json:"prelacion,omitempty" db:"prelacion"`
	Capital     *float64 `json:"capital,omitempty" db:"capital"`
	IntCte      *float64 `json:"int_cte,omitempty" db:"int_cte"`
	IntMora     *float64 `json:"int_mora,omitempty" db:"int_mora"`
	Otros       *float64 `json:"otros,omitempty" db:"otros"`
	Total       *float64 `json:"total,omitempty" db:"total"`
	Voto        string   `json:"voto,omitempty" db:"voto"`
	DiasVencida *int     `json:"dias_vencida,omitempty" db:"dias_vencida"`
}

// VoteCategory is one of the four canonical vote buckets.
type VoteCategory string

const (
	VotePositivo   VoteCategory = "POSITIVO"
	VoteNegativo   VoteCategory = "NEGATIVO"
	VoteAusente    VoteCategory = "AUSENTE"
	VoteAbstencion VoteCategory = "ABSTENCION"
)

// VoteCategories lists every bucket in rendering order.
var VoteCategories = []VoteCategory{VotePositivo, VoteNegativo, VoteAusente, VoteAbstencion}

// VoteTally holds the summed claim percentage per vote bucket. When no claim
// carries a recognizable vote, HasVotes is false and every bucket is zero;
// renderers must show placeholder text instead of the zeros.
type VoteTally struct {
	Buckets  map[VoteCategory]float64 `json:"buckets"`
	HasVotes bool                     `json:"has_votes"`
}
