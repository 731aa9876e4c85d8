package plan

import (
	"time"

	"autoactas/pkg/contracts/domain"
)

// Overrides carries caller-supplied free text that replaces the canned
// narrative of the corresponding block, verbatim. Empty fields fall back to
// the template text.
type Overrides struct {
	Objeto        string `json:"objeto,omitempty"`
	Propuesta     string `json:"propuesta,omitempty"`
	Resultado     string `json:"resultado,omitempty"`
	Observaciones string `json:"observaciones,omitempty"`
}

// Input is everything a variant builder may consult. Builders are pure: the
// same Input always yields the same Plan.
type Input struct {
	Tipo    domain.TipoActa
	Proceso domain.Proceso
	Fecha   time.Time
	// Hora is the hearing time as "HH:MM" in 24h form; when empty the date is
	// cited without a time.
	Hora       string
	Titulo     string
	Ciudad     string
	Operador   domain.Operador
	Asistentes []domain.Asistente
	Acreencias []domain.Acreencia
	Tally      domain.VoteTally
	Proyeccion *domain.ExtractedTable
	Votacion   *domain.ExtractedTable
	Overrides  Overrides
}

// Placeholder text rendered where an optional data source is missing, so the
// operator can spot and fill the gap by hand.
const (
	PlaceholderProyeccion = "[PROYECCIÓN DE PAGOS]"
	PlaceholderVoto       = "[VOTO]"
	PlaceholderPorcentaje = "[PORCENTAJE]"
)
