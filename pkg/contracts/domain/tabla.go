package domain

// MetadataPair is one labelled value extracted next to a located table, e.g.
// ("ENTIDAD", "Banco de Occidente").
type MetadataPair struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ExtractedTable is a table lifted out of a worksheet grid. It is created
// fresh for every generation request and never mutated afterwards: Rows all
// have the same length as Headers.
type ExtractedTable struct {
	Title    string         `json:"title"`
	Headers  []string       `json:"headers"`
	Rows     [][]string     `json:"rows"`
	Metadata []MetadataPair `json:"metadata,omitempty"`
}

// MetadataValue returns the value recorded for a label, or "" when absent.
func (t *ExtractedTable) MetadataValue(label string) string {
	if t == nil {
		return ""
	}
	for _, m := range t.Metadata {
		if m.Label == label {
			return m.Value
		}
	}
	return ""
}

// TipoActa is the closed set of documents the engine can assemble. Unknown
// caller strings parse to TipoActaGeneral rather than failing, so a stale
// front-end identifier still yields a usable document.
type TipoActa string

const (
	// TipoActaGeneral is the general debt-negotiation hearing minutes.
	TipoActaGeneral TipoActa = "audiencia"
	// TipoActaSuspension records a suspended hearing.
	TipoActaSuspension TipoActa = "suspension"
	// TipoActaAcuerdo records a payment agreement reached by vote.
	TipoActaAcuerdo TipoActa = "acuerdo_pago"
	// TipoActaAcuerdoBilateral records a bilateral payment agreement with one
	// creditor combined with failure of the general negotiation.
	TipoActaAcuerdoBilateral TipoActa = "acuerdo_bilateral_fracaso"
	// TipoActaFracaso records failure of the proceeding.
	TipoActaFracaso TipoActa = "fracaso"
	// TipoActaAutoRechazo is the short legal order rejecting the proceeding.
	TipoActaAutoRechazo TipoActa = "auto_rechazo"
	// TipoActaAutoNulidad is the short legal order declaring nullity.
	TipoActaAutoNulidad TipoActa = "auto_nulidad"
)

// ParseTipoActa maps a caller-supplied identifier onto the closed enum.
func ParseTipoActa(s string) TipoActa {
	switch TipoActa(s) {
	case TipoActaSuspension, TipoActaAcuerdo, TipoActaAcuerdoBilateral,
		TipoActaFracaso, TipoActaAutoRechazo, TipoActaAutoNulidad:
		return TipoActa(s)
	default:
		return TipoActaGeneral
	}
}
