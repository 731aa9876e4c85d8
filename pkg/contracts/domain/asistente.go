package domain

// AttendeeCategory classifies a hearing participant.
type AttendeeCategory string

const (
	CategoriaAcreedor  AttendeeCategory = "Acreedor"
	CategoriaDeudor    AttendeeCategory = "Deudor"
	CategoriaApoderado AttendeeCategory = "Apoderado"
)

// Asistente is a hearing attendee as recorded by the attendance module.
type Asistente struct {
	Nombre             string           `json:"nombre" validate:"required"`
	Email              string           `json:"email,omitempty"`
	Categoria          AttendeeCategory `json:"categoria"`
	Estado             string           `json:"estado"`
	TarjetaProfesional string           `json:"tarjeta_profesional,omitempty"`
	CalidadApoderadoDe string           `json:"calidad_apoderado_de,omitempty"`
}

// EnRoster reports whether the attendee belongs in the minutes roster block:
// creditors themselves, and attorneys appearing on behalf of a creditor. The
// debtor and unaffiliated attorneys are listed elsewhere in the document.
func (a Asistente) EnRoster() bool {
	switch a.Categoria {
	case CategoriaAcreedor:
		return true
	case CategoriaApoderado:
		return a.CalidadApoderadoDe != ""
	default:
		return false
	}
}
