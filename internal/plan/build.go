package plan

import (
	"autoactas/pkg/contracts/domain"
)

// Build assembles the immutable document plan for a generation request. The
// dispatch is a closed switch over the document types: an unrecognized value
// has already been folded to TipoActaGeneral by ParseTipoActa upstream.
func Build(in Input) Plan {
	switch in.Tipo {
	case domain.TipoActaSuspension:
		return buildSuspension(in)
	case domain.TipoActaAcuerdo:
		return buildAcuerdo(in)
	case domain.TipoActaAcuerdoBilateral:
		return buildAcuerdoBilateral(in)
	case domain.TipoActaFracaso:
		return buildFracaso(in)
	case domain.TipoActaAutoRechazo:
		return buildAutoRechazo(in)
	case domain.TipoActaAutoNulidad:
		return buildAutoNulidad(in)
	default:
		return buildGeneral(in)
	}
}
