package plan

import (
	"fmt"
	"strings"

	"autoactas/internal/esfmt"
)

// Judicial-order variants. Autos are short portrait-only documents with the
// CONSIDERACIONES / RESUELVE structure; they carry no roster, claims table or
// voting block.

func buildAutoRechazo(in Input) Plan {
	var p Plan
	p.Before = append(p.Before, encabezadoAuto(in, "AUTO DE RECHAZO DE LA SOLICITUD")...)
	p.Before = append(p.Before, consideraciones(in,
		"La parte solicitante presentó solicitud de trámite de negociación de deudas ante este operador de insolvencia.",
		"Revisada la solicitud y sus anexos, se advierte que no reúne los requisitos legales exigidos y que los defectos señalados no fueron subsanados dentro del término concedido para el efecto.",
	)...)
	p.Before = append(p.Before, resuelve(in,
		fmt.Sprintf("RECHAZAR la solicitud de negociación de deudas presentada por %s.", deudorAuto(in)),
		"ADVERTIR a la parte solicitante que podrá presentar una nueva solicitud una vez subsanadas las deficiencias señaladas.",
		"NOTIFICAR la presente decisión a la parte solicitante por el medio más expedito.",
	)...)
	p.Before = append(p.Before, bloqueCierre(in)...)
	return p
}

func buildAutoNulidad(in Input) Plan {
	var p Plan
	p.Before = append(p.Before, encabezadoAuto(in, "AUTO QUE DECLARA LA NULIDAD DE LA ACTUACIÓN")...)
	p.Before = append(p.Before, consideraciones(in,
		"Dentro del trámite de negociación de deudas de la referencia se advirtió una irregularidad que afecta la validez de la actuación surtida.",
		"La irregularidad advertida constituye causal de nulidad insaneable, por lo que procede declararla y retrotraer la actuación al estado en que se encontraba antes de configurarse el vicio.",
	)...)
	p.Before = append(p.Before, resuelve(in,
		fmt.Sprintf("DECLARAR la nulidad de lo actuado dentro del trámite de negociación de deudas de %s, a partir de la actuación viciada.", deudorAuto(in)),
		"ORDENAR rehacer la actuación anulada con plena observancia de las garantías procesales.",
		"NOTIFICAR la presente decisión a las partes por el medio más expedito.",
	)...)
	p.Before = append(p.Before, bloqueCierre(in)...)
	return p
}

func encabezadoAuto(in Input, titulo string) []Block {
	if in.Titulo != "" {
		titulo = in.Titulo
	}
	procesoLabel := in.Proceso.NumeroProceso
	if procesoLabel == "" {
		procesoLabel = in.Proceso.ID
	}
	fecha := esfmt.FechaLarga(in.Fecha)
	if in.Hora != "" {
		fecha += ", a las " + esfmt.Hora12(in.Hora)
	}
	return []Block{
		Heading{Text: strings.ToUpper(titulo), Size: 14},
		Heading{Text: "PROCEDIMIENTO DE NEGOCIACIÓN DE DEUDAS", Size: 12},
		Heading{Text: marcoLegal, Size: 12},
		Spacer{Lines: 1},
		boldLabel("Proceso: ", procesoLabel),
		boldLabel("Solicitante: ", deudorAuto(in)),
		boldLabel("Fecha: ", fecha),
		Spacer{Lines: 1},
	}
}

func deudorAuto(in Input) string {
	if in.Proceso.DeudorNombre != "" {
		if in.Proceso.DeudorIdentificacion != "" {
			return fmt.Sprintf("%s, identificado(a) con %s", in.Proceso.DeudorNombre, in.Proceso.DeudorIdentificacion)
		}
		return in.Proceso.DeudorNombre
	}
	return "la parte solicitante"
}

func consideraciones(in Input, puntos ...string) []Block {
	if in.Overrides.Objeto != "" {
		puntos = []string{in.Overrides.Objeto}
	}
	return []Block{
		Heading{Text: "CONSIDERACIONES", Size: 12},
		List{Ordered: true, Items: items(puntos...)},
		Spacer{Lines: 1},
	}
}

func resuelve(in Input, ordenes ...string) []Block {
	if in.Overrides.Resultado != "" {
		ordenes = []string{in.Overrides.Resultado}
	}
	blocks := []Block{
		Heading{Text: "RESUELVE", Size: 12},
		List{Ordered: true, Items: items(ordenes...)},
	}
	if in.Overrides.Observaciones != "" {
		blocks = append(blocks,
			Heading{Text: "OBSERVACIONES", Size: 12},
			text(in.Overrides.Observaciones))
	}
	blocks = append(blocks, Spacer{Lines: 1})
	return blocks
}
