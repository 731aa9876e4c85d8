package plan

import (
	"fmt"

	"autoactas/internal/esfmt"
	"autoactas/internal/finance"
)

// Minutes variants. Every builder follows the same spine: header, objective,
// roster and proposal in the leading portrait section, the wide claims table
// in the landscape section, voting and closing narrative in the trailing
// portrait section. A variant with no claims renders no landscape section at
// all.

func buildGeneral(in Input) Plan {
	var p Plan

	p.Before = append(p.Before, encabezado(in, "ACTA DE AUDIENCIA DE NEGOCIACIÓN DE DEUDAS")...)
	p.Before = append(p.Before, bloqueObjeto(in,
		"La presente audiencia tiene por objeto poner en conocimiento de los acreedores la relación definitiva de acreencias, presentar la propuesta de pago de la parte deudora y someterla a votación, conforme al procedimiento de negociación de deudas.")...)
	p.Before = append(p.Before, bloqueAsistentes(in)...)

	p.Landscape = bloqueCreditos(in, tituloCreditos(in.Tipo), true)

	p.After = append(p.After, bloquePropuesta(in)...)
	colocarVotacion(&p, in)
	p.After = append(p.After, bloqueResultado(in,
		"Escuchados los acreedores y surtida la votación, el Conciliador deja constancia del resultado y dispone continuar el trámite conforme a la ley.")...)
	p.After = append(p.After, bloqueObservaciones(in,
		"El término legal de negociación se encuentra vigente.",
		"Las partes quedan notificadas en estrados de las decisiones adoptadas en esta audiencia.",
		"Contra la calificación y graduación provisional de créditos proceden las objeciones previstas en la ley.")...)
	p.After = append(p.After, bloqueCierre(in)...)
	return p
}

func buildSuspension(in Input) Plan {
	var p Plan

	p.Before = append(p.Before, encabezado(in, "ACTA DE SUSPENSIÓN DE AUDIENCIA DE NEGOCIACIÓN DE DEUDAS")...)
	p.Before = append(p.Before, bloqueObjeto(in,
		"La presente audiencia tiene por objeto dejar constancia de la suspensión de la audiencia de negociación de deudas, a solicitud de las partes y/o por disposición del Conciliador, con el fin de permitir la revisión de la propuesta de pago presentada.")...)
	p.Before = append(p.Before, bloqueAsistentes(in)...)

	p.Landscape = bloqueCreditos(in, tituloCreditos(in.Tipo), true)

	p.After = append(p.After, bloquePropuesta(in)...)
	p.After = append(p.After, bloqueResultado(in,
		"El Conciliador decreta la suspensión de la presente audiencia y convoca a las partes a su reanudación en la fecha y hora que se comunicará por los canales del centro de conciliación, dejando constancia de que el término legal de negociación continúa su curso en los términos de ley.")...)
	p.After = append(p.After, bloqueObservaciones(in,
		"La suspensión no interrumpe el término legal del procedimiento de negociación de deudas.",
		"Los asistentes quedan notificados en estrados de la fecha de reanudación.",
		"La propuesta de pago podrá ser ajustada por la parte deudora antes de la reanudación.")...)
	p.After = append(p.After, bloqueCierre(in)...)
	return p
}

func buildAcuerdo(in Input) Plan {
	var p Plan

	p.Before = append(p.Before, encabezado(in, "ACTA DE ACUERDO DE PAGO")...)
	p.Before = append(p.Before, bloqueObjeto(in,
		"La presente audiencia tiene por objeto someter a votación la propuesta de pago presentada por la parte deudora y, de obtenerse la mayoría legal, celebrar el acuerdo de pago con los acreedores.")...)
	p.Before = append(p.Before, bloqueAsistentes(in)...)

	p.Landscape = bloqueCreditos(in, tituloCreditos(in.Tipo), true)

	p.After = append(p.After, bloquePropuesta(in)...)
	colocarVotacion(&p, in)
	p.After = append(p.After, bloqueResultado(in,
		"Obtenida la mayoría legal exigida, se declara celebrado el ACUERDO DE PAGO entre la parte deudora y sus acreedores, en los términos de la propuesta votada favorablemente, la cual hace parte integral de la presente acta.")...)
	p.After = append(p.After, Heading{Text: "EFECTOS DEL ACUERDO", Size: 12})
	p.After = append(p.After, List{Items: items(
		"El acuerdo de pago obliga al deudor y a la totalidad de los acreedores, incluidos los ausentes y disidentes.",
		"El acuerdo presta mérito ejecutivo y su incumplimiento dará lugar a la audiencia de reforma o de incumplimiento, según corresponda.",
		"Los pagos se realizarán conforme a la proyección aprobada, respetando la prelación legal de créditos.",
	)})
	p.After = append(p.After, bloqueObservaciones(in,
		"Las partes quedan notificadas en estrados del acuerdo celebrado.")...)
	p.After = append(p.After, bloqueCierre(in)...)
	return p
}

// buildAcuerdoBilateral documents the bilateral agreement reached with a
// single creditor after the collective negotiation failed. The agreement
// narrative names that creditor; the graded-creditors summary sentence does
// not apply here.
func buildAcuerdoBilateral(in Input) Plan {
	var p Plan

	p.Before = append(p.Before, encabezado(in, "ACTA DE ACUERDO DE PAGO BILATERAL")...)
	p.Before = append(p.Before, bloqueObjeto(in,
		"Fracasada la negociación colectiva de deudas, la presente diligencia tiene por objeto dejar constancia del acuerdo de pago bilateral celebrado entre la parte deudora y el acreedor que votó favorablemente la propuesta.")...)
	p.Before = append(p.Before, bloqueAsistentes(in)...)

	p.Landscape = bloqueCreditos(in, tituloCreditos(in.Tipo), false)

	p.After = append(p.After, bloquePropuesta(in)...)
	colocarVotacion(&p, in)

	resultado := "No habiéndose obtenido la mayoría legal para un acuerdo colectivo, la parte deudora manifiesta su voluntad de celebrar un acuerdo de pago bilateral."
	if cp := bilateralCounterparty(in.Acreencias); cp != nil {
		resultado = fmt.Sprintf(
			"No habiéndose obtenido la mayoría legal para un acuerdo colectivo, la parte deudora celebra ACUERDO DE PAGO BILATERAL con el acreedor %s, cuya acreencia asciende a %s, en los términos de la propuesta votada favorablemente por dicho acreedor.",
			cp.Acreedor, esfmt.Currency(finance.ResolveTotal(*cp)))
	}
	p.After = append(p.After, bloqueResultado(in, resultado)...)
	p.After = append(p.After, bloqueObservaciones(in,
		"El acuerdo bilateral solo produce efectos entre las partes que lo celebran.",
		"Respecto de los demás acreedores, el procedimiento de negociación de deudas se declara fracasado.",
		"Las partes quedan notificadas en estrados.")...)
	p.After = append(p.After, bloqueCierre(in)...)
	return p
}

func buildFracaso(in Input) Plan {
	var p Plan

	p.Before = append(p.Before, encabezado(in, "ACTA DE FRACASO DE LA NEGOCIACIÓN DE DEUDAS")...)
	p.Before = append(p.Before, bloqueObjeto(in,
		"La presente audiencia tiene por objeto dejar constancia del resultado de la votación de la propuesta de pago y, no habiéndose alcanzado la mayoría legal, declarar fracasada la negociación de deudas.")...)
	p.Before = append(p.Before, bloqueAsistentes(in)...)

	p.Landscape = bloqueCreditos(in, tituloCreditos(in.Tipo), true)

	colocarVotacion(&p, in)
	p.After = append(p.After, bloqueResultado(in,
		"No habiéndose obtenido la mayoría legal exigida para la celebración del acuerdo de pago, se declara FRACASADA la negociación de deudas.")...)
	p.After = append(p.After, Heading{Text: "CONSECUENCIAS DEL FRACASO", Size: 12})
	p.After = append(p.After, List{Items: items(
		"Se ordena la remisión de las diligencias al juez civil municipal competente para que se adelante el procedimiento de liquidación patrimonial.",
		"Cesan los efectos de la aceptación del procedimiento de negociación de deudas, salvo los que la ley ordena mantener.",
		"Las partes quedan notificadas en estrados de la presente decisión.",
	)})
	p.After = append(p.After, bloqueObservaciones(in)...)
	p.After = append(p.After, bloqueCierre(in)...)
	return p
}

// bloqueResultado renders the hearing-result narrative; the override replaces
// the canned wording verbatim.
func bloqueResultado(in Input, canned string) []Block {
	cuerpo := canned
	if in.Overrides.Resultado != "" {
		cuerpo = in.Overrides.Resultado
	}
	return []Block{
		Heading{Text: "RESULTADO DE LA AUDIENCIA", Size: 12},
		text(cuerpo),
		Spacer{Lines: 1},
	}
}

// bloqueObservaciones renders the closing observations: the override as a
// single paragraph, otherwise the variant's canned list. With neither, the
// block is omitted.
func bloqueObservaciones(in Input, canned ...string) []Block {
	if in.Overrides.Observaciones != "" {
		return []Block{
			Heading{Text: "OBSERVACIONES", Size: 12},
			text(in.Overrides.Observaciones),
			Spacer{Lines: 1},
		}
	}
	if len(canned) == 0 {
		return nil
	}
	return []Block{
		Heading{Text: "OBSERVACIONES", Size: 12},
		List{Items: items(canned...)},
		Spacer{Lines: 1},
	}
}
