package plan

import (
	"fmt"
	"strings"

	"autoactas/internal/esfmt"
	"autoactas/internal/finance"
	"autoactas/pkg/contracts/domain"
)

const marcoLegal = "LEY 1564 DE 2012, MODIFICADA POR LA LEY 2445 DE 2025."

// encabezado builds the document title block and the process/date lines every
// minutes variant opens with.
func encabezado(in Input, titulo string) []Block {
	if in.Titulo != "" {
		titulo = in.Titulo
	}
	procesoLabel := in.Proceso.NumeroProceso
	if procesoLabel == "" {
		procesoLabel = in.Proceso.ID
	}
	ciudad := in.Ciudad
	if ciudad == "" {
		ciudad = "Cali"
	}
	cuando := esfmt.FechaEnLetras(in.Fecha)
	if in.Hora != "" {
		cuando += ", a las " + esfmt.Hora12(in.Hora)
	}

	return []Block{
		Heading{Text: strings.ToUpper(titulo), Size: 14},
		Heading{Text: "PROCEDIMIENTO DE NEGOCIACIÓN DE DEUDAS", Size: 12},
		Heading{Text: marcoLegal, Size: 12},
		Spacer{Lines: 1},
		boldLabel("Proceso: ", procesoLabel),
		boldLabel("Fecha: ", esfmt.FechaLarga(in.Fecha)),
		boldLabel("Ciudad: ", ciudad),
		Spacer{Lines: 1},
		text(fmt.Sprintf(
			"En la ciudad de %s, siendo el %s, se reunieron de manera presencial y/o virtual el Conciliador designado, la parte deudora y los acreedores convocados, con el fin de adelantar la diligencia que a continuación se documenta.",
			ciudad, cuando)),
		Spacer{Lines: 1},
	}
}

// bloqueObjeto renders the objective-of-hearing narrative: the override
// verbatim when supplied, the canned wording otherwise.
func bloqueObjeto(in Input, canned string) []Block {
	cuerpo := canned
	if in.Overrides.Objeto != "" {
		cuerpo = in.Overrides.Objeto
	}
	return []Block{
		Heading{Text: "OBJETO DE LA AUDIENCIA", Size: 12},
		text(cuerpo),
		Spacer{Lines: 1},
	}
}

// bloqueAsistentes builds the attendance summary and the roster table. Only
// creditors and attorneys representing a creditor make the roster.
func bloqueAsistentes(in Input) []Block {
	total := len(in.Asistentes)
	presentes := 0
	for _, a := range in.Asistentes {
		if strings.EqualFold(a.Estado, "Presente") {
			presentes++
		}
	}

	blocks := []Block{
		Heading{Text: "ASISTENTES", Size: 12},
		text(fmt.Sprintf("Convocados: %d. Presentes: %d. Ausentes: %d.",
			total, presentes, total-presentes)),
	}

	var rows [][]string
	for _, a := range in.Asistentes {
		if !a.EnRoster() {
			continue
		}
		rows = append(rows, []string{
			a.Nombre,
			string(a.Categoria),
			a.Estado,
			orDash(a.TarjetaProfesional),
			orDash(a.CalidadApoderadoDe),
		})
	}
	if len(rows) > 0 {
		blocks = append(blocks, Table{
			Headers: []string{"Nombre", "Categoría", "Estado", "Tarjeta profesional", "En calidad de apoderado de"},
			Rows:    rows,
		})
	}
	blocks = append(blocks, Spacer{Lines: 1})
	return blocks
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}

// bloquePropuesta renders the payment proposal per legal priority class,
// followed by the extracted payment projection or its placeholder.
func bloquePropuesta(in Input) []Block {
	blocks := []Block{Heading{Text: "PROPUESTA DE PAGO", Size: 12}}

	if in.Overrides.Propuesta != "" {
		blocks = append(blocks, text(in.Overrides.Propuesta))
	} else {
		for _, clase := range priorityClasses(in.Acreencias) {
			blocks = append(blocks, text(fmt.Sprintf(
				"Para los créditos de %s clase (%s), la parte deudora propone el pago conforme a la proyección presentada en esta audiencia, respetando la prelación legal de créditos de los artículos 2488 y siguientes del Código Civil.",
				clase.nombre, strings.Join(clase.acreedores, ", "))))
		}
		if len(in.Acreencias) == 0 {
			blocks = append(blocks, text(
				"La parte deudora presenta su propuesta de pago conforme a la relación de acreencias del proceso."))
		}
	}

	if in.Proyeccion != nil {
		blocks = append(blocks, metadataBlocks(in.Proyeccion)...)
		blocks = append(blocks, Table{Headers: in.Proyeccion.Headers, Rows: in.Proyeccion.Rows})
	} else {
		blocks = append(blocks, text(PlaceholderProyeccion))
	}
	blocks = append(blocks, Spacer{Lines: 1})
	return blocks
}

type claseAcreencias struct {
	nombre     string
	acreedores []string
}

// priorityClasses groups creditors by their prelación rank, preserving first
// appearance order.
func priorityClasses(claims []domain.Acreencia) []claseAcreencias {
	var order []string
	byClass := map[string][]string{}
	for _, c := range claims {
		clase := c.Prelacion
		if clase == "" {
			clase = "quinta"
		}
		if _, seen := byClass[clase]; !seen {
			order = append(order, clase)
		}
		byClass[clase] = append(byClass[clase], c.Acreedor)
	}
	out := make([]claseAcreencias, 0, len(order))
	for _, clase := range order {
		out = append(out, claseAcreencias{nombre: clase, acreedores: byClass[clase]})
	}
	return out
}

func metadataBlocks(t *domain.ExtractedTable) []Block {
	var blocks []Block
	if t.Title != "" {
		blocks = append(blocks, Paragraph{
			Runs:  []Run{{Text: "Proyección de pagos — " + t.Title, Bold: true}},
			Align: AlignLeft,
		})
	}
	for _, m := range t.Metadata {
		blocks = append(blocks, boldLabel(m.Label+": ", m.Value))
	}
	return blocks
}

// tituloCreditos is the claims-table heading per variant.
func tituloCreditos(tipo domain.TipoActa) string {
	switch tipo {
	case domain.TipoActaGeneral, domain.TipoActaSuspension:
		return "CALIFICACIÓN Y GRADUACIÓN PROVISIONAL DE CRÉDITOS"
	case domain.TipoActaAcuerdo, domain.TipoActaFracaso:
		return "GRADUACIÓN DE CRÉDITOS"
	default:
		return "CRÉDITOS"
	}
}

// bloqueCreditos renders the claims table with its totals row. The final
// percentage cell always reads "100,00%"; the displayed claim shares round
// independently and the totals row is a display clamp, not a derived sum.
func bloqueCreditos(in Input, titulo string, conResumen bool) []Block {
	if len(in.Acreencias) == 0 {
		return nil
	}

	headers := []string{"Acreedor", "Apoderado", "Naturaleza", "Prelación", "Capital", "Int. Cte.", "Int. Mora", "Otros", "Total", "%"}
	rows := make([][]string, 0, len(in.Acreencias)+1)
	for _, c := range in.Acreencias {
		pctCell := "—"
		if pct, ok := finance.Percentage(c, in.Acreencias); ok {
			pctCell = esfmt.Percent(pct)
		}
		rows = append(rows, []string{
			c.Acreedor,
			orDash(c.Apoderado),
			orDash(c.Naturaleza),
			orDash(c.Prelacion),
			moneyCell(c.Capital),
			moneyCell(c.IntCte),
			moneyCell(c.IntMora),
			moneyCell(c.Otros),
			esfmt.Currency(finance.ResolveTotal(c)),
			pctCell,
		})
	}

	totals := finance.SumComponents(in.Acreencias)
	rows = append(rows, []string{
		"TOTAL", "", "", "",
		esfmt.Currency(totals.Capital),
		esfmt.Currency(totals.IntCte),
		esfmt.Currency(totals.IntMora),
		esfmt.Currency(totals.Otros),
		esfmt.Currency(totals.Total),
		"100,00%",
	})

	blocks := []Block{
		Heading{Text: titulo, Size: 12},
		Table{Headers: headers, Rows: rows, BoldLastRow: true},
	}
	if conResumen {
		blocks = append(blocks, text(fraseGraduados(in.Acreencias)))
	}
	return blocks
}

func moneyCell(v *float64) string {
	if v == nil {
		return "—"
	}
	return esfmt.Currency(*v)
}

// fraseGraduados is the one-line summary naming the graded creditors.
func fraseGraduados(claims []domain.Acreencia) string {
	names := make([]string, 0, len(claims))
	for _, c := range claims {
		names = append(names, c.Acreedor)
	}
	return fmt.Sprintf("Se califican y gradúan los créditos de los acreedores %s.",
		joinSpanish(names))
}

func joinSpanish(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " y " + names[len(names)-1]
	}
}

// colocarVotacion places the voting narrative in the trailing portrait blocks
// and the voting table next to the claims table in the landscape section, so
// both wide tables share the rotated page. Without a landscape section the
// table stays portrait.
func colocarVotacion(p *Plan, in Input) {
	p.After = append(p.After, votacionNarrativa(in)...)
	tbl := tablaVotacion(in)
	if len(p.Landscape) > 0 {
		p.Landscape = append(p.Landscape, Heading{Text: "VOTACIÓN", Size: 12}, tbl)
		return
	}
	p.After = append(p.After, tbl, Spacer{Lines: 1})
}

// votacionNarrativa renders the voting-results narrative. Without
// recognizable votes the percentages degrade to bracketed placeholders that
// the operator fills in by hand.
func votacionNarrativa(in Input) []Block {
	blocks := []Block{Heading{Text: "RESULTADO DE LA VOTACIÓN", Size: 12}}

	if in.Tally.HasVotes {
		blocks = append(blocks, text(fmt.Sprintf(
			"Sometida a votación la propuesta de pago, el resultado fue el siguiente: voto positivo %s, voto negativo %s, ausentes %s y abstenciones %s, calculado sobre el porcentaje de participación de cada acreencia en el pasivo total.",
			esfmt.Percent(in.Tally.Buckets[domain.VotePositivo]),
			esfmt.Percent(in.Tally.Buckets[domain.VoteNegativo]),
			esfmt.Percent(in.Tally.Buckets[domain.VoteAusente]),
			esfmt.Percent(in.Tally.Buckets[domain.VoteAbstencion]))))
	} else {
		blocks = append(blocks, text(fmt.Sprintf(
			"Sometida a votación la propuesta de pago, el resultado fue el siguiente: voto positivo %s, voto negativo %s, ausentes %s y abstenciones %s.",
			PlaceholderPorcentaje, PlaceholderPorcentaje, PlaceholderPorcentaje, PlaceholderPorcentaje)))
	}
	blocks = append(blocks, Spacer{Lines: 1})
	return blocks
}

// tablaVotacion prefers the voting table extracted from the workbook; when
// absent it synthesizes one from the tally, or placeholders without votes.
func tablaVotacion(in Input) Block {
	if in.Votacion != nil {
		return Table{Headers: in.Votacion.Headers, Rows: in.Votacion.Rows}
	}

	rows := make([][]string, 0, len(domain.VoteCategories))
	for _, cat := range domain.VoteCategories {
		cell := PlaceholderVoto
		if in.Tally.HasVotes {
			cell = esfmt.Percent(in.Tally.Buckets[cat])
		}
		rows = append(rows, []string{string(cat), cell})
	}
	return Table{Headers: []string{"Voto", "Porcentaje"}, Rows: rows}
}

// bilateralCounterparty picks the creditor the bilateral agreement is signed
// with: among positive voters, one whose claim nature marks it as mortgage
// backed wins over earlier positive voters; otherwise the first positive
// voter. Returns nil when nobody voted positively.
func bilateralCounterparty(claims []domain.Acreencia) *domain.Acreencia {
	var first *domain.Acreencia
	for i := range claims {
		cat, ok := finance.NormalizeVote(claims[i].Voto)
		if !ok || cat != domain.VotePositivo {
			continue
		}
		if strings.Contains(strings.ToUpper(claims[i].Naturaleza), "HIPOTEC") {
			return &claims[i]
		}
		if first == nil {
			first = &claims[i]
		}
	}
	return first
}

// bloqueCierre is the signing block closing every document.
func bloqueCierre(in Input) []Block {
	return []Block{
		Spacer{Lines: 1},
		text(fmt.Sprintf("En constancia de lo anterior se firma el %s.", esfmt.FechaEnLetras(in.Fecha))),
		text("Atentamente,"),
		Signature{Operador: in.Operador},
	}
}
