package docbuild

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"autoactas/internal/plan"
	"autoactas/pkg/contracts/domain"
)

// Document is the renderer input: the content plan plus the properties that
// live outside any block.
type Document struct {
	Plan plan.Plan
}

// US Letter geometry in twips, 1in margins on every side.
const (
	pageWPortrait = 12240
	pageHPortrait = 15840
	pageMargin    = 1440

	usablePortrait  = pageWPortrait - 2*pageMargin
	usableLandscape = pageHPortrait - 2*pageMargin
)

// bodyWriter accumulates document.xml and the images referenced from it.
type bodyWriter struct {
	sb     strings.Builder
	images []media
}

func buildBody(doc Document) ([]byte, []media, error) {
	w := &bodyWriter{}
	w.sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:wp="http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:pic="http://schemas.openxmlformats.org/drawingml/2006/picture">
<w:body>`)

	sections := doc.Plan.Sections()
	for i, sec := range sections {
		if err := w.writeSection(sec, i == len(sections)-1); err != nil {
			return nil, nil, err
		}
	}

	w.sb.WriteString(`</w:body>
</w:document>`)
	return []byte(w.sb.String()), w.images, nil
}

// writeSection renders the section blocks, then its page geometry. Word
// attaches a mid-document section break to the last paragraph of the section;
// only the final section's properties sit directly in the body.
func (w *bodyWriter) writeSection(sec plan.Section, last bool) error {
	for _, b := range sec.Blocks {
		if err := w.writeBlock(b, sec.Landscape); err != nil {
			return err
		}
	}
	sectPr := sectionProperties(sec.Landscape)
	if last {
		w.sb.WriteString(sectPr)
		return nil
	}
	// break paragraph carrying the geometry of the section it closes
	w.sb.WriteString(`<w:p><w:pPr>` + sectPr + `</w:pPr></w:p>`)
	return nil
}

func sectionProperties(landscape bool) string {
	if landscape {
		return fmt.Sprintf(
			`<w:sectPr><w:pgSz w:w="%d" w:h="%d" w:orient="landscape"/><w:pgMar w:top="%d" w:right="%d" w:bottom="%d" w:left="%d"/></w:sectPr>`,
			pageHPortrait, pageWPortrait, pageMargin, pageMargin, pageMargin, pageMargin)
	}
	return fmt.Sprintf(
		`<w:sectPr><w:pgSz w:w="%d" w:h="%d"/><w:pgMar w:top="%d" w:right="%d" w:bottom="%d" w:left="%d"/></w:sectPr>`,
		pageWPortrait, pageHPortrait, pageMargin, pageMargin, pageMargin, pageMargin)
}

func (w *bodyWriter) writeBlock(b plan.Block, landscape bool) error {
	switch v := b.(type) {
	case plan.Heading:
		size := v.Size
		if size == 0 {
			size = 12
		}
		w.writeParagraph([]plan.Run{{Text: v.Text, Bold: true, Size: size}}, plan.AlignCenter, "")
	case plan.Paragraph:
		w.writeParagraph(v.Runs, v.Align, "")
	case plan.Table:
		w.writeTable(v, landscape)
	case plan.List:
		numID := "1"
		if v.Ordered {
			numID = "2"
		}
		for _, item := range v.Items {
			w.writeParagraph(item, plan.AlignJustify,
				`<w:numPr><w:ilvl w:val="0"/><w:numId w:val="`+numID+`"/></w:numPr>`)
		}
	case plan.Signature:
		w.writeSignature(v.Operador)
	case plan.Spacer:
		for i := 0; i < v.Lines; i++ {
			w.sb.WriteString(`<w:p/>`)
		}
	default:
		return fmt.Errorf("unhandled block type %T", b)
	}
	return nil
}

func (w *bodyWriter) writeParagraph(runs []plan.Run, align plan.Alignment, extraPPr string) {
	w.sb.WriteString(`<w:p><w:pPr>`)
	w.sb.WriteString(extraPPr)
	if jc := justification(align); jc != "" {
		w.sb.WriteString(`<w:jc w:val="` + jc + `"/>`)
	}
	w.sb.WriteString(`</w:pPr>`)
	for _, r := range runs {
		w.writeRun(r)
	}
	w.sb.WriteString(`</w:p>`)
}

func justification(a plan.Alignment) string {
	switch a {
	case plan.AlignCenter:
		return "center"
	case plan.AlignRight:
		return "right"
	case plan.AlignJustify:
		return "both"
	default:
		return ""
	}
}

func (w *bodyWriter) writeRun(r plan.Run) {
	w.sb.WriteString(`<w:r><w:rPr>`)
	if r.Bold {
		w.sb.WriteString(`<w:b/>`)
	}
	if r.Italic {
		w.sb.WriteString(`<w:i/>`)
	}
	if r.Size > 0 {
		fmt.Fprintf(&w.sb, `<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, r.Size*2, r.Size*2)
	}
	w.sb.WriteString(`</w:rPr><w:t xml:space="preserve">`)
	w.sb.WriteString(escapeXML(r.Text))
	w.sb.WriteString(`</w:t></w:r>`)
}

var numericCell = regexp.MustCompile(`^[\s$%().,\-\d]*\d[\s$%().,\-\d]*$`)

// writeTable lays the table across the usable page width, sizing columns in
// proportion to their longest cell. Numeric-looking cells align right.
func (w *bodyWriter) writeTable(t plan.Table, landscape bool) {
	usable := usablePortrait
	if landscape {
		usable = usableLandscape
	}
	widths := columnWidths(t, usable)

	fmt.Fprintf(&w.sb,
		`<w:tbl><w:tblPr><w:tblW w:w="%d" w:type="dxa"/><w:tblBorders><w:top w:val="single" w:sz="4"/><w:left w:val="single" w:sz="4"/><w:bottom w:val="single" w:sz="4"/><w:right w:val="single" w:sz="4"/><w:insideH w:val="single" w:sz="4"/><w:insideV w:val="single" w:sz="4"/></w:tblBorders></w:tblPr><w:tblGrid>`,
		usable)
	for _, cw := range widths {
		fmt.Fprintf(&w.sb, `<w:gridCol w:w="%d"/>`, cw)
	}
	w.sb.WriteString(`</w:tblGrid>`)

	w.writeTableRow(t.Headers, widths, true, true)
	for i, row := range t.Rows {
		bold := t.BoldLastRow && i == len(t.Rows)-1
		w.writeTableRow(row, widths, bold, false)
	}
	w.sb.WriteString(`</w:tbl>`)
}

func (w *bodyWriter) writeTableRow(cells []string, widths []int, bold, header bool) {
	w.sb.WriteString(`<w:tr>`)
	for i, cell := range cells {
		width := 0
		if i < len(widths) {
			width = widths[i]
		}
		fmt.Fprintf(&w.sb, `<w:tc><w:tcPr><w:tcW w:w="%d" w:type="dxa"/>`, width)
		if header {
			w.sb.WriteString(`<w:shd w:val="clear" w:fill="D9D9D9"/>`)
		}
		w.sb.WriteString(`</w:tcPr>`)

		align := plan.AlignLeft
		if header {
			align = plan.AlignCenter
		} else if numericCell.MatchString(cell) {
			align = plan.AlignRight
		}
		w.writeParagraph([]plan.Run{{Text: cell, Bold: bold || header, Size: 9}}, align, "")
		w.sb.WriteString(`</w:tc>`)
	}
	w.sb.WriteString(`</w:tr>`)
}

// columnWidths distributes the usable width proportionally to the longest
// cell of each column, with a floor so narrow columns stay readable.
func columnWidths(t plan.Table, usable int) []int {
	cols := len(t.Headers)
	if cols == 0 {
		return nil
	}
	weights := make([]int, cols)
	measure := func(row []string) {
		for i, cell := range row {
			if i >= cols {
				break
			}
			if n := utf8.RuneCountInString(cell); n > weights[i] {
				weights[i] = n
			}
		}
	}
	measure(t.Headers)
	for _, row := range t.Rows {
		measure(row)
	}

	total := 0
	for i := range weights {
		if weights[i] < 4 {
			weights[i] = 4
		}
		total += weights[i]
	}

	widths := make([]int, cols)
	assigned := 0
	for i, wt := range weights {
		widths[i] = usable * wt / total
		assigned += widths[i]
	}
	// rounding remainder goes to the first column
	widths[0] += usable - assigned
	return widths
}

// writeSignature renders the operator closing block: the signature image when
// a usable data URL exists, otherwise blank lines for a handwritten signature.
func (w *bodyWriter) writeSignature(op domain.Operador) {
	if img := decodeSignature(op.FirmaDataURL); img != nil {
		relID := fmt.Sprintf("rIdImg%d", len(w.images)+1)
		m := media{
			relID: relID,
			name:  fmt.Sprintf("image%d.%s", len(w.images)+1, img.ext),
			data:  img.data,
		}
		w.images = append(w.images, m)
		w.sb.WriteString(`<w:p><w:pPr><w:jc w:val="left"/></w:pPr><w:r>`)
		w.sb.WriteString(inlineDrawing(relID, len(w.images)))
		w.sb.WriteString(`</w:r></w:p>`)
	} else {
		for i := 0; i < 3; i++ {
			w.sb.WriteString(`<w:p/>`)
		}
		w.writeParagraph([]plan.Run{{Text: "_______________________________"}}, plan.AlignLeft, "")
	}

	w.writeParagraph([]plan.Run{{Text: op.Nombre, Bold: true}}, plan.AlignLeft, "")
	w.writeParagraph([]plan.Run{{Text: "Operador de Insolvencia"}}, plan.AlignLeft, "")
	if op.Identificacion != "" {
		w.writeParagraph([]plan.Run{{Text: "C.C. " + op.Identificacion}}, plan.AlignLeft, "")
	}
	if op.TarjetaProfesional != "" {
		w.writeParagraph([]plan.Run{{Text: "T.P. " + op.TarjetaProfesional}}, plan.AlignLeft, "")
	}
}

// Signature display size: roughly 2.3in x 0.85in.
const (
	signatureCx = 2200000
	signatureCy = 825000
)

func inlineDrawing(relID string, docPrID int) string {
	return fmt.Sprintf(`<w:drawing><wp:inline distT="0" distB="0" distL="0" distR="0">`+
		`<wp:extent cx="%d" cy="%d"/>`+
		`<wp:docPr id="%d" name="Firma %d"/>`+
		`<a:graphic><a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/picture">`+
		`<pic:pic>`+
		`<pic:nvPicPr><pic:cNvPr id="%d" name="Firma %d"/><pic:cNvPicPr/></pic:nvPicPr>`+
		`<pic:blipFill><a:blip r:embed="%s"/><a:stretch><a:fillRect/></a:stretch></pic:blipFill>`+
		`<pic:spPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="%d" cy="%d"/></a:xfrm>`+
		`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom></pic:spPr>`+
		`</pic:pic></a:graphicData></a:graphic></wp:inline></w:drawing>`,
		signatureCx, signatureCy, docPrID, docPrID, docPrID, docPrID, relID, signatureCx, signatureCy)
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string { return xmlEscaper.Replace(s) }
