// Package plan turns a document type plus the resolved hearing data into an
// ordered content plan. Each document variant has its own builder; all of
// them produce the same Plan shape, which the assembler renders without
// knowing which variant it came from.
package plan

import "autoactas/pkg/contracts/domain"

// Alignment of a paragraph.
type Alignment string

const (
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
	AlignRight   Alignment = "right"
	AlignJustify Alignment = "justify"
)

// Run is a stretch of text with uniform styling inside a paragraph.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
	// Size is the font size in points; 0 means the document default.
	Size int
}

// Block is one typed unit of document content. The closed set of
// implementations below is everything the assembler knows how to render.
type Block interface {
	isBlock()
}

// Heading is a centered bold line.
type Heading struct {
	Text string
	// Size is the font size in points; 0 means the heading default.
	Size int
}

// Paragraph is an ordered list of styled runs.
type Paragraph struct {
	Runs  []Run
	Align Alignment
}

// Table is a grid with a bold header row. When BoldLastRow is set the final
// row renders bold, which the claims table uses for its totals row.
type Table struct {
	Headers     []string
	Rows        [][]string
	BoldLastRow bool
}

// List renders numbered (Ordered) or bulleted items; each item is a run list
// so individual words can carry legal emphasis.
type List struct {
	Ordered bool
	Items   [][]Run
}

// Signature is the closing operator block: optional signature image above
// the name, identification and professional-card lines.
type Signature struct {
	Operador domain.Operador
}

// Spacer inserts the given number of empty lines.
type Spacer struct {
	Lines int
}

func (Heading) isBlock()   {}
func (Paragraph) isBlock() {}
func (Table) isBlock()     {}
func (List) isBlock()      {}
func (Signature) isBlock() {}
func (Spacer) isBlock()    {}

// Plan is the assembled content in page order, split into the three page
// regions. Landscape is only populated when a claims table exists; an empty
// Landscape collapses the document to a single portrait section.
type Plan struct {
	Before    []Block
	Landscape []Block
	After     []Block
}

// Section is a run of blocks sharing one page geometry.
type Section struct {
	Landscape bool
	Blocks    []Block
}

// Sections flattens the plan into its page-geometry sequence: one portrait
// section, or portrait, landscape, portrait when wide tables are present.
func (p Plan) Sections() []Section {
	if len(p.Landscape) == 0 {
		blocks := make([]Block, 0, len(p.Before)+len(p.After))
		blocks = append(blocks, p.Before...)
		blocks = append(blocks, p.After...)
		return []Section{{Blocks: blocks}}
	}
	return []Section{
		{Blocks: p.Before},
		{Landscape: true, Blocks: p.Landscape},
		{Blocks: p.After},
	}
}

// text builds a single-run justified paragraph.
func text(s string) Paragraph {
	return Paragraph{Runs: []Run{{Text: s}}, Align: AlignJustify}
}

// boldLabel builds a "Label: value" paragraph with the label in bold.
func boldLabel(label, value string) Paragraph {
	return Paragraph{
		Runs:  []Run{{Text: label, Bold: true}, {Text: value}},
		Align: AlignLeft,
	}
}

func items(lines ...string) [][]Run {
	out := make([][]Run, len(lines))
	for i, l := range lines {
		out[i] = []Run{{Text: l}}
	}
	return out
}
