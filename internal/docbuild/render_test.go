package docbuild

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autoactas/internal/plan"
	"autoactas/pkg/contracts/domain"
)

func testPlan() plan.Plan {
	return plan.Plan{
		Before: []plan.Block{
			plan.Heading{Text: "ACTA DE AUDIENCIA", Size: 14},
			plan.Paragraph{Runs: []plan.Run{
				{Text: "Proceso: ", Bold: true},
				{Text: "2026-0042 & anexos"},
			}, Align: plan.AlignLeft},
		},
		Landscape: []plan.Block{
			plan.Table{
				Headers:     []string{"Acreedor", "Total", "%"},
				Rows:        [][]string{{"Banco de Occidente", "$ 60.000.000", "60,00%"}, {"TOTAL", "$ 100.000.000", "100,00%"}},
				BoldLastRow: true,
			},
		},
		After: []plan.Block{
			plan.List{Ordered: true, Items: [][]plan.Run{
				{{Text: "Primera orden."}},
				{{Text: "Segunda orden."}},
			}},
			plan.Signature{Operador: domain.Operador{Nombre: "JUAN CAMILO ROMERO BURGOS"}},
		},
	}
}

func readPart(t *testing.T, data []byte, name string) []byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		return b
	}
	t.Fatalf("archive part %s not found", name)
	return nil
}

func requireWellFormed(t *testing.T, data []byte) {
	t.Helper()
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			return
		}
		require.NoError(t, err)
	}
}

func TestRenderArchiveStructure(t *testing.T) {
	out, err := Render(Document{Plan: testPlan()})
	require.NoError(t, err)

	for _, part := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/_rels/document.xml.rels",
		"word/document.xml",
		"word/styles.xml",
		"word/numbering.xml",
	} {
		requireWellFormed(t, readPart(t, out, part))
	}
}

func TestRenderSections(t *testing.T) {
	out, err := Render(Document{Plan: testPlan()})
	require.NoError(t, err)
	doc := string(readPart(t, out, "word/document.xml"))

	// portrait, landscape, portrait
	assert.Equal(t, 3, strings.Count(doc, "<w:sectPr>"))
	assert.Equal(t, 1, strings.Count(doc, `w:orient="landscape"`))
	// landscape page is letter rotated
	assert.Contains(t, doc, `<w:pgSz w:w="15840" w:h="12240" w:orient="landscape"/>`)
}

func TestRenderSinglePortraitSection(t *testing.T) {
	p := testPlan()
	p.Landscape = nil
	out, err := Render(Document{Plan: p})
	require.NoError(t, err)
	doc := string(readPart(t, out, "word/document.xml"))

	assert.Equal(t, 1, strings.Count(doc, "<w:sectPr>"))
	assert.NotContains(t, doc, "landscape")
}

func TestRenderContent(t *testing.T) {
	out, err := Render(Document{Plan: testPlan()})
	require.NoError(t, err)
	doc := string(readPart(t, out, "word/document.xml"))

	assert.Contains(t, doc, "ACTA DE AUDIENCIA")
	assert.Contains(t, doc, "2026-0042 &amp; anexos")
	assert.Contains(t, doc, "100,00%")
	// ordered list items carry the decimal numbering reference
	assert.Equal(t, 2, strings.Count(doc, `<w:numId w:val="2"/>`))
	// no signature image: handwritten fallback line renders
	assert.Contains(t, doc, "_______________________________")
	assert.Contains(t, doc, "JUAN CAMILO ROMERO BURGOS")
	assert.Contains(t, doc, "Operador de Insolvencia")
}

func TestRenderTableLayout(t *testing.T) {
	out, err := Render(Document{Plan: testPlan()})
	require.NoError(t, err)
	doc := string(readPart(t, out, "word/document.xml"))

	// landscape table spans the full usable width
	assert.Contains(t, doc, `<w:tblW w:w="12960" w:type="dxa"/>`)
	assert.Equal(t, 3, strings.Count(doc, "<w:gridCol"))
	// money and percent cells align right
	assert.Contains(t, doc, `<w:jc w:val="right"/>`)
}

func TestColumnWidthsSumToUsable(t *testing.T) {
	tbl := plan.Table{
		Headers: []string{"Acreedor", "Total", "%"},
		Rows:    [][]string{{"Un acreedor con nombre largo", "$ 1.000", "5,00%"}},
	}
	widths := columnWidths(tbl, usablePortrait)
	require.Len(t, widths, 3)
	sum := 0
	for _, w := range widths {
		sum += w
	}
	assert.Equal(t, usablePortrait, sum)
	assert.Greater(t, widths[0], widths[2])
}

func TestRenderSignatureImage(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 1}
	url := "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)

	p := testPlan()
	p.After[len(p.After)-1] = plan.Signature{Operador: domain.Operador{
		Nombre:       "JUAN CAMILO ROMERO BURGOS",
		FirmaDataURL: url,
	}}
	out, err := Render(Document{Plan: p})
	require.NoError(t, err)

	assert.Equal(t, png, readPart(t, out, "word/media/image1.png"))
	rels := string(readPart(t, out, "word/_rels/document.xml.rels"))
	assert.Contains(t, rels, `Target="media/image1.png"`)
	doc := string(readPart(t, out, "word/document.xml"))
	assert.Contains(t, doc, `r:embed="rIdImg1"`)
	assert.NotContains(t, doc, "_______________________________")
}

func TestDecodeSignature(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("img-bytes"))
	tests := []struct {
		name    string
		dataURL string
		wantExt string
		wantNil bool
	}{
		{"empty", "", "", true},
		{"png", "data:image/png;base64," + payload, "png", false},
		{"jpeg", "data:image/jpeg;base64," + payload, "jpeg", false},
		{"bmp", "data:image/bmp;base64," + payload, "bmp", false},
		{"unsupported type", "data:image/webp;base64," + payload, "", true},
		{"not base64 encoded", "data:image/png," + payload, "", true},
		{"not a data url", "https://example.com/firma.png", "", true},
		{"corrupt payload", "data:image/png;base64,@@@@", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeSignature(tt.dataURL)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantExt, got.ext)
			assert.Equal(t, []byte("img-bytes"), got.data)
		})
	}
}
