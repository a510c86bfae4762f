package gofpdf

import (
	"bytes"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
	"github.com/rs/zerolog/log"

	"quote-crm/backend/internal/domain/quote"
	"quote-crm/backend/internal/domain/quote/pdf"
)

const utf8Family = "DejaVu"

type Generator struct {
	// FontDir, when set, must contain DejaVuSans.ttf and DejaVuSans-Bold.ttf.
	// Without it the core Helvetica font is used with cp1252 translation.
	FontDir string
}

func New(fontDir string) *Generator { return &Generator{FontDir: fontDir} }

var _ pdf.Generator = (*Generator)(nil)

func (g *Generator) Generate(q quote.Quote) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle("Quotation for "+q.Customer, true)

	family := "Helvetica"
	tr := doc.UnicodeTranslatorFromDescriptor("")
	if g.FontDir != "" {
		regular := filepath.Join(g.FontDir, "DejaVuSans.ttf")
		bold := filepath.Join(g.FontDir, "DejaVuSans-Bold.ttf")
		log.Debug().Str("regular", regular).Str("bold", bold).Msg("quote pdf: load fonts")
		doc.AddUTF8Font(utf8Family, "", regular)
		doc.AddUTF8Font(utf8Family, "B", bold)
		family = utf8Family
		tr = func(s string) string { return s }
	}
	if err := doc.Error(); err != nil {
		return nil, err
	}
	doc.AddPage()

	lines := pdf.Lines(q)

	doc.SetFont(family, "B", 16)
	doc.Cell(0, 10, tr(lines[0].String()))
	doc.Ln(12)

	doc.SetFont(family, "", 11)
	for _, l := range lines[1:] {
		if l.Label == "Notes" {
			doc.MultiCell(0, 6, tr(l.String()), "", "L", false)
			continue
		}
		doc.Cell(0, 6, tr(l.String()))
		doc.Ln(8)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		log.Error().Err(err).Str("quote", q.ID).Msg("quote pdf: output failed")
		return nil, err
	}
	return buf.Bytes(), nil
}
