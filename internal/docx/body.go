// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import (
	"fmt"
	"strings"

	"github.com/pdiddy/mdreport/pkg/types"
)

// Numbering definition IDs wired in numbering.xml.
const (
	bulletNumID  = 1
	decimalNumID = 2
)

// xmlEscaper covers the five characters meaningful in XML text and
// attribute content.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func esc(s string) string {
	return xmlEscaper.Replace(s)
}

// writeRuns emits one w:r per span, carrying bold/italic run
// properties. xml:space="preserve" keeps leading and trailing spaces
// that separate adjacent runs.
func (b *Builder) writeRuns(spans []types.Span) {
	for _, s := range spans {
		b.body.WriteString(`<w:r>`)
		if s.Bold || s.Italic {
			b.body.WriteString(`<w:rPr>`)
			if s.Bold {
				b.body.WriteString(`<w:b/>`)
			}
			if s.Italic {
				b.body.WriteString(`<w:i/>`)
			}
			b.body.WriteString(`</w:rPr>`)
		}
		b.body.WriteString(`<w:t xml:space="preserve">` + esc(s.Text) + `</w:t>`)
		b.body.WriteString(`</w:r>`)
	}
}

func (b *Builder) writeHeading(blk types.Block) {
	level := blk.Level
	if level < 1 {
		level = 1
	}
	if level > 3 {
		// Deep headings borrow the level-3 style, like the original
		// conversion rules.
		level = 3
	}
	b.body.WriteString(`<w:p><w:pPr><w:pStyle w:val="Heading` + fmt.Sprint(level) + `"/></w:pPr>`)
	b.writeRuns(blk.Spans)
	b.body.WriteString(`</w:p>`)
}

func (b *Builder) writeParagraph(spans []types.Span) {
	if len(spans) == 0 {
		b.body.WriteString(`<w:p/>`)
		return
	}
	b.body.WriteString(`<w:p>`)
	b.writeRuns(spans)
	b.body.WriteString(`</w:p>`)
}

func (b *Builder) writeListItem(blk types.Block) {
	numID := bulletNumID
	if blk.Ordered {
		numID = decimalNumID
	}
	ilvl := blk.Level
	if ilvl < 0 {
		ilvl = 0
	}
	if ilvl > 2 {
		ilvl = 2
	}

	b.body.WriteString(`<w:p><w:pPr>` +
		`<w:pStyle w:val="ListParagraph"/>` +
		`<w:numPr>` +
		fmt.Sprintf(`<w:ilvl w:val="%d"/><w:numId w:val="%d"/>`, ilvl, numID) +
		`</w:numPr>` +
		`</w:pPr>`)
	b.writeRuns(blk.Spans)
	b.body.WriteString(`</w:p>`)
}

// writeTable renders a rectangular grid: short rows pad with empty
// cells so every row has the table's column count.
func (b *Builder) writeTable(blk types.Block) {
	if len(blk.Rows) == 0 {
		return
	}

	cols := 0
	for _, row := range blk.Rows {
		if len(row.Cells) > cols {
			cols = len(row.Cells)
		}
	}

	b.body.WriteString(`<w:tbl>`)
	b.body.WriteString(`<w:tblPr><w:tblW w:w="0" w:type="auto"/>`)
	if b.styles.Table.Borders {
		b.body.WriteString(`<w:tblBorders>` +
			`<w:top w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
			`<w:left w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
			`<w:bottom w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
			`<w:right w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
			`<w:insideH w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
			`<w:insideV w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
			`</w:tblBorders>`)
	}
	b.body.WriteString(`</w:tblPr>`)

	b.body.WriteString(`<w:tblGrid>`)
	for i := 0; i < cols; i++ {
		b.body.WriteString(`<w:gridCol/>`)
	}
	b.body.WriteString(`</w:tblGrid>`)

	for _, row := range blk.Rows {
		b.body.WriteString(`<w:tr>`)
		for i := 0; i < cols; i++ {
			var spans []types.Span
			if i < len(row.Cells) {
				spans = row.Cells[i]
			}
			if row.Header && b.styles.Table.HeaderBold {
				spans = boldened(spans)
			}
			b.body.WriteString(`<w:tc><w:tcPr/>`)
			b.writeParagraph(spans)
			b.body.WriteString(`</w:tc>`)
		}
		b.body.WriteString(`</w:tr>`)
	}
	b.body.WriteString(`</w:tbl>`)
}

// boldened copies spans with bold forced on.
func boldened(spans []types.Span) []types.Span {
	out := make([]types.Span, len(spans))
	for i, s := range spans {
		s.Bold = true
		out[i] = s
	}
	return out
}
