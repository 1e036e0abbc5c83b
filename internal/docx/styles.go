// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import (
	"bytes"
	"fmt"

	"github.com/pdiddy/mdreport/pkg/types"
)

// stylesXML renders word/styles.xml from the style table. Font sizes
// are written in half-points as WordprocessingML requires.
func stylesXML(cfg types.StyleConfig) []byte {
	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	buf.WriteString(`<w:styles xmlns:w="` + wordprocessingmlNS + `">`)

	// Document defaults: base font and size.
	fmt.Fprintf(&buf,
		`<w:docDefaults><w:rPrDefault><w:rPr>`+
			`<w:rFonts w:ascii="%s" w:hAnsi="%s"/>`+
			`<w:sz w:val="%d"/><w:szCs w:val="%d"/>`+
			`</w:rPr></w:rPrDefault></w:docDefaults>`,
		esc(cfg.BaseFont), esc(cfg.BaseFont), cfg.BaseSizePt*2, cfg.BaseSizePt*2)

	buf.WriteString(`<w:style w:type="paragraph" w:default="1" w:styleId="Normal">` +
		`<w:name w:val="Normal"/>` +
		`</w:style>`)

	for level := 1; level <= 3; level++ {
		hs := cfg.HeadingFor(level)
		fmt.Fprintf(&buf, `<w:style w:type="paragraph" w:styleId="Heading%d">`, level)
		fmt.Fprintf(&buf, `<w:name w:val="heading %d"/>`, level)
		buf.WriteString(`<w:basedOn w:val="Normal"/><w:next w:val="Normal"/>`)
		fmt.Fprintf(&buf, `<w:pPr><w:keepNext/><w:spacing w:before="240" w:after="120"/><w:outlineLvl w:val="%d"/></w:pPr>`, level-1)
		buf.WriteString(`<w:rPr>`)
		if hs.Bold {
			buf.WriteString(`<w:b/>`)
		}
		if hs.Color != "" {
			fmt.Fprintf(&buf, `<w:color w:val="%s"/>`, esc(hs.Color))
		}
		fmt.Fprintf(&buf, `<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, hs.SizePt*2, hs.SizePt*2)
		buf.WriteString(`</w:rPr></w:style>`)
	}

	buf.WriteString(`<w:style w:type="paragraph" w:styleId="ListParagraph">` +
		`<w:name w:val="List Paragraph"/>` +
		`<w:basedOn w:val="Normal"/>` +
		`<w:pPr><w:ind w:left="720"/><w:contextualSpacing/></w:pPr>` +
		`</w:style>`)

	buf.WriteString(`</w:styles>`)
	return buf.Bytes()
}
