// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import (
	"bytes"
	"fmt"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

const wordprocessingmlNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// contentTypesXML declares the parts of the package.
const contentTypesXML = xmlHeader +
	`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`<Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>` +
	`</Types>`

// rootRelsXML points the package at the main document part.
const rootRelsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

// documentRelsXML wires styles and numbering into the main document.
const documentRelsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering" Target="numbering.xml"/>` +
	`</Relationships>`

// numberingXML defines one bullet list (numId 1) and one decimal list
// (numId 2), each three levels deep with 720-twip indent steps.
var numberingXML = func() string {
	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	buf.WriteString(`<w:numbering xmlns:w="` + wordprocessingmlNS + `">`)

	// Bullet glyphs per level, in the fonts Word ships them in.
	bullets := []struct{ text, font string }{
		{"", "Symbol"},
		{"o", "Courier New"},
		{"", "Wingdings"},
	}

	buf.WriteString(`<w:abstractNum w:abstractNumId="0">`)
	for lvl, bl := range bullets {
		fmt.Fprintf(&buf, `<w:lvl w:ilvl="%d">`, lvl)
		buf.WriteString(`<w:start w:val="1"/><w:numFmt w:val="bullet"/>`)
		fmt.Fprintf(&buf, `<w:lvlText w:val="%s"/>`, bl.text)
		buf.WriteString(`<w:lvlJc w:val="left"/>`)
		fmt.Fprintf(&buf, `<w:pPr><w:ind w:left="%d" w:hanging="360"/></w:pPr>`, 720*(lvl+1))
		fmt.Fprintf(&buf, `<w:rPr><w:rFonts w:ascii="%s" w:hAnsi="%s" w:hint="default"/></w:rPr>`, bl.font, bl.font)
		buf.WriteString(`</w:lvl>`)
	}
	buf.WriteString(`</w:abstractNum>`)

	buf.WriteString(`<w:abstractNum w:abstractNumId="1">`)
	for lvl := 0; lvl < 3; lvl++ {
		fmt.Fprintf(&buf, `<w:lvl w:ilvl="%d">`, lvl)
		buf.WriteString(`<w:start w:val="1"/><w:numFmt w:val="decimal"/>`)
		fmt.Fprintf(&buf, `<w:lvlText w:val="%%%d."/>`, lvl+1)
		buf.WriteString(`<w:lvlJc w:val="left"/>`)
		fmt.Fprintf(&buf, `<w:pPr><w:ind w:left="%d" w:hanging="360"/></w:pPr>`, 720*(lvl+1))
		buf.WriteString(`</w:lvl>`)
	}
	buf.WriteString(`</w:abstractNum>`)

	fmt.Fprintf(&buf, `<w:num w:numId="%d"><w:abstractNumId w:val="0"/></w:num>`, bulletNumID)
	fmt.Fprintf(&buf, `<w:num w:numId="%d"><w:abstractNumId w:val="1"/></w:num>`, decimalNumID)
	buf.WriteString(`</w:numbering>`)
	return buf.String()
}()
