// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package docx serializes the block model into Office Open XML
// wordprocessing documents. It writes the zip container and the
// WordprocessingML parts directly; styles come from the caller's
// style table.
package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/pdiddy/mdreport/pkg/types"
)

// Document is a finished in-memory .docx: a set of named zip parts.
type Document struct {
	parts map[string][]byte
}

// Part returns the raw content of a named part (e.g.
// "word/document.xml"), or nil when absent.
func (d *Document) Part(name string) []byte {
	return d.parts[name]
}

// PartNames lists the document's part names in stable order.
func (d *Document) PartNames() []string {
	names := make([]string, 0, len(d.parts))
	for name := range d.parts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bytes packs the parts into a zip archive and returns it as an
// in-memory byte slice.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	zipw := zip.NewWriter(&buf)

	for _, name := range d.PartNames() {
		fw, err := zipw.Create(name)
		if err != nil {
			return nil, fmt.Errorf("writing [ %s ] to archive: %w", name, err)
		}
		if _, err := fw.Write(d.parts[name]); err != nil {
			return nil, fmt.Errorf("writing [ %s ] to archive: %w", name, err)
		}
	}

	if err := zipw.Close(); err != nil {
		return nil, fmt.Errorf("closing archive: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the document to path, overwriting any existing file.
// Failures are filesystem errors only (missing directory, permissions).
func (d *Document) Save(path string) error {
	data, err := d.Bytes()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Builder accumulates blocks and produces a Document. A zero Builder
// is not usable; construct with NewBuilder.
type Builder struct {
	styles types.StyleConfig
	body   bytes.Buffer
}

// NewBuilder returns a builder applying the given style table.
func NewBuilder(styles types.StyleConfig) *Builder {
	return &Builder{styles: styles.Normalize()}
}

// AddBlocks appends blocks to the document body in order. Block kinds
// outside the model render through the plain paragraph arm.
func (b *Builder) AddBlocks(blocks []types.Block) {
	for _, blk := range blocks {
		b.AddBlock(blk)
	}
}

// AddBlock dispatches one block to its WordprocessingML form.
func (b *Builder) AddBlock(blk types.Block) {
	switch blk.Kind {
	case types.HeadingBlock:
		b.writeHeading(blk)
	case types.ListItemBlock:
		b.writeListItem(blk)
	case types.TableBlock:
		b.writeTable(blk)
	default:
		b.writeParagraph(blk.Spans)
	}
}

// Document assembles the container parts around the accumulated body.
func (b *Builder) Document() *Document {
	return &Document{parts: map[string][]byte{
		"[Content_Types].xml":          []byte(contentTypesXML),
		"_rels/.rels":                  []byte(rootRelsXML),
		"word/_rels/document.xml.rels": []byte(documentRelsXML),
		"word/styles.xml":              stylesXML(b.styles),
		"word/numbering.xml":           []byte(numberingXML),
		"word/document.xml":            b.documentXML(),
	}}
}

// documentXML wraps the body in the document envelope and section
// properties.
func (b *Builder) documentXML() []byte {
	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	buf.WriteString(`<w:document xmlns:w="` + wordprocessingmlNS + `">`)
	buf.WriteString(`<w:body>`)
	buf.Write(b.body.Bytes())
	buf.WriteString(`<w:sectPr>` +
		`<w:pgSz w:w="12240" w:h="15840"/>` +
		`<w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440" w:header="720" w:footer="720" w:gutter="0"/>` +
		`</w:sectPr>`)
	buf.WriteString(`</w:body>`)
	buf.WriteString(`</w:document>`)
	return buf.Bytes()
}
