// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package markdown parses Markdown text into the shared block model
// using the goldmark engine.
package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/pdiddy/mdreport/pkg/types"
)

// Parser converts Markdown source into []types.Block. The parser is
// stateless, so callers can reuse a single instance without locking.
type Parser struct {
	engine goldmark.Markdown
}

// NewParser constructs a parser with the table extension enabled.
func NewParser() *Parser {
	return &Parser{
		engine: goldmark.New(
			goldmark.WithExtensions(extension.Table),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
	}
}

// Parse walks the Markdown AST and returns the document's blocks in
// source order. Constructs outside the block model (code fences,
// quotes, raw HTML) degrade to plain paragraphs; nothing is fatal.
func (p *Parser) Parse(source []byte) []types.Block {
	root := p.engine.Parser().Parse(text.NewReader(source))

	var blocks []types.Block
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		blocks = append(blocks, p.blockOf(n, source)...)
	}
	return blocks
}

// ParseString is Parse for string input.
func (p *Parser) ParseString(source string) []types.Block {
	return p.Parse([]byte(source))
}

// blockOf converts one top-level AST node into blocks.
func (p *Parser) blockOf(n ast.Node, source []byte) []types.Block {
	switch t := n.(type) {
	case *ast.Heading:
		return []types.Block{{
			Kind:  types.HeadingBlock,
			Level: t.Level,
			Spans: inlineSpans(t, source, false, false),
		}}

	case *ast.Paragraph, *ast.TextBlock:
		return []types.Block{{
			Kind:  types.ParagraphBlock,
			Spans: inlineSpans(n, source, false, false),
		}}

	case *ast.List:
		return p.listBlocks(t, source, 0)

	case *east.Table:
		return []types.Block{p.tableBlock(t, source)}

	case *ast.ThematicBreak:
		// A rule has no text of its own; an empty paragraph keeps the
		// visual break in the output.
		return []types.Block{{Kind: types.ParagraphBlock}}

	case *ast.FencedCodeBlock:
		return rawLineParagraphs(t, source)

	case *ast.CodeBlock:
		return rawLineParagraphs(t, source)

	case *ast.HTMLBlock:
		return rawLineParagraphs(t, source)

	case *ast.Blockquote:
		// Quotes flatten to their inner blocks.
		var blocks []types.Block
		for c := t.FirstChild(); c != nil; c = c.NextSibling() {
			blocks = append(blocks, p.blockOf(c, source)...)
		}
		return blocks

	default:
		// Fallback arm: anything unmodeled renders as a plain
		// paragraph of its flattened text.
		if txt := strings.TrimSpace(string(n.Text(source))); txt != "" {
			return []types.Block{types.Paragraph(txt)}
		}
		return nil
	}
}

// listBlocks flattens a (possibly nested) list into ListItemBlocks.
// Level carries the nesting depth so the document builder can indent.
func (p *Parser) listBlocks(list *ast.List, source []byte, level int) []types.Block {
	var blocks []types.Block
	ordered := list.IsOrdered()

	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			switch t := c.(type) {
			case *ast.List:
				blocks = append(blocks, p.listBlocks(t, source, level+1)...)
			case *ast.TextBlock, *ast.Paragraph:
				blocks = append(blocks, types.Block{
					Kind:    types.ListItemBlock,
					Level:   level,
					Ordered: ordered,
					Spans:   inlineSpans(c, source, false, false),
				})
			default:
				blocks = append(blocks, p.blockOf(c, source)...)
			}
		}
	}
	return blocks
}

// tableBlock converts a goldmark table into a TableBlock, marking the
// header row.
func (p *Parser) tableBlock(table *east.Table, source []byte) types.Block {
	var rows []types.TableRow
	for r := table.FirstChild(); r != nil; r = r.NextSibling() {
		_, isHeader := r.(*east.TableHeader)
		row := types.TableRow{Header: isHeader}
		for c := r.FirstChild(); c != nil; c = c.NextSibling() {
			row.Cells = append(row.Cells, inlineSpans(c, source, false, false))
		}
		rows = append(rows, row)
	}
	return types.Block{Kind: types.TableBlock, Rows: rows}
}

// rawLineParagraphs turns the raw source lines of a block (code fence,
// HTML block) into one plain paragraph per line.
func rawLineParagraphs(n ast.Node, source []byte) []types.Block {
	var blocks []types.Block
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		line := strings.TrimRight(string(seg.Value(source)), "\n")
		blocks = append(blocks, types.Paragraph(line))
	}
	return blocks
}
