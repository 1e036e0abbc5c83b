// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// BlockKind identifies a structural Markdown unit. Blocks are the unit
// of conversion between Markdown and the output document.
type BlockKind int8

const (
	// ParagraphBlock is a plain paragraph. It is also the fallback for
	// constructs the converter does not model (code fences, quotes).
	ParagraphBlock BlockKind = iota

	// HeadingBlock is a heading, levels 1-3.
	HeadingBlock

	// ListItemBlock is one item of a bulleted or numbered list.
	ListItemBlock

	// TableBlock is a table of rows and cells.
	TableBlock
)

// Span is a run of text with uniform inline formatting.
type Span struct {
	// Text is the literal run content.
	Text string `json:"text" yaml:"text"`

	// Bold marks **strong** emphasis.
	Bold bool `json:"bold,omitempty" yaml:"bold,omitempty"`

	// Italic marks *light* emphasis.
	Italic bool `json:"italic,omitempty" yaml:"italic,omitempty"`
}

// TableRow is one row of a TableBlock. Each cell holds its spans.
type TableRow struct {
	// Cells are the row's cell contents, left to right.
	Cells [][]Span `json:"cells" yaml:"cells"`

	// Header marks the heading row of the table.
	Header bool `json:"header,omitempty" yaml:"header,omitempty"`
}

// Block is one structural element of a parsed document.
type Block struct {
	// Kind selects which of the remaining fields are meaningful.
	Kind BlockKind `json:"kind" yaml:"kind"`

	// Spans holds the text runs of headings, paragraphs and list items.
	Spans []Span `json:"spans,omitempty" yaml:"spans,omitempty"`

	// Level is the heading level (1-3) or the list nesting depth
	// (0-based) for list items.
	Level int `json:"level,omitempty" yaml:"level,omitempty"`

	// Ordered marks a list item as part of a numbered list.
	Ordered bool `json:"ordered,omitempty" yaml:"ordered,omitempty"`

	// Rows holds table content for TableBlock.
	Rows []TableRow `json:"rows,omitempty" yaml:"rows,omitempty"`
}

// PlainText flattens the block's spans to unformatted text.
func (b Block) PlainText() string {
	var sb strings.Builder
	for _, s := range b.Spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// Heading builds a heading block from plain text.
func Heading(level int, text string) Block {
	return Block{Kind: HeadingBlock, Level: level, Spans: []Span{{Text: text}}}
}

// Paragraph builds a paragraph block from plain text.
func Paragraph(text string) Block {
	return Block{Kind: ParagraphBlock, Spans: []Span{{Text: text}}}
}
