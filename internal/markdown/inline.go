// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import (
	"github.com/yuin/goldmark/ast"

	"github.com/pdiddy/mdreport/pkg/types"
)

// inlineSpans flattens a node's inline children into formatted spans.
// Emphasis nesting is carried through the bold/italic flags; goldmark
// reports **strong** as level 2 and *light* as level 1.
func inlineSpans(n ast.Node, source []byte, bold, italic bool) []types.Span {
	var spans []types.Span

	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			txt := string(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				txt += " "
			}
			spans = appendSpan(spans, types.Span{Text: txt, Bold: bold, Italic: italic})

		case *ast.String:
			spans = appendSpan(spans, types.Span{Text: string(t.Value), Bold: bold, Italic: italic})

		case *ast.Emphasis:
			b, i := bold, italic
			if t.Level >= 2 {
				b = true
			} else {
				i = true
			}
			for _, s := range inlineSpans(t, source, b, i) {
				spans = appendSpan(spans, s)
			}

		case *ast.CodeSpan:
			// Inline code keeps its text without special styling.
			for _, s := range inlineSpans(t, source, bold, italic) {
				spans = appendSpan(spans, s)
			}

		case *ast.Link:
			// Only the link text survives conversion.
			for _, s := range inlineSpans(t, source, bold, italic) {
				spans = appendSpan(spans, s)
			}

		case *ast.AutoLink:
			spans = appendSpan(spans, types.Span{Text: string(t.URL(source)), Bold: bold, Italic: italic})

		case *ast.Image, *ast.RawHTML:
			// Dropped: no counterpart in the output model.

		default:
			if c.HasChildren() {
				for _, s := range inlineSpans(c, source, bold, italic) {
					spans = appendSpan(spans, s)
				}
			}
		}
	}
	return spans
}

// appendSpan adds a span, merging it into the previous one when the
// formatting matches so output runs stay compact.
func appendSpan(spans []types.Span, s types.Span) []types.Span {
	if s.Text == "" {
		return spans
	}
	if n := len(spans); n > 0 && spans[n-1].Bold == s.Bold && spans[n-1].Italic == s.Italic {
		spans[n-1].Text += s.Text
		return spans
	}
	return append(spans, s)
}
