// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package preview renders the block model as ANSI-styled terminal
// output, so a filled document can be inspected without opening a
// word processor.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pdiddy/mdreport/pkg/types"
)

// Renderer writes blocks as styled terminal text. Heading colors come
// from the same style table the document output uses.
type Renderer struct {
	heading map[int]lipgloss.Style
	bold    lipgloss.Style
	italic  lipgloss.Style
}

// New builds a renderer from the style table.
func New(styles types.StyleConfig) *Renderer {
	styles = styles.Normalize()
	heading := make(map[int]lipgloss.Style, 3)
	for level := 1; level <= 3; level++ {
		hs := styles.HeadingFor(level)
		st := lipgloss.NewStyle().Bold(hs.Bold)
		if hs.Color != "" {
			st = st.Foreground(lipgloss.Color("#" + hs.Color))
		}
		heading[level] = st
	}
	return &Renderer{
		heading: heading,
		bold:    lipgloss.NewStyle().Bold(true),
		italic:  lipgloss.NewStyle().Italic(true),
	}
}

// Render returns the blocks as terminal text, one block per line
// group with blank lines between top-level blocks.
func (r *Renderer) Render(blocks []types.Block) string {
	var sb strings.Builder
	ordinal := 0

	for i, b := range blocks {
		if i > 0 && b.Kind != types.ListItemBlock {
			sb.WriteString("\n")
		}
		if b.Kind != types.ListItemBlock || !b.Ordered {
			ordinal = 0
		}

		switch b.Kind {
		case types.HeadingBlock:
			level := b.Level
			if level < 1 {
				level = 1
			}
			if level > 3 {
				level = 3
			}
			sb.WriteString(r.heading[level].Render(b.PlainText()))
			sb.WriteString("\n")

		case types.ListItemBlock:
			indent := strings.Repeat("  ", b.Level+1)
			marker := "• "
			if b.Ordered {
				ordinal++
				marker = fmt.Sprintf("%d. ", ordinal)
			}
			sb.WriteString(indent + marker + r.spans(b.Spans))
			sb.WriteString("\n")

		case types.TableBlock:
			sb.WriteString(r.table(b))

		default:
			sb.WriteString(r.spans(b.Spans))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// spans styles each run according to its formatting flags.
func (r *Renderer) spans(spans []types.Span) string {
	var sb strings.Builder
	for _, s := range spans {
		switch {
		case s.Bold:
			sb.WriteString(r.bold.Render(s.Text))
		case s.Italic:
			sb.WriteString(r.italic.Render(s.Text))
		default:
			sb.WriteString(s.Text)
		}
	}
	return sb.String()
}

// table lays rows out in fixed-width columns with a rule under the
// header row.
func (r *Renderer) table(b types.Block) string {
	cols := 0
	for _, row := range b.Rows {
		if len(row.Cells) > cols {
			cols = len(row.Cells)
		}
	}
	if cols == 0 {
		return ""
	}

	widths := make([]int, cols)
	texts := make([][]string, len(b.Rows))
	for i, row := range b.Rows {
		texts[i] = make([]string, cols)
		for j := 0; j < cols && j < len(row.Cells); j++ {
			txt := plainCell(row.Cells[j])
			texts[i][j] = txt
			if len(txt) > widths[j] {
				widths[j] = len(txt)
			}
		}
	}

	var sb strings.Builder
	for i, row := range texts {
		var cells []string
		for j, txt := range row {
			cells = append(cells, fmt.Sprintf("%-*s", widths[j], txt))
		}
		line := strings.TrimRight(strings.Join(cells, "  "), " ")
		if i < len(b.Rows) && b.Rows[i].Header {
			line = r.bold.Render(line)
		}
		sb.WriteString(line + "\n")
		if i < len(b.Rows) && b.Rows[i].Header {
			total := 0
			for _, w := range widths {
				total += w
			}
			sb.WriteString(strings.Repeat("─", total+2*(cols-1)) + "\n")
		}
	}
	return sb.String()
}

// plainCell flattens a cell's spans to unstyled text.
func plainCell(spans []types.Span) string {
	var sb strings.Builder
	for _, s := range spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}
