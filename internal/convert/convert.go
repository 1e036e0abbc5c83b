// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns filled Markdown into styled .docx documents,
// one block at a time.
package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/mdreport/internal/docx"
	"github.com/pdiddy/mdreport/internal/markdown"
	"github.com/pdiddy/mdreport/pkg/types"
)

// Converter maps Markdown sources to documents under one style table.
// Converters are stateless and safe to reuse.
type Converter struct {
	parser *markdown.Parser
	styles types.StyleConfig
}

// New builds a converter applying the given style table.
func New(styles types.StyleConfig) *Converter {
	return &Converter{
		parser: markdown.NewParser(),
		styles: styles.Normalize(),
	}
}

// Convert parses Markdown text and renders every block into a
// document. Constructs the block model does not cover degrade to
// plain paragraphs inside the parser, so conversion itself cannot
// fail; only serialization can.
func (c *Converter) Convert(md string) *docx.Document {
	blocks := c.parser.ParseString(md)
	b := docx.NewBuilder(c.styles)
	b.AddBlocks(blocks)
	return b.Document()
}

// ConvertFile reads a Markdown file and writes the converted document
// to outPath, overwriting any existing file.
func (c *Converter) ConvertFile(mdPath, outPath string) error {
	data, err := os.ReadFile(mdPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", mdPath, err)
	}
	if err := c.Convert(string(data)).Save(outPath); err != nil {
		return fmt.Errorf("saving %s: %w", outPath, err)
	}
	return nil
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Failed    int
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Failed
}

// HasFailures reports whether any files failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ConvertBatch converts each Markdown file into outDir, naming the
// output after the input with a .docx extension. Per-file status lines
// go to w, followed by a summary.
func (c *Converter) ConvertBatch(mdPaths []string, outDir string, w io.Writer) BatchResult {
	var result BatchResult
	for _, mdPath := range mdPaths {
		base := strings.TrimSuffix(filepath.Base(mdPath), filepath.Ext(mdPath))
		outPath := filepath.Join(outDir, base+".docx")

		if err := c.ConvertFile(mdPath, outPath); err != nil {
			fmt.Fprintf(w, "failed:    %s (%v)\n", base, err)
			result.Failed++
			continue
		}
		fmt.Fprintf(w, "converted: %s -> %s\n", base, outPath)
		result.Converted++
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d failed (total: %d)\n",
		result.Converted, result.Failed, result.Total())
	return result
}
