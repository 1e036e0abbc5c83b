// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate composes template filling and document conversion
// behind a single call, for callers that want a finished document
// straight from a data dictionary.
package generate

import (
	"fmt"

	"github.com/pdiddy/mdreport/internal/convert"
	"github.com/pdiddy/mdreport/internal/template"
	"github.com/pdiddy/mdreport/pkg/types"
)

// Generator wires a template store to a converter. It adds no logic
// of its own beyond delegation.
type Generator struct {
	store *template.Store
	conv  *convert.Converter
}

// New builds a generator over the built-in template and the given
// style table.
func New(styles types.StyleConfig) *Generator {
	return &Generator{
		store: template.NewStore(),
		conv:  convert.New(styles),
	}
}

// Store exposes the underlying template store so callers can install
// a custom template or inspect its placeholders.
func (g *Generator) Store() *template.Store {
	return g.store
}

// Fill substitutes the data dictionary into the active template and
// returns the filled Markdown.
func (g *Generator) Fill(data *types.DataDict) string {
	return g.store.Fill(data)
}

// Generate fills the active template with data, converts the result,
// and returns the document as an in-memory byte buffer, ready for
// direct embedding in a response.
func (g *Generator) Generate(data *types.DataDict) ([]byte, error) {
	doc := g.conv.Convert(g.store.Fill(data))
	out, err := doc.Bytes()
	if err != nil {
		return nil, fmt.Errorf("serializing document: %w", err)
	}
	return out, nil
}

// GenerateToFile fills, converts and saves the document at path.
func (g *Generator) GenerateToFile(data *types.DataDict, path string) error {
	return g.conv.Convert(g.store.Fill(data)).Save(path)
}
