// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// HeadingStyle holds the style rules for one heading level.
type HeadingStyle struct {
	// SizePt is the font size in points.
	SizePt int `json:"size_pt" yaml:"size_pt"`

	// Color is the font color as an RRGGBB hex string (no leading #).
	Color string `json:"color" yaml:"color"`

	// Bold toggles bold heading text.
	Bold bool `json:"bold" yaml:"bold"`
}

// TableStyle holds the style rules for rendered tables.
type TableStyle struct {
	// HeaderBold toggles bolding of the first (header) row.
	HeaderBold bool `json:"header_bold" yaml:"header_bold"`

	// Borders toggles single-line borders around all cells.
	Borders bool `json:"borders" yaml:"borders"`
}

// StyleConfig is the configurable style table applied during
// Markdown-to-document conversion. Zero fields fall back to defaults.
type StyleConfig struct {
	// Headings maps heading level (1-3) to its style. Levels past the
	// deepest configured level reuse the deepest one.
	Headings map[int]HeadingStyle `json:"headings" yaml:"headings"`

	// Table styles all rendered tables.
	Table TableStyle `json:"table" yaml:"table"`

	// BaseFont is the document's default font family.
	BaseFont string `json:"base_font" yaml:"base_font"`

	// BaseSizePt is the document's default font size in points.
	BaseSizePt int `json:"base_size_pt" yaml:"base_size_pt"`
}

// maxHeadingLevel is the deepest heading level with its own style.
const maxHeadingLevel = 3

// DefaultStyles returns the built-in style table: dark slate headings
// at 24/18/14 pt over an 11 pt body.
func DefaultStyles() StyleConfig {
	return StyleConfig{
		Headings: map[int]HeadingStyle{
			1: {SizePt: 24, Color: "2E4C6B", Bold: true},
			2: {SizePt: 18, Color: "2E4C6B", Bold: true},
			3: {SizePt: 14, Color: "2E4C6B", Bold: true},
		},
		Table: TableStyle{
			HeaderBold: true,
			Borders:    true,
		},
		BaseFont:   "Calibri",
		BaseSizePt: 11,
	}
}

// HeadingFor resolves the style for a heading level, clamping deep
// levels to the deepest configured style and filling gaps from the
// defaults.
func (c StyleConfig) HeadingFor(level int) HeadingStyle {
	if level < 1 {
		level = 1
	}
	if level > maxHeadingLevel {
		level = maxHeadingLevel
	}
	if hs, ok := c.Headings[level]; ok {
		return hs
	}
	return DefaultStyles().Headings[level]
}

// Normalize fills unset fields from the defaults so callers can pass a
// partially specified config.
func (c StyleConfig) Normalize() StyleConfig {
	def := DefaultStyles()
	if c.Headings == nil {
		c.Headings = def.Headings
	}
	if c.BaseFont == "" {
		c.BaseFont = def.BaseFont
	}
	if c.BaseSizePt <= 0 {
		c.BaseSizePt = def.BaseSizePt
	}
	return c
}
