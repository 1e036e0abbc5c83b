// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package template holds the active Markdown template and substitutes
// {{placeholder}} tokens with caller-supplied values.
package template

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/pdiddy/mdreport/pkg/types"
)

// placeholderPattern matches well-formed placeholders: {{name}} where
// name is a single \w+ token. Anything else (unmatched braces, spaces,
// punctuation inside the braces) is not a placeholder and passes
// through untouched.
var placeholderPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// Sentinel is substituted for placeholders with no dictionary entry.
const Sentinel = "[To be filled]"

// generationDateKey is auto-filled with the current time when missing.
const generationDateKey = "generation_date"

// generationDateLayout formats the auto-filled generation date.
const generationDateLayout = "2006-01-02 15:04"

// Store holds the active template string. The zero value is not
// usable; construct with NewStore.
type Store struct {
	template string

	// now is replaceable so tests get a fixed generation date.
	now func() time.Time
}

// NewStore returns a store holding the built-in report template.
func NewStore() *Store {
	return &Store{
		template: DefaultTemplate,
		now:      time.Now,
	}
}

// Template returns the active template text.
func (s *Store) Template() string {
	return s.template
}

// SetCustom replaces the active template. The only validation is that
// the text is non-empty; placeholder syntax is not checked because
// malformed tokens degrade gracefully at fill time.
func (s *Store) SetCustom(text string) error {
	if text == "" {
		return fmt.Errorf("custom template is empty")
	}
	s.template = text
	return nil
}

// LoadFile replaces the active template with the contents of a file.
func (s *Store) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading template: %w", err)
	}
	return s.SetCustom(string(data))
}

// Placeholders returns the distinct placeholder names in the active
// template, in first-occurrence order.
func (s *Store) Placeholders() []string {
	matches := placeholderPattern.FindAllStringSubmatch(s.template, -1)
	seen := make(map[string]bool, len(matches))
	var names []string
	for _, m := range matches {
		name := m[1]
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// Fill substitutes every well-formed placeholder in the active
// template: present values render via Value.Markdown (sequences become
// bulleted lists), absent names become the sentinel. The substitution
// is a single pass, so values containing placeholder-like text are
// never re-scanned and repeated calls with the same dictionary yield
// identical output.
func (s *Store) Fill(data *types.DataDict) string {
	return placeholderPattern.ReplaceAllStringFunc(s.template, func(token string) string {
		name := token[2 : len(token)-2]

		if v, ok := data.Get(name); ok {
			return v.Markdown()
		}
		if name == generationDateKey {
			return s.now().Format(generationDateLayout)
		}
		return Sentinel
	})
}
