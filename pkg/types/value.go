// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ValueKind discriminates the forms a placeholder value can take.
type ValueKind int8

const (
	// NullValue is an explicitly null value ("Not specified" in output).
	NullValue ValueKind = iota

	// TextValue is a scalar inserted as-is. Pre-formatted Markdown
	// (e.g. a table literal) is a TextValue too.
	TextValue

	// ListValue is an ordered sequence rendered as a bulleted list.
	ListValue

	// MappingValue is a nested key/value mapping rendered as a nested
	// list with bold keys.
	MappingValue
)

// Value is one placeholder value: scalar text, a sequence of strings,
// or a nested mapping. The zero Value is null.
type Value struct {
	kind    ValueKind
	text    string
	items   []string
	mapping []MappingEntry
}

// MappingEntry is one key/value pair of a MappingValue. Entries keep
// the order they appeared in the source document.
type MappingEntry struct {
	Key   string
	Value Value
}

// Text returns a scalar value.
func Text(s string) Value {
	return Value{kind: TextValue, text: s}
}

// List returns a sequence value.
func List(items ...string) Value {
	return Value{kind: ListValue, items: items}
}

// Mapping returns a nested mapping value.
func Mapping(entries ...MappingEntry) Value {
	return Value{kind: MappingValue, mapping: entries}
}

// Null returns the explicit null value.
func Null() Value {
	return Value{kind: NullValue}
}

// Kind reports the value's form.
func (v Value) Kind() ValueKind { return v.kind }

// Items returns the elements of a ListValue, or nil for other kinds.
func (v Value) Items() []string { return v.items }

// Entries returns the pairs of a MappingValue, or nil for other kinds.
func (v Value) Entries() []MappingEntry { return v.mapping }

// notSpecified replaces explicit nulls in rendered output.
const notSpecified = "Not specified"

// Markdown renders the value as Markdown text ready for substitution:
// scalars verbatim, sequences as "- item" lines, mappings as nested
// lists with bold keys, null as "Not specified".
func (v Value) Markdown() string {
	switch v.kind {
	case TextValue:
		return v.text
	case ListValue:
		lines := make([]string, len(v.items))
		for i, item := range v.items {
			lines[i] = "- " + item
		}
		return strings.Join(lines, "\n")
	case MappingValue:
		return v.mappingMarkdown(0)
	default:
		return notSpecified
	}
}

// mappingMarkdown renders nested mappings with two-space indent per level.
func (v Value) mappingMarkdown(level int) string {
	indent := strings.Repeat("  ", level)
	var lines []string
	for _, e := range v.mapping {
		switch e.Value.kind {
		case MappingValue:
			lines = append(lines, fmt.Sprintf("%s- **%s:**", indent, e.Key))
			lines = append(lines, e.Value.mappingMarkdown(level+1))
		case ListValue:
			lines = append(lines, fmt.Sprintf("%s- **%s:**", indent, e.Key))
			for _, item := range e.Value.items {
				lines = append(lines, fmt.Sprintf("%s  - %s", indent, item))
			}
		default:
			lines = append(lines, fmt.Sprintf("%s- **%s:** %s", indent, e.Key, e.Value.Markdown()))
		}
	}
	return strings.Join(lines, "\n")
}

// UnmarshalJSON decodes a JSON value into the matching Value kind.
// Strings stay scalars, arrays become sequences (elements stringified),
// objects become ordered mappings, null stays null, and numbers or
// booleans are stringified.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	val, err := decodeValue(dec)
	if err != nil {
		return err
	}
	*v = val
	return nil
}

// decodeValue reads one JSON value from the decoder. Objects are read
// token by token so key order survives decoding.
func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			var entries []MappingEntry
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Value{}, fmt.Errorf("object key is not a string: %v", keyTok)
				}
				val, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				entries = append(entries, MappingEntry{Key: key, Value: val})
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return Value{}, err
			}
			return Mapping(entries...), nil
		case '[':
			var items []string
			for dec.More() {
				val, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				items = append(items, val.Markdown())
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return Value{}, err
			}
			return List(items...), nil
		default:
			return Value{}, fmt.Errorf("unexpected delimiter %q", t)
		}
	case string:
		return Text(t), nil
	case json.Number:
		return Text(t.String()), nil
	case bool:
		return Text(fmt.Sprintf("%v", t)), nil
	case nil:
		return Null(), nil
	default:
		return Value{}, fmt.Errorf("unexpected JSON token %v", tok)
	}
}

// DataDict maps placeholder names to values, preserving the key order
// of the JSON object it was decoded from.
type DataDict struct {
	keys   []string
	values map[string]Value
}

// NewDataDict builds an empty dictionary.
func NewDataDict() *DataDict {
	return &DataDict{values: map[string]Value{}}
}

// Set adds or replaces an entry. New keys append to the order.
func (d *DataDict) Set(key string, v Value) {
	if d.values == nil {
		d.values = map[string]Value{}
	}
	if _, exists := d.values[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.values[key] = v
}

// Get looks up an entry, reporting whether it exists.
func (d *DataDict) Get(key string) (Value, bool) {
	if d == nil || d.values == nil {
		return Value{}, false
	}
	v, ok := d.values[key]
	return v, ok
}

// Has reports whether key is present.
func (d *DataDict) Has(key string) bool {
	_, ok := d.Get(key)
	return ok
}

// Keys returns the placeholder names in insertion order.
func (d *DataDict) Keys() []string {
	if d == nil {
		return nil
	}
	return d.keys
}

// Len returns the number of entries.
func (d *DataDict) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// UnmarshalJSON decodes a JSON object into the dictionary, keeping the
// object's key order.
func (d *DataDict) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	val, err := decodeValue(dec)
	if err != nil {
		return err
	}
	if val.Kind() != MappingValue {
		return fmt.Errorf("data dictionary must be a JSON object")
	}
	d.keys = nil
	d.values = map[string]Value{}
	for _, e := range val.Entries() {
		d.Set(e.Key, e.Value)
	}
	return nil
}
