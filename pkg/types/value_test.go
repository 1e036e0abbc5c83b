// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueUnmarshalScalar(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"string", `"hello"`, "hello"},
		{"integer", `42`, "42"},
		{"float", `3.5`, "3.5"},
		{"bool", `true`, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Value
			require.NoError(t, json.Unmarshal([]byte(tt.json), &v))
			assert.Equal(t, TextValue, v.Kind())
			assert.Equal(t, tt.want, v.Markdown())
		})
	}
}

func TestValueUnmarshalNull(t *testing.T) {
	var v Value
	require.NoError(t, json.Unmarshal([]byte(`null`), &v))
	assert.Equal(t, NullValue, v.Kind())
	assert.Equal(t, "Not specified", v.Markdown())
}

func TestValueUnmarshalList(t *testing.T) {
	var v Value
	require.NoError(t, json.Unmarshal([]byte(`["Objective 1", "Objective 2"]`), &v))
	require.Equal(t, ListValue, v.Kind())
	assert.Equal(t, []string{"Objective 1", "Objective 2"}, v.Items())
	assert.Equal(t, "- Objective 1\n- Objective 2", v.Markdown())
}

func TestValueUnmarshalMappingKeepsOrder(t *testing.T) {
	// Keys deliberately out of lexical order; decoding must keep the
	// document order, not sort.
	src := `{"zeta": "1", "alpha": "2", "mid": "3"}`

	var v Value
	require.NoError(t, json.Unmarshal([]byte(src), &v))
	require.Equal(t, MappingValue, v.Kind())

	var keys []string
	for _, e := range v.Entries() {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, keys)
}

func TestValueMappingMarkdown(t *testing.T) {
	v := Mapping(
		MappingEntry{Key: "Phase 1", Value: Text("Planning")},
		MappingEntry{Key: "Phase 2", Value: List("Design", "Build")},
		MappingEntry{Key: "Phase 3", Value: Mapping(
			MappingEntry{Key: "Kickoff", Value: Text("March")},
		)},
	)

	want := "- **Phase 1:** Planning\n" +
		"- **Phase 2:**\n" +
		"  - Design\n" +
		"  - Build\n" +
		"- **Phase 3:**\n" +
		"  - **Kickoff:** March"
	assert.Equal(t, want, v.Markdown())
}

func TestDataDictUnmarshalKeepsOrder(t *testing.T) {
	src := `{
		"document_title": "Q3 Report",
		"project_objectives": ["Ship", "Measure"],
		"additional_notes": null
	}`

	var d DataDict
	require.NoError(t, json.Unmarshal([]byte(src), &d))

	assert.Equal(t, []string{"document_title", "project_objectives", "additional_notes"}, d.Keys())

	title, ok := d.Get("document_title")
	require.True(t, ok)
	assert.Equal(t, "Q3 Report", title.Markdown())

	notes, ok := d.Get("additional_notes")
	require.True(t, ok)
	assert.Equal(t, NullValue, notes.Kind())

	assert.False(t, d.Has("missing_key"))
}

func TestDataDictRejectsNonObject(t *testing.T) {
	var d DataDict
	err := json.Unmarshal([]byte(`["not", "an", "object"]`), &d)
	assert.Error(t, err)
}

func TestDataDictSetReplacesWithoutReordering(t *testing.T) {
	d := NewDataDict()
	d.Set("a", Text("1"))
	d.Set("b", Text("2"))
	d.Set("a", Text("updated"))

	assert.Equal(t, []string{"a", "b"}, d.Keys())
	v, _ := d.Get("a")
	assert.Equal(t, "updated", v.Markdown())
	assert.Equal(t, 2, d.Len())
}
