// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package template

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/mdreport/pkg/types"
)

// fixedStore returns a store with a deterministic clock.
func fixedStore() *Store {
	s := NewStore()
	s.now = func() time.Time {
		return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	}
	return s
}

func TestPlaceholdersDefaultTemplate(t *testing.T) {
	want := []string{
		"document_title", "executive_summary", "project_name",
		"project_manager", "start_date", "end_date", "project_status",
		"project_objectives", "in_scope_items", "out_scope_items",
		"stakeholder_table", "timeline_section", "total_budget",
		"spent_amount", "remaining_budget", "budget_breakdown",
		"risks_section", "deliverables_list", "success_metrics",
		"additional_notes", "generation_date", "prepared_by",
	}

	got := NewStore().Placeholders()
	if len(got) != len(want) {
		t.Fatalf("len(Placeholders()) = %d, want %d\ngot: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Placeholders()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPlaceholdersFirstOccurrenceOrderDeduped(t *testing.T) {
	s := NewStore()
	if err := s.SetCustom("{{b}} {{a}} {{b}} {{c}} {{a}}"); err != nil {
		t.Fatal(err)
	}

	got := s.Placeholders()
	want := []string{"b", "a", "c"}
	if len(got) != len(want) {
		t.Fatalf("Placeholders() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Placeholders()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSetCustomRejectsEmpty(t *testing.T) {
	s := NewStore()
	if err := s.SetCustom(""); err == nil {
		t.Error("SetCustom(\"\") should fail")
	}
	if s.Template() != DefaultTemplate {
		t.Error("failed SetCustom must not clobber the active template")
	}
}

func TestFillEveryPlaceholderResolved(t *testing.T) {
	// Each placeholder must appear in the output as its value when
	// present, or as the literal sentinel when absent.
	s := fixedStore()
	if err := s.SetCustom("# {{title}}\n\n{{body}}\n\n{{missing}}"); err != nil {
		t.Fatal(err)
	}

	data := types.NewDataDict()
	data.Set("title", types.Text("Launch Plan"))
	data.Set("body", types.Text("All systems go."))

	out := s.Fill(data)

	if !strings.Contains(out, "Launch Plan") {
		t.Errorf("output missing title value:\n%s", out)
	}
	if !strings.Contains(out, "All systems go.") {
		t.Errorf("output missing body value:\n%s", out)
	}
	if !strings.Contains(out, Sentinel) {
		t.Errorf("output missing sentinel for absent key:\n%s", out)
	}
	if strings.Contains(out, "{{") {
		t.Errorf("output still contains placeholder syntax:\n%s", out)
	}
}

func TestFillListValue(t *testing.T) {
	s := fixedStore()
	if err := s.SetCustom("## Objectives\n{{project_objectives}}\n"); err != nil {
		t.Fatal(err)
	}

	data := types.NewDataDict()
	data.Set("project_objectives", types.List("Objective 1", "Objective 2"))

	out := s.Fill(data)
	if !strings.Contains(out, "- Objective 1\n- Objective 2") {
		t.Errorf("list value not rendered as bulleted lines:\n%s", out)
	}
}

func TestFillIdempotent(t *testing.T) {
	s := fixedStore()
	data := types.NewDataDict()
	data.Set("document_title", types.Text("Report"))
	data.Set("project_objectives", types.List("One", "Two"))

	first := s.Fill(data)
	second := s.Fill(data)
	if first != second {
		t.Error("Fill is not idempotent for identical inputs")
	}
}

func TestFillMalformedPlaceholderVerbatim(t *testing.T) {
	tests := []struct {
		name string
		tpl  string
	}{
		{"unterminated", "Hello {{name and goodbye"},
		{"single braces", "Hello {name}"},
		{"space inside", "Hello {{first name}}"},
		{"nested braces", "Hello {{{x}}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := fixedStore()
			if err := s.SetCustom(tt.tpl); err != nil {
				t.Fatal(err)
			}
			out := s.Fill(types.NewDataDict())
			if out != tt.tpl {
				t.Errorf("Fill(%q) = %q, want verbatim", tt.tpl, out)
			}
		})
	}
}

func TestFillValueNotRescanned(t *testing.T) {
	// A value that itself looks like a placeholder must land verbatim,
	// not trigger a second substitution.
	s := fixedStore()
	if err := s.SetCustom("{{a}}"); err != nil {
		t.Fatal(err)
	}

	data := types.NewDataDict()
	data.Set("a", types.Text("{{b}}"))
	data.Set("b", types.Text("should never appear"))

	out := s.Fill(data)
	if out != "{{b}}" {
		t.Errorf("Fill = %q, want {{b}} verbatim", out)
	}
}

func TestFillGenerationDateAutofill(t *testing.T) {
	s := fixedStore()
	if err := s.SetCustom("Generated: {{generation_date}}"); err != nil {
		t.Fatal(err)
	}

	out := s.Fill(types.NewDataDict())
	if out != "Generated: 2026-03-14 09:30" {
		t.Errorf("Fill = %q, want autofilled generation date", out)
	}

	// An explicit value wins over the autofill.
	data := types.NewDataDict()
	data.Set("generation_date", types.Text("yesterday"))
	if out := s.Fill(data); out != "Generated: yesterday" {
		t.Errorf("Fill = %q, want explicit value", out)
	}
}

func TestFillNullValue(t *testing.T) {
	s := fixedStore()
	if err := s.SetCustom("Notes: {{notes}}"); err != nil {
		t.Fatal(err)
	}

	data := types.NewDataDict()
	data.Set("notes", types.Null())

	if out := s.Fill(data); out != "Notes: Not specified" {
		t.Errorf("Fill = %q, want null rendered as Not specified", out)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.md")
	if err := os.WriteFile(path, []byte("# {{title}}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewStore()
	if err := s.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if s.Template() != "# {{title}}\n" {
		t.Errorf("Template() = %q after LoadFile", s.Template())
	}

	if err := s.LoadFile(filepath.Join(dir, "missing.md")); err == nil {
		t.Error("LoadFile on a missing file should fail")
	}
}
