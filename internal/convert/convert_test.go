// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/mdreport/pkg/types"
)

// documentXML serializes the document and extracts word/document.xml.
func documentXML(t *testing.T, c *Converter, md string) string {
	t.Helper()
	data, err := c.Convert(md).Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("opening archive: %v", err)
	}
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		fr, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		defer fr.Close()
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(fr); err != nil {
			t.Fatal(err)
		}
		return buf.String()
	}
	t.Fatal("word/document.xml not found in archive")
	return ""
}

func TestConvertHeadingsAndText(t *testing.T) {
	c := New(types.DefaultStyles())
	doc := documentXML(t, c, "# Report\n\n## Summary\n\nAll good.\n")

	for _, want := range []string{
		`<w:pStyle w:val="Heading1"/>`,
		`<w:pStyle w:val="Heading2"/>`,
		">Report</w:t>",
		">Summary</w:t>",
		">All good.</w:t>",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document.xml missing %q", want)
		}
	}
}

func TestConvertTableDimensions(t *testing.T) {
	// A Markdown table literal must render with matching row and
	// column counts.
	md := "| Name | Role | Contact |\n" +
		"|------|------|---------|\n" +
		"| Ada | Lead | ada@x.io |\n" +
		"| Grace | Eng | grace@x.io |\n"

	c := New(types.DefaultStyles())
	doc := documentXML(t, c, md)

	if got := strings.Count(doc, "<w:tr>"); got != 3 {
		t.Errorf("table rows = %d, want 3", got)
	}
	if got := strings.Count(doc, "<w:gridCol/>"); got != 3 {
		t.Errorf("table columns = %d, want 3", got)
	}
	if got := strings.Count(doc, "<w:tc>"); got != 9 {
		t.Errorf("table cells = %d, want 9", got)
	}
}

func TestConvertListItems(t *testing.T) {
	// A two-element list value renders as two bullet items.
	c := New(types.DefaultStyles())
	doc := documentXML(t, c, "- Objective 1\n- Objective 2\n")

	if got := strings.Count(doc, `<w:numId w:val="1"/>`); got != 2 {
		t.Errorf("bullet items = %d, want 2", got)
	}
}

func TestConvertFileAndBatch(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.md")
	if err := os.WriteFile(good, []byte("# Good\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "missing.md")

	c := New(types.DefaultStyles())
	var log bytes.Buffer
	result := c.ConvertBatch([]string{good, missing}, dir, &log)

	if result.Converted != 1 || result.Failed != 1 {
		t.Errorf("BatchResult = %+v, want 1 converted / 1 failed", result)
	}
	if !result.HasFailures() {
		t.Error("HasFailures() should be true")
	}
	if result.Total() != 2 {
		t.Errorf("Total() = %d, want 2", result.Total())
	}

	out := log.String()
	if !strings.Contains(out, "converted: good") {
		t.Errorf("log missing converted line:\n%s", out)
	}
	if !strings.Contains(out, "failed:    missing") {
		t.Errorf("log missing failed line:\n%s", out)
	}
	if !strings.Contains(out, "Batch summary: 1 converted, 1 failed (total: 2)") {
		t.Errorf("log missing summary:\n%s", out)
	}

	if _, err := os.Stat(filepath.Join(dir, "good.docx")); err != nil {
		t.Errorf("good.docx not written: %v", err)
	}
}

func TestConvertFileMissingOutputDir(t *testing.T) {
	dir := t.TempDir()
	md := filepath.Join(dir, "in.md")
	if err := os.WriteFile(md, []byte("# In\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := New(types.DefaultStyles())
	err := c.ConvertFile(md, filepath.Join(dir, "nope", "out.docx"))
	if err == nil {
		t.Error("saving into a missing directory should fail")
	}
}
