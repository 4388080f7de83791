package canvasrenderer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ByLCY/quire/layout"
	"github.com/ByLCY/quire/renderer"
)

func TestRenderProducesPDF(t *testing.T) {
	ts := newTestTypesetter(t)
	doc := layout.Build("Currículo", "# Experience\n- Engineer at **Acme**\n\nShipped things.", layout.Options{Typesetter: ts})
	data, err := Render(doc)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output is not a PDF: %q", data[:8])
	}
}

func TestRenderRejectsEmptyDocument(t *testing.T) {
	if _, err := Render(nil); err == nil {
		t.Fatalf("expected error for nil document")
	}
	if _, err := Render(&layout.Document{}); err == nil {
		t.Fatalf("expected error for document without pages")
	}
}

func TestEmitWritesMultiPageFile(t *testing.T) {
	ts := newTestTypesetter(t)
	content := ""
	for i := 0; i < 120; i++ {
		content += "- Delivered measurable results across several teams\n"
	}
	doc := layout.Build("Long Report", content, layout.Options{Typesetter: ts})
	if doc.PageCount() < 2 {
		t.Fatalf("expected a multi-page layout, got %d", doc.PageCount())
	}

	s, err := NewSurface(doc.Geometry.Width, doc.Geometry.Height, doc.Title)
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	dir := filepath.Join(t.TempDir(), "nested")
	path, err := renderer.Emit(doc, s, dir)
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if filepath.Base(path) != "long_report.pdf" {
		t.Fatalf("unexpected file name %s", path)
	}
	if s.PageCount() != doc.PageCount() {
		t.Fatalf("surface pages %d != layout pages %d", s.PageCount(), doc.PageCount())
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("empty PDF written")
	}
}

func TestSaveFailsWhenDirectoryIsAFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := NewSurface(210, 297, "x")
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	s.DrawText(20, 20, "hello")
	if err := s.Save(filepath.Join(blocker, "out.pdf")); err == nil {
		t.Fatalf("expected save error")
	}
}
