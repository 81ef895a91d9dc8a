package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testEmailTemplate = `<html><body><div id="newsletter">{{.Content}}</div></body></html>`

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	path := filepath.Join(t.TempDir(), "email.html")
	if err := os.WriteFile(path, []byte(testEmailTemplate), 0o644); err != nil {
		t.Fatalf("failed to write template: %v", err)
	}
	r, err := NewRenderer(path)
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	return r
}

func TestRenderMarkdown(t *testing.T) {
	r := newTestRenderer(t)

	out, err := r.Render("## Heading\n\n* bullet one\n* bullet two\n\n[link](https://example.com)\n")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	for _, want := range []string{
		"<h2>Heading</h2>",
		"<ul>",
		"<li>bullet one</li>",
		`<a href="https://example.com">link</a>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected rendered HTML to contain %q, got:\n%s", want, out)
		}
	}
}

func TestRenderSubstitutesTemplate(t *testing.T) {
	r := newTestRenderer(t)

	out, err := r.Render("# Title")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if !strings.Contains(out, `<div id="newsletter">`) {
		t.Error("Expected output to be wrapped in the email template")
	}
	if strings.Contains(out, "{{.Content}}") || strings.Contains(out, "{{") {
		t.Errorf("Expected no placeholder literal to survive, got:\n%s", out)
	}
}

func TestNewRendererMissingFile(t *testing.T) {
	_, err := NewRenderer(filepath.Join(t.TempDir(), "missing.html"))
	if err == nil {
		t.Fatal("Expected error for missing email template")
	}
}
