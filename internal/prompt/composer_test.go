package prompt

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testTemplate = `Input Text:
{{.News}}

*** USER PORTFOLIO ***
{{.Portfolio}}
`

func writeTemplate(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prompt.tmpl")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write template: %v", err)
	}
	return path
}

func TestComposeSubstitutesEverything(t *testing.T) {
	c, err := NewComposer(writeTemplate(t, testTemplate))
	if err != nil {
		t.Fatalf("NewComposer failed: %v", err)
	}

	out, err := c.Compose("# Latest News\n\nsome stories", "- AAPL (qty 10)")
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}

	if !strings.Contains(out, "some stories") {
		t.Error("Expected news text in composed prompt")
	}
	if !strings.Contains(out, "- AAPL (qty 10)") {
		t.Error("Expected portfolio string in composed prompt")
	}
	if strings.Contains(out, "{{") || strings.Contains(out, "}}") {
		t.Errorf("Expected no placeholder literals to survive, got: %q", out)
	}
}

func TestComposeEmptyNews(t *testing.T) {
	c, err := NewComposer(writeTemplate(t, testTemplate))
	if err != nil {
		t.Fatalf("NewComposer failed: %v", err)
	}

	out, err := c.Compose("   ", "whatever")
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	if !strings.Contains(out, "No news available.") {
		t.Errorf("Expected explicit no-news marker, got: %q", out)
	}
}

func TestNewComposerMissingFile(t *testing.T) {
	_, err := NewComposer(filepath.Join(t.TempDir(), "missing.tmpl"))
	if err == nil {
		t.Fatal("Expected error for missing template file")
	}
}

func TestNewComposerMalformedTemplate(t *testing.T) {
	_, err := NewComposer(writeTemplate(t, "{{.News"))
	if err == nil {
		t.Fatal("Expected error for malformed template")
	}
}

func TestComposeUnknownPlaceholder(t *testing.T) {
	c, err := NewComposer(writeTemplate(t, "{{.Nope}}"))
	if err != nil {
		t.Fatalf("NewComposer failed: %v", err)
	}
	if _, err := c.Compose("news", "pf"); err == nil {
		t.Fatal("Expected error for unknown placeholder")
	}
}
