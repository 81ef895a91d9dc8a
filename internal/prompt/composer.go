package prompt

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"
)

// Data is what the external prompt template may reference.
type Data struct {
	News      string
	Portfolio string
}

// Composer merges the news block and portfolio string into the external
// prompt template. Construction fails when the template file is missing or
// malformed, which callers treat as fatal before any network work starts.
type Composer struct {
	tmpl *template.Template
}

func NewComposer(path string) (*Composer, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt template %s: %w", path, err)
	}
	tmpl, err := template.New("prompt").Parse(string(b))
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt template %s: %w", path, err)
	}
	return &Composer{tmpl: tmpl}, nil
}

// Compose produces the final prompt. Substitution is total: an error is
// returned rather than leaving a placeholder in the output.
func (c *Composer) Compose(news, portfolio string) (string, error) {
	if strings.TrimSpace(news) == "" {
		news = "No news available."
	}

	var buf bytes.Buffer
	if err := c.tmpl.Execute(&buf, Data{News: news, Portfolio: portfolio}); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}
	return buf.String(), nil
}
