package render

import (
	"bytes"
	"fmt"
	"html/template"
	"os"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

type emailData struct {
	Content template.HTML
}

// Renderer converts newsletter markdown into the final HTML email document.
// Construction fails when the email template file is missing, which callers
// treat as fatal.
type Renderer struct {
	tmpl *template.Template
	md   goldmark.Markdown
}

func NewRenderer(path string) (*Renderer, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read email template %s: %w", path, err)
	}
	tmpl, err := template.New("email").Parse(string(b))
	if err != nil {
		return nil, fmt.Errorf("failed to parse email template %s: %w", path, err)
	}
	return &Renderer{
		tmpl: tmpl,
		md:   goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}, nil
}

// Render converts markdown to HTML and substitutes it into the template's
// Content placeholder.
func (r *Renderer) Render(markdown string) (string, error) {
	var body bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &body); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}

	var out bytes.Buffer
	if err := r.tmpl.Execute(&out, emailData{Content: template.HTML(body.String())}); err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}
	return out.String(), nil
}
