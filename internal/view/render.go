// Package view renders the site's pages from templates embedded in the
// binary. The template set is parsed once at construction and shared
// read-only across invocations; a parse failure is a fatal initialization
// condition, surfaced before the process can serve anything.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer executes named page templates. Safe for concurrent use; the
// parsed set is never mutated after NewRenderer returns.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// MustRenderer is NewRenderer for process init paths, where a template
// failure should stop the binary outright.
func MustRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

// Render executes the named page template ("index", "publication", "query")
// and returns the HTML. All context values are escaped by the template
// engine; missing optional fields render empty, never as an error.
func (r *Renderer) Render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name+".html", data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return buf.String(), nil
}
