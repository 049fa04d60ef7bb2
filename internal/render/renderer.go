// Package render turns a template name plus a view model into HTML. The
// Renderer interface is the seam between handlers and the template engine;
// handlers never touch html/template directly, so swapping the engine stays
// local to this package.
package render

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer writes the named page to w using data as the view model.
//
// Implementations must be safe for concurrent use; one Renderer serves every
// request of the process.
type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

// TemplateRenderer is the html/template-backed Renderer over the embedded
// page set. Template names are the file base names (e.g. "login.html").
type TemplateRenderer struct {
	t *template.Template
}

// New parses the embedded templates. Parse errors indicate a broken build,
// so callers treat them as fatal at startup.
func New() (*TemplateRenderer, error) {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &TemplateRenderer{t: t}, nil
}

// MustNew is New panicking on error, for main-line wiring and tests.
func MustNew() *TemplateRenderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

// Render executes the named template into w.
func (r *TemplateRenderer) Render(w io.Writer, name string, data any) error {
	return r.t.ExecuteTemplate(w, name, data)
}

// Has reports whether a template with the given name was parsed. Useful for
// wiring checks that want to fail before the first request.
func (r *TemplateRenderer) Has(name string) bool {
	return r.t.Lookup(name) != nil
}
