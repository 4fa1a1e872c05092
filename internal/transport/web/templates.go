package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

func parseTemplates() (*template.Template, error) {
	funcs := template.FuncMap{
		// money renders an amount rounded to cents; amounts stay unrounded
		// everywhere else.
		"money": func(v float64) string {
			return fmt.Sprintf("%.2f", v)
		},
	}

	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}

// render executes a template into a buffer first so a late failure cannot
// leave a half-written page behind a 200 status.
func (s *Server) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer

	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		s.l.LogErrorf("Could not render template %v: %v", name, err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if _, err := buf.WriteTo(w); err != nil {
		s.l.LogErrorf("Could not write template %v: %v", name, err.Error())
	}
}
