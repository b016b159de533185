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

//go:embed static
var staticFS embed.FS

// pageNames lists every page rendered inside the shared layout.
var pageNames = []string{
	"home", "about", "services", "gallery",
	"contact", "quote", "login", "admin",
}

// parsePages compiles each page template against the shared layout.
func parsePages() (map[string]*template.Template, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.ParseFS(templateFS,
			"templates/layout.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}
	return pages, nil
}

// formPage drives the success/error banner on the contact and quote pages.
type formPage struct {
	Success bool
	Error   bool
}

// loginPage drives the credential-mismatch indicator on the login form.
type loginPage struct {
	Error bool
}

func (h *Handlers) render(w http.ResponseWriter, status int, page string, data any) {
	tmpl, ok := h.pages[page]
	if !ok {
		h.logger.Error("unknown page template", "page", page)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Render to a buffer first so a template error never leaves a
	// half-written response behind.
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		h.logger.Error("render failed", "page", page, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
