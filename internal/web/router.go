package web

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nsepoxy/website/internal/auth"
	"github.com/nsepoxy/website/internal/leads"
)

// Handlers carries the dependencies shared by every route: the lead store,
// the admin session manager, and the compiled page templates.
type Handlers struct {
	store    *leads.Store
	sessions *auth.Manager
	logger   *slog.Logger
	pages    map[string]*template.Template
}

// NewRouter creates the chi router with all routes and middleware.
func NewRouter(store *leads.Store, sessions *auth.Manager, logger *slog.Logger) (*chi.Mux, error) {
	pages, err := parsePages()
	if err != nil {
		return nil, fmt.Errorf("compile templates: %w", err)
	}
	h := &Handlers{store: store, sessions: sessions, logger: logger, pages: pages}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger(logger))
	r.Use(Recovery(logger))

	r.Get("/health", h.Health)
	r.Handle("/static/*", http.FileServer(http.FS(staticFS)))

	// Informational pages
	r.Get("/", h.Home)
	r.Get("/about", h.About)
	r.Get("/services", h.Services)
	r.Get("/gallery", h.Gallery)

	// Lead intake
	r.Get("/contact", h.ContactPage)
	r.Post("/contact", h.ContactSubmit)
	r.Get("/contact/success", h.ContactSuccess)
	r.Get("/contact/error", h.ContactError)

	r.Get("/quote", h.QuotePage)
	r.Post("/quote", h.QuoteSubmit)
	r.Get("/quote/success", h.QuoteSuccess)
	r.Get("/quote/error", h.QuoteError)

	// Admin
	r.Get("/login", h.LoginPage)
	r.Post("/login", h.LoginSubmit)
	r.Get("/logout", h.Logout)
	r.Group(func(r chi.Router) {
		r.Use(h.RequireAdmin)
		r.Get("/admin", h.Admin)
	})

	return r, nil
}
