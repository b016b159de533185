package web

import "net/http"

// Home handles GET /
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "home", nil)
}

// About handles GET /about
func (h *Handlers) About(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "about", nil)
}

// Services handles GET /services
func (h *Handlers) Services(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "services", nil)
}

// Gallery handles GET /gallery
func (h *Handlers) Gallery(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "gallery", nil)
}
