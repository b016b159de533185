package web

import (
	"net/http"

	"github.com/nsepoxy/website/internal/models"
	"github.com/nsepoxy/website/internal/validate"
)

// ContactPage handles GET /contact
func (h *Handlers) ContactPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "contact", formPage{})
}

// ContactSubmit handles POST /contact. Validation failures and storage
// failures both redirect to the generic error page; the detailed reasons are
// logged but never shown to the visitor.
func (h *Handlers) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("contact form unparseable", "error", err)
		http.Redirect(w, r, "/contact/error", http.StatusSeeOther)
		return
	}

	form := models.ContactForm{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Phone:   r.PostFormValue("phone"),
		Message: r.PostFormValue("message"),
	}

	if errs := validate.Contact(form); len(errs) > 0 {
		h.logger.Info("contact form rejected", "reasons", errs)
		http.Redirect(w, r, "/contact/error", http.StatusSeeOther)
		return
	}

	if _, err := h.store.Append(form.Lead()); err != nil {
		h.logger.Error("failed to save contact lead", "error", err)
		http.Redirect(w, r, "/contact/error", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/contact/success", http.StatusSeeOther)
}

// ContactSuccess handles GET /contact/success
func (h *Handlers) ContactSuccess(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "contact", formPage{Success: true})
}

// ContactError handles GET /contact/error
func (h *Handlers) ContactError(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "contact", formPage{Error: true})
}

// QuotePage handles GET /quote
func (h *Handlers) QuotePage(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "quote", formPage{})
}

// QuoteSubmit handles POST /quote with the same outcome signalling as
// ContactSubmit.
func (h *Handlers) QuoteSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("quote form unparseable", "error", err)
		http.Redirect(w, r, "/quote/error", http.StatusSeeOther)
		return
	}

	form := models.QuoteForm{
		Name:          r.PostFormValue("name"),
		Email:         r.PostFormValue("email"),
		Phone:         r.PostFormValue("phone"),
		Address:       r.PostFormValue("address"),
		ProjectType:   r.PostFormValue("project_type"),
		FlooringType:  r.PostFormValue("flooring_type"),
		SquareFootage: r.PostFormValue("square_footage"),
		Timeline:      r.PostFormValue("timeline"),
		Details:       r.PostFormValue("details"),
	}

	if errs := validate.Quote(form); len(errs) > 0 {
		h.logger.Info("quote form rejected", "reasons", errs)
		http.Redirect(w, r, "/quote/error", http.StatusSeeOther)
		return
	}

	if _, err := h.store.Append(form.Lead()); err != nil {
		h.logger.Error("failed to save quote lead", "error", err)
		http.Redirect(w, r, "/quote/error", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/quote/success", http.StatusSeeOther)
}

// QuoteSuccess handles GET /quote/success
func (h *Handlers) QuoteSuccess(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "quote", formPage{Success: true})
}

// QuoteError handles GET /quote/error
func (h *Handlers) QuoteError(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "quote", formPage{Error: true})
}
