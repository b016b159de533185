package web

import "net/http"

const sessionCookie = "admin_session"

// LoginPage handles GET /login
func (h *Handlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "login", loginPage{})
}

// LoginSubmit handles POST /login. A credential match issues a session token
// and redirects to the admin panel; a mismatch re-renders the login form with
// an error indicator.
func (h *Handlers) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, http.StatusOK, "login", loginPage{Error: true})
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	token, ok := h.sessions.Login(username, password)
	if !ok {
		h.logger.Info("admin login failed", "username", username)
		h.render(w, http.StatusOK, "login", loginPage{Error: true})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    h.sessions.Sign(token),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.sessions.TTL().Seconds()),
	})
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// Logout handles GET /logout: revoke the session, expire the cookie, and
// return to the login page.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(sessionCookie); err == nil {
		if token, ok := h.sessions.Verify(c.Value); ok {
			h.sessions.Logout(token)
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// RequireAdmin guards gated routes. A request without a live session is
// redirected to the login page; it never sees an error status or data.
func (h *Handlers) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie(sessionCookie); err == nil {
			if token, ok := h.sessions.Verify(c.Value); ok && h.sessions.Valid(token) {
				next.ServeHTTP(w, r)
				return
			}
		}
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	})
}

// Admin handles GET /admin: the full lead listing partitioned by kind.
func (h *Handlers) Admin(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "admin", h.store.ListLeads())
}
