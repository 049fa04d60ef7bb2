// Authentication HTTP handlers.
//
// This file exposes the login/logout endpoints:
//   - GET  /login   (render form, or redirect when already signed in)
//   - POST /login   (verify credentials, mint session, set cookie)
//   - POST /logout  (destroy session, clear cookie)
//
// The failure notice is the same fixed string for an unknown username and a
// wrong password, so responses never reveal whether an account exists.
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-hosting-portal/internal/services"
)

// genericLoginNotice is the only credential-failure message ever shown.
const genericLoginNotice = "Usuario o contraseña incorrectos."

// loginView builds the login page view model.
func (h *Handlers) loginView(c *gin.Context, username, notice string) gin.H {
	data := view(c, "Iniciar sesión")
	data["Username"] = username
	data["Error"] = notice
	return data
}

// ShowLogin renders the login form. A visitor who already holds a valid
// session is sent straight to the dashboard, which makes the entry point
// idempotent for signed-in users.
func (h *Handlers) ShowLogin(c *gin.Context) {
	if token, err := c.Cookie(h.cookie.Name); err == nil && token != "" {
		if _, ok := h.sessions.Lookup(token); ok {
			c.Redirect(http.StatusSeeOther, "/dashboard")
			return
		}
	}
	h.renderPage(c, http.StatusOK, "login.html", h.loginView(c, "", ""))
}

// Login handles the credential submission. On success it attaches the
// session cookie (MaxAge mirrors the store TTL) and redirects to the
// dashboard; on credential failure it re-renders the form with the generic
// notice and the typed username preserved.
func (h *Handlers) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	_, token, err := h.authSvc.Login(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			h.renderPage(c, http.StatusUnauthorized, "login.html", h.loginView(c, username, genericLoginNotice))
			return
		}
		h.serverError(c, err)
		return
	}

	// Lax keeps the cookie off cross-site POSTs (logout, contact) while the
	// top-level redirect after login still carries it.
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, token, int(h.cookie.TTL.Seconds()), "/", "", h.cookie.Secure, true)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout destroys the current session and clears the cookie. It sits behind
// the auth gate, so the cookie is known to be present and valid here.
func (h *Handlers) Logout(c *gin.Context) {
	if token, err := c.Cookie(h.cookie.Name); err == nil && token != "" {
		h.authSvc.Logout(token)
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
	c.Redirect(http.StatusSeeOther, "/login")
}
