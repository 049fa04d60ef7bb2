// Package handlers - response utilities.
//
// This file defines the HTML rendering helpers shared by all page handlers:
// a base view model carrying the title and the authenticated identity, a
// render helper that funnels every page through the injected Renderer, and
// the generic error page used when a storage read fails mid-request.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-hosting-portal/internal/http/middleware"
)

// view builds the base view model every template expects: the page title and
// the authenticated identity (nil on public pages). Handlers add their own
// keys on top.
func view(c *gin.Context, title string) gin.H {
	data := gin.H{
		"Title": title,
		"User":  nil,
	}
	if id, ok := middleware.IdentityFrom(c); ok {
		data["User"] = id
	}
	return data
}

// renderPage writes the named template with the given status. A template
// execution failure after headers went out cannot be unwound, so it is
// logged and the response aborted as-is.
func (h *Handlers) renderPage(c *gin.Context, status int, name string, data gin.H) {
	c.Writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := h.rnd.Render(c.Writer, name, data); err != nil {
		middleware.LoggerFrom(c).Error().
			Err(err).
			Str("template", name).
			Msg("render failed")
		c.Abort()
	}
}

// serverError renders the generic 500 page. Used when a storage read fails;
// the failure itself is logged with request context, the user only sees the
// generic notice.
func (h *Handlers) serverError(c *gin.Context, err error) {
	middleware.LoggerFrom(c).Error().Err(err).Msg("request failed")
	h.renderPage(c, http.StatusInternalServerError, "500.html", view(c, "Error"))
	c.Abort()
}

// NotFound renders the 404 page. The router installs it as the NoRoute and
// NoMethod fallback.
func (h *Handlers) NotFound(c *gin.Context) {
	h.renderPage(c, http.StatusNotFound, "404.html", view(c, "No encontrado"))
}
