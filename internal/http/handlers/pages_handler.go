// Catalog and static page handlers.
//
// This file exposes the authenticated read-only pages:
//   - GET /dashboard  (all services)
//   - GET /hosting    (the shared-hosting service, possibly absent)
//   - GET /<página>   (static renders driven by the router's page table)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Dashboard lists every catalog entry for the signed-in user.
func (h *Handlers) Dashboard(c *gin.Context) {
	items, err := h.catalogSvc.List(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}
	data := view(c, "Panel")
	data["Services"] = items
	h.renderPage(c, http.StatusOK, "dashboard.html", data)
}

// Hosting renders the shared-hosting page. A missing catalog row is a
// normal state: the template receives a nil Service and shows its fallback.
func (h *Handlers) Hosting(c *gin.Context) {
	svc, err := h.catalogSvc.HostingPlan(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}
	data := view(c, "Hosting web")
	data["Service"] = svc
	h.renderPage(c, http.StatusOK, "hosting.html", data)
}

// StaticPage returns a handler that renders the named template with no data
// lookup beyond the identity already in context. One generic handler serves
// the whole declarative page table instead of a hand-written route each.
func (h *Handlers) StaticPage(template, title string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.renderPage(c, http.StatusOK, template, view(c, title))
	}
}
