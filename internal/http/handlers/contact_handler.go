// Contact form handlers.
//
// This file exposes the contact endpoints:
//   - GET  /contact  (render the form)
//   - POST /contact  (store one submission)
//
// On a storage failure the form is re-rendered with a failure notice and the
// submitted values preserved, so the visitor can retry without retyping.
// Beyond the schema's not-null columns there is no server-side validation;
// that gap is part of the documented behavior.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// contactTopics is the fixed set of checkbox choices on the form.
var contactTopics = []string{"Ventas", "Soporte", "Facturación", "Otro"}

// contactFailureNotice is shown inline when the insert fails.
const contactFailureNotice = "No pudimos guardar tu mensaje. Intenta de nuevo."

// contactView builds the contact page view model with the given form state.
func (h *Handlers) contactView(c *gin.Context, name, email, body, notice string, success bool) gin.H {
	data := view(c, "Contacto")
	data["AllTopics"] = contactTopics
	data["Name"] = name
	data["Email"] = email
	data["Message"] = body
	data["Error"] = notice
	data["Success"] = success
	return data
}

// ShowContact renders the empty contact form.
func (h *Handlers) ShowContact(c *gin.Context) {
	h.renderPage(c, http.StatusOK, "contact.html", h.contactView(c, "", "", "", "", false))
}

// SubmitContact stores one submission. Zero or more topic checkboxes arrive
// as repeated form values; the service flattens them into the stored text
// form (", "-joined, empty selection → "").
func (h *Handlers) SubmitContact(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	body := c.PostForm("message")
	topics := c.PostFormArray("topics")

	if _, err := h.contactSvc.Submit(c.Request.Context(), name, email, body, topics); err != nil {
		// Inline notice, values preserved; no partial insert happened.
		h.renderPage(c, http.StatusOK, "contact.html", h.contactView(c, name, email, body, contactFailureNotice, false))
		return
	}
	h.renderPage(c, http.StatusOK, "contact.html", h.contactView(c, "", "", "", "", true))
}
