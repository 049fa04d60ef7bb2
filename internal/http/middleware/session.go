// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements the auth gate. It is a pure predicate plus redirect:
// resolve the session cookie through the session store, and either attach
// the identity to the request context or send the browser to /login without
// ever invoking the protected handler. It holds no state of its own.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-hosting-portal/internal/domain"
	"github.com/tbourn/go-hosting-portal/internal/session"
)

const (
	// identityKey is the Gin context key carrying the resolved identity.
	identityKey = "identity"
	// usernameKey mirrors the username for the access logger.
	usernameKey = "username"
	// loginPath is where unauthenticated browsers are sent.
	loginPath = "/login"
)

// RequireSession rejects requests whose session cookie is missing, unknown,
// or expired, redirecting them to the login entry point. Valid sessions get
// their identity attached to the Gin context for handlers downstream.
//
// cookieName is the configured session cookie. The redirect is 303 so a
// rejected POST re-lands on GET /login.
func RequireSession(store session.Store, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.Redirect(http.StatusSeeOther, loginPath)
			c.Abort()
			return
		}
		id, ok := store.Lookup(token)
		if !ok {
			c.Redirect(http.StatusSeeOther, loginPath)
			c.Abort()
			return
		}
		c.Set(identityKey, id)
		c.Set(usernameKey, id.Username)
		c.Next()
	}
}

// IdentityFrom returns the identity attached by RequireSession. ok is false
// on public routes or when the gate did not run.
func IdentityFrom(c *gin.Context) (domain.Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return domain.Identity{}, false
	}
	id, ok := v.(domain.Identity)
	return id, ok
}
