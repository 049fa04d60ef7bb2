// Package handlers provides the HTTP handler implementations for the portal
// pages. Handlers are transport-thin: they read form/cookie input, call
// application services, and translate results into rendered HTML or
// redirects. Business rules live in the services package.
package handlers

import (
	"context"
	"time"

	"github.com/tbourn/go-hosting-portal/internal/domain"
	"github.com/tbourn/go-hosting-portal/internal/render"
	"github.com/tbourn/go-hosting-portal/internal/session"
)

//
// Service contracts (context-aware)
//

// AuthService defines the login/logout operations consumed by HTTP handlers.
//
// Implementations must be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type AuthService interface {
	// Login verifies credentials and mints a session on success. Credential
	// failures are services.ErrInvalidCredentials; anything else is storage.
	Login(ctx context.Context, username, password string) (domain.Identity, string, error)
	// Logout destroys a session token; unknown tokens are a no-op.
	Logout(token string)
}

// CatalogService defines read access to the seeded service catalog.
type CatalogService interface {
	// List returns every catalog entry for the dashboard.
	List(ctx context.Context) ([]domain.Service, error)
	// HostingPlan returns the shared-hosting service, or nil when absent.
	HostingPlan(ctx context.Context) (*domain.Service, error)
}

// ContactService defines the contact-form submission operation.
type ContactService interface {
	// Submit stores one submission, flattening topics into their text form.
	Submit(ctx context.Context, name, email, body string, topics []string) (*domain.Message, error)
}

//
// Handler wiring
//

// CookieOptions carries the session cookie settings handlers need when
// attaching or clearing the token on the client.
type CookieOptions struct {
	// Name of the session cookie.
	Name string
	// TTL mirrors the session store's time-to-live so the cookie and the
	// server-side session expire together.
	TTL time.Duration
	// Secure marks the cookie HTTPS-only; enable behind TLS.
	Secure bool
}

// Handlers groups the HTTP endpoints for login, catalog, and contact pages.
// It depends on abstract service interfaces to keep transport concerns
// separate from business logic.
type Handlers struct {
	authSvc    AuthService
	catalogSvc CatalogService
	contactSvc ContactService
	sessions   session.Store
	rnd        render.Renderer
	cookie     CookieOptions
}

// New constructs a Handlers instance bound to the given collaborators.
func New(authSvc AuthService, catalogSvc CatalogService, contactSvc ContactService, sessions session.Store, rnd render.Renderer, cookie CookieOptions) *Handlers {
	return &Handlers{
		authSvc:    authSvc,
		catalogSvc: catalogSvc,
		contactSvc: contactSvc,
		sessions:   sessions,
		rnd:        rnd,
		cookie:     cookie,
	}
}
